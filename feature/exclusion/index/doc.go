// Package index builds the sharded exclusion-list lookup structures.
//
// The offline build reads the full delimited source list once, partitions
// records into 27 letter buckets ('a'..'z' plus the '_' catch-all), and
// publishes each bucket as an independent JSON artifact. Individuals are
// keyed by normalized lastName+firstName, businesses by normalized business
// name; both maps hold ordered record lists in source order.
//
// Key normalization and letter bucketing live here too so the matcher at
// query time applies exactly the same rules as the build.
package index
