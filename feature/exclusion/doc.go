// Package exclusion implements the exclusion matching engine: the lazily
// loading shard cache and the exact/partial name and business matcher, plus
// the HTTP feature exposing them.
//
// # Matching
//
// Individuals are looked up by normalized lastName+firstName key. An exact
// key hit returns every record under that key tagged "exact" and suppresses
// partial matching. Otherwise keys sharing the surname prefix are scanned and
// records match when the stored and queried first names are prefixes of each
// other in either direction, tagged "partial". Businesses match on exact key
// or substring in either direction, always tagged "business", with the
// partial scan capped at 10 matches.
//
// # Shard cache
//
// Buckets load on first query via a pluggable Fetcher (local dir, object
// storage, or an ordered fallback of both) and stay cached for the process
// lifetime. Concurrent loads of one letter coalesce into a single fetch
// (singleflight). Load failures cache an empty bucket and are logged, never
// surfaced to the caller: screening fails safe to CLEAR.
//
// The offline counterpart producing the shard artifacts lives in the index
// subpackage.
package exclusion
