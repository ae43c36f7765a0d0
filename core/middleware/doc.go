// Package middleware groups the HTTP middleware used by the server:
//
//   - rayid: assigns each request a correlation id, surfaced in logs via
//     logger.WithRayID and echoed in the X-Ray-Id response header.
//   - auth: optional API-key protection for every route.
package middleware
