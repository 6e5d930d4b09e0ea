// Package telemetry instruments searches with Prometheus metrics and
// OpenTelemetry spans.
//
// Metrics registers, under a configurable namespace:
//
//   - searches_total{result}            counter
//   - search_expansions                 histogram of interior-list sizes
//   - search_path_length                histogram of solution lengths
//   - search_duration_seconds{result}   histogram
//
// where result is one of found, unreachable, limit, cancelled, error.
//
// Search wraps astar.Search in a span named "astar.Search" and records the
// outcome in both systems. Either half may be nil.
package telemetry
