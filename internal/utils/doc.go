// Package utils provides shared low-level helpers used throughout the
// aibridge internals: JSON-over-HTTP request helpers for synchronous
// round-trips with provider APIs, environment-based configuration resolution,
// and small string utilities.
//
// Key entry points: [DoPostSync] and [DoGetSync] for JSON round-trips,
// [ResolveEnv] for the explicit-value / environment-variable / default
// resolution chain, and [StatusError] for inspecting non-2xx responses.
package utils
