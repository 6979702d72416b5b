package utils

import "os"

// ResolveEnv implements the configuration resolution chain used by all
// providers: an explicit value wins, then the named environment variable,
// then the fallback. An empty result means the setting is unresolved and the
// caller decides whether that is an error.
func ResolveEnv(explicit, envVar, fallback string) string {
	if explicit != "" {
		return explicit
	}
	if value := os.Getenv(envVar); value != "" {
		return value
	}
	return fallback
}
