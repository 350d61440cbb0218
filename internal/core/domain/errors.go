package domain

import "go.trai.ch/zerr"

var (
	// ErrChecksFailed is returned when at least one feature combination failed its check.
	ErrChecksFailed = zerr.New("checks failed")

	// ErrNoFeatures is returned when the configuration declares no features at all.
	ErrNoFeatures = zerr.New("no features declared")

	// ErrInvalidConcurrency is returned when the configured concurrency is not positive.
	ErrInvalidConcurrency = zerr.New("concurrency must be positive")

	// ErrCacheCorrupt is returned when the combination cache file cannot be decoded.
	ErrCacheCorrupt = zerr.New("cache file corrupt")

	// ErrBuildFailed is returned when the warm-up build of the project fails.
	ErrBuildFailed = zerr.New("project build failed")

	// ErrCleanFailed is returned when purging build artifacts fails.
	ErrCleanFailed = zerr.New("project clean failed")
)
