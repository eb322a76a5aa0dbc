// Package envutil reads typed configuration values from the environment.
//
// Every reader takes a context. Values attached to the context with
// WithOverride take priority over the process environment, and values loaded
// from a config file with WithFileDefaults sit underneath it:
//
//	override (context) > process environment > config file > Default option
package envutil

import (
	"context"
	"log/slog"
	"os"
	"strings"
)

// get returns a Reader for the given key, resolved through the context layers.
func get(ctx context.Context, key string) Reader[string] {
	if val, ok := getOverride(ctx, key); ok {
		return Reader[string]{key: key, present: true, value: val}
	}

	if val, ok := os.LookupEnv(key); ok {
		return Reader[string]{key: key, present: true, value: val}
	}

	if val, ok := getFileDefault(ctx, key); ok {
		return Reader[string]{key: key, present: true, value: val}
	}

	return Reader[string]{key: key}
}

func apply[T any](rdr Reader[T], opts []Option[T]) Reader[T] {
	for _, opt := range opts {
		rdr = opt(rdr)
	}

	return rdr
}

// String returns a Reader for the given key.
func String(ctx context.Context, key string, opts ...Option[string]) Reader[string] {
	return apply(get(ctx, key), opts)
}

func Bool(ctx context.Context, key string, opts ...Option[bool]) Reader[bool] {
	return apply(Map(get(ctx, key), parseBool), opts)
}

func Int[I Intish](ctx context.Context, key string, opts ...Option[I]) Reader[I] {
	return apply(Map(Map(get(ctx, key), parseInt64), castNumeric[int64, I]), opts)
}

func Uint64(ctx context.Context, key string, opts ...Option[uint64]) Reader[uint64] {
	return apply(Map(get(ctx, key), parseUint64), opts)
}

// SlogLevel reads a log level name (debug, info, warn, error), ignoring case
// and surrounding whitespace.
func SlogLevel(ctx context.Context, key string, opts ...Option[slog.Level]) Reader[slog.Level] {
	rdr := Map(get(ctx, key), func(s string) (string, error) {
		return strings.ToLower(strings.TrimSpace(s)), nil
	})

	return apply(Map(rdr, parseSlogLevel), opts)
}
