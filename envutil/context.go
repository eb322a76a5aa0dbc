package envutil

import "context"

type envContextKey string

const fileDefaultsKey envContextKey = "\x00file-defaults"

// WithOverride returns a context in which key reads as value, regardless of
// the process environment. Mostly useful in tests, which can then run in parallel.
func WithOverride(ctx context.Context, key string, value string) context.Context {
	return context.WithValue(ctx, envContextKey(key), value)
}

func getOverride(ctx context.Context, key string) (string, bool) {
	if ctx == nil {
		return "", false
	}

	val, ok := ctx.Value(envContextKey(key)).(string)

	return val, ok
}

// WithFileDefaults returns a context in which vars fill in for keys missing
// from the process environment. Later calls shadow earlier ones entirely.
func WithFileDefaults(ctx context.Context, vars map[string]string) context.Context {
	return context.WithValue(ctx, fileDefaultsKey, vars)
}

func getFileDefault(ctx context.Context, key string) (string, bool) {
	if ctx == nil {
		return "", false
	}

	vars, ok := ctx.Value(fileDefaultsKey).(map[string]string)
	if !ok {
		return "", false
	}

	val, ok := vars[key]

	return val, ok
}
