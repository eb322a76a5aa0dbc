package envutil

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestString(t *testing.T) {
	t.Parallel()

	t.Run("override", func(t *testing.T) {
		t.Parallel()

		ctx := WithOverride(t.Context(), "ENVUTIL_TEST_NAME", "tree")

		val, err := String(ctx, "ENVUTIL_TEST_NAME").Value()
		require.NoError(t, err)
		assert.Equal(t, "tree", val)
	})

	t.Run("missing", func(t *testing.T) {
		t.Parallel()

		_, err := String(t.Context(), "ENVUTIL_TEST_DEFINITELY_UNSET").Value()
		require.ErrorIs(t, err, ErrEnvVarMissing)
	})

	t.Run("default", func(t *testing.T) {
		t.Parallel()

		rdr := String(t.Context(), "ENVUTIL_TEST_DEFINITELY_UNSET", Default("fallback"))
		assert.True(t, rdr.HasValue())
		assert.Equal(t, "fallback", rdr.ValueOrElse("other"))
	})
}

func TestLayering(t *testing.T) { //nolint:paralleltest
	t.Setenv("ENVUTIL_TEST_LAYER", "process")

	ctx := WithFileDefaults(context.Background(), map[string]string{
		"ENVUTIL_TEST_LAYER":     "file",
		"ENVUTIL_TEST_FILE_ONLY": "file",
	})

	assert.Equal(t, "process", String(ctx, "ENVUTIL_TEST_LAYER").ValueOrElse(""))
	assert.Equal(t, "file", String(ctx, "ENVUTIL_TEST_FILE_ONLY").ValueOrElse(""))

	ctx = WithOverride(ctx, "ENVUTIL_TEST_LAYER", "override")
	assert.Equal(t, "override", String(ctx, "ENVUTIL_TEST_LAYER").ValueOrElse(""))
}

func TestInt(t *testing.T) {
	t.Parallel()

	t.Run("parses", func(t *testing.T) {
		t.Parallel()

		ctx := WithOverride(t.Context(), "N", "1000")

		val, err := Int[int](ctx, "N").Value()
		require.NoError(t, err)
		assert.Equal(t, 1000, val)
	})

	t.Run("bad value", func(t *testing.T) {
		t.Parallel()

		ctx := WithOverride(t.Context(), "N", "ten")

		rdr := Int[int](ctx, "N", Default(5))
		_, err := rdr.Value()
		require.ErrorIs(t, err, ErrBadEnvVar)
		assert.Equal(t, 5, rdr.ValueOrElse(5))
	})

	t.Run("validation", func(t *testing.T) {
		t.Parallel()

		ctx := WithOverride(t.Context(), "N", "-3")

		_, err := Int[int](ctx, "N", Validate(Positive[int])).Value()
		require.ErrorIs(t, err, ErrNonPositive)
	})

	t.Run("default is validated too", func(t *testing.T) {
		t.Parallel()

		_, err := Int[int](t.Context(), "ENVUTIL_TEST_DEFINITELY_UNSET",
			Default(0), Validate(Positive[int])).Value()
		require.ErrorIs(t, err, ErrNonPositive)
	})
}

func TestUint64(t *testing.T) {
	t.Parallel()

	ctx := WithOverride(t.Context(), "SEED", "18446744073709551615")

	val, err := Uint64(ctx, "SEED").Value()
	require.NoError(t, err)
	assert.Equal(t, uint64(18446744073709551615), val)
}

func TestBool(t *testing.T) {
	t.Parallel()

	ctx := WithOverride(t.Context(), "FLAG", "true")
	assert.True(t, Bool(ctx, "FLAG").ValueOrElse(false))

	ctx = WithOverride(t.Context(), "FLAG", "maybe")
	assert.True(t, Bool(ctx, "FLAG").ValueOrElse(true))
	assert.Error(t, Bool(ctx, "FLAG").Error())
}

func TestSlogLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw      string
		expected slog.Level
		wantErr  bool
	}{
		{raw: "debug", expected: slog.LevelDebug},
		{raw: " WARN ", expected: slog.LevelWarn},
		{raw: "Error", expected: slog.LevelError},
		{raw: "loud", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			t.Parallel()

			ctx := WithOverride(t.Context(), "LOG_LEVEL", tt.raw)

			val, err := SlogLevel(ctx, "LOG_LEVEL").Value()
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidLogLevel)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, val)
		})
	}
}

func TestIfMissing(t *testing.T) {
	t.Parallel()

	_, err := String(t.Context(), "ENVUTIL_TEST_DEFINITELY_UNSET", IfMissing[string](ErrNonPositive)).Value()
	require.ErrorIs(t, err, ErrNonPositive)
}

func TestReader_String(t *testing.T) {
	t.Parallel()

	ctx := WithOverride(t.Context(), "K", "v")

	assert.Equal(t, "K=v", String(ctx, "K").String())
	assert.Equal(t, "ENVUTIL_TEST_DEFINITELY_UNSET=<not set>", String(ctx, "ENVUTIL_TEST_DEFINITELY_UNSET").String())
}
