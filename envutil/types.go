package envutil

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"
)

var (
	// ErrInvalidLogLevel is returned when a log level name is not recognized.
	ErrInvalidLogLevel = errors.New("invalid log level")

	// ErrNonPositive is returned by Positive for zero or negative values.
	ErrNonPositive = errors.New("value must be positive")
)

type Intish interface {
	int | int8 | int16 | int32 | int64 | time.Duration
}

type Numeric interface {
	Intish | uint | uint8 | uint16 | uint32 | uint64 | float32 | float64
}

// Positive is a validator (see Validate) that rejects zero and negative values.
func Positive[N Numeric](value N) error {
	if value <= 0 {
		return fmt.Errorf("%w: %v", ErrNonPositive, value)
	}

	return nil
}

func parseBool(value string) (bool, error) {
	return strconv.ParseBool(value)
}

func parseInt64(value string) (int64, error) {
	return strconv.ParseInt(value, 10, 64)
}

func parseUint64(value string) (uint64, error) {
	return strconv.ParseUint(value, 10, 64)
}

func castNumeric[A Numeric, B Numeric](value A) (B, error) { //nolint:ireturn
	return B(value), nil
}

func parseSlogLevel(value string) (slog.Level, error) {
	switch value {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidLogLevel, value)
	}
}
