package logger

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

// AnnotateError attaches slog key-value pairs to err. When the error is later
// logged through a logger set up by ConfigureLoggingWithOptions, the pairs are
// lifted out of the error and written as ordinary attributes:
//
//	if err := verify.Check(in, out, cmp); err != nil {
//	    return logger.AnnotateError(err, "size", len(in), "trial", n)
//	}
//
// Returns nil if err is nil.
func AnnotateError(err error, args ...any) error {
	if err == nil {
		return nil
	}

	r := slog.NewRecord(time.Now(), slog.LevelDebug, "", 0)
	r.Add(args...)

	var attrs []slog.Attr

	r.Attrs(func(attr slog.Attr) bool {
		attrs = append(attrs, attr)

		return true
	})

	return &annotatedError{err: err, attrs: attrs}
}

// annotatedError is transparent to errors.Is and errors.As.
type annotatedError struct {
	err   error
	attrs []slog.Attr
}

func (a *annotatedError) Error() string {
	return a.err.Error()
}

func (a *annotatedError) Unwrap() error {
	return a.err
}

// annotationHandler wraps another handler and expands annotated errors found
// among a record's attributes.
type annotationHandler struct {
	inner slog.Handler
}

var _ slog.Handler = (*annotationHandler)(nil)

func (h *annotationHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

func (h *annotationHandler) Handle(ctx context.Context, record slog.Record) error {
	var (
		attrs    []slog.Attr
		extra    []slog.Attr
		expanded bool
	)

	record.Attrs(func(attr slog.Attr) bool {
		attrs = append(attrs, attr)

		var ae *annotatedError

		if err, ok := attr.Value.Any().(error); ok && errors.As(err, &ae) {
			expanded = true
			extra = append(extra, ae.attrs...)
		}

		return true
	})

	if !expanded {
		return h.inner.Handle(ctx, record)
	}

	r := slog.NewRecord(record.Time, record.Level, record.Message, record.PC)
	r.AddAttrs(attrs...)
	r.AddAttrs(extra...)

	return h.inner.Handle(ctx, r)
}

func (h *annotationHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &annotationHandler{inner: h.inner.WithAttrs(attrs)}
}

func (h *annotationHandler) WithGroup(name string) slog.Handler {
	return &annotationHandler{inner: h.inner.WithGroup(name)}
}
