// Package shutdown turns SIGINT/SIGTERM into context cancellation and runs
// registered cleanup hooks first.
package shutdown

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

var (
	mut     sync.Mutex     //nolint:gochecknoglobals
	hooks   []func()       //nolint:gochecknoglobals
	trigger chan os.Signal //nolint:gochecknoglobals
)

// BeforeShutdown registers a function to run when shutdown begins, before
// the context returned by SetupHandler is canceled. Hooks run in
// registration order.
func BeforeShutdown(h func()) {
	mut.Lock()
	defer mut.Unlock()

	hooks = append(hooks, h)
}

// Shutdown starts the shutdown process as if a SIGINT had arrived.
// It does nothing if no handler is installed or shutdown already began.
func Shutdown() {
	mut.Lock()
	ch := trigger
	mut.Unlock()

	if ch == nil {
		return
	}

	select {
	case ch <- os.Interrupt:
	default:
	}
}

// SetupHandler installs the signal handler and returns a context derived from
// parent that is canceled, after the hooks have run, on the first SIGINT or
// SIGTERM (or call to Shutdown).
func SetupHandler(parent context.Context) context.Context {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)

	mut.Lock()
	trigger = ch
	mut.Unlock()

	ctx, cancel := context.WithCancel(parent)

	go func() {
		sig := <-ch

		signal.Stop(ch)

		mut.Lock()
		trigger = nil
		mut.Unlock()

		slog.Warn("Received " + sig.String() + ", shutting down...")

		cleanup()
		cancel()
	}()

	return ctx
}

func cleanup() {
	mut.Lock()
	pending := hooks
	hooks = nil
	mut.Unlock()

	for _, h := range pending {
		h()
	}
}
