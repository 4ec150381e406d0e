// Package shutdown provides graceful shutdown handling.
package shutdown

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"
)

// Handler runs a long-lived task until a termination signal arrives, then
// runs the registered cleanup hooks.
type Handler struct {
	timeout time.Duration
	signals []os.Signal
	hooks   []func(context.Context) error
	mu      sync.Mutex
	done    chan struct{}
}

// NewHandler creates a new shutdown handler that reacts to SIGINT and
// SIGTERM. timeout bounds the time given to hooks.
func NewHandler(timeout time.Duration) *Handler {
	return &Handler{
		timeout: timeout,
		signals: []os.Signal{syscall.SIGINT, syscall.SIGTERM},
		hooks:   make([]func(context.Context) error, 0),
		done:    make(chan struct{}),
	}
}

// OnShutdown registers a shutdown hook.
// Hooks are called in reverse order of registration.
func (h *Handler) OnShutdown(hook func(context.Context) error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.hooks = append(h.hooks, hook)
}

// Run calls task with a context that is cancelled when a termination signal
// arrives or parent is done. Once task returns, the hooks run and Done is
// closed. The task error takes precedence over hook errors.
func (h *Handler) Run(parent context.Context, task func(context.Context) error) error {
	ctx, stop := signal.NotifyContext(parent, h.signals...)
	defer stop()

	taskErr := task(ctx)
	hookErr := h.runHooks()

	close(h.done)
	if taskErr != nil {
		return taskErr
	}
	return hookErr
}

func (h *Handler) runHooks() error {
	ctx, cancel := context.WithTimeout(context.Background(), h.timeout)
	defer cancel()

	h.mu.Lock()
	hooks := make([]func(context.Context) error, len(h.hooks))
	copy(hooks, h.hooks)
	h.mu.Unlock()

	var errs []error
	for i := len(hooks) - 1; i >= 0; i-- {
		if err := hooks[i](ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Done returns a channel that closes when shutdown is complete.
func (h *Handler) Done() <-chan struct{} {
	return h.done
}
