// Package shutdown runs ordered cleanup hooks when the server stops.
package shutdown

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"sync"
	"syscall"
	"time"
)

var (
	ErrShutdownTimeout = errors.New("shutdown timed out")
	ErrAlreadyClosed   = errors.New("shutdown handler already closed")
)

// Hook priorities. Lower runs earlier.
const (
	PriorityHTTP      = 100
	PriorityDevReload = 200
	PriorityTracing   = 300
	PriorityLogging   = 1000
)

// Hook is one cleanup step.
type Hook struct {
	Name     string
	Priority int
	Fn       func(ctx context.Context) error
}

// Config configures a Handler.
type Config struct {
	// Timeout bounds the whole shutdown sequence.
	Timeout time.Duration
	// Signals that trigger shutdown in Wait.
	Signals []os.Signal
	// OnHookComplete is called after each hook.
	OnHookComplete func(name string, err error, duration time.Duration)
}

// DefaultConfig returns a 10s timeout on SIGINT and SIGTERM.
func DefaultConfig() Config {
	return Config{
		Timeout: 10 * time.Second,
		Signals: []os.Signal{os.Interrupt, syscall.SIGTERM},
	}
}

// Handler runs registered hooks once, in priority order.
type Handler struct {
	config Config
	hooks  []Hook
	done   chan struct{}
	closed bool
	mu     sync.Mutex
}

// NewHandler creates a shutdown handler. Zero fields take DefaultConfig values.
func NewHandler(config Config) *Handler {
	def := DefaultConfig()
	if config.Timeout <= 0 {
		config.Timeout = def.Timeout
	}
	if len(config.Signals) == 0 {
		config.Signals = def.Signals
	}
	return &Handler{config: config, done: make(chan struct{})}
}

// Register adds a hook.
func (h *Handler) Register(hook Hook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.hooks = append(h.hooks, hook)
}

func (h *Handler) RegisterFunc(name string, priority int, fn func(ctx context.Context) error) {
	h.Register(Hook{Name: name, Priority: priority, Fn: fn})
}

// Wait blocks until a signal arrives or ctx is cancelled, then runs Shutdown.
// It returns nil without running hooks if Shutdown already ran.
func (h *Handler) Wait(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, h.config.Signals...)
	defer stop()

	select {
	case <-ctx.Done():
	case <-h.done:
		return nil
	}
	return h.Shutdown()
}

// Shutdown runs every hook in priority order. Hooks keep running after one
// fails; all errors are joined.
func (h *Handler) Shutdown() error {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return ErrAlreadyClosed
	}
	h.closed = true
	close(h.done)
	hooks := make([]Hook, len(h.hooks))
	copy(hooks, h.hooks)
	h.mu.Unlock()

	sort.SliceStable(hooks, func(i, j int) bool {
		return hooks[i].Priority < hooks[j].Priority
	})

	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout)
	defer cancel()

	var errs []error
	for _, hook := range hooks {
		start := time.Now()
		err := hook.Fn(ctx)
		if h.config.OnHookComplete != nil {
			h.config.OnHookComplete(hook.Name, err, time.Since(start))
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", hook.Name, err))
		}

		if ctx.Err() != nil {
			return errors.Join(append(errs, ErrShutdownTimeout)...)
		}
	}
	return errors.Join(errs...)
}

// Done is closed once Shutdown starts.
func (h *Handler) Done() <-chan struct{} {
	return h.done
}

// CloseableHook wraps anything with a Close method.
func CloseableHook(name string, priority int, closer interface{ Close() error }) Hook {
	return Hook{
		Name:     name,
		Priority: priority,
		Fn:       func(context.Context) error { return closer.Close() },
	}
}
