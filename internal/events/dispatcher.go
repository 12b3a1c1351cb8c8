// Package events dispatches domain events to the handlers subscribed to them.
package events

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

type Event interface {
	Name() string
}

type Handler func(ctx context.Context, event Event) error

// Dispatcher calls every handler subscribed to an event in subscription
// order. A failing handler does not stop the remaining ones.
type Dispatcher struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
	logger   *zap.Logger
}

func NewDispatcher(logger *zap.Logger) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dispatcher{
		handlers: make(map[string][]Handler),
		logger:   logger,
	}
}

func (d *Dispatcher) Subscribe(name string, handler Handler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers[name] = append(d.handlers[name], handler)
}

func (d *Dispatcher) HasSubscribers(name string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.handlers[name]) > 0
}

// Dispatch runs the handlers of event and joins their errors.
func (d *Dispatcher) Dispatch(ctx context.Context, event Event) error {
	d.mu.RLock()
	handlers := append([]Handler(nil), d.handlers[event.Name()]...)
	d.mu.RUnlock()

	var errs []error
	for i, handler := range handlers {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		if err := handler(ctx, event); err != nil {
			d.logger.Error("Event handler failed",
				zap.String("event", event.Name()), zap.Int("handler", i), zap.Error(err))
			errs = append(errs, fmt.Errorf("%s handler %d: %w", event.Name(), i, err))
		}
	}
	return errors.Join(errs...)
}
