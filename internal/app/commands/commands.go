// Package commands gives the shared dispatch registry its write-side verbs.
package commands

import (
	"context"

	"stayops/internal/app/bus"
)

// Command represents a write intent routed through the application bus.
type Command = bus.Message

// Handler processes a command and returns a value (if any).
type Handler[C Command, R any] = bus.Handler[C, R]

// HandlerFunc is an adapter to allow the use of ordinary functions as command handlers.
type HandlerFunc[C Command, R any] = bus.HandlerFunc[C, R]

var (
	ErrHandlerNotFound = bus.ErrHandlerNotFound
	ErrInvalidCommand  = bus.ErrInvalidMessage
	ErrResultType      = bus.ErrResultType
	ErrNilBus          = bus.ErrNilBus
)

// Bus dispatches commands to their registered handlers.
type Bus interface {
	Dispatch(ctx context.Context, cmd Command) (any, error)
}

// InMemoryBus keeps command handlers in process memory.
type InMemoryBus struct {
	bus.InMemory
}

// NewInMemoryBus creates an empty bus instance.
func NewInMemoryBus() *InMemoryBus {
	return &InMemoryBus{InMemory: bus.NewInMemory()}
}

// Dispatch executes the registered handler for the provided command.
func (b *InMemoryBus) Dispatch(ctx context.Context, cmd Command) (any, error) {
	return b.Send(ctx, cmd)
}

// RegisterHandler is a helper to register strongly typed handlers on the in-memory bus.
func RegisterHandler[C Command, R any](b *InMemoryBus, key string, handler Handler[C, R]) {
	if b == nil {
		panic("commands: nil bus")
	}
	bus.Register(&b.InMemory, key, handler)
}

// Dispatch is a helper that performs type-safe command invocation against a bus.
func Dispatch[C Command, R any](ctx context.Context, b Bus, cmd C) (R, error) {
	if b == nil {
		var zero R
		return zero, ErrNilBus
	}
	return bus.TypedResult[R](b.Dispatch(ctx, cmd))
}
