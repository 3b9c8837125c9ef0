// Package queries gives the shared dispatch registry its read-side verbs.
package queries

import (
	"context"

	"stayops/internal/app/bus"
)

// Query is a read request.
type Query = bus.Message

// Handler handles a query and produces a result.
type Handler[Q Query, R any] = bus.Handler[Q, R]

// HandlerFunc is a helper to use functions as handlers.
type HandlerFunc[Q Query, R any] = bus.HandlerFunc[Q, R]

var (
	ErrHandlerNotFound = bus.ErrHandlerNotFound
	ErrInvalidQuery    = bus.ErrInvalidMessage
	ErrResultType      = bus.ErrResultType
	ErrNilBus          = bus.ErrNilBus
)

// Bus routes queries to registered handlers.
type Bus interface {
	Ask(ctx context.Context, query Query) (any, error)
}

// InMemoryBus keeps query handlers in process memory.
type InMemoryBus struct {
	bus.InMemory
}

func NewInMemoryBus() *InMemoryBus {
	return &InMemoryBus{InMemory: bus.NewInMemory()}
}

// Ask executes the registered handler for the provided query.
func (b *InMemoryBus) Ask(ctx context.Context, query Query) (any, error) {
	return b.Send(ctx, query)
}

func RegisterHandler[Q Query, R any](b *InMemoryBus, key string, handler Handler[Q, R]) {
	if b == nil {
		panic("queries: nil bus")
	}
	bus.Register(&b.InMemory, key, handler)
}

// Ask runs the query through the provided bus, returning a typed result.
func Ask[Q Query, R any](ctx context.Context, b Bus, query Q) (R, error) {
	if b == nil {
		var zero R
		return zero, ErrNilBus
	}
	return bus.TypedResult[R](b.Ask(ctx, query))
}
