// Package bus holds the generic keyed-dispatch machinery shared by the
// command and query sides of the application layer.
package bus

import (
	"context"
	"errors"
	"fmt"
)

// Message is anything routable through a registry by key.
type Message interface {
	Key() string
}

// Handler processes a message and returns a value (if any).
type Handler[M Message, R any] interface {
	Handle(ctx context.Context, msg M) (R, error)
}

// HandlerFunc is an adapter to allow the use of ordinary functions as handlers.
type HandlerFunc[M Message, R any] func(ctx context.Context, msg M) (R, error)

// Handle calls f(ctx, msg).
func (f HandlerFunc[M, R]) Handle(ctx context.Context, msg M) (R, error) {
	return f(ctx, msg)
}

var (
	ErrHandlerNotFound = errors.New("bus: handler not found")
	ErrInvalidMessage  = errors.New("bus: invalid message for handler")
	ErrResultType      = errors.New("bus: result type mismatch")
	ErrNilBus          = errors.New("bus: nil bus")
)

// RawHandler is the untyped form handlers are stored in.
type RawHandler func(ctx context.Context, msg Message) (any, error)

// InMemory is a simple registry-backed dispatcher kept in process memory.
type InMemory struct {
	handlers map[string]RawHandler
}

func NewInMemory() InMemory {
	return InMemory{handlers: make(map[string]RawHandler)}
}

// RegisterRaw attaches a raw handler function to the provided message key.
func (b *InMemory) RegisterRaw(key string, handler RawHandler) {
	if key == "" {
		panic("bus: empty key registration")
	}
	if b.handlers == nil {
		b.handlers = make(map[string]RawHandler)
	}
	b.handlers[key] = handler
}

// Send executes the registered handler for the provided message.
func (b *InMemory) Send(ctx context.Context, msg Message) (any, error) {
	h, ok := b.handlers[msg.Key()]
	if !ok {
		return nil, ErrHandlerNotFound
	}
	return h(ctx, msg)
}

// Register attaches a strongly typed handler under the given key.
func Register[M Message, R any](b *InMemory, key string, handler Handler[M, R]) {
	if b == nil {
		panic("bus: nil bus")
	}
	b.RegisterRaw(key, func(ctx context.Context, raw Message) (any, error) {
		msg, ok := raw.(M)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrInvalidMessage, key)
		}
		return handler.Handle(ctx, msg)
	})
}

// TypedResult narrows a raw dispatch result to the caller's expected type.
func TypedResult[R any](res any, err error) (R, error) {
	var zero R
	if err != nil {
		return zero, err
	}
	if res == nil {
		return zero, nil
	}
	value, ok := res.(R)
	if !ok {
		return zero, ErrResultType
	}
	return value, nil
}
