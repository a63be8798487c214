package event

import "context"

// Core hosts events. It creates and prepares signaling operations
// and observes subscription state changes.
type Core[T any] interface {
	// NewOperation creates a new signaling operation.
	NewOperation(ctx context.Context) Operation
	// ConfigureOperation prepares the operation to target the resource.
	// withContact is true for dialog-creating requests (SUBSCRIBE), false for PUBLISH.
	ConfigureOperation(ctx context.Context, op Operation, resource Address, withContact bool)
	// OnSubscriptionStateChanged is called synchronously each time the event state changes,
	// after the new state has been stored on the event.
	// The callback may call back into the event, including [Event.Terminate].
	OnSubscriptionStateChanged(ctx context.Context, ev *Event[T], state SubscriptionState)
}

// CoreFuncs is an adapter to build a [Core] from functions.
// Nil functions are skipped, a nil NewOperationFunc yields no operation.
type CoreFuncs[T any] struct {
	NewOperationFunc               func(ctx context.Context) Operation
	ConfigureOperationFunc         func(ctx context.Context, op Operation, resource Address, withContact bool)
	OnSubscriptionStateChangedFunc func(ctx context.Context, ev *Event[T], state SubscriptionState)
}

func (c *CoreFuncs[T]) NewOperation(ctx context.Context) Operation {
	if c == nil || c.NewOperationFunc == nil {
		return nil
	}
	return c.NewOperationFunc(ctx)
}

func (c *CoreFuncs[T]) ConfigureOperation(ctx context.Context, op Operation, resource Address, withContact bool) {
	if c == nil || c.ConfigureOperationFunc == nil {
		return
	}
	c.ConfigureOperationFunc(ctx, op, resource, withContact)
}

func (c *CoreFuncs[T]) OnSubscriptionStateChanged(ctx context.Context, ev *Event[T], state SubscriptionState) {
	if c == nil || c.OnSubscriptionStateChangedFunc == nil {
		return
	}
	c.OnSubscriptionStateChangedFunc(ctx, ev, state)
}
