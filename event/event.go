package event

import (
	"context"
	"log/slog"

	"braces.dev/errtrace"

	"github.com/ghettovoice/sipevent/internal/types"
)

// Event is a SUBSCRIBE/NOTIFY or PUBLISH exchange (RFC 3265, RFC 3903).
//
// Event tracks the exchange state and allows only the operations that are legal
// in the current state and direction. State changes are reported synchronously to the
// [Core] and to handlers bound with [Event.OnStateChanged].
//
// T is the type of the caller payload attached to the event, it is opaque to the event.
//
// Event is not safe for concurrent use, the core serializes all interaction with its events.
type Event[T any] struct {
	core   Core[T]
	op     Operation
	dir    Direction
	name   string
	state  SubscriptionState
	reason Reason
	data   T

	fsm            *eventFSM
	bodyConv       BodyConverter
	log            *slog.Logger
	onStateChanged types.CallbackManager[SubscriptionStateHandler[T]]

	terminating bool
	released    bool
}

func newEvent[T any](core Core[T], op Operation, dir Direction, name string, opts *Options) *Event[T] {
	ev := &Event[T]{
		core:     core,
		op:       op,
		dir:      dir,
		name:     name,
		state:    SubscriptionStateNone,
		bodyConv: opts.bodyConverter(),
		log:      opts.log(),
	}
	ev.initFSM()
	op.SetUserData(ev)
	return ev
}

// NewIncomingEvent wraps an operation created by the incoming request path for a received SUBSCRIBE.
//
// The event direction is always [DirectionIncoming] and its state is [SubscriptionStateNone].
// The caller moves the event to [SubscriptionStateIncomingReceived] with [Event.SetState]
// once it recognized the new subscription.
// Options are optional and can be nil, in which case default options will be used.
func NewIncomingEvent[T any](core Core[T], op Operation, eventPkg string, opts *Options) (*Event[T], error) {
	if core == nil {
		return nil, errtrace.Wrap(NewInvalidArgumentError("invalid core"))
	}
	if op == nil {
		return nil, errtrace.Wrap(NewInvalidArgumentError("invalid operation"))
	}
	if err := validateEventPkg(eventPkg); err != nil {
		return nil, errtrace.Wrap(err)
	}

	ev := newEvent(core, op, DirectionIncoming, eventPkg, opts)
	ev.log.LogAttrs(context.Background(), slog.LevelDebug, "incoming event created", slog.Any("event", ev))
	return ev, nil
}

// LogValue implements [slog.LogValuer].
func (ev *Event[T]) LogValue() slog.Value {
	if ev == nil {
		return slog.Value{}
	}
	return slog.GroupValue(
		slog.String("name", ev.name),
		slog.Any("direction", ev.dir),
		slog.Any("state", ev.state),
		slog.Any("reason", ev.reason),
	)
}

// Direction returns the event direction. It never changes.
func (ev *Event[T]) Direction() Direction { return ev.dir }

// Name returns the event package name, e.g. "presence".
func (ev *Event[T]) Name() string { return ev.name }

// State returns the current subscription state.
func (ev *Event[T]) State() SubscriptionState { return ev.state }

// Reason returns the reason of the last failure or decline, [ReasonNone] by default.
func (ev *Event[T]) Reason() Reason { return ev.reason }

// SetReason stores the reason of a failure or decline. It does not change the state.
func (ev *Event[T]) SetReason(r Reason) { ev.reason = r }

// Data returns the caller payload.
func (ev *Event[T]) Data() T { return ev.data }

// SetData replaces the caller payload.
func (ev *Event[T]) SetData(v T) { ev.data = v }

// Operation returns the signaling operation owned by the event or nil after the event was released.
func (ev *Event[T]) Operation() Operation {
	if ev.released {
		return nil
	}
	return ev.op
}

// IsReleased reports whether the event was terminated or destroyed.
func (ev *Event[T]) IsReleased() bool { return ev.released }

// OnStateChanged binds a callback to be called when the subscription state changes.
// Callbacks run after the core observer.
// The callback can be unbound by calling the returned unbind function.
func (ev *Event[T]) OnStateChanged(fn SubscriptionStateHandler[T]) (unbind func()) {
	return ev.onStateChanged.Add(fn)
}

// SetState moves the event to the new state and notifies the observers.
//
// Setting the current state again is a no-op.
// [SubscriptionStateNone] can not be set and a terminated event never changes its state again.
// Observers are called synchronously after the state is stored and may call back into the event.
func (ev *Event[T]) SetState(ctx context.Context, st SubscriptionState) error {
	if ev.released {
		return errtrace.Wrap(ErrEventReleased)
	}
	if !st.IsValid() || st == SubscriptionStateNone {
		return errtrace.Wrap(NewInvalidArgumentError("invalid subscription state %q", st))
	}
	if st == ev.state {
		return nil
	}
	return errtrace.Wrap(ev.fsm.FireCtx(ctx, trgSetState, st))
}

func (ev *Event[T]) stateChanged(ctx context.Context, from, to SubscriptionState) {
	ev.log.LogAttrs(ctx, slog.LevelDebug,
		"event state changed",
		slog.Any("event", ev),
		slog.Any("from", from),
		slog.Any("to", to),
	)

	ev.core.OnSubscriptionStateChanged(ctx, ev, to)

	for fn := range ev.onStateChanged.All() {
		// the core or a previous handler may have already moved the event further
		if ev.state != to {
			return
		}
		fn(ctx, ev, from, to)
	}
}

// Terminate closes the exchange and releases the event.
//
// An incoming subscription is closed with a final NOTIFY, an outgoing one with
// an unsubscribe; publications have nothing to close.
// If the event has ever left [SubscriptionStateNone], it is moved to
// [SubscriptionStateTerminated] before the release.
// The event must not be used after Terminate. A closing error is returned wrapped with
// [ErrTransportFailure], the event is released anyway.
func (ev *Event[T]) Terminate(ctx context.Context) error {
	if ev.released {
		return errtrace.Wrap(ErrEventReleased)
	}
	if ev.terminating {
		return nil
	}
	ev.terminating = true

	var err error
	switch ev.dir {
	case DirectionIncoming:
		err = ev.op.NotifyClose(ctx)
	case DirectionOutgoing:
		err = ev.op.Unsubscribe(ctx)
	}
	if err != nil {
		err = NewTransportError(err)
		ev.log.LogAttrs(ctx, slog.LevelWarn,
			"failed to close event exchange",
			slog.Any("event", ev),
			slog.Any("error", err),
		)
	}

	if ev.state != SubscriptionStateNone && ev.state != SubscriptionStateTerminated {
		if err := ev.fsm.FireCtx(ctx, trgSetState, SubscriptionStateTerminated); err != nil {
			ev.log.LogAttrs(ctx, slog.LevelWarn,
				"failed to set terminated state",
				slog.Any("event", ev),
				slog.Any("error", err),
			)
		}
	}

	ev.Destroy()
	return errtrace.Wrap(err)
}

// Destroy releases the signaling operation without closing the exchange and
// without any state notification. It is safe to call Destroy multiple times.
func (ev *Event[T]) Destroy() {
	if ev.released {
		return
	}
	ev.released = true
	ev.op.Release()
	ev.onStateChanged.Clear()

	ev.log.LogAttrs(context.Background(), slog.LevelDebug, "event released", slog.Any("event", ev))
}
