package event

import (
	"context"
	"log/slog"

	"braces.dev/errtrace"

	"github.com/ghettovoice/sipevent/internal/grammar"
	"github.com/ghettovoice/sipevent/internal/types"
)

// Subscribe creates an outgoing subscription to the event package of the resource
// and sends the initial SUBSCRIBE.
//
// The returned event is in [SubscriptionStateOutgoingInit] state, the core observer has
// already been notified about it. Transport failures are not returned, they are reported
// later as a transition to [SubscriptionStateTerminated] with a reason set on the event.
// Only invalid arguments make Subscribe fail.
//
// Expires is the subscription duration in seconds. Content may be nil.
// Options are optional and can be nil, in which case default options will be used.
func Subscribe[T any](
	ctx context.Context,
	core Core[T],
	resource Address,
	eventPkg string,
	expires int,
	content *Content,
	opts *Options,
) (*Event[T], error) {
	op, err := newOutgoingOperation(ctx, core, resource, eventPkg, expires)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}

	ev := newEvent(core, op, DirectionOutgoing, eventPkg, opts)
	core.ConfigureOperation(ctx, op, resource, true)

	req := &SubscribeRequest{
		Event:   eventPkg,
		Expires: expires,
		Body:    ev.bodyConv.ToWireBody(content),
	}
	if err := op.Subscribe(ctx, req); err != nil {
		ev.log.LogAttrs(ctx, slog.LevelWarn,
			"failed to send subscribe",
			slog.Any("event", ev),
			slog.Any("resource", resource),
			slog.Any("error", err),
		)
	}

	if err := ev.SetState(ctx, SubscriptionStateOutgoingInit); err != nil {
		// the observer could have already terminated the event
		ev.log.LogAttrs(ctx, slog.LevelDebug,
			"failed to set outgoing init state",
			slog.Any("event", ev),
			slog.Any("error", err),
		)
	}
	return ev, nil
}

func newOutgoingOperation[T any](
	ctx context.Context,
	core Core[T],
	resource Address,
	eventPkg string,
	expires int,
) (Operation, error) {
	if core == nil {
		return nil, errtrace.Wrap(NewInvalidArgumentError("invalid core"))
	}
	if resource == nil {
		return nil, errtrace.Wrap(NewInvalidArgumentError("invalid resource"))
	}
	if err := validateEventPkg(eventPkg); err != nil {
		return nil, errtrace.Wrap(err)
	}
	if expires < 0 {
		return nil, errtrace.Wrap(NewInvalidArgumentError("invalid expires %d", expires))
	}

	op := core.NewOperation(ctx)
	if op == nil {
		return nil, errtrace.Wrap(NewInvalidArgumentError("core returned no operation"))
	}
	return op, nil
}

func validateEventPkg(name string) error {
	if !grammar.IsEventType(name) {
		return errtrace.Wrap(NewInvalidArgumentError("invalid event package %q", name))
	}
	return nil
}

// UpdateSubscribe refreshes an active outgoing subscription with new content.
// The expiration is kept unchanged and the state is not changed.
//
// It fails with [ErrInvalidState] if the subscription is not active and with
// [ErrInvalidDirection] on incoming subscriptions, without any side effect.
func (ev *Event[T]) UpdateSubscribe(ctx context.Context, content *Content) error {
	return errtrace.Wrap(ev.fire(ctx, trgUpdateSubscribe, ev.bodyConv.ToWireBody(content)))
}

func (ev *Event[T]) actUpdateSubscribe(ctx context.Context, args ...any) error {
	body, _ := args[0].(*Body)
	req := &SubscribeRequest{
		Event:   ev.name,
		Expires: ExpiresUnchanged,
		Body:    body,
	}
	if err := ev.op.Subscribe(ctx, req); err != nil {
		return errtrace.Wrap(NewTransportError(err))
	}

	ev.log.LogAttrs(ctx, slog.LevelDebug, "subscription updated", slog.Any("event", ev), slog.Any("body", body))
	return nil
}

// AcceptSubscription accepts a just received subscription.
// The event becomes [SubscriptionStateActive] only if the operation accepted it,
// otherwise the state is left unchanged and the error is returned.
//
// It fails with [ErrInvalidState] unless the event is in [SubscriptionStateIncomingReceived] state.
func (ev *Event[T]) AcceptSubscription(ctx context.Context) error {
	return errtrace.Wrap(ev.fire(ctx, trgAccept))
}

func (ev *Event[T]) actAccept(ctx context.Context, _ ...any) error {
	if err := ev.op.SubscribeAccept(ctx); err != nil {
		return errtrace.Wrap(NewTransportError(err))
	}
	return errtrace.Wrap(ev.fsm.FireCtx(ctx, trgSetState, SubscriptionStateActive))
}

// DenySubscription declines a just received subscription with the reason.
// [ReasonNone] declines with 603 Decline.
// The state is not changed here, the termination is reported by the operation.
//
// It fails with [ErrInvalidState] unless the event is in [SubscriptionStateIncomingReceived] state.
func (ev *Event[T]) DenySubscription(ctx context.Context, reason Reason) error {
	return errtrace.Wrap(ev.fire(ctx, trgDeny, reason))
}

func (ev *Event[T]) actDeny(ctx context.Context, args ...any) error {
	reason, _ := args[0].(Reason)
	sts := reason.ResponseStatus()
	if sts < 300 {
		sts = types.ResponseStatusDecline
	}
	if err := ev.op.SubscribeDecline(ctx, sts); err != nil {
		return errtrace.Wrap(NewTransportError(err))
	}

	ev.log.LogAttrs(ctx, slog.LevelDebug,
		"subscription declined",
		slog.Any("event", ev),
		slog.Any("reason", reason),
		slog.Any("status", sts),
	)
	return nil
}

// Notify sends a NOTIFY with the content to the subscriber.
//
// It fails with [ErrInvalidState] if the subscription is not active and with
// [ErrInvalidDirection] on outgoing subscriptions.
func (ev *Event[T]) Notify(ctx context.Context, content *Content) error {
	return errtrace.Wrap(ev.fire(ctx, trgNotify, ev.bodyConv.ToWireBody(content)))
}

func (ev *Event[T]) actNotify(ctx context.Context, args ...any) error {
	body, _ := args[0].(*Body)
	if err := ev.op.Notify(ctx, body); err != nil {
		return errtrace.Wrap(NewTransportError(err))
	}

	ev.log.LogAttrs(ctx, slog.LevelDebug, "notify sent", slog.Any("event", ev), slog.Any("body", body))
	return nil
}
