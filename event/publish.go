package event

import (
	"context"
	"log/slog"

	"braces.dev/errtrace"
)

// Publish creates a publication of the event package state for the resource
// and sends the initial PUBLISH.
//
// Publications have no direction ([DirectionInvalid]) and stay in [SubscriptionStateNone],
// their outcome is tracked by the caller through the operation own signals.
// Transport failures are not returned, only invalid arguments make Publish fail.
//
// Expires is the publication duration in seconds. Content may be nil.
// Options are optional and can be nil, in which case default options will be used.
func Publish[T any](
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

	ev := newEvent(core, op, DirectionInvalid, eventPkg, opts)
	core.ConfigureOperation(ctx, op, resource, false)

	req := &PublishRequest{
		Event:   eventPkg,
		Expires: expires,
		Body:    ev.bodyConv.ToWireBody(content),
	}
	if err := op.Publish(ctx, req); err != nil {
		ev.log.LogAttrs(ctx, slog.LevelWarn,
			"failed to send publish",
			slog.Any("event", ev),
			slog.Any("resource", resource),
			slog.Any("error", err),
		)
	} else {
		ev.log.LogAttrs(ctx, slog.LevelDebug, "publish sent", slog.Any("event", ev), slog.Any("body", req.Body))
	}
	return ev, nil
}

// UpdatePublish refreshes the publication with new content, the expiration is kept unchanged.
//
// It fails with [ErrInvalidDirection] on subscription events and with
// [ErrInvalidState] on terminated ones.
func (ev *Event[T]) UpdatePublish(ctx context.Context, content *Content) error {
	return errtrace.Wrap(ev.fire(ctx, trgUpdatePublish, ev.bodyConv.ToWireBody(content)))
}

func (ev *Event[T]) actUpdatePublish(ctx context.Context, args ...any) error {
	body, _ := args[0].(*Body)
	req := &PublishRequest{
		Event:   ev.name,
		Expires: ExpiresUnchanged,
		Body:    body,
	}
	if err := ev.op.Publish(ctx, req); err != nil {
		return errtrace.Wrap(NewTransportError(err))
	}

	ev.log.LogAttrs(ctx, slog.LevelDebug, "publication updated", slog.Any("event", ev), slog.Any("body", body))
	return nil
}
