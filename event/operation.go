package event

//go:generate go tool mockgen -destination=../internal/testutil/opmock/operation.go -package=opmock . Operation

import "context"

// ExpiresUnchanged tells the operation to keep the expiration it already uses.
const ExpiresUnchanged = -1

// Address is a SIP address of a resource. It is opaque to the event and
// only handed over to the [Core] to set up operations.
type Address interface {
	String() string
}

// SubscribeRequest describes a SUBSCRIBE intent.
type SubscribeRequest struct {
	// From and To override the addresses configured on the operation when not nil.
	From, To Address
	// Event is the event package name, e.g. "presence".
	Event string
	// Expires is the subscription duration in seconds or [ExpiresUnchanged].
	Expires int
	Body    *Body
}

// PublishRequest describes a PUBLISH intent.
type PublishRequest struct {
	// From and To override the addresses configured on the operation when not nil.
	From, To Address
	// Event is the event package name, e.g. "presence".
	Event string
	// Expires is the publication duration in seconds or [ExpiresUnchanged].
	Expires int
	Body    *Body
}

// Operation is a signaling operation that carries requests and responses of one
// SUBSCRIBE/NOTIFY or PUBLISH relationship. Message construction, retransmissions and
// dialog matching are its responsibility.
//
// An operation is exclusively owned by one [Event] and released by it exactly once.
type Operation interface {
	// SetUserData attaches an opaque value, the owning event, to the operation
	// so that the incoming request path can find the event back.
	SetUserData(v any)
	// Subscribe sends a SUBSCRIBE, either initial or refreshing.
	Subscribe(ctx context.Context, req *SubscribeRequest) error
	// SubscribeAccept accepts a received SUBSCRIBE.
	SubscribeAccept(ctx context.Context) error
	// SubscribeDecline declines a received SUBSCRIBE with the given final status.
	SubscribeDecline(ctx context.Context, sts ResponseStatus) error
	// Notify sends a NOTIFY with the body.
	Notify(ctx context.Context, body *Body) error
	// NotifyClose sends a final NOTIFY that terminates the subscription.
	NotifyClose(ctx context.Context) error
	// Unsubscribe sends a SUBSCRIBE with zero expiration.
	Unsubscribe(ctx context.Context) error
	// Publish sends a PUBLISH, either initial or refreshing.
	Publish(ctx context.Context, req *PublishRequest) error
	// Release frees the operation resources. The operation is not used afterward.
	Release()
}
