package event

import "context"

// SubscriptionState is a state of the event exchange lifecycle.
type SubscriptionState string

const (
	// SubscriptionStateNone is the initial state. Publications stay in it for their whole life.
	SubscriptionStateNone SubscriptionState = "None"
	// SubscriptionStateOutgoingInit means the SUBSCRIBE was sent and the first response is awaited.
	SubscriptionStateOutgoingInit SubscriptionState = "OutgoingInit"
	// SubscriptionStateIncomingReceived means a SUBSCRIBE was received and awaits accept or deny.
	SubscriptionStateIncomingReceived SubscriptionState = "IncomingReceived"
	SubscriptionStatePending          SubscriptionState = "Pending"
	SubscriptionStateActive           SubscriptionState = "Active"
	SubscriptionStateTerminated       SubscriptionState = "Terminated"
)

func (s SubscriptionState) IsValid() bool {
	switch s {
	case SubscriptionStateNone,
		SubscriptionStateOutgoingInit,
		SubscriptionStateIncomingReceived,
		SubscriptionStatePending,
		SubscriptionStateActive,
		SubscriptionStateTerminated:
		return true
	default:
		return false
	}
}

func (s SubscriptionState) String() string { return string(s) }

// SubscriptionStateHandler is called when the event subscription state changes.
type SubscriptionStateHandler[T any] = func(ctx context.Context, ev *Event[T], from, to SubscriptionState)

// SubscribeStatus is the coarse subscription status reported by the transaction layer,
// e.g. from the Subscription-State header of a NOTIFY (RFC 3265 Section 3.2.4).
type SubscribeStatus string

const (
	SubscribeStatusNone       SubscribeStatus = "none"
	SubscribeStatusPending    SubscribeStatus = "pending"
	SubscribeStatusActive     SubscribeStatus = "active"
	SubscribeStatusTerminated SubscribeStatus = "terminated"
)

// SubscriptionStateFromStatus maps a transaction layer status to the subscription state.
// Unknown statuses map to [SubscriptionStateNone].
// The transient states [SubscriptionStateOutgoingInit] and [SubscriptionStateIncomingReceived]
// are never returned, they are set explicitly by the event itself.
func SubscriptionStateFromStatus(ss SubscribeStatus) SubscriptionState {
	switch ss {
	case SubscribeStatusPending:
		return SubscriptionStatePending
	case SubscribeStatusActive:
		return SubscriptionStateActive
	case SubscribeStatusTerminated:
		return SubscriptionStateTerminated
	default:
		return SubscriptionStateNone
	}
}
