// Package event implements the lifecycle of SIP event package exchanges:
// SUBSCRIBE/NOTIFY subscriptions as defined in RFC 3265 and PUBLISH publications
// as defined in RFC 3903.
//
// An [Event] decides which operations are legal at any point of the exchange,
// forwards them to its signaling [Operation] and reports every state change
// to the [Core] that hosts it. Message construction, retransmissions and dialog
// matching belong to the operation; the event only tracks the exchange state.
//
// Outgoing subscriptions are created with [Subscribe], publications with [Publish].
// Subscriptions received from the network are wrapped with [NewIncomingEvent]:
//
//	ev, err := event.NewIncomingEvent[*Presentity](core, op, "presence", nil)
//	if err != nil {
//		return err
//	}
//	if err := ev.SetState(ctx, event.SubscriptionStateIncomingReceived); err != nil {
//		return err
//	}
//	if err := ev.AcceptSubscription(ctx); err != nil {
//		return err
//	}
//	return ev.Notify(ctx, &event.Content{Type: "application", Subtype: "pidf+xml", Data: doc})
package event
