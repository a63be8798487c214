package event

import (
	"context"
	"fmt"
	"log/slog"
	"reflect"

	"braces.dev/errtrace"
	"github.com/qmuntal/stateless"
)

type eventFSM = stateless.StateMachine

const (
	trgSetState        = "set_state"
	trgAccept          = "accept"
	trgDeny            = "deny"
	trgNotify          = "notify"
	trgUpdateSubscribe = "update_subscribe"
	trgUpdatePublish   = "update_publish"
)

// initFSM builds the table of operations allowed per state.
// The machine stores its state directly in the event and fires in immediate mode,
// so observers can call back into the event from inside a transition.
func (ev *Event[T]) initFSM() {
	ev.fsm = stateless.NewStateMachineWithExternalStorage(
		func(context.Context) (stateless.State, error) {
			return ev.state, nil
		},
		func(_ context.Context, st stateless.State) error {
			ev.state = st.(SubscriptionState) //nolint:forcetypeassert
			return nil
		},
		stateless.FiringImmediate,
	)
	ev.fsm.SetTriggerParameters(trgSetState, reflect.TypeOf(SubscriptionStateNone))
	ev.fsm.OnUnhandledTrigger(ev.unhandledTrigger)
	ev.fsm.OnTransitioned(ev.transitioned)

	for _, st := range []SubscriptionState{
		SubscriptionStateNone,
		SubscriptionStateOutgoingInit,
		SubscriptionStateIncomingReceived,
		SubscriptionStatePending,
		SubscriptionStateActive,
	} {
		ev.fsm.Configure(st).
			PermitDynamic(trgSetState, selectState).
			InternalTransition(trgUpdatePublish, ev.actUpdatePublish, ev.isPublication)
	}

	ev.fsm.Configure(SubscriptionStateIncomingReceived).
		InternalTransition(trgAccept, ev.actAccept).
		InternalTransition(trgDeny, ev.actDeny)

	ev.fsm.Configure(SubscriptionStateActive).
		InternalTransition(trgNotify, ev.actNotify, ev.isIncoming).
		InternalTransition(trgUpdateSubscribe, ev.actUpdateSubscribe, ev.isOutgoing)

	// terminal, nothing is permitted
	ev.fsm.Configure(SubscriptionStateTerminated)
}

func selectState(_ context.Context, args ...any) (stateless.State, error) {
	return args[0].(SubscriptionState), nil //nolint:forcetypeassert
}

func (ev *Event[T]) isIncoming(context.Context, ...any) bool { return ev.dir == DirectionIncoming }

func (ev *Event[T]) isOutgoing(context.Context, ...any) bool { return ev.dir == DirectionOutgoing }

func (ev *Event[T]) isPublication(context.Context, ...any) bool { return ev.dir == DirectionInvalid }

func (ev *Event[T]) transitioned(ctx context.Context, tr stateless.Transition) {
	from, _ := tr.Source.(SubscriptionState)
	to, _ := tr.Destination.(SubscriptionState)
	if from == to {
		return
	}
	ev.stateChanged(ctx, from, to)
}

func (ev *Event[T]) unhandledTrigger(
	ctx context.Context,
	st stateless.State,
	trg stateless.Trigger,
	unmetGuards []string,
) error {
	var err error
	if len(unmetGuards) > 0 {
		// guards only check the direction
		err = NewInvalidDirectionError(fmt.Sprintf("%v is not allowed for %v event", trg, ev.dir))
	} else {
		err = NewInvalidStateError(fmt.Sprintf("%v is not allowed in state %v", trg, st))
	}

	ev.log.LogAttrs(ctx, slog.LevelWarn,
		"event operation rejected",
		slog.Any("event", ev),
		slog.Any("trigger", trg),
		slog.Any("error", err),
	)
	return errtrace.Wrap(err)
}

// fire runs a gated operation.
func (ev *Event[T]) fire(ctx context.Context, trg string, args ...any) error {
	if ev.released {
		return errtrace.Wrap(ErrEventReleased)
	}
	return errtrace.Wrap(ev.fsm.FireCtx(ctx, trg, args...))
}
