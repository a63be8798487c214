package event_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/mock/gomock"

	"github.com/ghettovoice/sipevent/event"
	"github.com/ghettovoice/sipevent/internal/testutil/opmock"
)

func newPublication(t *testing.T) (*event.Event[string], *opmock.MockOperation, *stubCore) {
	t.Helper()

	op := newMockOp(t)
	op.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	core := &stubCore{op: op}
	ev, err := event.Publish[string](t.Context(), core, addr("sip:alice@example.com"), "presence", 3600, nil, nil)
	if err != nil {
		t.Fatalf("event.Publish() error = %v, want nil", err)
	}
	return ev, op, core
}

func TestPublish(t *testing.T) {
	t.Parallel()

	op := newMockOp(t)
	var req *event.PublishRequest
	op.EXPECT().Publish(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, r *event.PublishRequest) { req = r }).
		Return(nil).
		Times(1)

	core := &stubCore{op: op}
	content := &event.Content{Type: "application", Subtype: "pidf+xml", Encoding: "gzip", Data: []byte{0x1f, 0x8b}}
	ev, err := event.Publish[string](t.Context(), core, addr("sip:alice@example.com"), "presence", 3600, content, nil)
	if err != nil {
		t.Fatalf("event.Publish() error = %v, want nil", err)
	}

	if got, want := ev.Direction(), event.DirectionInvalid; got != want {
		t.Errorf("ev.Direction() = %q, want %q", got, want)
	}
	if got, want := ev.State(), event.SubscriptionStateNone; got != want {
		t.Errorf("ev.State() = %q, want %q", got, want)
	}
	if len(core.states) != 0 {
		t.Errorf("core observed %v, want no state changes", core.states)
	}
	if diff := cmp.Diff([]configureCall{{"sip:alice@example.com", false}}, core.configured); diff != "" {
		t.Errorf("configured operations mismatch (-want +got):\n%s", diff)
	}

	wantReq := &event.PublishRequest{
		Event:   "presence",
		Expires: 3600,
		Body: &event.Body{
			ContentType:     "application/pidf+xml",
			ContentEncoding: "gzip",
			Data:            []byte{0x1f, 0x8b},
		},
	}
	if diff := cmp.Diff(wantReq, req); diff != "" {
		t.Errorf("publish request mismatch (-want +got):\n%s", diff)
	}
}

func TestPublish_SendFailure(t *testing.T) {
	t.Parallel()

	op := newMockOp(t)
	op.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("no route")).Times(1)

	ev, err := event.Publish[string](t.Context(), &stubCore{op: op}, addr("sip:alice@example.com"), "presence", 0, nil, nil)
	if err != nil {
		t.Fatalf("event.Publish() error = %v, want nil", err)
	}
	if got, want := ev.State(), event.SubscriptionStateNone; got != want {
		t.Fatalf("ev.State() = %q, want %q", got, want)
	}
}

func TestPublish_InvalidArguments(t *testing.T) {
	t.Parallel()

	core := &stubCore{}
	if _, err := event.Publish[string](t.Context(), core, nil, "presence", 60, nil, nil); !errors.Is(err, event.ErrInvalidArgument) {
		t.Errorf("event.Publish() with nil resource error = %v, want %v", err, event.ErrInvalidArgument)
	}
	if _, err := event.Publish[string](t.Context(), core, addr("sip:alice@example.com"), "", 60, nil, nil); !errors.Is(err, event.ErrInvalidArgument) {
		t.Errorf("event.Publish() with empty event error = %v, want %v", err, event.ErrInvalidArgument)
	}
	if _, err := event.Publish[string](t.Context(), core, addr("sip:alice@example.com"), "presence", -5, nil, nil); !errors.Is(err, event.ErrInvalidArgument) {
		t.Errorf("event.Publish() with negative expires error = %v, want %v", err, event.ErrInvalidArgument)
	}
	if core.newOps != 0 {
		t.Errorf("core created %d operations, want 0", core.newOps)
	}
}

func TestEvent_UpdatePublish(t *testing.T) {
	t.Parallel()

	ev, op, core := newPublication(t)
	var req *event.PublishRequest
	op.EXPECT().Publish(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, r *event.PublishRequest) { req = r }).
		Return(nil).
		Times(1)

	if err := ev.UpdatePublish(t.Context(), &event.Content{Type: "application", Subtype: "pidf+xml"}); err != nil {
		t.Fatalf("ev.UpdatePublish() error = %v, want nil", err)
	}

	wantReq := &event.PublishRequest{
		Event:   "presence",
		Expires: event.ExpiresUnchanged,
		Body:    &event.Body{ContentType: "application/pidf+xml"},
	}
	if diff := cmp.Diff(wantReq, req); diff != "" {
		t.Errorf("publish request mismatch (-want +got):\n%s", diff)
	}
	if got, want := ev.State(), event.SubscriptionStateNone; got != want {
		t.Errorf("ev.State() = %q, want %q", got, want)
	}
	if len(core.states) != 0 {
		t.Errorf("core observed %v, want no state changes", core.states)
	}
}

func TestEvent_UpdatePublish_SendFailure(t *testing.T) {
	t.Parallel()

	ev, op, _ := newPublication(t)
	errSend := errors.New("timeout")
	op.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errSend).Times(1)

	err := ev.UpdatePublish(t.Context(), nil)
	if !errors.Is(err, event.ErrTransportFailure) || !errors.Is(err, errSend) {
		t.Fatalf("ev.UpdatePublish() error = %v, want wrapped %v", err, errSend)
	}
}

func TestEvent_UpdatePublish_OnSubscription(t *testing.T) {
	t.Parallel()

	ev, _, _ := newOutgoingIn(t, event.SubscriptionStateActive)
	if err := ev.UpdatePublish(t.Context(), nil); !errors.Is(err, event.ErrInvalidDirection) {
		t.Fatalf("ev.UpdatePublish() error = %v, want %v", err, event.ErrInvalidDirection)
	}

	in, _, _ := newIncomingIn(t, event.SubscriptionStateActive)
	if err := in.UpdatePublish(t.Context(), nil); !errors.Is(err, event.ErrInvalidDirection) {
		t.Fatalf("in.UpdatePublish() error = %v, want %v", err, event.ErrInvalidDirection)
	}
}

func TestEvent_Terminate_Publication(t *testing.T) {
	t.Parallel()

	ev, op, core := newPublication(t)
	// nothing to close for a publication, only the release is expected
	op.EXPECT().Release().Times(1)

	if err := ev.Terminate(t.Context()); err != nil {
		t.Fatalf("ev.Terminate() error = %v, want nil", err)
	}
	if len(core.states) != 0 {
		t.Fatalf("core observed %v, want no state changes", core.states)
	}
	if err := ev.UpdatePublish(t.Context(), nil); !errors.Is(err, event.ErrEventReleased) {
		t.Fatalf("ev.UpdatePublish() after Terminate() error = %v, want %v", err, event.ErrEventReleased)
	}
}
