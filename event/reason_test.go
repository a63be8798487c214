package event_test

import (
	"testing"

	"github.com/ghettovoice/sipevent/event"
)

func TestReason_ResponseStatus_RoundTrip(t *testing.T) {
	t.Parallel()

	for r := event.ReasonNone + 1; r <= event.ReasonUnknown; r++ {
		sts := r.ResponseStatus()
		if sts < 300 {
			t.Errorf("%v.ResponseStatus() = %d, want a failure status", r, sts)
			continue
		}
		if got := event.ReasonFromResponseStatus(sts); got != r {
			t.Errorf("event.ReasonFromResponseStatus(%d) = %v, want %v", sts, got, r)
		}
	}
}

func TestReasonFromResponseStatus(t *testing.T) {
	t.Parallel()

	cases := []struct {
		sts  event.ResponseStatus
		want event.Reason
	}{
		{0, event.ReasonNone},
		{100, event.ReasonNone},
		{200, event.ReasonNone},
		{202, event.ReasonNone},
		{301, event.ReasonMovedPermanently},
		{401, event.ReasonUnauthorized},
		{407, event.ReasonUnauthorized},
		{403, event.ReasonBadCredentials},
		{404, event.ReasonNotFound},
		{604, event.ReasonNotFound},
		{408, event.ReasonNoResponse},
		{410, event.ReasonGone},
		{412, event.ReasonNoMatch},
		{480, event.ReasonTemporarilyUnavailable},
		{484, event.ReasonAddressIncomplete},
		{486, event.ReasonBusy},
		{487, event.ReasonNotAnswered},
		{406, event.ReasonNotAcceptable},
		{488, event.ReasonNotAcceptable},
		{606, event.ReasonNotAcceptable},
		{489, event.ReasonBadEvent},
		{501, event.ReasonNotImplemented},
		{502, event.ReasonBadGateway},
		{503, event.ReasonIOError},
		{504, event.ReasonServerTimeout},
		{600, event.ReasonDoNotDisturb},
		{603, event.ReasonDeclined},
		{302, event.ReasonUnknown},
		{400, event.ReasonUnknown},
		{500, event.ReasonUnknown},
		{699, event.ReasonUnknown},
	}

	for _, c := range cases {
		if got := event.ReasonFromResponseStatus(c.sts); got != c.want {
			t.Errorf("event.ReasonFromResponseStatus(%d) = %v, want %v", c.sts, got, c.want)
		}
	}
}

func TestReason_String(t *testing.T) {
	t.Parallel()

	cases := []struct {
		r    event.Reason
		want string
	}{
		{event.ReasonNone, "None"},
		{event.ReasonDoNotDisturb, "DoNotDisturb"},
		{event.ReasonUnknown, "Unknown"},
		{event.Reason(-1), "Reason(-1)"},
		{event.ReasonUnknown + 1, "Reason(21)"},
	}
	for _, c := range cases {
		if got := c.r.String(); got != c.want {
			t.Errorf("Reason(%d).String() = %q, want %q", int(c.r), got, c.want)
		}
	}
	if got := event.Reason(-1).ResponseStatus(); got != 0 {
		t.Errorf("Reason(-1).ResponseStatus() = %d, want 0", got)
	}
}
