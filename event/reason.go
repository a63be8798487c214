package event

import (
	"fmt"

	"github.com/ghettovoice/sipevent/internal/types"
)

// ResponseStatus is a SIP response status code.
type ResponseStatus = types.ResponseStatus

// Reason describes why an event exchange was declined or failed.
// The zero value is [ReasonNone].
type Reason int

const (
	ReasonNone Reason = iota
	ReasonNoResponse
	ReasonBadCredentials
	ReasonDeclined
	ReasonNotFound
	ReasonNotAnswered
	ReasonBusy
	ReasonIOError
	ReasonDoNotDisturb
	ReasonUnauthorized
	ReasonNotAcceptable
	ReasonNoMatch
	ReasonMovedPermanently
	ReasonGone
	ReasonTemporarilyUnavailable
	ReasonAddressIncomplete
	ReasonNotImplemented
	ReasonBadGateway
	ReasonServerTimeout
	ReasonBadEvent
	ReasonUnknown
)

var reasonNames = [...]string{
	ReasonNone:                   "None",
	ReasonNoResponse:             "NoResponse",
	ReasonBadCredentials:         "BadCredentials",
	ReasonDeclined:               "Declined",
	ReasonNotFound:               "NotFound",
	ReasonNotAnswered:            "NotAnswered",
	ReasonBusy:                   "Busy",
	ReasonIOError:                "IOError",
	ReasonDoNotDisturb:           "DoNotDisturb",
	ReasonUnauthorized:           "Unauthorized",
	ReasonNotAcceptable:          "NotAcceptable",
	ReasonNoMatch:                "NoMatch",
	ReasonMovedPermanently:       "MovedPermanently",
	ReasonGone:                   "Gone",
	ReasonTemporarilyUnavailable: "TemporarilyUnavailable",
	ReasonAddressIncomplete:      "AddressIncomplete",
	ReasonNotImplemented:         "NotImplemented",
	ReasonBadGateway:             "BadGateway",
	ReasonServerTimeout:          "ServerTimeout",
	ReasonBadEvent:               "BadEvent",
	ReasonUnknown:                "Unknown",
}

func (r Reason) IsValid() bool { return r >= ReasonNone && r <= ReasonUnknown }

func (r Reason) String() string {
	if !r.IsValid() {
		return fmt.Sprintf("Reason(%d)", int(r))
	}
	return reasonNames[r]
}

var reasonStatuses = map[Reason]ResponseStatus{
	ReasonNoResponse:             types.ResponseStatusRequestTimeout,
	ReasonBadCredentials:         types.ResponseStatusForbidden,
	ReasonDeclined:               types.ResponseStatusDecline,
	ReasonNotFound:               types.ResponseStatusNotFound,
	ReasonNotAnswered:            types.ResponseStatusRequestTerminated,
	ReasonBusy:                   types.ResponseStatusBusyHere,
	ReasonIOError:                types.ResponseStatusServiceUnavailable,
	ReasonDoNotDisturb:           types.ResponseStatusBusyEverywhere,
	ReasonUnauthorized:           types.ResponseStatusUnauthorized,
	ReasonNotAcceptable:          types.ResponseStatusNotAcceptableHere,
	ReasonNoMatch:                types.ResponseStatusConditionalRequestFailed,
	ReasonMovedPermanently:       types.ResponseStatusMovedPermanently,
	ReasonGone:                   types.ResponseStatusGone,
	ReasonTemporarilyUnavailable: types.ResponseStatusTemporarilyUnavailable,
	ReasonAddressIncomplete:      types.ResponseStatusAddressIncomplete,
	ReasonNotImplemented:         types.ResponseStatusNotImplemented,
	ReasonBadGateway:             types.ResponseStatusBadGateway,
	ReasonServerTimeout:          types.ResponseStatusGatewayTimeout,
	ReasonBadEvent:               types.ResponseStatusBadEvent,
	ReasonUnknown:                types.ResponseStatusServerInternalError,
}

var statusReasons = map[ResponseStatus]Reason{
	types.ResponseStatusMovedPermanently:            ReasonMovedPermanently,
	types.ResponseStatusUnauthorized:                ReasonUnauthorized,
	types.ResponseStatusProxyAuthenticationRequired: ReasonUnauthorized,
	types.ResponseStatusForbidden:                   ReasonBadCredentials,
	types.ResponseStatusNotFound:                    ReasonNotFound,
	types.ResponseStatusDoesNotExistAnywhere:        ReasonNotFound,
	types.ResponseStatusRequestTimeout:              ReasonNoResponse,
	types.ResponseStatusGone:                        ReasonGone,
	types.ResponseStatusConditionalRequestFailed:    ReasonNoMatch,
	types.ResponseStatusTemporarilyUnavailable:      ReasonTemporarilyUnavailable,
	types.ResponseStatusAddressIncomplete:           ReasonAddressIncomplete,
	types.ResponseStatusBusyHere:                    ReasonBusy,
	types.ResponseStatusRequestTerminated:           ReasonNotAnswered,
	types.ResponseStatusNotAcceptable:               ReasonNotAcceptable,
	types.ResponseStatusNotAcceptableHere:           ReasonNotAcceptable,
	types.ResponseStatusNotAcceptable606:            ReasonNotAcceptable,
	types.ResponseStatusBadEvent:                    ReasonBadEvent,
	types.ResponseStatusNotImplemented:              ReasonNotImplemented,
	types.ResponseStatusBadGateway:                  ReasonBadGateway,
	types.ResponseStatusServiceUnavailable:          ReasonIOError,
	types.ResponseStatusGatewayTimeout:              ReasonServerTimeout,
	types.ResponseStatusBusyEverywhere:              ReasonDoNotDisturb,
	types.ResponseStatusDecline:                     ReasonDeclined,
}

// ResponseStatus returns the SIP response status used to report the reason to the remote party.
// It returns 0 for [ReasonNone] and invalid reasons.
func (r Reason) ResponseStatus() ResponseStatus { return reasonStatuses[r] }

// ReasonFromResponseStatus maps a SIP response status received from the remote party to a reason.
// Provisional and successful statuses map to [ReasonNone], unlisted failures to [ReasonUnknown].
func ReasonFromResponseStatus(sts ResponseStatus) Reason {
	if sts < 300 {
		return ReasonNone
	}
	if r, ok := statusReasons[sts]; ok {
		return r
	}
	return ReasonUnknown
}
