package types

import (
	"fmt"
	"strings"
)

const (
	ResponseStatusTrying ResponseStatus = 100

	ResponseStatusOK             ResponseStatus = 200
	ResponseStatusAccepted       ResponseStatus = 202 // [RFC3265]
	ResponseStatusNoNotification ResponseStatus = 204 // [RFC5839]

	ResponseStatusMovedPermanently ResponseStatus = 301
	ResponseStatusMovedTemporarily ResponseStatus = 302

	ResponseStatusBadRequest                  ResponseStatus = 400
	ResponseStatusUnauthorized                ResponseStatus = 401
	ResponseStatusForbidden                   ResponseStatus = 403
	ResponseStatusNotFound                    ResponseStatus = 404
	ResponseStatusMethodNotAllowed            ResponseStatus = 405
	ResponseStatusNotAcceptable               ResponseStatus = 406
	ResponseStatusProxyAuthenticationRequired ResponseStatus = 407
	ResponseStatusRequestTimeout              ResponseStatus = 408
	ResponseStatusGone                        ResponseStatus = 410
	ResponseStatusConditionalRequestFailed    ResponseStatus = 412 // [RFC3903]
	ResponseStatusUnsupportedMediaType        ResponseStatus = 415
	ResponseStatusIntervalTooBrief            ResponseStatus = 423
	ResponseStatusTemporarilyUnavailable      ResponseStatus = 480
	ResponseStatusCallTransactionDoesNotExist ResponseStatus = 481
	ResponseStatusAddressIncomplete           ResponseStatus = 484
	ResponseStatusBusyHere                    ResponseStatus = 486
	ResponseStatusRequestTerminated           ResponseStatus = 487
	ResponseStatusNotAcceptableHere           ResponseStatus = 488
	ResponseStatusBadEvent                    ResponseStatus = 489 // [RFC3265]

	ResponseStatusServerInternalError ResponseStatus = 500
	ResponseStatusNotImplemented      ResponseStatus = 501
	ResponseStatusBadGateway          ResponseStatus = 502
	ResponseStatusServiceUnavailable  ResponseStatus = 503
	ResponseStatusGatewayTimeout      ResponseStatus = 504

	ResponseStatusBusyEverywhere       ResponseStatus = 600
	ResponseStatusDecline              ResponseStatus = 603
	ResponseStatusDoesNotExistAnywhere ResponseStatus = 604
	ResponseStatusNotAcceptable606     ResponseStatus = 606
)

// ResponseStatus is a SIP response status code.
type ResponseStatus uint

func (s ResponseStatus) IsValid() bool { return s >= 100 && s < 700 }

func (s ResponseStatus) IsProvisional() bool { return s >= 100 && s < 200 }

func (s ResponseStatus) IsSuccessful() bool { return s >= 200 && s < 300 }

func (s ResponseStatus) IsRedirection() bool { return s >= 300 && s < 400 }

func (s ResponseStatus) IsRequestFailure() bool { return s >= 400 && s < 500 }

func (s ResponseStatus) IsServerFailure() bool { return s >= 500 && s < 600 }

func (s ResponseStatus) IsGlobalFailure() bool { return s >= 600 && s < 700 }

func (s ResponseStatus) IsFinal() bool { return s >= 200 && s < 700 }

func (s ResponseStatus) Reason() ResponseReason { return responseReasons[s] }

func (s ResponseStatus) String() string {
	if r := s.Reason(); r != "" {
		return fmt.Sprintf("%d %s", s, r)
	}
	return fmt.Sprintf("%d", s)
}

// ResponseReason is a SIP response reason phrase.
type ResponseReason string

func (r ResponseReason) Equal(val any) bool {
	var other ResponseReason
	switch v := val.(type) {
	case ResponseReason:
		other = v
	case *ResponseReason:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return strings.EqualFold(string(r), string(other))
}

var responseReasons = map[ResponseStatus]ResponseReason{
	ResponseStatusTrying: "Trying",

	ResponseStatusOK:             "OK",
	ResponseStatusAccepted:       "Accepted",
	ResponseStatusNoNotification: "No Notification",

	ResponseStatusMovedPermanently: "Moved Permanently",
	ResponseStatusMovedTemporarily: "Moved Temporarily",

	ResponseStatusBadRequest:                  "Bad Request",
	ResponseStatusUnauthorized:                "Unauthorized",
	ResponseStatusForbidden:                   "Forbidden",
	ResponseStatusNotFound:                    "Not Found",
	ResponseStatusMethodNotAllowed:            "Method Not Allowed",
	ResponseStatusNotAcceptable:               "Not Acceptable",
	ResponseStatusProxyAuthenticationRequired: "Proxy Authentication Required",
	ResponseStatusRequestTimeout:              "Request Timeout",
	ResponseStatusGone:                        "Gone",
	ResponseStatusConditionalRequestFailed:    "Conditional Request Failed",
	ResponseStatusUnsupportedMediaType:        "Unsupported Media Type",
	ResponseStatusIntervalTooBrief:            "Interval Too Brief",
	ResponseStatusTemporarilyUnavailable:      "Temporarily Unavailable",
	ResponseStatusCallTransactionDoesNotExist: "Call/Transaction Does Not Exist",
	ResponseStatusAddressIncomplete:           "Address Incomplete",
	ResponseStatusBusyHere:                    "Busy Here",
	ResponseStatusRequestTerminated:           "Request Terminated",
	ResponseStatusNotAcceptableHere:           "Not Acceptable Here",
	ResponseStatusBadEvent:                    "Bad Event",

	ResponseStatusServerInternalError: "Server Internal Error",
	ResponseStatusNotImplemented:      "Not Implemented",
	ResponseStatusBadGateway:          "Bad Gateway",
	ResponseStatusServiceUnavailable:  "Service Unavailable",
	ResponseStatusGatewayTimeout:      "Gateway Time-out",

	ResponseStatusBusyEverywhere:       "Busy Everywhere",
	ResponseStatusDecline:              "Decline",
	ResponseStatusDoesNotExistAnywhere: "Does Not Exist Anywhere",
	ResponseStatusNotAcceptable606:     "Not Acceptable",
}
