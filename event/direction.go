package event

// Direction tells who initiated the event exchange.
type Direction string

const (
	// DirectionIncoming is a subscription initiated by the remote party.
	DirectionIncoming Direction = "Incoming"
	// DirectionOutgoing is a subscription initiated locally.
	DirectionOutgoing Direction = "Outgoing"
	// DirectionInvalid is used for publications, which have no subscriber/subscribed roles.
	DirectionInvalid Direction = "Invalid"
)

func (d Direction) IsValid() bool {
	switch d {
	case DirectionIncoming, DirectionOutgoing, DirectionInvalid:
		return true
	default:
		return false
	}
}

func (d Direction) String() string { return string(d) }
