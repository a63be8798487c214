// Package grammar validates SIP grammar elements used by the event framework.
package grammar

//go:generate go tool errtrace -w .

import "github.com/ghettovoice/abnf"

// RFC 3261 Section 25.1 and RFC 3265 Section 7.4.
var (
	alphanum = abnf.Alt(
		"alphanum",
		abnf.Range("ALPHA", []byte("A"), []byte("Z")),
		abnf.Range("ALPHA", []byte("a"), []byte("z")),
		abnf.Range("DIGIT", []byte("0"), []byte("9")),
	)

	tokenNodotChar = abnf.Alt(
		"token-nodot-char",
		alphanum,
		abnf.Literal("-", []byte("-")),
		abnf.Literal("!", []byte("!")),
		abnf.Literal("%", []byte("%")),
		abnf.Literal("*", []byte("*")),
		abnf.Literal("_", []byte("_")),
		abnf.Literal("+", []byte("+")),
		abnf.Literal("`", []byte("`")),
		abnf.Literal("'", []byte("'")),
		abnf.Literal("~", []byte("~")),
	)

	token = abnf.Repeat1Inf("token", abnf.Alt(
		"token-char",
		tokenNodotChar,
		abnf.Literal(".", []byte(".")),
	))

	tokenNodot = abnf.Repeat1Inf("token-nodot", tokenNodotChar)

	eventType = abnf.Concat(
		"event-type",
		tokenNodot,
		abnf.Repeat0Inf("event-templates", abnf.Concat(
			"event-template",
			abnf.Literal(".", []byte(".")),
			tokenNodot,
		)),
	)
)

func matchAll[T ~string | ~[]byte](op abnf.Operator, s T) bool {
	if len(s) == 0 {
		return false
	}

	ns := abnf.NewNodes()
	defer ns.Free()

	if err := op([]byte(s), 0, ns); err != nil {
		return false
	}
	return ns.Best().Len() == len(s)
}

// IsToken reports whether s is a valid RFC 3261 token.
func IsToken[T ~string | ~[]byte](s T) bool { return matchAll(token, s) }

// IsEventType reports whether s is a valid RFC 3265 event-type,
// i.e. an event package optionally followed by dot-separated templates ("presence.winfo").
func IsEventType[T ~string | ~[]byte](s T) bool { return matchAll(eventType, s) }
