package event

import (
	"log/slog"
	"mime"
	"strings"

	"github.com/ghettovoice/sipevent/internal/grammar"
)

// Content is an abstract message body, as seen by the application.
type Content struct {
	// Type is the media type, e.g. "application".
	Type string
	// Subtype is the media subtype, e.g. "pidf+xml".
	Subtype string
	// Params are optional media type parameters, e.g. "charset".
	Params map[string]string
	// Encoding is an optional content coding, e.g. "gzip".
	Encoding string
	Data     []byte
}

// IsEmpty reports whether the content carries neither a media type nor data.
func (c *Content) IsEmpty() bool {
	return c == nil || (c.Type == "" && c.Subtype == "" && len(c.Data) == 0)
}

// Body is a message body in the form it is put on the wire.
type Body struct {
	// ContentType is the rendered value of the Content-Type header.
	ContentType string
	// ContentEncoding is the value of the Content-Encoding header, empty if not set.
	ContentEncoding string
	Data            []byte
}

// LogValue implements [slog.LogValuer].
func (b *Body) LogValue() slog.Value {
	if b == nil {
		return slog.Value{}
	}
	return slog.GroupValue(
		slog.String("content_type", b.ContentType),
		slog.String("content_encoding", b.ContentEncoding),
		slog.Int("size", len(b.Data)),
	)
}

// BodyConverter converts abstract content to the wire body.
type BodyConverter interface {
	// ToWireBody returns the wire body for the content or nil if there is nothing to send.
	ToWireBody(c *Content) *Body
}

// BodyConverterFunc is an adapter to allow the use of ordinary functions as [BodyConverter].
type BodyConverterFunc func(c *Content) *Body

func (fn BodyConverterFunc) ToWireBody(c *Content) *Body { return fn(c) }

type defBodyConverter struct{}

var defBodyConv BodyConverter = defBodyConverter{}

// DefaultBodyConverter returns the converter used when none is configured.
// It renders the media type with [mime.FormatMediaType], empty content produces no body.
// Media types and encodings that are not valid tokens are left out of the body.
func DefaultBodyConverter() BodyConverter { return defBodyConv }

func (defBodyConverter) ToWireBody(c *Content) *Body {
	if c.IsEmpty() {
		return nil
	}

	b := &Body{Data: c.Data}
	if grammar.IsToken(c.Encoding) {
		b.ContentEncoding = c.Encoding
	}
	if grammar.IsToken(c.Type) && grammar.IsToken(c.Subtype) {
		mt := strings.ToLower(c.Type + "/" + c.Subtype)
		b.ContentType = mime.FormatMediaType(mt, c.Params)
		if b.ContentType == "" {
			// parameters failed to render, keep at least the media type
			b.ContentType = mt
		}
	}
	return b
}
