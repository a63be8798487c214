package event

import (
	"log/slog"

	"github.com/ghettovoice/sipevent/log"
)

// Options contains options for an event.
type Options struct {
	// BodyConverter converts contents passed to the event operations to wire bodies.
	// If nil, the [DefaultBodyConverter] will be used.
	BodyConverter BodyConverter
	// Log is the logger that will be used with the event.
	// If nil, the [log.Default] will be used.
	Log *slog.Logger
}

func (o *Options) bodyConverter() BodyConverter {
	if o == nil || o.BodyConverter == nil {
		return DefaultBodyConverter()
	}
	return o.BodyConverter
}

func (o *Options) log() *slog.Logger {
	if o == nil || o.Log == nil {
		return log.Default()
	}
	return o.Log
}
