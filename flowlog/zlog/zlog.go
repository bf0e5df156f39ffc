// Package zlog adapts a zerolog.Logger onto flow.Logger, the four-method
// sink the scheduler core calls on handler and coroutine faults.
//
// Grounded on the teacher's logiface/zerolog adapter (which wraps a
// zerolog.Logger behind a generic Event type) and on zerolog's own use
// elsewhere in the retrieved corpus (smilemakc/mbflow). flow.Logger only
// needs four plain methods, so this adapter skips logiface's generic event
// machinery entirely and talks to zerolog directly.
package zlog

import (
	"github.com/rs/zerolog"

	"github.com/cschladetsch/go-flow"
)

// Adapter implements flow.Logger by forwarding to an embedded
// zerolog.Logger.
type Adapter struct {
	Z zerolog.Logger
}

var _ flow.Logger = Adapter{}

// New wraps a zerolog.Logger as a flow.Logger.
func New(z zerolog.Logger) Adapter {
	return Adapter{Z: z}
}

func (a Adapter) Info(msg string, fields ...any) {
	withFields(a.Z.Info(), fields).Msg(msg)
}

func (a Adapter) Warn(msg string, fields ...any) {
	withFields(a.Z.Warn(), fields).Msg(msg)
}

func (a Adapter) Error(msg string, err error, fields ...any) {
	withFields(a.Z.Error().Err(err), fields).Msg(msg)
}

func (a Adapter) Verbose(level int, msg string, fields ...any) {
	withFields(a.Z.Trace().Int("verbosity", level), fields).Msg(msg)
}

func withFields(e *zerolog.Event, fields []any) *zerolog.Event {
	for i := 0; i+1 < len(fields); i += 2 {
		key, ok := fields[i].(string)
		if !ok {
			continue
		}
		e = e.Interface(key, fields[i+1])
	}
	return e
}
