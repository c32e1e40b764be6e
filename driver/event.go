// Copyright 2026 The gfx Authors. All rights reserved.

package driver

import (
	"github.com/sirupsen/logrus"
)

// Level is the severity of a diagnostic event.
type Level int

// Severities.
const (
	LevelWarn Level = iota
	LevelError
)

// Fields carries structured context with an event.
type Fields map[string]any

// Event is one diagnostic emitted by a back end.
// Best-effort paths (per-command updates, mip generation)
// report failures as events instead of returning errors, so
// a single bad command cannot abort replay of the stream.
type Event struct {
	Level  Level
	Op     string
	Err    error
	Fields Fields
}

// EventSink receives diagnostic events.
// Implementations must be safe for use from the thread that
// drives the back end; no other concurrency is introduced
// by this layer.
type EventSink interface {
	Emit(Event)
}

// Events is the sink diagnostics are emitted to.
// The default forwards to logrus. Replace it to route
// events elsewhere; tests install recording sinks.
var Events EventSink = logSink{}

// Errorf emits an error-level event.
func Errorf(op string, err error, fields Fields) {
	Events.Emit(Event{Level: LevelError, Op: op, Err: err, Fields: fields})
}

// Warnf emits a warn-level event.
func Warnf(op string, fields Fields) {
	Events.Emit(Event{Level: LevelWarn, Op: op, Fields: fields})
}

// logSink forwards events to logrus with structured fields.
type logSink struct{}

func (logSink) Emit(e Event) {
	entry := logrus.WithField("op", e.Op)
	if len(e.Fields) > 0 {
		entry = entry.WithFields(logrus.Fields(e.Fields))
	}
	if e.Err != nil {
		entry = entry.WithError(e.Err)
	}
	switch e.Level {
	case LevelError:
		entry.Error("gfx diagnostic")
	default:
		entry.Warn("gfx diagnostic")
	}
}
