// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog.Logger for go-ligand applications.
//
// A process logger is created once with [NewLogger]. Every request gets a
// child carrying its trace id ([Logger.WithTraceID]), stored in the request
// context; handlers and services read it back with [FromRequest] or
// [FromContext].
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"runtime"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	roleField    = "role"
	traceIDField = "trace_id"
	callerField  = "func"
)

// Logger embeds zerolog.Logger, so the zerolog API is available directly.
type Logger struct {
	zerolog.Logger
}

// NewLogger returns a JSON logger writing to stdout, tagged with role
// (usually the client name of the service).
//
// Every entry carries a timestamp and the fully-qualified name of the
// calling function in the "func" field. The level is not filtered here,
// use [Logger.WithLevel] for that.
func NewLogger(role string) *Logger {
	return New(os.Stdout, role)
}

var setupGlobals sync.Once

// configureGlobals sets the zerolog package globals. They are shared by every
// logger of the process, so they are written once.
func configureGlobals() {
	setupGlobals.Do(func() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		zerolog.CallerFieldName = callerField
		zerolog.CallerMarshalFunc = func(pc uintptr, _ string, _ int) string {
			return runtime.FuncForPC(pc).Name()
		}
	})
}

// New is [NewLogger] with an explicit destination.
func New(w io.Writer, role string) *Logger {
	configureGlobals()

	return &Logger{
		zerolog.New(w).With().
			Str(roleField, role).
			Timestamp().
			Caller().
			Logger(),
	}
}

// WithLevel returns a copy that only emits entries at level or above.
// Unknown level names fall back to info.
func (l *Logger) WithLevel(level string) *Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}

	return &Logger{l.Level(lvl)}
}

// WithTraceID returns a child logger with the trace_id field set. The
// receiver is not modified.
func (l *Logger) WithTraceID(traceID string) *Logger {
	return &Logger{l.With().Str(traceIDField, traceID).Logger()}
}

// Nop discards everything.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// FromRequest returns the logger stored in the request context.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext returns the logger stored in ctx with zerolog's WithContext.
// A context without one yields zerolog's default context logger, never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
