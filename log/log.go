// Copyright (c) 2024 The Flokicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package log defines the logging interface shared by every package in this
// module.  Each consuming package declares its own package-level `log`
// variable of type Logger, defaulting to Disabled until UseLogger is called
// by whoever assembles the running node.  This keeps packages free of any
// concrete logging dependency while still letting the node wire all of them
// to a single append-only sink.
package log

import "fmt"

// Level describes the severity of a log record, lowest to highest.
type Level uint8

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
	LevelCritical
	LevelOff
)

// String returns the lowercase name of the level.
func (l Level) String() string {
	switch l {
	case LevelTrace:
		return "trace"
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	case LevelCritical:
		return "critical"
	default:
		return "off"
	}
}

// LevelFromString returns a level based on the input string s.  If the input
// can't be interpreted as a valid log level, the info level and false is
// returned.
func LevelFromString(s string) (Level, bool) {
	switch s {
	case "trace", "trc":
		return LevelTrace, true
	case "debug", "dbg":
		return LevelDebug, true
	case "info", "inf":
		return LevelInfo, true
	case "warn", "wrn":
		return LevelWarn, true
	case "error", "err":
		return LevelError, true
	case "critical", "crt":
		return LevelCritical, true
	case "off":
		return LevelOff, true
	default:
		return LevelInfo, false
	}
}

// Logger is the subset of logging behavior every package in this module
// depends on.
type Logger interface {
	Tracef(format string, args ...interface{})
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Criticalf(format string, args ...interface{})

	Trace(args ...interface{})
	Debug(args ...interface{})
	Info(args ...interface{})
	Warn(args ...interface{})
	Error(args ...interface{})
	Critical(args ...interface{})

	Level() Level
	SetLevel(level Level)
}

// Disabled is a Logger that discards everything written to it.  It is the
// zero-value default for every package's `log` variable so that importing a
// package never produces unwanted output.
var Disabled Logger = &disabledLogger{}

type disabledLogger struct{}

func (disabledLogger) Tracef(string, ...interface{})    {}
func (disabledLogger) Debugf(string, ...interface{})    {}
func (disabledLogger) Infof(string, ...interface{})     {}
func (disabledLogger) Warnf(string, ...interface{})     {}
func (disabledLogger) Errorf(string, ...interface{})    {}
func (disabledLogger) Criticalf(string, ...interface{}) {}
func (disabledLogger) Trace(...interface{})             {}
func (disabledLogger) Debug(...interface{})             {}
func (disabledLogger) Info(...interface{})              {}
func (disabledLogger) Warn(...interface{})              {}
func (disabledLogger) Error(...interface{})             {}
func (disabledLogger) Critical(...interface{})          {}
func (disabledLogger) Level() Level                     { return LevelOff }
func (disabledLogger) SetLevel(Level)                   {}

// FormatArgs is a small helper concrete Logger implementations can use to
// render the non-f variants the same way fmt.Sprintln would, without the
// trailing newline (the backend adds its own line framing).
func FormatArgs(args ...interface{}) string {
	s := fmt.Sprintln(args...)
	return s[:len(s)-1]
}
