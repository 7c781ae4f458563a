// Copyright (c) 2024 The Flokicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package nlog is the concrete backend for the log.Logger interface used by
// every package in this module.  It writes append-only, line-buffered
// records to a file named after the owning node, using
// github.com/jrick/logrotate for the underlying rotated file handle - the
// same backend the teacher wires its flcdLog/srvrLog/etc. subsystem loggers
// to.
package nlog

import (
	"bufio"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/jrick/logrotate/rotator"

	"github.com/strongchain-go/node/log"
)

// maxRotationSize is generous since a node's log is meant to live for the
// duration of a single process run (§5: the chain itself is never persisted
// to disk, only the log is).
const maxRotationSize = 32 * 1024 // KiB

// Backend owns the rotated file and line-buffers writes from any task, as
// required by §5's "log file is append-only from any task with line
// buffering".
type Backend struct {
	mu     sync.Mutex
	w      *bufio.Writer
	closer io.Closer
	lock   io.Closer
	path   string
}

// NewBackend opens (creating if necessary) the rotated log file at path.
func NewBackend(path string) (*Backend, error) {
	lock, err := lockLogFile(path)
	if err != nil {
		return nil, err
	}

	r, err := rotator.New(path, maxRotationSize, false, 3)
	if err != nil {
		lock.Close()
		return nil, fmt.Errorf("nlog: open log file %s: %w", path, err)
	}
	return &Backend{
		w:      bufio.NewWriterSize(r, 1),
		closer: r,
		lock:   lock,
		path:   path,
	}, nil
}

// Path returns the log file's path, the seed key §4.4 requires the mining
// task's nonce PRNG to be constructed from.
func (b *Backend) Path() string {
	return b.path
}

// Close flushes and closes the underlying rotator.
func (b *Backend) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	_ = b.w.Flush()
	err := b.closer.Close()
	b.lock.Close()
	return err
}

func (b *Backend) writeLine(tag, msg string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	fmt.Fprintf(b.w, "[%s] %s: %s\n", time.Now().Format(time.ANSIC), tag, msg)
	_ = b.w.Flush()
}

// Logger implements log.Logger against a shared Backend, with a subsystem
// tag (e.g. "MINR", "SYNC", "NODE") the way the teacher tags its package
// loggers.
type Logger struct {
	backend *Backend
	tag     string
	level   log.Level
}

// New returns a Logger writing through backend, tagged with subsys.
func New(backend *Backend, subsys string) *Logger {
	return &Logger{backend: backend, tag: subsys, level: log.LevelInfo}
}

func (l *Logger) Level() log.Level     { return l.level }
func (l *Logger) SetLevel(lv log.Level) { l.level = lv }

func (l *Logger) log(lv log.Level, msg string) {
	if lv < l.level {
		return
	}
	l.backend.writeLine(l.tag+" "+lv.String(), msg)
}

func (l *Logger) Tracef(format string, args ...interface{}) { l.log(log.LevelTrace, fmt.Sprintf(format, args...)) }
func (l *Logger) Debugf(format string, args ...interface{}) { l.log(log.LevelDebug, fmt.Sprintf(format, args...)) }
func (l *Logger) Infof(format string, args ...interface{})  { l.log(log.LevelInfo, fmt.Sprintf(format, args...)) }
func (l *Logger) Warnf(format string, args ...interface{})  { l.log(log.LevelWarn, fmt.Sprintf(format, args...)) }
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.log(log.LevelError, fmt.Sprintf(format, args...))
}
func (l *Logger) Criticalf(format string, args ...interface{}) {
	l.log(log.LevelCritical, fmt.Sprintf(format, args...))
}

func (l *Logger) Trace(args ...interface{})    { l.log(log.LevelTrace, fmt.Sprint(args...)) }
func (l *Logger) Debug(args ...interface{})    { l.log(log.LevelDebug, fmt.Sprint(args...)) }
func (l *Logger) Info(args ...interface{})     { l.log(log.LevelInfo, fmt.Sprint(args...)) }
func (l *Logger) Warn(args ...interface{})     { l.log(log.LevelWarn, fmt.Sprint(args...)) }
func (l *Logger) Error(args ...interface{})    { l.log(log.LevelError, fmt.Sprint(args...)) }
func (l *Logger) Critical(args ...interface{}) { l.log(log.LevelCritical, fmt.Sprint(args...)) }
