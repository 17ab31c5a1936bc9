// Package notify defines the notification-sink contract the transaction
// core uses to report progress, and a default console implementation built
// on the formatter package's buffered output collector.
//
// Copyright (c) 2024 toolchainctl Contributors
// Licensed under the MIT License
package notify

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"toolchainctl/pkg/formatter"
)

// ⭐ CORE-008: Notification sink contract - 📝 Event kind enumeration

// EventKind identifies the category of a Notification.
type EventKind int

const (
	// EventFileCreated reports a file added to the install prefix.
	EventFileCreated EventKind = iota
	// EventFileCopied reports a file copied into the install prefix.
	EventFileCopied
	// EventDirCreated reports a directory added to the install prefix.
	EventDirCreated
	// EventFileRemoved reports a file removed from the install prefix.
	EventFileRemoved
	// EventDirRemoved reports a directory removed from the install prefix.
	EventDirRemoved
	// EventBackupCreated reports a backup taken before a modify/remove.
	EventBackupCreated
	// EventRollbackStarted reports that a transaction began rolling back.
	EventRollbackStarted
	// EventRollbackFailed reports a secondary failure during rollback.
	EventRollbackFailed
	// EventWarning reports a non-fatal condition worth surfacing.
	EventWarning
)

// Notification is one event the core reports through a Sink. It never
// replaces an error: the core always also returns a structured error to its
// caller for anything that aborts an operation.
type Notification struct {
	Kind      EventKind
	Component string // empty when not applicable
	Path      string
	Size      int64 // bytes, meaningful for file-copy/create events only
	Detail    string
}

// Sink receives Notifications synchronously, on the acting goroutine. A sink
// must not re-enter the transaction that is calling it.
type Sink interface {
	Notify(n Notification)
}

// SinkFunc adapts a plain function to the Sink interface.
type SinkFunc func(Notification)

// Notify implements Sink.
func (f SinkFunc) Notify(n Notification) { f(n) }

// NopSink discards every notification. Useful in tests and callers that
// don't want progress reporting.
var NopSink Sink = SinkFunc(func(Notification) {})

// ⭐ CORE-008: Console sink - 🔧 Human-readable rendering

// ConsoleSink renders notifications as short lines, optionally buffering
// them in an OutputCollector for delayed display (e.g. to print everything
// only after a transaction has committed).
type ConsoleSink struct {
	collector *formatter.OutputCollector
}

// NewConsoleSink creates a ConsoleSink. If collector is nil, messages print
// immediately; otherwise they are buffered until the caller flushes it.
func NewConsoleSink(collector *formatter.OutputCollector) *ConsoleSink {
	return &ConsoleSink{collector: collector}
}

// Notify implements Sink.
func (s *ConsoleSink) Notify(n Notification) {
	line := s.render(n)
	if s.collector == nil {
		fmt.Println(line)
		return
	}
	if n.Kind == EventWarning || n.Kind == EventRollbackFailed {
		s.collector.AddStderr(line+"\n", "warning")
		return
	}
	s.collector.AddStdout(line+"\n", "info")
}

// Flush displays every buffered notification and clears the collector. A
// no-op if this sink was not given a collector.
func (s *ConsoleSink) Flush() {
	if s.collector != nil {
		s.collector.FlushAll()
	}
}

// Discard drops every buffered notification without displaying it, used
// when a transaction fails and its rollback notifications already told the
// caller what happened through the returned error.
func (s *ConsoleSink) Discard() {
	if s.collector != nil {
		s.collector.Clear()
	}
}

func (s *ConsoleSink) render(n Notification) string {
	label := n.Path
	if n.Component != "" {
		label = fmt.Sprintf("%s: %s", n.Component, n.Path)
	}
	switch n.Kind {
	case EventFileCreated:
		return fmt.Sprintf("created %s (%s)", label, humanize.Bytes(uint64(max0(n.Size))))
	case EventFileCopied:
		return fmt.Sprintf("copied %s (%s)", label, humanize.Bytes(uint64(max0(n.Size))))
	case EventDirCreated:
		return fmt.Sprintf("created directory %s", label)
	case EventFileRemoved:
		return fmt.Sprintf("removed %s", label)
	case EventDirRemoved:
		return fmt.Sprintf("removed directory %s", label)
	case EventBackupCreated:
		return fmt.Sprintf("backed up %s (%s)", label, n.Detail)
	case EventRollbackStarted:
		return fmt.Sprintf("rolling back: %s", n.Detail)
	case EventRollbackFailed:
		return fmt.Sprintf("rollback warning for %s: %s", label, n.Detail)
	case EventWarning:
		return fmt.Sprintf("warning: %s", n.Detail)
	default:
		return n.Detail
	}
}

func max0(v int64) int64 {
	if v < 0 {
		return 0
	}
	return v
}
