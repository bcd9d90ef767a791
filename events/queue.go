// Copyright 2018 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import "log/slog"

// TraceEventCompression can be set to true to see when events
// are being compressed to eliminate laggy behavior.
var TraceEventCompression = false

// Queue is a FIFO of events collected from window system callbacks
// during one poll, and drained afterward on the same thread.
// Non-unique events are compressed against the most recent
// event (see [Types.IsUnique]).
// The zero value is an empty queue ready to use.
type Queue struct {
	events []Event
}

// Send adds an event to the end of the queue. If the event is not
// unique and the last queued event has the same type, it replaces it.
func (q *Queue) Send(ev Event) {
	if n := len(q.events); n > 0 && !ev.Type().IsUnique() && q.events[n-1].Type() == ev.Type() {
		if TraceEventCompression {
			slog.Debug("events.Queue: compressed", "old", q.events[n-1], "new", ev)
		}
		q.events[n-1] = ev
		return
	}
	q.events = append(q.events, ev)
}

// NextEvent removes and returns the next event in the queue.
// It returns nil if the queue is empty.
func (q *Queue) NextEvent() Event {
	if len(q.events) == 0 {
		return nil
	}
	ev := q.events[0]
	q.events[0] = nil
	q.events = q.events[1:]
	if len(q.events) == 0 {
		q.events = q.events[:0:0]
	}
	return ev
}

// Len returns the length of the queue.
func (q *Queue) Len() int {
	return len(q.events)
}
