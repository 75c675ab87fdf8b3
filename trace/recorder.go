// Copyright 2015 The Chromium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package trace

import (
	"sync"

	"github.com/petermattis/goid"

	"github.com/davidlattimore/perfetto-recorder/clock"
)

const maxInlineArgs = 4

type eventKind uint8

const (
	eventSpanBegin eventKind = iota
	eventSpanEnd
	eventCounter
)

// event is one entry of a recorder's append-only buffer. It is sized to
// hold the common case (a span with up to four arguments) without
// spilling, at the cost of carrying unused fields on counter and end
// records; the buffer is private to one goroutine so the waste never
// contends with anything.
type event struct {
	kind      eventKind
	ts        int64
	nameID    uint64
	argc      uint8
	inline    [maxInlineArgs]Arg
	spillOff  int32
	spillLen  int32
	synthetic bool
	trackID   uint64
	counter   CounterValue
}

// ThreadData is the drained contents of one goroutine's recorder: its
// event buffer, the argument spillover those events reference, the
// string table those events' name ids resolve against, and a snapshot of
// the process identity as of the drain call.
type ThreadData struct {
	GoID     int64
	Name     string
	Events   []event
	Spill    []Arg
	Interned []internedName
	Proc     ProcessData
}

// ProcessData is the process-wide identity recorded once by Init and
// copied into every ThreadData at drain time.
type ProcessData struct {
	PID  int32
	Name string
}

// Recorder owns one goroutine's append-only event buffer. Every method on
// Recorder except registry lookup must only be called from the goroutine
// that owns it; there is no internal locking because none is needed under
// that contract, and adding any would show up directly in the hot path's
// latency.
type Recorder struct {
	goid      int64
	name      string
	events    []event
	spill     []Arg
	interned  *internTable
	openStack []uint32
}

func newRecorder(id int64) *Recorder {
	return &Recorder{
		goid:     id,
		events:   make([]event, 0, 256),
		interned: newInternTable(),
	}
}

var registry sync.Map // int64 goid -> *Recorder

// currentRecorder returns the calling goroutine's recorder, creating one
// on first use. The registry lookup is the only synchronized operation on
// the Span/CloseSpan path; sync.Map's read path is lock-free in the
// steady state once an entry exists.
func currentRecorder() *Recorder {
	id := goid.Get()
	if r, ok := registry.Load(id); ok {
		return r.(*Recorder)
	}
	r := newRecorder(id)
	actual, _ := registry.LoadOrStore(id, r)
	return actual.(*Recorder)
}

func (r *Recorder) openSpan(name string, args []Arg) Handle {
	ts := clock.Now()
	e := event{kind: eventSpanBegin, ts: ts, nameID: r.interned.intern(name)}
	r.fillArgs(&e, args)

	pos := len(r.events)
	r.events = append(r.events, e)
	r.openStack = append(r.openStack, uint32(pos))
	return Handle{pos: uint32(pos)}
}

func (r *Recorder) fillArgs(e *event, args []Arg) {
	n := len(args)
	if n > maxInlineArgs {
		e.spillOff = int32(len(r.spill))
		e.spillLen = int32(n - maxInlineArgs)
		copy(e.inline[:], args[:maxInlineArgs])
		r.spill = append(r.spill, args[maxInlineArgs:]...)
	} else {
		copy(e.inline[:n], args)
		e.spillOff = -1
	}
	e.argc = uint8(n)
}

func (r *Recorder) closeSpan(h Handle) {
	ts := clock.Now()
	if debugMode {
		assertLIFO(r, h)
	}
	if n := len(r.openStack); n > 0 {
		r.openStack = r.openStack[:n-1]
	}

	var nameID uint64
	if int(h.pos) < len(r.events) {
		nameID = r.events[h.pos].nameID
	}
	r.events = append(r.events, event{kind: eventSpanEnd, ts: ts, nameID: nameID})
}

// assertLIFO panics with ErrUnmatchedClose if h does not name the
// currently innermost open span. Only called when debugMode is the
// compile-time constant true; the tracedebug tag controls whether this
// function's body, and the branch that calls it, exist at all.
func assertLIFO(r *Recorder, h Handle) {
	n := len(r.openStack)
	if n == 0 || r.openStack[n-1] != h.pos {
		panic(ErrUnmatchedClose)
	}
}

func (r *Recorder) recordCounter(track uint64, ts int64, v CounterValue) {
	r.events = append(r.events, event{kind: eventCounter, ts: ts, trackID: track, counter: v})
}

// drain atomically (from this goroutine's point of view: there is no
// concurrent writer) replaces the buffer with a fresh empty one and
// returns the contents collected since the previous drain, along with any
// spans still open. Open spans are closed synthetically at the drain
// timestamp and flagged so a reader can tell a real close from one the
// recorder manufactured to keep the trace well-formed.
func (r *Recorder) drain() *ThreadData {
	ts := clock.Now()
	for i := len(r.openStack) - 1; i >= 0; i-- {
		pos := r.openStack[i]
		var nameID uint64
		if int(pos) < len(r.events) {
			nameID = r.events[pos].nameID
		}
		r.events = append(r.events, event{kind: eventSpanEnd, ts: ts, nameID: nameID, synthetic: true})
	}

	td := &ThreadData{
		GoID:     r.goid,
		Name:     r.name,
		Events:   r.events,
		Spill:    r.spill,
		Interned: r.interned.names,
		Proc:     currentProcessData(),
	}

	r.events = make([]event, 0, 256)
	r.spill = nil
	r.interned = newInternTable()
	r.openStack = nil
	return td
}

// argAt returns the i'th argument of e, reading from the inline array or
// the owning recorder's spillover slice as needed.
func argAt(e *event, spill []Arg, i int) Arg {
	if i < maxInlineArgs {
		return e.inline[i]
	}
	return spill[int(e.spillOff)+i-maxInlineArgs]
}
