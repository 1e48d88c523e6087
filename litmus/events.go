// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package litmus

import (
	"fmt"
	"sync"
)

// Event is emitted by the controller to its Sink.
type Event interface {
	fmt.Stringer
	event()
}

// SelfTestFailure is emitted once, right before a run halts on a harness
// fault.
type SelfTestFailure struct {
	Kind    SelfTestKind
	Message string
	Runs    [2]int64
	X       [2]int64
}

// Reordering is emitted for every iteration classified as a StoreLoad
// reordering. Number counts reorderings so far; Iteration is 1-based.
type Reordering struct {
	Number    int
	Iteration int
	Runs      [2]int64
	X         [2]int64
}

// Progress is emitted periodically when Config.ProgressEvery is set.
type Progress struct {
	Iteration  int
	Iterations int
	Reordered  int
}

func (SelfTestFailure) event() {}
func (Reordering) event()      {}
func (Progress) event()        {}
func (Summary) event()         {}

func (e SelfTestFailure) String() string {
	return e.Message
}

func (e Reordering) String() string {
	return fmt.Sprintf("StoreLoad reordering #%d detected after %d iterations (%d/%d): x0 = %d, x1 = %d",
		e.Number, e.Iteration, e.Runs[A], e.Runs[B], e.X[A], e.X[B])
}

func (e Progress) String() string {
	return fmt.Sprintf("%d/%d iterations, %d reordered", e.Iteration, e.Iterations, e.Reordered)
}

// Sink receives the events of a run. Emit is called from the controller
// goroutine only.
type Sink interface {
	Emit(e Event)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(e Event)

// Emit calls f(e).
func (f SinkFunc) Emit(e Event) {
	f(e)
}

type discard struct{}

func (discard) Emit(Event) {}

// Recorder is a Sink that keeps every event.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

// Emit records e.
func (r *Recorder) Emit(e Event) {
	r.mu.Lock()
	r.events = append(r.events, e)
	r.mu.Unlock()
}

// Events returns the recorded events in emission order.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event(nil), r.events...)
}

// Reorderings returns the recorded Reordering events.
func (r *Recorder) Reorderings() []Reordering {
	var out []Reordering
	for _, e := range r.Events() {
		if ro, ok := e.(Reordering); ok {
			out = append(out, ro)
		}
	}
	return out
}

// Failures returns the recorded SelfTestFailure events.
func (r *Recorder) Failures() []SelfTestFailure {
	var out []SelfTestFailure
	for _, e := range r.Events() {
		if f, ok := e.(SelfTestFailure); ok {
			out = append(out, f)
		}
	}
	return out
}

// Summary returns the recorded Summary and whether there was one.
func (r *Recorder) Summary() (Summary, bool) {
	for _, e := range r.Events() {
		if s, ok := e.(Summary); ok {
			return s, true
		}
	}
	return Summary{}, false
}
