// Package input buffers timestamped fighter inputs and matches command
// sequences against them.
package input

import (
	"errors"

	"github.com/automoto/doomerang-brawl/config"
)

// ErrOutOfOrder is returned when an event is older than the newest buffered one.
var ErrOutOfOrder = errors.New("input: event timestamp precedes buffer tail")

// Event is one press or release of an action at a point in time.
type Event struct {
	Action  config.Action
	Time    float64
	Pressed bool
}

// Buffer holds at most size events with non-decreasing timestamps. When full
// the oldest event is evicted; Prune evicts events older than the window.
type Buffer struct {
	events []Event
	size   int
	window float64
}

func NewBuffer(size int, window float64) *Buffer {
	if size <= 0 {
		size = 1
	}
	return &Buffer{
		events: make([]Event, 0, size),
		size:   size,
		window: window,
	}
}

// Push appends ev, evicting the oldest event when the buffer is full.
func (b *Buffer) Push(ev Event) error {
	if n := len(b.events); n > 0 && ev.Time < b.events[n-1].Time {
		return ErrOutOfOrder
	}
	if len(b.events) == b.size {
		copy(b.events, b.events[1:])
		b.events = b.events[:len(b.events)-1]
	}
	b.events = append(b.events, ev)
	return nil
}

// Prune drops events older than the window relative to now.
func (b *Buffer) Prune(now float64) {
	cut := 0
	for cut < len(b.events) && now-b.events[cut].Time > b.window {
		cut++
	}
	if cut > 0 {
		b.events = append(b.events[:0], b.events[cut:]...)
	}
}

// TakeBefore removes and returns, in order, every event stamped before t.
func (b *Buffer) TakeBefore(t float64) []Event {
	n := 0
	for n < len(b.events) && b.events[n].Time < t {
		n++
	}
	if n == 0 {
		return nil
	}
	out := make([]Event, n)
	copy(out, b.events[:n])
	b.events = append(b.events[:0], b.events[n:]...)
	return out
}

// Last returns the newest event.
func (b *Buffer) Last() (Event, bool) {
	if len(b.events) == 0 {
		return Event{}, false
	}
	return b.events[len(b.events)-1], true
}

func (b *Buffer) Len() int {
	return len(b.events)
}

// Events returns a copy of the buffered events, oldest first.
func (b *Buffer) Events() []Event {
	out := make([]Event, len(b.events))
	copy(out, b.events)
	return out
}
