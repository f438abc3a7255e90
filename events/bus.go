package events

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// Record is one published event with the tick it was published in.
type Record struct {
	Tick  uint32
	Event any
}

// Bus publishes events to donburi subscribers and keeps an outbound log in
// publication order for the host.
type Bus struct {
	world   donburi.World
	pending []Record
	log     []Record
}

func NewBus(w donburi.World) *Bus {
	return &Bus{world: w}
}

// Publish queues e for subscribers and the outbound log.
func Publish[T any](b *Bus, et *events.EventType[T], tick uint32, e T) {
	et.Publish(b.world, e)
	b.pending = append(b.pending, Record{Tick: tick, Event: e})
}

// Deliver hands every queued event to its subscribers and moves it to the
// outbound log.
func (b *Bus) Deliver() {
	events.ProcessAllEvents(b.world)
	b.log = append(b.log, b.pending...)
	b.pending = b.pending[:0]
}

// Drain returns the delivered records and empties the log.
func (b *Bus) Drain() []Record {
	out := b.log
	b.log = nil
	return out
}

// Pending is the number of published but undelivered events.
func (b *Bus) Pending() int {
	return len(b.pending)
}
