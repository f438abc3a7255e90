package input

import "github.com/automoto/doomerang-brawl/config"

// Match is the buffer positions of a matched command, oldest first.
type Match struct {
	indices []int
	end     float64
}

// End is the timestamp of the final input of the match.
func (m Match) End() float64 {
	return m.end
}

// Find looks for seq as a strictly time-ordered subsequence of pressed events
// whose final event lies within window of now. The most recent match wins.
func (b *Buffer) Find(seq []config.Action, window, now float64) (Match, bool) {
	if len(seq) == 0 {
		return Match{}, false
	}
	indices := make([]int, len(seq))
	want := len(seq) - 1
	next := 0.0
	for i := len(b.events) - 1; i >= 0 && want >= 0; i-- {
		ev := b.events[i]
		if !ev.Pressed || ev.Action != seq[want] {
			continue
		}
		if want == len(seq)-1 {
			if now-ev.Time > window || ev.Time > now {
				continue
			}
		} else if ev.Time >= next {
			continue
		}
		indices[want] = i
		next = ev.Time
		want--
	}
	if want >= 0 {
		return Match{}, false
	}
	return Match{indices: indices, end: b.events[indices[len(indices)-1]].Time}, true
}

// Matches reports whether seq completes within window of now. It consumes
// nothing.
func (b *Buffer) Matches(seq []config.Action, window, now float64) bool {
	_, ok := b.Find(seq, window, now)
	return ok
}

// Consume removes the events of a match found on this buffer.
func (b *Buffer) Consume(m Match) {
	if len(m.indices) == 0 {
		return
	}
	drop := make(map[int]bool, len(m.indices))
	for _, i := range m.indices {
		drop[i] = true
	}
	kept := b.events[:0]
	for i, ev := range b.events {
		if !drop[i] {
			kept = append(kept, ev)
		}
	}
	b.events = kept
}

// ConsumeAction removes every buffered event of an action.
func (b *Buffer) ConsumeAction(a config.Action) {
	kept := b.events[:0]
	for _, ev := range b.events {
		if ev.Action != a {
			kept = append(kept, ev)
		}
	}
	b.events = kept
}
