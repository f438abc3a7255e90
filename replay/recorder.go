package replay

import (
	"errors"
	"fmt"
)

var (
	// ErrNotRecording is returned when capturing or stopping while idle.
	ErrNotRecording = errors.New("replay: not recording")
	// ErrFrameGap is returned when a captured frame does not follow the last one.
	ErrFrameGap = errors.New("replay: frame numbers must increase by one")
)

// DefaultMaxFrames is five minutes at 120 ticks per second.
const DefaultMaxFrames = 36000

// Recorder keeps the most recent frames of a match in a bounded ring.
type Recorder struct {
	maxFrames int
	tickDt    float64
	version   string

	ring  []Frame
	head  int // index of the oldest frame
	count int

	recording bool
	meta      Metadata
	last      uint32
	started   bool
}

// NewRecorder returns a recorder keeping at most maxFrames frames. tickDt is
// the simulated length of one frame.
func NewRecorder(maxFrames int, tickDt float64, version string) *Recorder {
	if maxFrames <= 0 {
		maxFrames = DefaultMaxFrames
	}
	return &Recorder{
		maxFrames: maxFrames,
		tickDt:    tickDt,
		version:   version,
	}
}

// Start clears the ring and begins a new recording.
func (r *Recorder) Start(timestamp int64, stage string, characters []string) {
	r.ring = r.ring[:0]
	r.head, r.count = 0, 0
	r.started = false
	r.recording = true
	r.meta = Metadata{
		Version:    r.version,
		Timestamp:  timestamp,
		Stage:      stage,
		Characters: append([]string(nil), characters...),
	}
}

// Recording reports whether frames are being captured.
func (r *Recorder) Recording() bool {
	return r.recording
}

// Capture appends a frame, evicting the oldest when the ring is full.
func (r *Recorder) Capture(f Frame) error {
	if !r.recording {
		return ErrNotRecording
	}
	if r.started && f.Number != r.last+1 {
		return fmt.Errorf("replay: capture frame %d after %d: %w", f.Number, r.last, ErrFrameGap)
	}
	r.started = true
	r.last = f.Number

	if r.count < r.maxFrames {
		r.ring = append(r.ring, f)
		r.count++
		return nil
	}
	r.ring[r.head] = f
	r.head = (r.head + 1) % r.maxFrames
	return nil
}

// Len is the number of frames held.
func (r *Recorder) Len() int {
	return r.count
}

// Frames returns the held frames, oldest first.
func (r *Recorder) Frames() []Frame {
	out := make([]Frame, 0, r.count)
	for i := 0; i < r.count; i++ {
		out = append(out, r.ring[(r.head+i)%len(r.ring)])
	}
	return out
}

// Stop ends the recording and returns it with its checksum and duration.
func (r *Recorder) Stop(winner string) (*Replay, error) {
	if !r.recording {
		return nil, ErrNotRecording
	}
	r.recording = false
	frames := r.Frames()
	meta := r.meta
	meta.Winner = winner
	meta.Duration = float64(len(frames)) * r.tickDt
	meta.Checksum = Checksum(frames)
	return &Replay{Meta: meta, Frames: frames}, nil
}
