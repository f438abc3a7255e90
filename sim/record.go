package sim

import (
	"errors"
	"fmt"

	"github.com/automoto/doomerang-brawl/components"
	cfg "github.com/automoto/doomerang-brawl/config"
	"github.com/automoto/doomerang-brawl/input"
	"github.com/automoto/doomerang-brawl/replay"
	"github.com/automoto/doomerang-brawl/world"
)

var (
	// ErrPartialReplay is returned when re-simulating a recording that does
	// not start at the first tick.
	ErrPartialReplay = errors.New("sim: replay does not start at tick 1")
	// ErrDivergence is returned when re-simulation disagrees with a recording.
	ErrDivergence = errors.New("sim: re-simulation diverged")
)

// StartRecording begins capturing a frame after every tick.
func (s *Sim) StartRecording(timestamp int64) {
	s.recorder.Start(timestamp, s.conf.Stage.Name, s.match.Characters())
	s.logger.Debug("recording started", "tick", s.w.Tick)
}

// StopRecording ends the recording. An empty winner is filled in from the
// match result.
func (s *Sim) StopRecording(winner string) (*replay.Replay, error) {
	if winner == "" {
		_, winner = s.Outcome()
	}
	r, err := s.recorder.Stop(winner)
	if err != nil {
		return nil, fmt.Errorf("sim: stop recording: %w", err)
	}
	s.logger.Debug("recording stopped", "tick", s.w.Tick, "frames", len(r.Frames), "checksum", r.Meta.Checksum)
	return r, nil
}

func (s *Sim) Recording() bool {
	return s.recorder.Recording()
}

func (s *Sim) captureFrame() replay.Frame {
	w := s.w
	f := replay.Frame{Number: w.Tick}
	for _, p := range s.players {
		in := s.frames[p]
		f.Inputs = append(f.Inputs, replay.InputSnapshot{
			PlayerID: p,
			Buttons:  in.Buttons(),
			StickX:   in.StickX,
			StickY:   in.StickY,
		})
	}
	for _, e := range world.Entities(w, components.Fighter, components.Transform) {
		t, _ := world.Get(w, e, components.Transform)
		fighter, _ := world.Get(w, e, components.Fighter)
		snap := replay.EntitySnapshot{
			ID:    world.ID(e),
			X:     float32(t.Position.X),
			Y:     float32(t.Position.Y),
			Meter: float32(fighter.Meter.Current),
		}
		if h, ok := world.Get(w, e, components.Health); ok {
			snap.Health = float32(h.Current)
		}
		f.Entities = append(f.Entities, snap)
	}
	return f
}

// applyRecorded replaces the host input of a tick with a recorded frame.
func (s *Sim) applyRecorded(f replay.Frame) {
	clear(s.frames)
	for _, in := range f.Inputs {
		frame := input.FrameFromButtons(in.Buttons, in.StickX, in.StickY)
		s.frames[in.PlayerID] = frame
		s.held[in.PlayerID] = frame.Held
	}
	s.assignFrames()
}

// Resimulate runs match again from the inputs stored in r and checks that
// every tick reproduces the recorded fighters exactly.
func Resimulate(r *replay.Replay, match cfg.MatchConfig, opts ...Option) error {
	if len(r.Frames) == 0 {
		return nil
	}
	if r.Frames[0].Number != 1 {
		return fmt.Errorf("%w: first frame is %d", ErrPartialReplay, r.Frames[0].Number)
	}

	s, err := New(match, append(opts, WithoutScript())...)
	if err != nil {
		return fmt.Errorf("sim: resimulate: %w", err)
	}
	s.StartRecording(r.Meta.Timestamp)

	p := replay.NewPlayer(r)
	p.Start()
	for {
		want, ok := p.Next()
		if !ok {
			break
		}
		s.feed = &want
		err := s.Step()
		s.feed = nil
		if err != nil {
			return fmt.Errorf("sim: resimulate frame %d: %w", want.Number, err)
		}
		got := s.captureFrame()
		if err := sameFrame(want, got); err != nil {
			return fmt.Errorf("sim: resimulate frame %d: %w", want.Number, err)
		}
	}

	out, err := s.StopRecording(r.Meta.Winner)
	if err != nil {
		return fmt.Errorf("sim: resimulate: %w", err)
	}
	if out.Meta.Checksum != r.Meta.Checksum {
		return fmt.Errorf("sim: resimulate: checksum %08x, recorded %08x: %w", out.Meta.Checksum, r.Meta.Checksum, ErrDivergence)
	}
	return nil
}

func sameFrame(want, got replay.Frame) error {
	if len(want.Entities) != len(got.Entities) {
		return fmt.Errorf("%d fighters, recorded %d: %w", len(got.Entities), len(want.Entities), ErrDivergence)
	}
	for i := range want.Entities {
		if want.Entities[i] != got.Entities[i] {
			return fmt.Errorf("fighter %d at (%v, %v), recorded (%v, %v): %w",
				got.Entities[i].ID, got.Entities[i].X, got.Entities[i].Y,
				want.Entities[i].X, want.Entities[i].Y, ErrDivergence)
		}
	}
	return nil
}
