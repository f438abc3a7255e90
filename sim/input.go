package sim

import (
	"errors"
	"fmt"
	"slices"

	"github.com/automoto/doomerang-brawl/components"
	cfg "github.com/automoto/doomerang-brawl/config"
	"github.com/automoto/doomerang-brawl/input"
	"github.com/automoto/doomerang-brawl/world"
	"github.com/yohamta/donburi"
)

var (
	// ErrInputOutOfWindow is returned for events stamped before the current
	// simulated time; their tick has already run.
	ErrInputOutOfWindow = errors.New("sim: input precedes simulated time")
	// ErrInputOutOfOrder is returned when a player's events go back in time.
	ErrInputOutOfOrder = errors.New("sim: input timestamp regressed")
)

// InputEvent is one host press or release.
type InputEvent struct {
	Player  uint8
	Action  cfg.Action
	Time    float64 // simulated seconds
	Pressed bool
}

// InjectInput queues a host event for the tick covering its timestamp.
func (s *Sim) InjectInput(ev InputEvent) error {
	if ev.Action < 0 || ev.Action >= cfg.ActionCount {
		return fmt.Errorf("sim: inject input: unknown action %d", int(ev.Action))
	}
	if ev.Time < s.Time() {
		return fmt.Errorf("sim: inject input at %.4fs, simulated to %.4fs: %w", ev.Time, s.Time(), ErrInputOutOfWindow)
	}
	if err := s.host(ev.Player).Push(input.Event{Action: ev.Action, Time: ev.Time, Pressed: ev.Pressed}); err != nil {
		if errors.Is(err, input.ErrOutOfOrder) {
			return fmt.Errorf("sim: inject input for player %d: %w", ev.Player, ErrInputOutOfOrder)
		}
		return fmt.Errorf("sim: inject input: %w", err)
	}
	return nil
}

func (s *Sim) host(player uint8) *input.Buffer {
	b, ok := s.hosts[player]
	if !ok {
		b = input.NewBuffer(s.conf.Input.BufferSize, s.conf.Input.CommandWindow)
		s.hosts[player] = b
	}
	return b
}

func (s *Sim) bindPlayer(player uint8) {
	if slices.Contains(s.players, player) {
		return
	}
	s.players = append(s.players, player)
	slices.Sort(s.players)
	s.host(player)
}

// injectScript moves scripted events due before end into the host buffers.
func (s *Sim) injectScript(end float64) {
	for s.scriptPos < len(s.script) && s.script[s.scriptPos].Time < end {
		ev := s.script[s.scriptPos]
		s.scriptPos++
		err := s.host(ev.Player).Push(input.Event{Action: ev.Action, Time: max(ev.Time, s.w.Time), Pressed: ev.Pressed})
		if err != nil {
			s.logger.Warn("script event dropped", "tick", s.w.Tick, "player", ev.Player, "action", ev.Action, "err", err)
		}
	}
}

// foldInputs turns each bound player's events before end into this tick's
// frame.
func (s *Sim) foldInputs(end float64) {
	for _, p := range s.players {
		f := input.Fold(s.held[p], s.host(p).TakeBefore(end))
		s.held[p] = f.Held
		s.frames[p] = f
	}
	s.assignFrames()
}

func (s *Sim) assignFrames() {
	world.Each(s.w, components.InputSource, func(_ donburi.Entity, src *components.InputSourceData) {
		src.Frame = s.frames[src.Player]
	})
}
