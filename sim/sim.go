// Package sim drives a match: it owns the world, steps it at a fixed rate
// from host frame times and exposes the host API.
package sim

import (
	"errors"
	"fmt"

	"github.com/automoto/doomerang-brawl/components"
	cfg "github.com/automoto/doomerang-brawl/config"
	"github.com/automoto/doomerang-brawl/events"
	"github.com/automoto/doomerang-brawl/input"
	"github.com/automoto/doomerang-brawl/replay"
	"github.com/automoto/doomerang-brawl/systems"
	"github.com/automoto/doomerang-brawl/systems/factory"
	"github.com/automoto/doomerang-brawl/world"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	// ErrStopped is returned by Advance once Stop was called.
	ErrStopped = errors.New("sim: stopped")
	// ErrHalted is returned by Advance after a tick failed.
	ErrHalted = errors.New("sim: halted after a failed tick")
)

// Sim is one running match.
type Sim struct {
	match  cfg.MatchConfig
	conf   *cfg.Config
	w      *world.World
	ecs    *ecs.ECS
	logger *log.Logger

	acc float64
	dt  float64

	hosts   map[uint8]*input.Buffer // injected events awaiting their tick
	held    map[uint8]uint16
	frames  map[uint8]input.Frame // this tick's folded input per player
	players []uint8               // players bound to a fighter, ascending

	script    []cfg.ScriptEvent
	scriptPos int

	recorder *replay.Recorder
	feed     *replay.Frame // recorded input replacing the host buffers for one tick

	stopped bool
	err     error
	tickErr error // first failure of the tick in progress
}

// Option customises a simulation.
type Option func(*Sim)

// WithLogger routes simulation logs to l.
func WithLogger(l *log.Logger) Option {
	return func(s *Sim) {
		s.logger = l
	}
}

// WithoutScript ignores the match's input script.
func WithoutScript() Option {
	return func(s *Sim) {
		s.script = nil
	}
}

// New builds a match and spawns its fighters.
func New(match cfg.MatchConfig, opts ...Option) (*Sim, error) {
	if err := match.Validate(); err != nil {
		return nil, fmt.Errorf("sim: new: %w", err)
	}
	conf := match.Tuning
	s := &Sim{
		match:  match,
		conf:   &conf,
		hosts:  make(map[uint8]*input.Buffer),
		held:   make(map[uint8]uint16),
		frames: make(map[uint8]input.Frame),
		script: match.Events(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = world.DefaultLogger()
	}

	s.w = world.New(s.conf, match.Seed, s.logger)
	s.dt = s.w.Dt
	s.ecs = s.schedule()
	s.recorder = replay.NewRecorder(s.conf.Replay.MaxFrames, s.dt, s.conf.Replay.Version)
	systems.CreateMatch(s.w)

	for i, spec := range match.Fighters {
		if _, err := s.Spawn(spec); err != nil {
			return nil, fmt.Errorf("sim: new: fighter %d: %w", i, err)
		}
	}
	s.logger.Debug("match created", "name", match.Name, "seed", match.Seed, "fighters", len(match.Fighters))
	return s, nil
}

// Spawn adds a fighter to the running match.
func (s *Sim) Spawn(spec cfg.FighterSpec) (donburi.Entity, error) {
	entry, err := factory.CreateFighter(s.w, spec)
	if err != nil {
		return donburi.Null, err
	}
	if spec.Player != nil {
		s.bindPlayer(*spec.Player)
	}
	return entry.Entity(), nil
}

// SetSeed resets the generator and records seed as the match seed, so a
// replay made afterwards re-simulates from Match. Call it once, before the
// first tick.
func (s *Sim) SetSeed(seed uint64) {
	s.w.RNG.Reseed(seed)
	s.match.Seed = seed
}

// TryActivateSuper starts e's super on behalf of the host.
func (s *Sim) TryActivateSuper(e donburi.Entity) error {
	err := systems.TryActivateSuper(s.w, e)
	s.w.Events.Deliver()
	return err
}

// DrainEvents returns the events delivered since the last drain, in
// publication order.
func (s *Sim) DrainEvents() []events.Record {
	return s.w.Events.Drain()
}

// Stop makes further Advance calls return ErrStopped.
func (s *Sim) Stop() {
	s.stopped = true
}

// Alpha is how far the host frame sits between the last tick and the next.
func (s *Sim) Alpha() float64 {
	return s.acc / s.dt
}

// Accumulator is the unsimulated time carried to the next Advance.
func (s *Sim) Accumulator() float64 {
	return s.acc
}

// Tick is the number of ticks run.
func (s *Sim) Tick() uint32 {
	return s.w.Tick
}

// Time is the simulated time covered by the ticks run.
func (s *Sim) Time() float64 {
	return float64(s.w.Tick) * s.dt
}

// Dt is the fixed tick length in seconds.
func (s *Sim) Dt() float64 {
	return s.dt
}

// World exposes the match world. Hosts read it between ticks; writing to it
// breaks replay determinism.
func (s *Sim) World() *world.World {
	return s.w
}

// Match returns the configuration the match was built from, including the
// seed set by SetSeed. Resimulate needs it to replay a recording.
func (s *Sim) Match() cfg.MatchConfig {
	return s.match
}

// Outcome reports the match state and, once it is over, the winner.
func (s *Sim) Outcome() (components.MatchState, string) {
	entry, ok := components.Match.First(s.w.World)
	if !ok {
		return components.MatchRunning, ""
	}
	m := components.Match.Get(entry)
	return m.State, m.Winner()
}

// Over reports whether the match has a result.
func (s *Sim) Over() bool {
	state, _ := s.Outcome()
	return state != components.MatchRunning
}
