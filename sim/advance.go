package sim

import (
	"fmt"

	"github.com/automoto/doomerang-brawl/systems"
	"github.com/automoto/doomerang-brawl/world"
	"github.com/yohamta/donburi/ecs"
)

// InvariantError reports a broken simulation invariant. The tick that
// produced it was abandoned and the simulation accepts no further ticks.
type InvariantError struct {
	Tick   uint32
	System string
	Err    error
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("sim: tick %d: %s: %v", e.Tick, e.System, e.Err)
}

func (e *InvariantError) Unwrap() error {
	return e.Err
}

type system struct {
	name string
	run  func(*world.World) error
}

func infallible(fn func(*world.World)) func(*world.World) error {
	return func(w *world.World) error {
		fn(w)
		return nil
	}
}

// pipeline is the per-tick system order. Events published by a system are
// delivered before the next one runs.
var pipeline = []system{
	{"control", infallible(systems.UpdateControl)},
	{"ai", infallible(systems.UpdateAI)},
	{"movement", infallible(systems.UpdateMovement)},
	{"physics", infallible(systems.UpdatePhysics)},
	{"animation", infallible(systems.UpdateAnimations)},
	{"combat", systems.UpdateCombat},
	{"states", infallible(systems.UpdateStates)},
	{"hitboxes", infallible(systems.UpdateHitboxes)},
	{"combos", infallible(systems.UpdateCombos)},
	{"supers", infallible(systems.UpdateSupers)},
	{"abilities", infallible(systems.UpdateAbilities)},
	{"mechanics", infallible(systems.UpdateMechanics)},
	{"deaths", infallible(systems.UpdateDeaths)},
	{"match", infallible(systems.UpdateMatch)},
	{"hurtboxes", infallible(systems.UpdateHurtboxes)},
	{"particles", infallible(systems.UpdateParticles)},
	{"invariants", systems.CheckInvariants},
}

// schedule registers the pipeline on an ECS over the match world. A system
// that fails ends the tick: the systems after it are skipped.
func (s *Sim) schedule() *ecs.ECS {
	e := ecs.NewECS(s.w.World)
	for _, sys := range pipeline {
		e.AddSystem(s.guard(sys))
	}
	return e
}

func (s *Sim) guard(sys system) ecs.System {
	return func(*ecs.ECS) {
		if s.tickErr != nil {
			return
		}
		if err := sys.run(s.w); err != nil {
			s.tickErr = &InvariantError{Tick: s.w.Tick, System: sys.name, Err: err}
			return
		}
		s.w.Events.Deliver()
	}
}

// Advance feeds a host frame time into the accumulator and runs every tick
// it covers. Frame times are clamped to [0, MaxFrameTime].
func (s *Sim) Advance(frameTime float64) error {
	if s.err != nil {
		return fmt.Errorf("%w: %w", ErrHalted, s.err)
	}
	if s.stopped {
		return ErrStopped
	}

	frameTime = min(max(frameTime, 0), s.conf.Sim.MaxFrameTime)
	s.acc += frameTime
	for s.acc >= s.dt && !s.stopped {
		if err := s.step(); err != nil {
			s.err = err
			s.acc = 0
			s.logger.Error("tick failed", "tick", s.w.Tick, "err", err)
			return err
		}
		s.acc -= s.dt
	}
	return nil
}

// Step runs exactly one tick regardless of the accumulator.
func (s *Sim) Step() error {
	if s.err != nil {
		return fmt.Errorf("%w: %w", ErrHalted, s.err)
	}
	if s.stopped {
		return ErrStopped
	}
	if err := s.step(); err != nil {
		s.err = err
		return err
	}
	return nil
}

func (s *Sim) step() error {
	w := s.w
	w.Tick++
	w.Time = float64(w.Tick-1) * s.dt
	end := float64(w.Tick) * s.dt

	if s.feed != nil {
		s.applyRecorded(*s.feed)
	} else {
		s.injectScript(end)
		s.foldInputs(end)
	}

	s.tickErr = nil
	s.ecs.Update()
	if s.tickErr != nil {
		return s.tickErr
	}
	w.Events.Deliver()

	if s.recorder.Recording() {
		if err := s.recorder.Capture(s.captureFrame()); err != nil {
			return &InvariantError{Tick: w.Tick, System: "replay", Err: err}
		}
	}
	return nil
}
