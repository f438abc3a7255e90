package systems

import (
	"slices"

	"github.com/automoto/doomerang-brawl/components"
	cfg "github.com/automoto/doomerang-brawl/config"
	"github.com/automoto/doomerang-brawl/world"
	"github.com/yohamta/donburi"
)

// pressPriority is the order single presses are tried in when several land
// on the same tick.
var pressPriority = []cfg.Action{
	cfg.ActionAbility,
	cfg.ActionParry,
	cfg.ActionDodge,
	cfg.ActionSpecial,
	cfg.ActionHeavyAttack,
	cfg.ActionLightAttack,
	cfg.ActionJump,
}

// UpdateControl turns each input source's folded frame into fighter
// actions. Press edges go into the command buffer stamped with the tick
// start, so commands match the same way live and in a replay.
func UpdateControl(w *world.World) {
	world.Each(w, components.InputSource, func(e donburi.Entity, src *components.InputSourceData) {
		if src.Commands != nil {
			for _, ev := range src.Frame.PressEvents(w.Time) {
				if err := src.Commands.Push(ev); err != nil {
					w.Logger.Error("command buffer rejected press", "tick", w.Tick, "entity", world.ID(e), "err", err)
				}
			}
			src.Commands.Prune(w.Time)
		}
		controlFighter(w, e, src)
	})
}

func controlFighter(w *world.World, e donburi.Entity, src *components.InputSourceData) {
	f, ok := world.Get(w, e, components.Fighter)
	if !ok || world.Has(w, e, components.Death) {
		return
	}
	frame := src.Frame

	// Holding block keeps the guard up
	if f.State == cfg.Blocking && frame.IsHeld(cfg.ActionBlock) {
		f.StateTimer = 0
	}
	if f.State == cfg.Crouching && !frame.IsHeld(cfg.ActionCrouch) {
		f.SetState(cfg.Idle)
	}

	// --------------------------------------------------------------------
	// 1. Command sequences, longest first. A super command cancels an
	//    attack its own presses started.
	// --------------------------------------------------------------------
	if superCommand(w, e, src) {
		return
	}
	if !canAct(w, e, f) {
		return
	}
	if src.Commands != nil {
		window := w.Config.Input.CommandWindow
		if m, found := src.Commands.Find(cfg.LauncherCommand, window, w.Time); found {
			if StartAttack(w, e, cfg.Launcher) {
				src.Commands.Consume(m)
				return
			}
		}
	}

	// --------------------------------------------------------------------
	// 2. Single presses and held stances
	// --------------------------------------------------------------------
	for _, a := range pressPriority {
		if frame.WasPressed(a) && PerformAction(w, e, a) {
			if src.Commands != nil && !inSuperCommand(w, e, a) {
				src.Commands.ConsumeAction(a)
			}
			return
		}
	}
	if frame.IsHeld(cfg.ActionBlock) {
		PerformAction(w, e, cfg.ActionBlock)
		return
	}
	if frame.IsHeld(cfg.ActionCrouch) {
		PerformAction(w, e, cfg.ActionCrouch)
		stopFighter(w, e)
		return
	}

	// --------------------------------------------------------------------
	// 3. Walking
	// --------------------------------------------------------------------
	vel, ok := world.Get(w, e, components.Velocity)
	if !ok {
		return
	}
	speed := speedMultiplier(w, e)
	vel.Linear.X = float64(frame.StickX) * w.Config.Combat.WalkSpeed * speed
	vel.Linear.Y = float64(frame.StickY) * w.Config.Combat.DepthSpeed * speed
	f.FaceToward(float64(frame.StickX))
	if frame.StickX != 0 || frame.StickY != 0 {
		f.SetState(cfg.Walking)
	} else if f.State == cfg.Walking {
		f.SetState(cfg.Idle)
	}
}

// superCommand fires the fighter's super when its command completes in the
// buffer.
func superCommand(w *world.World, e donburi.Entity, src *components.InputSourceData) bool {
	s, ok := world.Get(w, e, components.Super)
	if !ok || src.Commands == nil || len(s.Move.Sequence) == 0 {
		return false
	}
	m, found := src.Commands.Find(s.Move.Sequence, w.Config.Input.CommandWindow, w.Time)
	if !found {
		return false
	}
	if err := activateSuper(w, e, true); err != nil {
		if src.Frame.WasPressed(s.Move.Sequence[len(s.Move.Sequence)-1]) {
			w.Logger.Debug("super command refused", "tick", w.Tick, "entity", world.ID(e), "err", err)
		}
		return false
	}
	src.Commands.Consume(m)
	return true
}

// inSuperCommand reports whether a leads up to the fighter's super command.
// Such presses stay buffered until the command window drops them.
func inSuperCommand(w *world.World, e donburi.Entity, a cfg.Action) bool {
	s, ok := world.Get(w, e, components.Super)
	if !ok || len(s.Move.Sequence) == 0 {
		return false
	}
	return slices.Contains(s.Move.Sequence[:len(s.Move.Sequence)-1], a)
}

func speedMultiplier(w *world.World, e donburi.Entity) float64 {
	if a, ok := world.Get(w, e, components.Ability); ok {
		return a.SpeedMultiplier()
	}
	return 1
}

func stopFighter(w *world.World, e donburi.Entity) {
	if vel, ok := world.Get(w, e, components.Velocity); ok {
		vel.Linear.X, vel.Linear.Y = 0, 0
	}
}
