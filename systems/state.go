package systems

import (
	"github.com/automoto/doomerang-brawl/components"
	cfg "github.com/automoto/doomerang-brawl/config"
	"github.com/automoto/doomerang-brawl/world"
	"github.com/yohamta/donburi"
)

// UpdateStates runs the fighter state timers and ends timed states.
func UpdateStates(w *world.World) {
	dt := w.Dt
	combat := w.Config.Combat
	world.Each(w, components.Fighter, func(e donburi.Entity, f *components.FighterData) {
		f.StateTimer += dt

		switch f.State {
		case cfg.Hitstun:
			f.Hitstun -= dt
			if f.Hitstun <= 0 {
				f.Hitstun = 0
				f.SetState(cfg.Idle)
			}
		case cfg.Blockstun:
			f.Blockstun -= dt
			if f.Blockstun <= 0 {
				f.Blockstun = 0
				f.SetState(cfg.Idle)
			}
		case cfg.LightAttack, cfg.HeavyAttack, cfg.Launcher, cfg.Special:
			f.AttackTimer -= dt
			if f.AttackTimer <= 0 {
				f.AttackTimer = 0
				f.SetState(cfg.Idle)
			}
		case cfg.Blocking:
			endAfter(f, combat.BlockDuration)
		case cfg.Parrying:
			endAfter(f, combat.ParryDuration)
		case cfg.Dodging:
			if endAfter(f, combat.DodgeDuration) {
				f.Invulnerable = false
			}
		case cfg.Jumping:
			if f.StateTimer >= combat.JumpDuration/2 {
				f.SetState(cfg.Falling)
			}
		case cfg.Falling:
			endAfter(f, combat.JumpDuration/2)
		}
	})
}

// endAfter returns the fighter to Idle once it spent d in its state.
func endAfter(f *components.FighterData, d float64) bool {
	if f.StateTimer < d {
		return false
	}
	f.SetState(cfg.Idle)
	return true
}

// UpdateHurtboxes fits each hurtbox to its owner's posture.
func UpdateHurtboxes(w *world.World) {
	world.Each2(w, components.Fighter, components.Hurtbox, func(_ donburi.Entity, f *components.FighterData, h *components.HurtboxData) {
		var want components.HurtboxData
		switch {
		case f.Invulnerable, f.State == cfg.Dodging, f.State == cfg.KnockedDown:
			want = components.InvulnerableHurtbox()
		case f.State == cfg.Crouching:
			want = components.CrouchingHurtbox()
		case f.State == cfg.Jumping, f.State == cfg.Falling:
			want = components.AirborneHurtbox()
		default:
			want = components.StandingHurtbox()
		}
		if h.Kind != want.Kind {
			*h = want
		}
	})
}
