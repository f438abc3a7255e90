package systems

import (
	"errors"
	"fmt"

	"github.com/automoto/doomerang-brawl/components"
	cfg "github.com/automoto/doomerang-brawl/config"
	"github.com/automoto/doomerang-brawl/events"
	"github.com/automoto/doomerang-brawl/systems/factory"
	"github.com/automoto/doomerang-brawl/world"
	"github.com/yohamta/donburi"
)

var (
	// ErrCannotAct is returned when a fighter is stunned, dying or mid-move.
	ErrCannotAct = errors.New("systems: fighter cannot act")
	// ErrNotFighter is returned for handles that are not live fighters.
	ErrNotFighter = errors.New("systems: entity is not a fighter")
)

// PerformAction starts the move bound to a, if the fighter is free to act.
// It reports whether anything started.
func PerformAction(w *world.World, e donburi.Entity, a cfg.Action) bool {
	f, ok := world.Get(w, e, components.Fighter)
	if !ok || !canAct(w, e, f) {
		return false
	}

	switch a {
	case cfg.ActionLightAttack:
		return StartAttack(w, e, cfg.LightAttack)
	case cfg.ActionHeavyAttack:
		return StartAttack(w, e, cfg.HeavyAttack)
	case cfg.ActionSpecial:
		return performSpecial(w, e, f)
	case cfg.ActionSuper:
		err := TryActivateSuper(w, e)
		if err != nil {
			w.Logger.Debug("super refused", "tick", w.Tick, "entity", world.ID(e), "err", err)
		}
		return err == nil
	case cfg.ActionBlock:
		f.SetState(cfg.Blocking)
	case cfg.ActionParry:
		f.SetState(cfg.Parrying)
	case cfg.ActionDodge:
		f.SetState(cfg.Dodging)
		f.Invulnerable = true
		if vel, ok := world.Get(w, e, components.Velocity); ok {
			vel.Linear.X = f.Facing * w.Config.Combat.DodgeSpeed
		}
	case cfg.ActionJump:
		f.SetState(cfg.Jumping)
	case cfg.ActionCrouch:
		f.SetState(cfg.Crouching)
	case cfg.ActionAbility:
		return ActivateAbility(w, e) == nil
	default:
		return false
	}
	return true
}

// canAct reports whether a fighter may start a new move.
func canAct(w *world.World, e donburi.Entity, f *components.FighterData) bool {
	if world.Has(w, e, components.Death) || !f.State.Actionable() {
		return false
	}
	if s, ok := world.Get(w, e, components.Super); ok && s.Running() {
		return false
	}
	return true
}

// canCancel reports whether the fighter is in an attack a super may cut
// short.
func canCancel(w *world.World, e donburi.Entity, f *components.FighterData) bool {
	return f.State.IsAttack() && !world.Has(w, e, components.Death)
}

// StartAttack puts the fighter into an attack state and stamps its hitbox.
func StartAttack(w *world.World, e donburi.Entity, state cfg.FighterState) bool {
	f, ok := world.Get(w, e, components.Fighter)
	if !ok {
		return false
	}
	move, ok := cfg.MoveFor(f.Character, state)
	if !ok {
		return false
	}
	startMove(w, e, f, state, move)
	return true
}

func startMove(w *world.World, e donburi.Entity, f *components.FighterData, state cfg.FighterState, move cfg.MoveDef) {
	f.SetState(state)
	f.AttackTimer = move.Duration()
	factory.AttachHitbox(w, e, move.Hitbox, move.Active)
}

// performSpecial dispatches Special on the character mechanic.
func performSpecial(w *world.World, e donburi.Entity, f *components.FighterData) bool {
	mech, _ := world.Get(w, e, components.Mechanics)
	if mech != nil {
		switch m := mech.Mechanic.(type) {
		case *components.PlaneMechanic:
			if m.Flying {
				if m.Bombs <= 0 || m.BombCooldown > 0 {
					return false
				}
				m.Bombs--
				m.BombCooldown = cfg.PlaneBombCooldown
				bomb := cfg.SpecialMove(f.Character)
				bomb.Hitbox = cfg.SpecialHitboxes[cfg.SpecialEraserBomb]
				startMove(w, e, f, cfg.Special, bomb)
				f.Meter.Gain(w.Config.Meter, components.GainSpecialMove, 0)
				return true
			}
		case *components.FoodMechanic:
			if len(m.Ready) > 0 {
				serveFood(w, e, m)
				return true
			}
		}
	}
	startMove(w, e, f, cfg.Special, cfg.SpecialMove(f.Character))
	f.Meter.Gain(w.Config.Meter, components.GainSpecialMove, 0)
	return true
}

func serveFood(w *world.World, e donburi.Entity, m *components.FoodMechanic) {
	dish := m.Ready[0]
	m.Ready = m.Ready[1:]
	switch dish {
	case components.FoodSalad:
		if h, ok := world.Get(w, e, components.Health); ok {
			h.Heal(cfg.FoodSaladHeal)
		}
	case components.FoodSoup:
		m.SoupBonus += cfg.FoodSoupDamage
	}
	w.Logger.Debug("food served", "tick", w.Tick, "entity", world.ID(e), "dish", int(dish))
}

// TryActivateSuper pays for and starts the fighter's super. With too little
// meter it returns components.ErrInsufficientMeter and nothing changes.
func TryActivateSuper(w *world.World, e donburi.Entity) error {
	return activateSuper(w, e, false)
}

// activateSuper starts the super. With cancel set a fighter may also leave
// an attack for it; the attack's hitbox goes away.
func activateSuper(w *world.World, e donburi.Entity, cancel bool) error {
	f, ok := world.Get(w, e, components.Fighter)
	if !ok {
		return ErrNotFighter
	}
	s, ok := world.Get(w, e, components.Super)
	if !ok {
		return ErrNotFighter
	}
	if s.Running() || !(canAct(w, e, f) || cancel && canCancel(w, e, f)) {
		return ErrCannotAct
	}
	if err := f.Meter.Consume(s.Move.Cost); err != nil {
		return fmt.Errorf("systems: super %q: %w", s.Move.Name, err)
	}

	s.Enter(components.SuperStartup)
	f.SetState(cfg.Super)
	f.AttackTimer = 0
	f.Invulnerable = true
	factory.DetachHitbox(w, e)
	if vel, ok := world.Get(w, e, components.Velocity); ok {
		vel.Linear.X, vel.Linear.Y = 0, 0
	}

	events.Publish(w.Events, events.SuperActivatedEvent, w.Tick, events.SuperActivated{
		Entity: e,
		Name:   s.Move.Name,
	})
	w.Logger.Info("super activated", "tick", w.Tick, "entity", world.ID(e), "super", s.Move.Name)
	return nil
}

// ActivateAbility starts the fighter's character ability.
func ActivateAbility(w *world.World, e donburi.Entity) error {
	a, ok := world.Get(w, e, components.Ability)
	if !ok {
		return ErrNotFighter
	}
	if err := a.Activate(); err != nil {
		return err
	}
	if a.Def.HealthBoost > 0 {
		if h, ok := world.Get(w, e, components.Health); ok {
			h.Heal(a.Def.HealthBoost)
		}
	}
	if a.Def.PlaneSummon {
		if mech, ok := world.Get(w, e, components.Mechanics); ok {
			if plane, ok := mech.Mechanic.(*components.PlaneMechanic); ok {
				plane.Flying = true
				plane.Bombs = cfg.PlaneBombs
				plane.BombCooldown = 0
			}
		}
	}
	events.Publish(w.Events, events.AbilityActivatedEvent, w.Tick, events.AbilityActivated{
		Entity: e,
		Name:   a.Def.Name,
	})
	return nil
}

// CharacterMultiplier is the damage multiplier a fighter's ability and
// mechanic grant right now.
func CharacterMultiplier(w *world.World, e donburi.Entity) float64 {
	mult := 1.0
	if a, ok := world.Get(w, e, components.Ability); ok {
		mult *= a.DamageMultiplier()
	}
	if mech, ok := world.Get(w, e, components.Mechanics); ok {
		switch m := mech.Mechanic.(type) {
		case *components.PlaneMechanic:
			if m.Flying {
				mult *= cfg.PlaneDamageBonus
			}
		case *components.AuthorityMechanic:
			if m.Empowered() {
				mult *= cfg.AuthorityDamageBonus
			}
		}
	}
	return mult
}
