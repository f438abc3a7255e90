package systems

import (
	"fmt"
	"sort"

	"github.com/automoto/doomerang-brawl/components"
	cfg "github.com/automoto/doomerang-brawl/config"
	"github.com/automoto/doomerang-brawl/events"
	"github.com/automoto/doomerang-brawl/systems/factory"
	"github.com/automoto/doomerang-brawl/world"
	"github.com/yohamta/donburi"
)

type contact struct {
	attacker donburi.Entity
	defender donburi.Entity
}

// UpdateCombat resolves every hitbox against every hurtbox it touches.
// Contacts are collected first and applied afterwards in (attacker id,
// defender id) order. A defender struck twice by one activation is an
// invariant violation and aborts the pass.
func UpdateCombat(w *world.World) error {
	syncBroadphase(w)
	for _, c := range collectContacts(w) {
		if err := applyContact(w, c); err != nil {
			return err
		}
	}
	return nil
}

func collectContacts(w *world.World) []contact {
	var out []contact
	for _, att := range world.Entities(w, components.Hitbox) {
		hb, _ := world.Get(w, att, components.Hitbox)
		at, ok := world.Get(w, att, components.Transform)
		if !ok {
			w.Logger.Debug("attacker without transform", "tick", w.Tick, "entity", world.ID(att))
			continue
		}
		af, ok := world.Get(w, att, components.Fighter)
		if !ok {
			continue
		}
		hitRect := hb.WorldRect(at.Position, af.Facing)

		for _, def := range hurtboxCandidates(w, hitRect, af.Team) {
			if def == att {
				continue
			}
			dt, ok := world.Get(w, def, components.Transform)
			if !ok {
				w.Logger.Debug("defender without transform", "tick", w.Tick, "entity", world.ID(def))
				continue
			}
			df, ok := world.Get(w, def, components.Fighter)
			if !ok {
				continue
			}
			hurt, ok := world.Get(w, def, components.Hurtbox)
			if !ok || !hurt.Active() || df.Invulnerable {
				continue
			}
			if af.Team.AlliedWith(df.Team) {
				continue
			}
			if hb.Registered(def) {
				continue
			}
			if !hitRect.Overlaps(hurt.WorldRect(dt.Position)) {
				continue
			}
			out = append(out, contact{attacker: att, defender: def})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].attacker.Id() != out[j].attacker.Id() {
			return out[i].attacker.Id() < out[j].attacker.Id()
		}
		return out[i].defender.Id() < out[j].defender.Id()
	})
	return out
}

func applyContact(w *world.World, c contact) error {
	hb, ok := world.Get(w, c.attacker, components.Hitbox)
	if !ok {
		return nil
	}
	at, ok1 := world.Get(w, c.attacker, components.Transform)
	dt, ok2 := world.Get(w, c.defender, components.Transform)
	if !ok1 || !ok2 {
		w.Logger.Debug("contact lost its transform", "tick", w.Tick,
			"attacker", world.ID(c.attacker), "defender", world.ID(c.defender))
		return nil
	}
	af, _ := world.Get(w, c.attacker, components.Fighter)
	df, _ := world.Get(w, c.defender, components.Fighter)
	meterConf := w.Config.Meter

	// --------------------------------------------------------------------
	// 1. One hit per defender per activation
	// --------------------------------------------------------------------
	if err := hb.Register(c.defender); err != nil {
		return fmt.Errorf("systems: combat: attacker %d defender %d: %w",
			world.ID(c.attacker), world.ID(c.defender), err)
	}

	dir := 1.0
	if dt.Position.X < at.Position.X {
		dir = -1
	}

	// --------------------------------------------------------------------
	// 2. Parry and block
	// --------------------------------------------------------------------
	switch {
	case df.State == cfg.Parrying:
		df.Meter.Gain(meterConf, components.GainParrySuccessful, 0)
		events.Publish(w.Events, events.HitParriedEvent, w.Tick, events.HitParried{
			Attacker: c.attacker,
			Defender: c.defender,
		})
		return nil
	case df.State == cfg.Blocking && (!w.Config.Combat.BlockRequiresFacing || df.Facing == -dir):
		if hb.Blockstun > 0 {
			df.Blockstun = hb.Blockstun
			df.SetState(cfg.Blockstun)
		}
		if vel, ok := world.Get(w, c.defender, components.Velocity); ok {
			vel.Linear.X = dir * hb.Pushback.X * 0.5
		}
		df.Meter.Gain(meterConf, components.GainBlockSuccessful, 0)
		events.Publish(w.Events, events.HitBlockedEvent, w.Tick, events.HitBlocked{
			Attacker: c.attacker,
			Defender: c.defender,
			Kind:     hb.Kind,
		})
		return nil
	}

	// --------------------------------------------------------------------
	// 3. Damage, using the combo scaling from before this hit
	// --------------------------------------------------------------------
	combo, hasCombo := world.Get(w, c.attacker, components.Combo)
	base := hb.Damage + takeSoupBonus(w, c.attacker)
	damage := base * CharacterMultiplier(w, c.attacker)
	hitstunFactor := 1.0
	if hasCombo {
		damage = combo.Scale(damage)
		hitstunFactor = combo.HitstunFactor()
	}
	health, _ := world.Get(w, c.defender, components.Health)
	if health != nil {
		health.Damage(damage)
	}

	// --------------------------------------------------------------------
	// 4. Hitstun, shortened by armor unless the hit breaks it
	// --------------------------------------------------------------------
	hitstun := hb.Hitstun * hitstunFactor
	if !hb.ArmorBreak {
		armor := 0.0
		if health != nil {
			armor = health.Armor
		}
		if a, ok := world.Get(w, c.defender, components.Ability); ok {
			armor += a.ArmorBonus()
		}
		hitstun -= armor
	}
	hitstun = max(hitstun, 0)
	dead := health != nil && health.Dead()
	if hitstun > 0 && !dead {
		interrupt(w, c.defender, df)
		df.Hitstun = hitstun
		df.Blockstun = 0
		df.SetState(cfg.Hitstun)
	}

	// --------------------------------------------------------------------
	// 5. Knockback
	// --------------------------------------------------------------------
	if vel, ok := world.Get(w, c.defender, components.Velocity); ok {
		vel.Linear.X = dir * hb.Pushback.X
		vel.Linear.Y = -hb.Pushback.Y
		if hb.HasLaunch() {
			vel.Linear.Y = hb.Launch.Y
		}
	}

	events.Publish(w.Events, events.HitLandedEvent, w.Tick, events.HitLanded{
		Attacker: c.attacker,
		Defender: c.defender,
		Damage:   damage,
		Kind:     hb.Kind,
	})

	// --------------------------------------------------------------------
	// 6. Combo, meter and mechanics
	// --------------------------------------------------------------------
	extended := false
	if hasCombo {
		extended = combo.RegisterHit(w.Config.Combo, damage)
	}
	af.Meter.Gain(meterConf, components.GainDamageDealt, damage)
	df.Meter.Gain(meterConf, components.GainDamageReceived, damage)
	if extended {
		af.Meter.Gain(meterConf, components.GainComboExtended, 0)
	}
	if mech, ok := world.Get(w, c.attacker, components.Mechanics); ok {
		if m, ok := mech.Mechanic.(*components.AuthorityMechanic); ok {
			m.Authority = min(m.Authority+cfg.AuthorityPerHit, cfg.AuthorityMax)
		}
	}

	if dead {
		StartDeath(w, c.defender, c.attacker)
	}
	return nil
}

// interrupt cancels whatever the defender was doing when a hit lands.
func interrupt(w *world.World, e donburi.Entity, f *components.FighterData) {
	factory.DetachHitbox(w, e)
	f.AttackTimer = 0
	if s, ok := world.Get(w, e, components.Super); ok && s.Running() {
		s.Enter(components.SuperIdle)
	}
}

func takeSoupBonus(w *world.World, e donburi.Entity) float64 {
	mech, ok := world.Get(w, e, components.Mechanics)
	if !ok {
		return 0
	}
	m, ok := mech.Mechanic.(*components.FoodMechanic)
	if !ok {
		return 0
	}
	bonus := m.SoupBonus
	m.SoupBonus = 0
	return bonus
}

// StartDeath knocks a fighter down for good and publishes the KO.
func StartDeath(w *world.World, e, killer donburi.Entity) {
	if world.Has(w, e, components.Death) {
		return
	}
	f, ok := world.Get(w, e, components.Fighter)
	if !ok {
		return
	}
	interrupt(w, e, f)
	f.Hitstun, f.Blockstun = 0, 0
	f.Invulnerable = false
	f.SetState(cfg.KnockedDown)
	if combo, ok := world.Get(w, e, components.Combo); ok {
		combo.Reset()
	}

	world.Add(w, e, components.Death, components.DeathData{
		Timer:  w.Config.Combat.DeathDuration,
		Killer: killer,
	})

	if kf, ok := world.Get(w, killer, components.Fighter); ok {
		if m, ok := matchData(w); ok {
			m.AddKO(kf.Team)
		}
	}
	events.Publish(w.Events, events.KOEvent, w.Tick, events.KO{Attacker: killer, Defender: e})
	w.Logger.Info("knockout", "tick", w.Tick, "attacker", world.ID(killer), "defender", world.ID(e))
}
