package systems

import (
	"math"

	"github.com/automoto/doomerang-brawl/components"
	cfg "github.com/automoto/doomerang-brawl/config"
	"github.com/automoto/doomerang-brawl/world"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// UpdateAI runs every AI controller. Decisions are only taken when the
// reaction timer expires; every roll comes from the match RNG.
func UpdateAI(w *world.World) {
	world.Each(w, components.AIController, func(e donburi.Entity, ai *components.AIControllerData) {
		if world.Has(w, e, components.Death) {
			return
		}
		updateAIController(w, e, ai)
	})
}

func updateAIController(w *world.World, e donburi.Entity, ai *components.AIControllerData) {
	f, ok := world.Get(w, e, components.Fighter)
	if !ok {
		return
	}
	self, ok := world.Get(w, e, components.Transform)
	if !ok {
		return
	}
	conf := w.Config.AI

	// --------------------------------------------------------------------
	// 1. Reaction timer
	// --------------------------------------------------------------------
	ai.ReactionTimer -= w.Dt
	expired := ai.ReactionTimer <= 0
	if expired {
		next := conf.ReactionBase - conf.ReactionDifficultyScale*ai.Difficulty + w.RNG.Range(0, conf.ReactionJitter)
		ai.ReactionTimer = max(next, conf.ReactionFloor)
	}
	ai.HasAction = false

	// --------------------------------------------------------------------
	// 2. Target acquisition
	// --------------------------------------------------------------------
	target, ok := aiTargetPosition(w, ai)
	if !ok {
		acquireTarget(w, e, f, self.Position, ai)
		target, ok = aiTargetPosition(w, ai)
	}
	if !ok {
		if f.State.Actionable() {
			stopFighter(w, e)
			f.SetState(cfg.Idle)
		}
		return
	}

	if ai.Behavior == cfg.BehaviorBoss {
		updateBossPhase(w, e, ai)
	}

	sep := dmath.Vec2{X: target.X - self.Position.X, Y: target.Y - self.Position.Y}
	d := math.Hypot(sep.X, sep.Y)
	free := f.State.Actionable() && !superRunning(w, e)

	// --------------------------------------------------------------------
	// 3. Movement, only while free so knockback is never overwritten
	// --------------------------------------------------------------------
	if free {
		moveAI(w, e, f, ai, sep, d)
	}

	// --------------------------------------------------------------------
	// 4. Action roll on expiry
	// --------------------------------------------------------------------
	if expired {
		r := w.RNG.Float64()
		if action, ok := chooseAction(ai.Behavior, ai.Phase, d, r); ok {
			ai.LastAction = action
			ai.HasAction = true
			if !f.State.IsStunned() && free {
				PerformAction(w, e, action)
			}
		}
	}

	// --------------------------------------------------------------------
	// 5. Facing
	// --------------------------------------------------------------------
	if free && math.Abs(sep.X) > conf.FacingThreshold {
		f.FaceToward(sep.X)
	}
}

func superRunning(w *world.World, e donburi.Entity) bool {
	s, ok := world.Get(w, e, components.Super)
	return ok && s.Running()
}

func aiTargetPosition(w *world.World, ai *components.AIControllerData) (dmath.Vec2, bool) {
	if !ai.HasTarget || world.Has(w, ai.Target, components.Death) {
		return dmath.Vec2{}, false
	}
	t, ok := world.Get(w, ai.Target, components.Transform)
	if !ok {
		return dmath.Vec2{}, false
	}
	return t.Position, true
}

// acquireTarget picks a new target. Enemies hunt the lowest-id player
// fighter; the player side hunts the nearest enemy, ties by lowest id.
func acquireTarget(w *world.World, self donburi.Entity, f *components.FighterData, pos dmath.Vec2, ai *components.AIControllerData) {
	ai.ClearTarget()
	best := math.MaxFloat64
	for _, e := range world.Entities(w, components.Fighter, components.Transform) {
		if e == self || world.Has(w, e, components.Death) {
			continue
		}
		other, _ := world.Get(w, e, components.Fighter)
		if f.Team == cfg.TeamEnemy {
			if other.Team != cfg.TeamPlayer {
				continue
			}
			ai.Target, ai.HasTarget = e, true
			return
		}
		if other.Team != cfg.TeamEnemy {
			continue
		}
		t, _ := world.Get(w, e, components.Transform)
		dx, dy := t.Position.X-pos.X, t.Position.Y-pos.Y
		if d2 := dx*dx + dy*dy; d2 < best {
			best = d2
			ai.Target, ai.HasTarget = e, true
		}
	}
}

func updateBossPhase(w *world.World, e donburi.Entity, ai *components.AIControllerData) {
	h, ok := world.Get(w, e, components.Health)
	if !ok {
		return
	}
	frac := h.Fraction()
	phase := cfg.BossPhase1
	switch {
	case frac <= w.Config.AI.BossPhase3:
		phase = cfg.BossPhase3
	case frac <= w.Config.AI.BossPhase2:
		phase = cfg.BossPhase2
	}
	// phases never step back, even after healing
	if phase > ai.Phase {
		w.Logger.Info("boss phase", "tick", w.Tick, "entity", world.ID(e), "phase", int(phase)+1)
		ai.Phase = phase
	}
}

func moveAI(w *world.World, e donburi.Entity, f *components.FighterData, ai *components.AIControllerData, sep dmath.Vec2, d float64) {
	vel, ok := world.Get(w, e, components.Velocity)
	if !ok {
		return
	}
	conf := w.Config.AI
	dist := cfg.Distances[ai.Behavior]
	speed := speedMultiplier(w, e)
	dirX := 1.0
	if sep.X < 0 {
		dirX = -1
	}

	vel.Linear.X = 0
	switch {
	case d > dist.Approach:
		vel.Linear.X = dirX * (conf.ApproachSpeed + conf.ApproachSpeedScale*ai.Difficulty) * speed
	case d < dist.Retreat:
		vel.Linear.X = -dirX * (conf.RetreatSpeed + conf.RetreatSpeedScale*ai.Difficulty) * speed
	}

	vel.Linear.Y = 0
	if math.Abs(sep.Y) > conf.DepthThreshold {
		dirY := 1.0
		if sep.Y < 0 {
			dirY = -1
		}
		vel.Linear.Y = dirY * (conf.DepthSpeed + conf.DepthSpeedScale*ai.Difficulty) * speed
	}

	if vel.Linear.X != 0 || vel.Linear.Y != 0 {
		f.SetState(cfg.Walking)
	} else {
		f.SetState(cfg.Idle)
	}
}

// chooseAction is the action table of each behavior. r is in [0,1).
func chooseAction(b cfg.Behavior, phase cfg.BossPhase, d, r float64) (cfg.Action, bool) {
	switch b {
	case cfg.BehaviorAggressive:
		switch {
		case d < 70:
			if r < 0.7 {
				return cfg.ActionHeavyAttack, true
			}
			return cfg.ActionLightAttack, true
		case d < 140:
			if r < 0.5 {
				return cfg.ActionLightAttack, true
			}
			return cfg.ActionSpecial, true
		}
	case cfg.BehaviorDefensive:
		switch {
		case d < 90:
			if r < 0.5 {
				return cfg.ActionBlock, true
			}
			return cfg.ActionLightAttack, true
		case d < 150:
			return cfg.ActionHeavyAttack, true
		}
	case cfg.BehaviorBalanced:
		switch {
		case d < 80:
			switch {
			case r < 0.4:
				return cfg.ActionLightAttack, true
			case r < 0.7:
				return cfg.ActionHeavyAttack, true
			}
			return cfg.ActionBlock, true
		case d < 160:
			if r < 0.6 {
				return cfg.ActionLightAttack, true
			}
			return cfg.ActionSpecial, true
		}
	case cfg.BehaviorSupport:
		switch {
		case d < 90:
			switch {
			case r < 0.5:
				return cfg.ActionLightAttack, true
			case r < 0.8:
				return cfg.ActionHeavyAttack, true
			}
			return cfg.ActionSpecial, true
		case d < 180:
			if r < 0.7 {
				return cfg.ActionLightAttack, true
			}
			return cfg.ActionHeavyAttack, true
		}
	case cfg.BehaviorEvasive:
		if d < 100 {
			if r < 0.5 {
				return cfg.ActionDodge, true
			}
			return cfg.ActionBlock, true
		}
	case cfg.BehaviorBoss:
		switch phase {
		case cfg.BossPhase1:
			if d < 120 {
				return cfg.ActionHeavyAttack, true
			}
		case cfg.BossPhase2:
			switch {
			case d < 100:
				return cfg.ActionSpecial, true
			case d < 180:
				return cfg.ActionLightAttack, true
			}
		case cfg.BossPhase3:
			switch {
			case r < 0.5:
				return cfg.ActionSuper, true
			case d < 150:
				return cfg.ActionHeavyAttack, true
			}
		}
	}
	return 0, false
}
