package factory

import (
	"fmt"

	"github.com/automoto/doomerang-brawl/archetypes"
	"github.com/automoto/doomerang-brawl/components"
	cfg "github.com/automoto/doomerang-brawl/config"
	"github.com/automoto/doomerang-brawl/input"
	"github.com/automoto/doomerang-brawl/tags"
	"github.com/automoto/doomerang-brawl/world"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CreateFighter spawns a fighter from its match description.
func CreateFighter(w *world.World, spec cfg.FighterSpec) (*donburi.Entry, error) {
	def, ok := cfg.Characters[spec.Character]
	if !ok {
		return nil, fmt.Errorf("factory: unknown character %d", int(spec.Character))
	}

	extra := []donburi.IComponentType{archetypes.TeamTag(spec.Team)}
	if spec.Boss {
		extra = append(extra, tags.Boss)
	}
	if spec.Player != nil {
		extra = append(extra, components.InputSource)
	}
	if spec.AI != nil {
		extra = append(extra, components.AIController)
	}
	fighter := archetypes.Fighter.Spawn(w, extra...)

	facing := 1.0
	if spec.Facing < 0 {
		facing = -1
	}

	components.Transform.SetValue(fighter, components.TransformData{
		Position: math.Vec2{X: spec.X, Y: spec.Y},
		Scale:    1,
	})
	components.Health.SetValue(fighter, components.HealthData{
		Current: def.MaxHealth,
		Maximum: def.MaxHealth,
		Armor:   def.Armor,
	})

	meter := components.NewMeter(w.Config.Meter)
	meter.Current = min(max(spec.Meter, 0), meter.Maximum)
	components.Fighter.SetValue(fighter, components.FighterData{
		Character: spec.Character,
		Team:      spec.Team,
		State:     cfg.Idle,
		Facing:    facing,
		Meter:     meter,
	})
	components.Hurtbox.SetValue(fighter, components.StandingHurtbox())
	components.PhysicsBody.SetValue(fighter, components.PhysicsBodyData{
		Mass:         1,
		Friction:     w.Config.Physics.FighterFriction,
		GravityScale: w.Config.Physics.FighterGravity,
		Clamped:      true,
	})

	anim := components.Animation.Get(fighter)
	anim.SetAnimation(cfg.Idle, cfg.AnimationFor(cfg.Idle))

	components.Combo.SetValue(fighter, components.NewCombo())
	components.Super.SetValue(fighter, components.SuperData{Move: cfg.SuperFor(spec.Character)})
	components.Ability.SetValue(fighter, components.AbilityData{Def: def.Ability})
	components.Mechanics.SetValue(fighter, components.MechanicsData{Mechanic: components.NewMechanic(def.Mechanic)})

	if spec.Player != nil {
		components.InputSource.SetValue(fighter, components.InputSourceData{
			Player:   *spec.Player,
			Commands: input.NewBuffer(w.Config.Input.BufferSize, w.Config.Input.CommandWindow),
		})
	}
	if spec.AI != nil {
		ai := components.AIControllerData{
			Behavior:   spec.AI.Behavior,
			Difficulty: min(max(spec.AI.Difficulty, 0), 1),
		}
		ai.ClearTarget()
		components.AIController.SetValue(fighter, ai)
	}

	// Broadphase proxy, linked back to the entity for O(1) lookup
	hurt := components.Hurtbox.Get(fighter)
	r := hurt.WorldRect(components.Transform.Get(fighter).Position)
	obj := resolv.NewObject(r.MinX, r.MinY, r.W(), r.H())
	obj.SetShape(resolv.NewRectangle(0, 0, r.W(), r.H()))
	obj.AddTags(tags.ResolvHurtbox, archetypes.ResolvTeamTag(spec.Team))
	obj.Data = fighter.Entity()
	components.Object.SetValue(fighter, components.ObjectData{Object: obj})
	w.Space().Add(obj)

	w.Logger.Debug("fighter spawned",
		"tick", w.Tick,
		"entity", world.ID(fighter.Entity()),
		"character", spec.Character,
		"team", spec.Team,
	)
	return fighter, nil
}
