package archetypes

import (
	"github.com/automoto/doomerang-brawl/components"
	cfg "github.com/automoto/doomerang-brawl/config"
	"github.com/automoto/doomerang-brawl/tags"
	"github.com/automoto/doomerang-brawl/world"
	"github.com/yohamta/donburi"
)

var (
	// Fighter carries the required fighter components. Team tags, the input
	// source or AI controller are added at spawn.
	Fighter = newArchetype(
		components.Transform,
		components.Velocity,
		components.Health,
		components.Fighter,
		components.Hurtbox,
		components.PhysicsBody,
		components.Animation,
		components.Combo,
		components.Super,
		components.Ability,
		components.Mechanics,
		components.Object,
	)
	Particle = newArchetype(
		tags.Particle,
		components.Transform,
		components.Particle,
	)
	Match = newArchetype(
		components.Match,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w *world.World, cs ...donburi.IComponentType) *donburi.Entry {
	all := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	all = append(all, a.components...)
	all = append(all, cs...)
	return w.World.Entry(w.Create(all...))
}

// TeamTag returns the tag marking membership of team.
func TeamTag(t cfg.Team) donburi.IComponentType {
	switch t {
	case cfg.TeamAlly:
		return tags.Ally
	case cfg.TeamEnemy:
		return tags.Enemy
	}
	return tags.Player
}

// ResolvTeamTag returns the broadphase tag of team.
func ResolvTeamTag(t cfg.Team) string {
	switch t {
	case cfg.TeamAlly:
		return tags.ResolvAlly
	case cfg.TeamEnemy:
		return tags.ResolvEnemy
	}
	return tags.ResolvPlayer
}

// ResolvHostileTags returns the broadphase tags of the teams t can hit.
func ResolvHostileTags(t cfg.Team) []string {
	if t == cfg.TeamEnemy {
		return []string{tags.ResolvPlayer, tags.ResolvAlly}
	}
	return []string{tags.ResolvEnemy}
}
