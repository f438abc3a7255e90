package systems

import (
	"github.com/automoto/doomerang-brawl/components"
	"github.com/automoto/doomerang-brawl/events"
	"github.com/automoto/doomerang-brawl/systems/factory"
	"github.com/automoto/doomerang-brawl/world"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// subscribeHitSparks bursts sparks out of the defender of every landed hit,
// away from the attacker.
func subscribeHitSparks(w *world.World) {
	events.HitLandedEvent.Subscribe(w.World, func(_ donburi.World, hit events.HitLanded) {
		at, ok1 := world.Get(w, hit.Attacker, components.Transform)
		dt, ok2 := world.Get(w, hit.Defender, components.Transform)
		if !ok1 || !ok2 {
			return
		}
		dir := 1.0
		if dt.Position.X < at.Position.X {
			dir = -1
		}
		factory.SpawnHitSparks(w, math.Vec2{X: dt.Position.X, Y: dt.Position.Y - 20}, dir)
	})
}

// UpdateParticles ages and integrates particles, destroying expired ones.
func UpdateParticles(w *world.World) {
	dt := w.Dt
	var expired []donburi.Entity
	world.Each2(w, components.Particle, components.Transform, func(e donburi.Entity, p *components.ParticleData, t *components.TransformData) {
		p.Lifetime += dt
		p.Velocity.X += p.Acceleration.X * dt
		p.Velocity.Y += p.Acceleration.Y * dt
		t.Position.X += p.Velocity.X * dt
		t.Position.Y += p.Velocity.Y * dt
		if p.Expired() {
			expired = append(expired, e)
		}
	})
	for _, e := range expired {
		w.Destroy(e)
	}
}
