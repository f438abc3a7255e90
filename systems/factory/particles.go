package factory

import (
	gomath "math"

	"github.com/automoto/doomerang-brawl/archetypes"
	"github.com/automoto/doomerang-brawl/components"
	cfg "github.com/automoto/doomerang-brawl/config"
	"github.com/automoto/doomerang-brawl/world"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// ParticleSpec describes a particle to spawn.
type ParticleSpec struct {
	Position     math.Vec2
	Velocity     math.Vec2
	Acceleration math.Vec2
	Lifetime     float64
	ColorStart   cfg.Color
	ColorEnd     cfg.Color
	SizeStart    float64
	SizeEnd      float64
	Ease         ease.TweenFunc
}

// SpawnParticle adds a particle, destroying the oldest one first when the
// pool is full.
func SpawnParticle(w *world.World, p ParticleSpec) *donburi.Entry {
	if limit := w.Config.Particles.MaxParticles; limit > 0 {
		for world.Count(w, components.Particle) >= limit {
			evictOldestParticle(w)
		}
	}

	entry := archetypes.Particle.Spawn(w)
	components.Transform.SetValue(entry, components.TransformData{Position: p.Position, Scale: 1})
	components.Particle.SetValue(entry, components.ParticleData{
		MaxLifetime:  p.Lifetime,
		Velocity:     p.Velocity,
		Acceleration: p.Acceleration,
		ColorStart:   p.ColorStart,
		ColorEnd:     p.ColorEnd,
		SizeStart:    p.SizeStart,
		SizeEnd:      p.SizeEnd,
		Ease:         p.Ease,
		Seq:          w.NextSeq(),
	})
	return entry
}

func evictOldestParticle(w *world.World) {
	var (
		oldest donburi.Entity
		seq    uint64
		found  bool
	)
	world.Each(w, components.Particle, func(e donburi.Entity, p *components.ParticleData) {
		if !found || p.Seq < seq {
			oldest, seq, found = e, p.Seq, true
		}
	})
	if found {
		w.Destroy(oldest)
	}
}

// SpawnHitSparks fans sparks out of an impact point, away from the attacker.
func SpawnHitSparks(w *world.World, at math.Vec2, dir float64) {
	pc := w.Config.Particles
	n := pc.HitSparkCount
	for i := 0; i < n; i++ {
		// spread over a 90 degree fan centred on the push direction
		t := 0.5
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		angle := (t - 0.5) * gomath.Pi / 2
		vx := gomath.Cos(angle) * pc.HitSparkSpeed * dir
		vy := gomath.Sin(angle) * pc.HitSparkSpeed
		SpawnParticle(w, ParticleSpec{
			Position:     at,
			Velocity:     math.Vec2{X: vx, Y: vy},
			Acceleration: math.Vec2{Y: pc.HitSparkGravity},
			Lifetime:     pc.HitSparkLife,
			ColorStart:   pc.HitSparkColor[0],
			ColorEnd:     pc.HitSparkColor[1],
			SizeStart:    pc.HitSparkSize[0],
			SizeEnd:      pc.HitSparkSize[1],
			Ease:         ease.OutQuad,
		})
	}
}
