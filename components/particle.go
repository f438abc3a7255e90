package components

import (
	cfg "github.com/automoto/doomerang-brawl/config"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// ParticleData is a short-lived cosmetic particle. Position lives in the
// Transform component.
type ParticleData struct {
	Lifetime     float64
	MaxLifetime  float64
	Velocity     math.Vec2
	Acceleration math.Vec2
	ColorStart   cfg.Color
	ColorEnd     cfg.Color
	SizeStart    float64
	SizeEnd      float64
	Ease         ease.TweenFunc // nil means linear
	Seq          uint64         // spawn order, oldest is evicted first
}

// Progress is lifetime/max clamped to [0,1].
func (p *ParticleData) Progress() float64 {
	if p.MaxLifetime <= 0 {
		return 1
	}
	return clamp(p.Lifetime/p.MaxLifetime, 0, 1)
}

// Expired reports whether the particle has outlived its max lifetime.
func (p *ParticleData) Expired() bool {
	return p.Lifetime >= p.MaxLifetime
}

// Color interpolates between the start and end colors.
func (p *ParticleData) Color() cfg.Color {
	t := p.Progress()
	return cfg.Color{
		R: p.lerp(t, p.ColorStart.R, p.ColorEnd.R),
		G: p.lerp(t, p.ColorStart.G, p.ColorEnd.G),
		B: p.lerp(t, p.ColorStart.B, p.ColorEnd.B),
		A: p.lerp(t, p.ColorStart.A, p.ColorEnd.A),
	}
}

// Size interpolates between the start and end sizes.
func (p *ParticleData) Size() float64 {
	return float64(p.lerp(p.Progress(), float32(p.SizeStart), float32(p.SizeEnd)))
}

func (p *ParticleData) lerp(t float64, from, to float32) float32 {
	fn := p.Ease
	if fn == nil {
		fn = ease.Linear
	}
	return fn(float32(t), from, to-from, 1)
}

var Particle = donburi.NewComponentType[ParticleData]()
