package sim

import (
	"github.com/automoto/doomerang-brawl/components"
	cfg "github.com/automoto/doomerang-brawl/config"
	"github.com/automoto/doomerang-brawl/world"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// FighterView is the host-facing state of one fighter.
type FighterView struct {
	ID        uint32
	Entity    donburi.Entity
	Character cfg.Character
	Team      cfg.Team
	Position  math.Vec2
	Velocity  math.Vec2
	Facing    float64
	Health    float64
	MaxHealth float64
	State     cfg.FighterState
	Combo     int
	Rank      components.Rank
	Meter     float64
	Segments  int
	Super     components.SuperPhase
	Dead      bool
}

// ParticleView is the host-facing state of one particle, already
// interpolated for drawing.
type ParticleView struct {
	ID       uint32
	Position math.Vec2
	Color    cfg.Color
	Size     float64
}

// Snapshot is the read-only state handed to the host after Advance.
type Snapshot struct {
	Tick      uint32
	Time      float64
	Alpha     float64
	Fighters  []FighterView
	Particles []ParticleView
	Match     components.MatchState
	Wave      int
	Winner    string
}

// Snapshot copies the observable state of the match.
func (s *Sim) Snapshot() Snapshot {
	w := s.w
	snap := Snapshot{
		Tick:  w.Tick,
		Time:  s.Time(),
		Alpha: s.Alpha(),
	}

	for _, e := range world.Entities(w, components.Fighter, components.Transform) {
		f, _ := world.Get(w, e, components.Fighter)
		t, _ := world.Get(w, e, components.Transform)
		v := FighterView{
			ID:        world.ID(e),
			Entity:    e,
			Character: f.Character,
			Team:      f.Team,
			Position:  t.Position,
			Facing:    f.Facing,
			State:     f.State,
			Meter:     f.Meter.Current,
			Segments:  f.Meter.FilledSegments(),
			Dead:      world.Has(w, e, components.Death),
		}
		if vel, ok := world.Get(w, e, components.Velocity); ok {
			v.Velocity = vel.Linear
		}
		if h, ok := world.Get(w, e, components.Health); ok {
			v.Health, v.MaxHealth = h.Current, h.Maximum
		}
		if c, ok := world.Get(w, e, components.Combo); ok {
			v.Combo, v.Rank = c.Hits, c.Rank
		}
		if sp, ok := world.Get(w, e, components.Super); ok {
			v.Super = sp.Phase
		}
		snap.Fighters = append(snap.Fighters, v)
	}

	world.Each2(w, components.Particle, components.Transform, func(e donburi.Entity, p *components.ParticleData, t *components.TransformData) {
		snap.Particles = append(snap.Particles, ParticleView{
			ID:       world.ID(e),
			Position: t.Position,
			Color:    p.Color(),
			Size:     p.Size(),
		})
	})

	if entry, ok := components.Match.First(w.World); ok {
		m := components.Match.Get(entry)
		snap.Match, snap.Wave, snap.Winner = m.State, m.Wave, m.Winner()
	}
	return snap
}

// Fighter looks up one fighter's view.
func (snap Snapshot) Fighter(e donburi.Entity) (FighterView, bool) {
	for _, f := range snap.Fighters {
		if f.Entity == e {
			return f, true
		}
	}
	return FighterView{}, false
}
