package systems

import (
	"github.com/automoto/doomerang-brawl/components"
	cfg "github.com/automoto/doomerang-brawl/config"
	"github.com/automoto/doomerang-brawl/systems/factory"
	"github.com/automoto/doomerang-brawl/world"
	"github.com/yohamta/donburi"
)

// UpdateSupers steps each running super through Startup, Active and
// Recovery. Time left over at a phase change carries into the next phase.
func UpdateSupers(w *world.World) {
	world.Each(w, components.Super, func(e donburi.Entity, s *components.SuperData) {
		if !s.Running() {
			return
		}
		f, ok := world.Get(w, e, components.Fighter)
		if !ok {
			return
		}
		s.Timer -= w.Dt
		for s.Running() && s.Timer <= 0 {
			carry := s.Timer
			switch s.Phase {
			case components.SuperStartup:
				s.Enter(components.SuperActive)
				f.Invulnerable = false
				factory.AttachHitbox(w, e, s.Move.Hitbox(), s.Move.Active)
			case components.SuperActive:
				s.Enter(components.SuperRecovery)
				factory.DetachHitbox(w, e)
			case components.SuperRecovery:
				s.Enter(components.SuperIdle)
				f.SetState(cfg.Idle)
			}
			s.Timer += carry
		}
	})
}
