package systems

import (
	"github.com/automoto/doomerang-brawl/components"
	cfg "github.com/automoto/doomerang-brawl/config"
	"github.com/automoto/doomerang-brawl/world"
	"github.com/yohamta/donburi"
)

// UpdateMechanics advances the character-specific state of each fighter.
func UpdateMechanics(w *world.World) {
	dt := w.Dt
	world.Each(w, components.Mechanics, func(_ donburi.Entity, mech *components.MechanicsData) {
		switch m := mech.Mechanic.(type) {
		case *components.PlaneMechanic:
			m.BombCooldown = max(m.BombCooldown-dt, 0)
		case *components.AuthorityMechanic:
			m.Authority = max(m.Authority-cfg.AuthorityDecayRate*dt, 0)
		case *components.FoodMechanic:
			if len(m.Ready) >= cfg.FoodSlots {
				return
			}
			m.PrepTimer -= dt
			if m.PrepTimer > 0 {
				return
			}
			m.Ready = append(m.Ready, m.Next)
			m.Next = (m.Next + 1) % 2
			m.PrepTimer = cfg.FoodPrepTime
		}
	})
}
