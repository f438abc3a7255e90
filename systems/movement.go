package systems

import (
	"github.com/automoto/doomerang-brawl/components"
	"github.com/automoto/doomerang-brawl/world"
	"github.com/yohamta/donburi"
)

// UpdateMovement integrates velocity into the transform.
func UpdateMovement(w *world.World) {
	dt := w.Dt
	world.Each2(w, components.Transform, components.Velocity, func(_ donburi.Entity, t *components.TransformData, v *components.VelocityData) {
		t.Position.X += v.Linear.X * dt
		t.Position.Y += v.Linear.Y * dt
		t.Rotation += v.Angular * dt
	})
}
