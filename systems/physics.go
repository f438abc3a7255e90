package systems

import (
	"github.com/automoto/doomerang-brawl/components"
	"github.com/automoto/doomerang-brawl/world"
	"github.com/yohamta/donburi"
)

// UpdatePhysics applies gravity and friction, then keeps clamped bodies on
// the stage floor.
func UpdatePhysics(w *world.World) {
	dt := w.Dt
	gravity := w.Config.Physics.Gravity
	stage := w.Stage()

	world.Each(w, components.PhysicsBody, func(e donburi.Entity, body *components.PhysicsBodyData) {
		vel, ok := world.Get(w, e, components.Velocity)
		if !ok {
			return
		}
		vel.Linear.Y += gravity * body.GravityScale * dt
		damping := max(1-body.Friction*dt, 0)
		vel.Linear.X *= damping
		vel.Linear.Y *= damping

		if !body.Clamped {
			return
		}
		t, ok := world.Get(w, e, components.Transform)
		if !ok {
			return
		}
		// Ground clamping: stop at the stage edges and the depth band
		if t.Position.X < stage.MinX {
			t.Position.X = stage.MinX
			vel.Linear.X = max(vel.Linear.X, 0)
		} else if t.Position.X > stage.MaxX {
			t.Position.X = stage.MaxX
			vel.Linear.X = min(vel.Linear.X, 0)
		}
		if t.Position.Y < stage.MinY {
			t.Position.Y = stage.MinY
			vel.Linear.Y = max(vel.Linear.Y, 0)
		} else if t.Position.Y > stage.MaxY {
			t.Position.Y = stage.MaxY
			vel.Linear.Y = min(vel.Linear.Y, 0)
		}
	})
}
