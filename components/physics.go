package components

import "github.com/yohamta/donburi"

// PhysicsBodyData opts an entity into gravity and friction. The floor is a
// depth band, so fighters usually carry a zero gravity scale.
type PhysicsBodyData struct {
	Mass         float64
	Friction     float64 // fraction of velocity lost per second
	GravityScale float64
	Clamped      bool // keep inside the stage bounds
}

var PhysicsBody = donburi.NewComponentType[PhysicsBodyData]()
