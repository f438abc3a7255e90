package components

import "github.com/yohamta/donburi"

// DeathData marks an entity that has started its death sequence.
// Timer counts down each tick; once it is spent and the knockdown clip has
// finished, the entity is removed from the world.
type DeathData struct {
	Timer  float64
	Killer donburi.Entity
}

var Death = donburi.NewComponentType[DeathData]()
