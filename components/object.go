package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData links an entity to its broadphase proxy in the collision space.
// The proxy is kept centred on the entity's hurtbox.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// Space is the singleton collision space used as the combat broadphase.
var Space = donburi.NewComponentType[resolv.Space]()
