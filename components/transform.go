package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type TransformData struct {
	Position math.Vec2
	Rotation float64
	Scale    float64
}

type VelocityData struct {
	Linear  math.Vec2
	Angular float64
}

var Transform = donburi.NewComponentType[TransformData]()
var Velocity = donburi.NewComponentType[VelocityData]()
