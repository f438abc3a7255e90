package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// HurtboxKind is the posture a hurtbox represents.
type HurtboxKind int

const (
	HurtboxStanding HurtboxKind = iota
	HurtboxCrouching
	HurtboxAirborne
	HurtboxInvulnerable
)

func (k HurtboxKind) String() string {
	switch k {
	case HurtboxStanding:
		return "Standing"
	case HurtboxCrouching:
		return "Crouching"
	case HurtboxAirborne:
		return "Airborne"
	case HurtboxInvulnerable:
		return "Invulnerable"
	}
	return "Unknown"
}

// HurtboxData is the damageable region of an entity.
type HurtboxData struct {
	Offset math.Vec2
	Size   math.Vec2
	Kind   HurtboxKind
}

func StandingHurtbox() HurtboxData {
	return HurtboxData{Size: math.Vec2{X: 60, Y: 120}, Kind: HurtboxStanding}
}

func CrouchingHurtbox() HurtboxData {
	return HurtboxData{Offset: math.Vec2{Y: 30}, Size: math.Vec2{X: 60, Y: 60}, Kind: HurtboxCrouching}
}

func AirborneHurtbox() HurtboxData {
	return HurtboxData{Size: math.Vec2{X: 60, Y: 100}, Kind: HurtboxAirborne}
}

func InvulnerableHurtbox() HurtboxData {
	return HurtboxData{Kind: HurtboxInvulnerable}
}

// WorldRect places the hurtbox around its owner.
func (h *HurtboxData) WorldRect(pos math.Vec2) Rect {
	return CenteredRect(pos.X+h.Offset.X, pos.Y+h.Offset.Y, h.Size.X, h.Size.Y)
}

// Active reports whether hits may resolve against this hurtbox.
func (h *HurtboxData) Active() bool {
	return h.Kind != HurtboxInvulnerable
}

var Hurtbox = donburi.NewComponentType[HurtboxData]()
