package components

import (
	cfg "github.com/automoto/doomerang-brawl/config"
	"github.com/yohamta/donburi"
)

// FighterData is the combat state shared by every fighter.
type FighterData struct {
	Character     cfg.Character
	Team          cfg.Team
	State         cfg.FighterState
	PreviousState cfg.FighterState
	StateTimer    float64 // seconds spent in State
	Facing        float64 // -1 or +1

	Hitstun      float64
	Blockstun    float64
	Invulnerable bool
	AttackTimer  float64

	Meter MeterData
}

// SetState switches state and restarts the state timer.
func (f *FighterData) SetState(s cfg.FighterState) {
	if f.State == s {
		return
	}
	f.PreviousState = f.State
	f.State = s
	f.StateTimer = 0
}

// FaceToward turns the fighter toward a horizontal offset.
func (f *FighterData) FaceToward(dx float64) {
	if dx < 0 {
		f.Facing = -1
	} else if dx > 0 {
		f.Facing = 1
	}
}

var Fighter = donburi.NewComponentType[FighterData]()
