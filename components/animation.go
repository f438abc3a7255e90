package components

import (
	cfg "github.com/automoto/doomerang-brawl/config"
	"github.com/yohamta/donburi"
)

// AnimationData is the clock of the clip an entity is playing. Rendering
// picks the sprite from State and Frame.
type AnimationData struct {
	State         cfg.FighterState
	Frame         int
	Frames        int
	Timer         float64
	FrameDuration float64
	Loop          bool
	Finished      bool
}

// SetAnimation switches clip. Re-entering the playing clip keeps its clock.
func (a *AnimationData) SetAnimation(state cfg.FighterState, def cfg.AnimationDef) {
	if a.State == state && a.Frames != 0 {
		return
	}
	a.State = state
	a.Frame = 0
	a.Frames = def.Frames
	a.Timer = 0
	a.FrameDuration = def.FrameDuration
	a.Loop = def.Loop
	a.Finished = false
}

// Advance runs the clock by dt.
func (a *AnimationData) Advance(dt float64) {
	if a.Finished || a.FrameDuration <= 0 {
		return
	}
	a.Timer += dt
	for a.Timer >= a.FrameDuration {
		a.Timer -= a.FrameDuration
		a.Frame++
		if a.Frame < a.Frames {
			continue
		}
		if a.Loop {
			a.Frame = 0
			continue
		}
		a.Frame = max(a.Frames-1, 0)
		a.Finished = true
		a.Timer = 0
		return
	}
}

var Animation = donburi.NewComponentType[AnimationData]()
