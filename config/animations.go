package config

// AnimationDef is the clock data of one animation clip
type AnimationDef struct {
	Frames        int
	FrameDuration float64 // seconds per frame
	Loop          bool
}

// FighterAnimations maps fighter states to their clip. States without an
// entry reuse the Idle clip.
var FighterAnimations = map[FighterState]AnimationDef{
	Idle:        {Frames: 8, FrameDuration: 0.1, Loop: true},
	Walking:     {Frames: 8, FrameDuration: 0.08, Loop: true},
	Jumping:     {Frames: 4, FrameDuration: 0.125},
	Falling:     {Frames: 2, FrameDuration: 0.1, Loop: true},
	Crouching:   {Frames: 2, FrameDuration: 0.1},
	LightAttack: {Frames: 5, FrameDuration: 0.05},
	HeavyAttack: {Frames: 6, FrameDuration: 0.075},
	Launcher:    {Frames: 6, FrameDuration: 0.08},
	Special:     {Frames: 6, FrameDuration: 0.1},
	Super:       {Frames: 12, FrameDuration: 0.25},
	Blocking:    {Frames: 1, FrameDuration: 0.1},
	Dodging:     {Frames: 4, FrameDuration: 0.075},
	Parrying:    {Frames: 2, FrameDuration: 0.1},
	Hitstun:     {Frames: 3, FrameDuration: 0.066},
	Blockstun:   {Frames: 1, FrameDuration: 0.1},
	KnockedDown: {Frames: 9, FrameDuration: 0.1},
}

// AnimationFor returns the clip of a state.
func AnimationFor(s FighterState) AnimationDef {
	if a, ok := FighterAnimations[s]; ok {
		return a
	}
	return FighterAnimations[Idle]
}
