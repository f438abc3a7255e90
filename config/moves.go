package config

// HitboxDef is the template a hitbox is stamped from when an attack starts.
// Offsets are for a fighter facing right and mirror when facing left.
type HitboxDef struct {
	OffsetX    float64
	OffsetY    float64
	Width      float64
	Height     float64
	Damage     float64
	Hitstun    float64 // seconds
	Blockstun  float64 // seconds
	PushbackX  float64
	PushbackY  float64
	LaunchX    float64
	LaunchY    float64
	Kind       HitKind
	ArmorBreak bool
}

// MoveDef is the frame data of one attack state.
type MoveDef struct {
	Hitbox   HitboxDef
	Active   float64 // seconds the hitbox stays out
	Recovery float64 // seconds after the hitbox is gone before the fighter is idle again
}

// Duration is the total time the fighter stays in the attack state.
func (m MoveDef) Duration() float64 {
	return m.Active + m.Recovery
}

// SpecialKind selects the special move hitbox of a character.
type SpecialKind int

const (
	SpecialPaintbrush SpecialKind = iota
	SpecialEraserBomb
	SpecialMarkerBlast
)

var (
	LightHitbox = HitboxDef{
		OffsetX: 40, Width: 60, Height: 40,
		Damage: 5, Hitstun: 0.2, Blockstun: 0.1,
		PushbackX: 50,
		Kind:      HitLight,
	}
	HeavyHitbox = HitboxDef{
		OffsetX: 50, Width: 80, Height: 50,
		Damage: 12, Hitstun: 0.4, Blockstun: 0.3,
		PushbackX:  100,
		Kind:       HitHeavy,
		ArmorBreak: true,
	}
	LauncherHitbox = HitboxDef{
		OffsetX: 30, OffsetY: -20, Width: 60, Height: 80,
		Damage: 10, Hitstun: 0.5, Blockstun: 0.2,
		PushbackX: 30,
		LaunchY:   -500,
		Kind:      HitLauncher,
	}
	SuperHitbox = HitboxDef{
		Width: 300, Height: 150,
		Damage: 35, Hitstun: 1.2, Blockstun: 0.8,
		PushbackX: 300, PushbackY: -200,
		LaunchY:    -600,
		Kind:       HitSuper,
		ArmorBreak: true,
	}
)

// SpecialHitboxes holds the special move templates.
var SpecialHitboxes = map[SpecialKind]HitboxDef{
	SpecialPaintbrush: {
		OffsetX: 60, Width: 120, Height: 40,
		Damage: 15, Hitstun: 0.6, Blockstun: 0.4,
		PushbackX:  150,
		Kind:       HitSpecial,
		ArmorBreak: true,
	},
	SpecialEraserBomb: {
		Width: 200, Height: 200,
		Damage: 20, Hitstun: 0.8, Blockstun: 0.5,
		PushbackX: 200, PushbackY: -100,
		LaunchY:    -300,
		Kind:       HitSpecial,
		ArmorBreak: true,
	},
	SpecialMarkerBlast: {
		OffsetX: 80, Width: 40, Height: 20,
		Damage: 8, Hitstun: 0.3, Blockstun: 0.2,
		PushbackX: 80,
		Kind:      HitProjectile,
	},
}

// Moves maps the generic attack states to their frame data. Special is
// resolved per character through SpecialMove.
var Moves = map[FighterState]MoveDef{
	LightAttack: {Hitbox: LightHitbox, Active: 0.1, Recovery: 0.15},
	HeavyAttack: {Hitbox: HeavyHitbox, Active: 0.15, Recovery: 0.3},
	Launcher:    {Hitbox: LauncherHitbox, Active: 0.15, Recovery: 0.35},
}

// SpecialMove returns the special move frame data for a character.
func SpecialMove(c Character) MoveDef {
	return MoveDef{
		Hitbox:   SpecialHitboxes[Characters[c].Special],
		Active:   0.2,
		Recovery: 0.4,
	}
}

// MoveFor returns the frame data for an attack state of a character.
func MoveFor(c Character, s FighterState) (MoveDef, bool) {
	if s == Special {
		return SpecialMove(c), true
	}
	m, ok := Moves[s]
	return m, ok
}
