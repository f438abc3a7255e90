package components

import (
	"errors"

	cfg "github.com/automoto/doomerang-brawl/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// ErrAlreadyHit signals a second hit on the same defender in one activation.
var ErrAlreadyHit = errors.New("components: defender already registered by this hitbox")

// HitboxData is the damaging region of an attacker while an attack is active.
type HitboxData struct {
	Offset     math.Vec2 // relative to the owner, for facing +1
	Size       math.Vec2
	Damage     float64
	Hitstun    float64
	Blockstun  float64
	Pushback   math.Vec2
	Launch     math.Vec2
	Kind       cfg.HitKind
	ArmorBreak bool
	ActiveTime float64 // seconds left in the activation window

	HitsRegistered map[donburi.Entity]struct{} // defenders already struck by this activation
}

// NewHitbox stamps a hitbox from a template.
func NewHitbox(def cfg.HitboxDef, active float64) HitboxData {
	return HitboxData{
		Offset:         math.Vec2{X: def.OffsetX, Y: def.OffsetY},
		Size:           math.Vec2{X: def.Width, Y: def.Height},
		Damage:         def.Damage,
		Hitstun:        def.Hitstun,
		Blockstun:      def.Blockstun,
		Pushback:       math.Vec2{X: def.PushbackX, Y: def.PushbackY},
		Launch:         math.Vec2{X: def.LaunchX, Y: def.LaunchY},
		Kind:           def.Kind,
		ArmorBreak:     def.ArmorBreak,
		ActiveTime:     active,
		HitsRegistered: make(map[donburi.Entity]struct{}),
	}
}

// Registered reports whether e was already struck by this activation.
func (h *HitboxData) Registered(e donburi.Entity) bool {
	_, ok := h.HitsRegistered[e]
	return ok
}

// Register records a strike on e.
func (h *HitboxData) Register(e donburi.Entity) error {
	if h.HitsRegistered == nil {
		h.HitsRegistered = make(map[donburi.Entity]struct{})
	}
	if h.Registered(e) {
		return ErrAlreadyHit
	}
	h.HitsRegistered[e] = struct{}{}
	return nil
}

// WorldRect places the hitbox around an owner position. The horizontal
// offset mirrors when the owner faces left; the stored offset is untouched.
func (h *HitboxData) WorldRect(pos math.Vec2, facing float64) Rect {
	ox := h.Offset.X
	if facing < 0 {
		ox = -ox
	}
	return CenteredRect(pos.X+ox, pos.Y+h.Offset.Y, h.Size.X, h.Size.Y)
}

// HasLaunch reports whether the hitbox overrides vertical knockback.
func (h *HitboxData) HasLaunch() bool {
	return h.Launch.X != 0 || h.Launch.Y != 0
}

var Hitbox = donburi.NewComponentType[HitboxData]()

// Rect is an axis-aligned box.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// CenteredRect builds a rect of size w×h centred on (cx, cy).
func CenteredRect(cx, cy, w, h float64) Rect {
	return Rect{MinX: cx - w/2, MinY: cy - h/2, MaxX: cx + w/2, MaxY: cy + h/2}
}

// Overlaps reports strict overlap; touching edges do not count.
func (r Rect) Overlaps(o Rect) bool {
	return r.MinX < o.MaxX && r.MaxX > o.MinX && r.MinY < o.MaxY && r.MaxY > o.MinY
}

func (r Rect) W() float64 { return r.MaxX - r.MinX }
func (r Rect) H() float64 { return r.MaxY - r.MinY }
