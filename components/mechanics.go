package components

import (
	cfg "github.com/automoto/doomerang-brawl/config"
	"github.com/yohamta/donburi"
)

// Mechanic is the character-specific state of a fighter. Systems dispatch
// on the concrete type.
type Mechanic interface {
	Kind() cfg.MechanicKind
}

type StandardMechanic struct{}

func (*StandardMechanic) Kind() cfg.MechanicKind { return cfg.MechanicStandard }

// PlaneMechanic lets the fighter fly a bomber while its ability runs.
type PlaneMechanic struct {
	Flying       bool
	Bombs        int
	BombCooldown float64
}

func (*PlaneMechanic) Kind() cfg.MechanicKind { return cfg.MechanicPlane }

// AuthorityMechanic grows with landed hits and decays over time.
type AuthorityMechanic struct {
	Authority float64
}

func (*AuthorityMechanic) Kind() cfg.MechanicKind { return cfg.MechanicAuthority }

// Empowered reports whether authority grants its damage bonus.
func (m *AuthorityMechanic) Empowered() bool {
	return m.Authority >= cfg.AuthorityThreshold
}

// FoodKind is a dish the chef can serve.
type FoodKind int

const (
	FoodSalad FoodKind = iota
	FoodSoup
)

// FoodMechanic prepares dishes over time and serves them with Special.
type FoodMechanic struct {
	Ready     []FoodKind
	PrepTimer float64
	Next      FoodKind // dish prepared next; alternates
	SoupBonus float64  // extra damage on the next landed hit
}

func (*FoodMechanic) Kind() cfg.MechanicKind { return cfg.MechanicFood }

// NewMechanic returns the starting state for a mechanic kind.
func NewMechanic(kind cfg.MechanicKind) Mechanic {
	switch kind {
	case cfg.MechanicPlane:
		return &PlaneMechanic{}
	case cfg.MechanicAuthority:
		return &AuthorityMechanic{}
	case cfg.MechanicFood:
		return &FoodMechanic{PrepTimer: cfg.FoodPrepTime}
	}
	return &StandardMechanic{}
}

// MechanicsData holds the mechanic variant of a fighter.
type MechanicsData struct {
	Mechanic Mechanic
}

var Mechanics = donburi.NewComponentType[MechanicsData]()
