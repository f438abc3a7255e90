package config

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Character identifies a fighter archetype.
type Character int

const (
	// Playable
	Bas Character = iota
	Berkay
	Gefferinho
	Hadi
	Luca
	Nitin
	YigitBaba
	// NPCs and enemies
	Wolters
	PrefectA
	PrefectB
	Chef
	Librarian
	Coach
	// Bosses
	Bastiaan
	KeizerBomTaha
)

// MechanicKind selects the character-specific state a fighter carries.
type MechanicKind int

const (
	MechanicStandard MechanicKind = iota
	MechanicPlane
	MechanicAuthority
	MechanicFood
)

// AbilityDef describes a timed character ability.
type AbilityDef struct {
	Name        string
	Duration    float64
	Cooldown    float64
	DamageBoost float64 // damage multiplier while active, 0 means none
	SpeedBoost  float64 // movement multiplier while active, 0 means none
	HealthBoost float64 // healed once on activation
	ArmorBoost  float64 // added to armor while active
	Invincible  bool
	PlaneSummon bool
}

// CharacterDef holds the per-character stats.
type CharacterDef struct {
	Name      string
	MaxHealth float64
	Armor     float64 // seconds shaved off incoming hitstun
	Special   SpecialKind
	Mechanic  MechanicKind
	Ability   AbilityDef
}

// Characters is the roster table.
var Characters = map[Character]CharacterDef{
	Bas: {
		Name: "Bas", MaxHealth: 100, Special: SpecialPaintbrush,
		Ability: AbilityDef{Name: "Bas Veeg", Duration: 3, Cooldown: 11, DamageBoost: 1.5},
	},
	Berkay: {
		Name: "Berkay", MaxHealth: 100, Special: SpecialPaintbrush,
		Ability: AbilityDef{Name: "Special Kebab", Duration: 6, Cooldown: 12, DamageBoost: 2.2, HealthBoost: 35},
	},
	Gefferinho: {
		Name: "Gefferinho", MaxHealth: 100, Special: SpecialMarkerBlast,
		Ability: AbilityDef{Name: "Maar Mevrouw Rage", Duration: 6, Cooldown: 13, DamageBoost: 2.0, SpeedBoost: 2.0, HealthBoost: 25},
	},
	Hadi: {
		Name: "Hadi", MaxHealth: 100, Special: SpecialMarkerBlast,
		Ability: AbilityDef{Name: "Dubai Chocolate", Duration: 5, Cooldown: 10, DamageBoost: 1.5, SpeedBoost: 3.2},
	},
	Luca: {
		Name: "Luca", MaxHealth: 100, Special: SpecialPaintbrush,
		Ability: AbilityDef{Name: "Winter Arc", Duration: 5, Cooldown: 12, DamageBoost: 2.8, HealthBoost: 15},
	},
	Nitin: {
		Name: "Nitin", MaxHealth: 100, Special: SpecialMarkerBlast,
		Ability: AbilityDef{Name: "Barras", Duration: 6, Cooldown: 12, DamageBoost: 1.3},
	},
	YigitBaba: {
		Name: "YigitBaba", MaxHealth: 110, Special: SpecialEraserBomb,
		Ability: AbilityDef{Name: "Baba Power", Duration: 5, Cooldown: 15, DamageBoost: 3.0, SpeedBoost: 3.0, HealthBoost: 30},
	},
	Wolters: {
		Name: "Wolters", MaxHealth: 150, Armor: 0.05, Special: SpecialPaintbrush, Mechanic: MechanicAuthority,
	},
	PrefectA: {
		Name: "PrefectA", MaxHealth: 60, Special: SpecialMarkerBlast,
	},
	PrefectB: {
		Name: "PrefectB", MaxHealth: 60, Special: SpecialMarkerBlast,
	},
	Chef: {
		Name: "Chef", MaxHealth: 90, Special: SpecialMarkerBlast, Mechanic: MechanicFood,
	},
	Librarian: {
		Name: "Librarian", MaxHealth: 50, Special: SpecialEraserBomb,
	},
	Coach: {
		Name: "Coach", MaxHealth: 80, Armor: 0.05, Special: SpecialPaintbrush,
	},
	Bastiaan: {
		Name: "Bastiaan", MaxHealth: 300, Armor: 0.1, Special: SpecialEraserBomb,
		Ability: AbilityDef{Name: "Perfectionist", Duration: 4, Cooldown: 15, ArmorBoost: 0.2},
	},
	KeizerBomTaha: {
		Name: "KeizerBomTaha", MaxHealth: 120, Special: SpecialEraserBomb, Mechanic: MechanicPlane,
		Ability: AbilityDef{Name: "Plane Summon", Duration: 8, Cooldown: 20, PlaneSummon: true},
	},
}

func (c Character) String() string {
	if d, ok := Characters[c]; ok {
		return d.Name
	}
	return fmt.Sprintf("Character(%d)", int(c))
}

// ParseCharacter looks a character up by name, case-insensitively.
func ParseCharacter(name string) (Character, error) {
	for c, d := range Characters {
		if strings.EqualFold(d.Name, name) {
			return c, nil
		}
	}
	return 0, fmt.Errorf("config: unknown character %q", name)
}

func (c Character) MarshalYAML() (interface{}, error) {
	return c.String(), nil
}

func (c *Character) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := ParseCharacter(value.Value)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Plane mechanic tuning (KeizerBomTaha).
const (
	PlaneBombs        = 6
	PlaneDamageBonus  = 1.3
	PlaneBombCooldown = 0.5
)

// Authority mechanic tuning (Wolters).
const (
	AuthorityMax         = 100.0
	AuthorityPerHit      = 10.0
	AuthorityDecayRate   = 5.0 // per second
	AuthorityThreshold   = 50.0
	AuthorityDamageBonus = 1.2
)

// Food mechanic tuning (Chef).
const (
	FoodSlots      = 3
	FoodPrepTime   = 4.0
	FoodSaladHeal  = 15.0
	FoodSoupDamage = 8.0
)
