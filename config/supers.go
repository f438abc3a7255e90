package config

// SuperDef describes a super move and its phase timings.
type SuperDef struct {
	Name      string
	Character Character
	Sequence  []Action
	Cost      float64
	Damage    float64
	Startup   float64
	Active    float64
	Recovery  float64
}

// Duration is the full length of the super.
func (s SuperDef) Duration() float64 {
	return s.Startup + s.Active + s.Recovery
}

// Hitbox returns the super hitbox stamped with this super's damage.
func (s SuperDef) Hitbox() HitboxDef {
	h := SuperHitbox
	if s.Damage > 0 {
		h.Damage = s.Damage
	}
	return h
}

// DefaultSuper is used by characters without an entry in Supers.
var DefaultSuper = SuperDef{
	Name:     "Super",
	Sequence: []Action{ActionDown, ActionDown, ActionSuper},
	Cost:     50,
	Damage:   35,
	Startup:  0.5,
	Active:   2.0,
	Recovery: 0.5,
}

// Supers is the super move list.
var Supers = []SuperDef{
	{
		Name:      "Veeg Barrage",
		Character: Bas,
		Sequence:  []Action{ActionDown, ActionDown, ActionSuper},
		Cost:      50,
		Damage:    40,
		Startup:   0.5, Active: 2.0, Recovery: 0.5,
	},
	{
		Name:      "Winter Arc Awakening",
		Character: Luca,
		Sequence:  []Action{ActionSpecial, ActionSpecial, ActionSuper},
		Cost:      75,
		Damage:    50,
		Startup:   0.5, Active: 2.0, Recovery: 0.5,
	},
	{
		Name:      "Barras Storm",
		Character: Nitin,
		Sequence:  []Action{ActionLightAttack, ActionHeavyAttack, ActionSuper},
		Cost:      50,
		Damage:    35,
		Startup:   0.3, Active: 1.5, Recovery: 0.4,
	},
	{
		Name:      "Discipline Wave",
		Character: Wolters,
		Sequence:  []Action{ActionHeavyAttack, ActionHeavyAttack, ActionSuper},
		Cost:      100,
		Damage:    60,
		Startup:   0.6, Active: 2.0, Recovery: 0.6,
	},
	{
		Name:      "Perfect Art",
		Character: Bastiaan,
		Sequence:  []Action{ActionSpecial, ActionHeavyAttack, ActionSuper},
		Cost:      100,
		Damage:    55,
		Startup:   0.5, Active: 2.0, Recovery: 0.5,
	},
}

// SuperFor returns the super move of a character.
func SuperFor(c Character) SuperDef {
	for _, s := range Supers {
		if s.Character == c {
			return s
		}
	}
	d := DefaultSuper
	d.Character = c
	return d
}
