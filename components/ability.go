package components

import (
	"errors"

	cfg "github.com/automoto/doomerang-brawl/config"
	"github.com/yohamta/donburi"
)

var (
	ErrAbilityCooldown = errors.New("components: ability on cooldown")
	ErrNoAbility       = errors.New("components: character has no ability")
)

// AbilityData is the timed character ability of a fighter.
type AbilityData struct {
	Def      cfg.AbilityDef
	Active   bool
	Timer    float64 // seconds of the active window left
	Cooldown float64 // seconds until usable again
}

// Activate starts the ability.
func (a *AbilityData) Activate() error {
	if a.Def.Duration <= 0 {
		return ErrNoAbility
	}
	if a.Active || a.Cooldown > 0 {
		return ErrAbilityCooldown
	}
	a.Active = true
	a.Timer = a.Def.Duration
	a.Cooldown = a.Def.Cooldown
	return nil
}

// Tick runs the timers and reports whether the active window just ended.
func (a *AbilityData) Tick(dt float64) bool {
	if a.Cooldown > 0 {
		a.Cooldown = max(a.Cooldown-dt, 0)
	}
	if !a.Active {
		return false
	}
	a.Timer -= dt
	if a.Timer > 0 {
		return false
	}
	a.Timer = 0
	a.Active = false
	return true
}

// DamageMultiplier is the active damage boost, or 1.
func (a *AbilityData) DamageMultiplier() float64 {
	if a.Active && a.Def.DamageBoost > 0 {
		return a.Def.DamageBoost
	}
	return 1
}

// SpeedMultiplier is the active speed boost, or 1.
func (a *AbilityData) SpeedMultiplier() float64 {
	if a.Active && a.Def.SpeedBoost > 0 {
		return a.Def.SpeedBoost
	}
	return 1
}

// ArmorBonus is the armor added while active.
func (a *AbilityData) ArmorBonus() float64 {
	if a.Active {
		return a.Def.ArmorBoost
	}
	return 0
}

var Ability = donburi.NewComponentType[AbilityData]()
