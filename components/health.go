package components

import "github.com/yohamta/donburi"

type HealthData struct {
	Current float64
	Maximum float64
	Armor   float64 // seconds shaved off incoming hitstun
}

// Damage subtracts amount and returns what was actually taken.
func (h *HealthData) Damage(amount float64) float64 {
	before := h.Current
	h.Current = clamp(h.Current-amount, 0, h.Maximum)
	return before - h.Current
}

// Heal adds amount up to the maximum.
func (h *HealthData) Heal(amount float64) {
	h.Current = clamp(h.Current+amount, 0, h.Maximum)
}

func (h *HealthData) Fraction() float64 {
	if h.Maximum <= 0 {
		return 0
	}
	return h.Current / h.Maximum
}

func (h *HealthData) Dead() bool {
	return h.Current <= 0
}

var Health = donburi.NewComponentType[HealthData]()

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
