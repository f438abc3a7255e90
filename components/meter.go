package components

import (
	"errors"

	cfg "github.com/automoto/doomerang-brawl/config"
)

// ErrInsufficientMeter is returned when a fighter cannot pay for a move.
var ErrInsufficientMeter = errors.New("components: insufficient meter")

// MeterGain names the combat events that fill the meter.
type MeterGain int

const (
	GainDamageDealt MeterGain = iota
	GainDamageReceived
	GainBlockSuccessful
	GainParrySuccessful
	GainComboExtended
	GainSpecialMove
)

// MeterData is the super meter of a fighter.
type MeterData struct {
	Current        float64
	Maximum        float64
	Segments       int
	GainMultiplier float64
}

// NewMeter returns an empty meter sized from config.
func NewMeter(c cfg.MeterConfig) MeterData {
	return MeterData{
		Maximum:        c.Maximum,
		Segments:       c.Segments,
		GainMultiplier: c.GainMultiplier,
	}
}

// Gain adds the amount an event is worth. amount is the damage for the two
// damage kinds and ignored otherwise.
func (m *MeterData) Gain(c cfg.MeterConfig, kind MeterGain, amount float64) {
	var v float64
	switch kind {
	case GainDamageDealt:
		v = amount * c.DamageDealtRate
	case GainDamageReceived:
		v = amount * c.DamageReceivedRate
	case GainBlockSuccessful:
		v = c.BlockGain
	case GainParrySuccessful:
		v = c.ParryGain
	case GainComboExtended:
		v = c.ComboExtendedGain
	case GainSpecialMove:
		v = c.SpecialMoveGain
	}
	m.Current = clamp(m.Current+v*m.GainMultiplier, 0, m.Maximum)
}

// Consume spends amount if available.
func (m *MeterData) Consume(amount float64) error {
	if m.Current < amount {
		return ErrInsufficientMeter
	}
	m.Current -= amount
	return nil
}

// ConsumeSegments spends whole segments.
func (m *MeterData) ConsumeSegments(n int) error {
	return m.Consume(m.segmentSize() * float64(n))
}

func (m *MeterData) FilledSegments() int {
	size := m.segmentSize()
	if size <= 0 {
		return 0
	}
	return int(m.Current / size)
}

func (m *MeterData) Percentage() float64 {
	if m.Maximum <= 0 {
		return 0
	}
	return m.Current / m.Maximum
}

func (m *MeterData) Full() bool {
	return m.Current >= m.Maximum
}

func (m *MeterData) Reset() {
	m.Current = 0
}

func (m *MeterData) segmentSize() float64 {
	if m.Segments <= 0 {
		return m.Maximum
	}
	return m.Maximum / float64(m.Segments)
}
