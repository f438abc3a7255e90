package components

import (
	cfg "github.com/automoto/doomerang-brawl/config"
	"github.com/yohamta/donburi"
)

// Rank is the style rating of a combo.
type Rank int

const (
	RankD Rank = iota
	RankC
	RankB
	RankA
	RankS
	RankSS
	RankSSS
)

func (r Rank) String() string {
	switch r {
	case RankD:
		return "D"
	case RankC:
		return "C"
	case RankB:
		return "B"
	case RankA:
		return "A"
	case RankS:
		return "S"
	case RankSS:
		return "SS"
	case RankSSS:
		return "SSS"
	}
	return "?"
}

// RankForHits maps a hit count to its rank using ascending thresholds for
// C, B, A, S, SS and SSS.
func RankForHits(hits int, thresholds [6]int) Rank {
	r := RankD
	for i, t := range thresholds {
		if hits >= t {
			r = Rank(i + 1)
		}
	}
	return r
}

// ComboData tracks the running combo of an attacker.
type ComboData struct {
	Active       bool
	Hits         int
	TotalDamage  float64
	Timer        float64
	MaxTimer     float64
	Scaling      float64
	HitstunDecay float64
	Rank         Rank
}

// NewCombo returns an idle combo.
func NewCombo() ComboData {
	return ComboData{Scaling: 1, HitstunDecay: 1}
}

// Scale applies the current damage scaling to raw damage.
func (c *ComboData) Scale(raw float64) float64 {
	if !c.Active {
		return raw
	}
	return raw * c.Scaling
}

// HitstunFactor is the current hitstun multiplier.
func (c *ComboData) HitstunFactor() float64 {
	if !c.Active {
		return 1
	}
	return c.HitstunDecay
}

// RegisterHit records a landed hit worth dealt damage, then decays the
// scaling for the next one. Returns true when the hit extended a running
// combo rather than opening a new one.
func (c *ComboData) RegisterHit(conf cfg.ComboConfig, dealt float64) bool {
	extended := c.Active
	if !extended {
		c.Active = true
		c.Hits = 1
		c.TotalDamage = dealt
		c.Scaling = 1
		c.HitstunDecay = 1
	} else {
		c.Hits++
		c.TotalDamage += dealt
	}
	c.Timer = conf.Timeout
	c.MaxTimer = conf.Timeout
	c.Scaling = max(c.Scaling*conf.ScalingStep, conf.MinScaling)
	c.HitstunDecay = max(c.HitstunDecay*conf.HitstunStep, conf.MinHitstunDecay)
	c.Rank = RankForHits(c.Hits, conf.RankThresholds)
	return extended
}

// Tick runs the decay timer. It returns the hit count of a combo that just
// broke, or 0.
func (c *ComboData) Tick(dt float64) int {
	if !c.Active {
		return 0
	}
	c.Timer -= dt
	if c.Timer > 0 {
		return 0
	}
	hits := c.Hits
	c.Reset()
	return hits
}

func (c *ComboData) Reset() {
	*c = NewCombo()
}

var Combo = donburi.NewComponentType[ComboData]()
