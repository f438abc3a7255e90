package components

import (
	"errors"
	"math"
	"testing"

	cfg "github.com/automoto/doomerang-brawl/config"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestMeterGainAndConsume(t *testing.T) {
	conf := cfg.Default().Meter
	m := NewMeter(conf)

	m.Gain(conf, GainDamageDealt, 10)
	m.Gain(conf, GainParrySuccessful, 0)
	if !near(m.Current, 20) {
		t.Fatalf("Current = %v, want 20", m.Current)
	}
	if err := m.Consume(50); !errors.Is(err, ErrInsufficientMeter) {
		t.Fatalf("Consume(50) err = %v", err)
	}
	if !near(m.Current, 20) {
		t.Fatalf("failed Consume changed meter to %v", m.Current)
	}

	for range 20 {
		m.Gain(conf, GainParrySuccessful, 0)
	}
	if !m.Full() || m.Current != m.Maximum {
		t.Fatalf("meter not clamped: %v", m.Current)
	}
	if m.FilledSegments() != 4 {
		t.Fatalf("FilledSegments = %d, want 4", m.FilledSegments())
	}
	if err := m.ConsumeSegments(3); err != nil {
		t.Fatal(err)
	}
	if !near(m.Percentage(), 0.25) {
		t.Fatalf("Percentage = %v, want 0.25", m.Percentage())
	}
}

func TestRankForHits(t *testing.T) {
	thresholds := cfg.Default().Combo.RankThresholds
	tests := []struct {
		hits int
		want Rank
	}{
		{0, RankD}, {2, RankD}, {3, RankC}, {5, RankC}, {6, RankB},
		{10, RankA}, {15, RankS}, {20, RankSS}, {29, RankSS}, {30, RankSSS}, {99, RankSSS},
	}
	for _, tt := range tests {
		if got := RankForHits(tt.hits, thresholds); got != tt.want {
			t.Errorf("RankForHits(%d) = %v, want %v", tt.hits, got, tt.want)
		}
	}
}

func TestComboScalingAndBreak(t *testing.T) {
	conf := cfg.Default().Combo
	c := NewCombo()

	want := []float64{10, 9.5, 9.025, 8.57375, 8.1450625}
	prevScaling := 1.0
	for i, w := range want {
		dealt := c.Scale(10)
		if !near(dealt, w) {
			t.Fatalf("hit %d dealt %v, want %v", i+1, dealt, w)
		}
		extended := c.RegisterHit(conf, dealt)
		if extended != (i > 0) {
			t.Fatalf("hit %d extended = %v", i+1, extended)
		}
		if c.Scaling > prevScaling {
			t.Fatalf("scaling grew to %v", c.Scaling)
		}
		prevScaling = c.Scaling
	}
	if c.Hits != 5 || c.Rank != RankC || !near(c.TotalDamage, 45.2438125) {
		t.Fatalf("combo = %+v", c)
	}

	if hits := c.Tick(1.0); hits != 0 {
		t.Fatalf("combo broke early")
	}
	if hits := c.Tick(1.0); hits != 5 {
		t.Fatalf("Tick returned %d, want 5", hits)
	}
	if c.Active || c.Hits != 0 || c.Scaling != 1 {
		t.Fatalf("combo not reset: %+v", c)
	}
}

func TestComboScalingFloor(t *testing.T) {
	conf := cfg.Default().Combo
	c := NewCombo()
	for range 100 {
		c.RegisterHit(conf, 1)
	}
	if c.Scaling < conf.MinScaling || !near(c.Scaling, conf.MinScaling) {
		t.Fatalf("Scaling = %v, want floor %v", c.Scaling, conf.MinScaling)
	}
	if c.HitstunDecay < conf.MinHitstunDecay {
		t.Fatalf("HitstunDecay = %v below floor", c.HitstunDecay)
	}
}

func TestHitboxRegisterOnce(t *testing.T) {
	w := donburi.NewWorld()
	def := w.Create()
	h := NewHitbox(cfg.LightHitbox, 0.1)

	if err := h.Register(def); err != nil {
		t.Fatal(err)
	}
	if err := h.Register(def); !errors.Is(err, ErrAlreadyHit) {
		t.Fatalf("second Register err = %v", err)
	}
}

func TestHitboxMirrorsWithFacing(t *testing.T) {
	h := NewHitbox(cfg.LightHitbox, 0.1)
	pos := dmath.Vec2{X: 100, Y: 500}

	right := h.WorldRect(pos, 1)
	left := h.WorldRect(pos, -1)
	if right.MinX != 110 || right.MaxX != 170 {
		t.Fatalf("right = %+v", right)
	}
	if left.MinX != 30 || left.MaxX != 90 {
		t.Fatalf("left = %+v", left)
	}
	if h.Offset.X != 40 {
		t.Fatalf("offset mutated to %v", h.Offset.X)
	}
}

func TestRectOverlapExcludesEdges(t *testing.T) {
	a := Rect{0, 0, 10, 10}
	if a.Overlaps(Rect{10, 0, 20, 10}) {
		t.Error("touching rects overlap")
	}
	if !a.Overlaps(Rect{9, 9, 20, 20}) {
		t.Error("overlapping rects do not overlap")
	}
}

func TestHealthClamp(t *testing.T) {
	h := HealthData{Current: 10, Maximum: 100}
	if taken := h.Damage(25); taken != 10 || h.Current != 0 || !h.Dead() {
		t.Fatalf("taken %v, health %+v", taken, h)
	}
	h.Heal(500)
	if h.Current != 100 {
		t.Fatalf("Heal overflowed: %v", h.Current)
	}
}

func TestAnimationAdvance(t *testing.T) {
	var a AnimationData
	a.SetAnimation(cfg.LightAttack, cfg.AnimationDef{Frames: 3, FrameDuration: 0.1})
	a.Advance(0.25)
	if a.Frame != 2 || a.Finished {
		t.Fatalf("after 0.25s: frame %d finished %v", a.Frame, a.Finished)
	}
	a.Advance(0.1)
	if a.Frame != 2 || !a.Finished {
		t.Fatalf("one-shot clip did not finish: frame %d", a.Frame)
	}

	a.SetAnimation(cfg.Idle, cfg.AnimationDef{Frames: 2, FrameDuration: 0.1, Loop: true})
	a.Advance(0.25)
	if a.Frame != 0 || a.Finished {
		t.Fatalf("looping clip: frame %d finished %v", a.Frame, a.Finished)
	}
	a.SetAnimation(cfg.Idle, cfg.AnimationDef{Frames: 2, FrameDuration: 0.1, Loop: true})
	if !near(a.Timer, 0.05) {
		t.Fatalf("re-entering the clip reset its clock: timer %v", a.Timer)
	}
}

func TestParticleInterpolation(t *testing.T) {
	p := ParticleData{
		Lifetime:    0.5,
		MaxLifetime: 1,
		ColorStart:  cfg.Color{R: 1, A: 1},
		ColorEnd:    cfg.Color{B: 1, A: 0},
		SizeStart:   8,
		SizeEnd:     0,
	}
	c := p.Color()
	if !near(float64(c.R), 0.5) || !near(float64(c.B), 0.5) || !near(float64(c.A), 0.5) {
		t.Fatalf("Color = %+v", c)
	}
	if !near(p.Size(), 4) {
		t.Fatalf("Size = %v", p.Size())
	}
	if p.Expired() {
		t.Fatal("expired at half life")
	}
	p.Lifetime = 1
	if !p.Expired() || p.Size() != 0 {
		t.Fatalf("end of life: expired %v size %v", p.Expired(), p.Size())
	}
}

func TestSuperPhases(t *testing.T) {
	s := SuperData{Move: cfg.SuperFor(cfg.Nitin)}
	if s.Running() {
		t.Fatal("idle super running")
	}
	s.Enter(SuperStartup)
	if !s.Running() || s.Timer != 0.3 {
		t.Fatalf("startup timer %v", s.Timer)
	}
	s.Enter(SuperActive)
	if s.Timer != 1.5 {
		t.Fatalf("active timer %v", s.Timer)
	}
}

func TestAbilityCooldown(t *testing.T) {
	a := AbilityData{Def: cfg.AbilityDef{Duration: 1, Cooldown: 3, DamageBoost: 1.5}}
	if err := a.Activate(); err != nil {
		t.Fatal(err)
	}
	if a.DamageMultiplier() != 1.5 {
		t.Fatalf("DamageMultiplier = %v", a.DamageMultiplier())
	}
	if err := a.Activate(); !errors.Is(err, ErrAbilityCooldown) {
		t.Fatalf("re-activate err = %v", err)
	}
	if ended := a.Tick(1); !ended || a.Active {
		t.Fatal("active window did not end")
	}
	if a.DamageMultiplier() != 1 {
		t.Fatal("boost outlived the ability")
	}
	a.Tick(2)
	if err := a.Activate(); err != nil {
		t.Fatalf("after cooldown: %v", err)
	}

	var none AbilityData
	if err := none.Activate(); !errors.Is(err, ErrNoAbility) {
		t.Fatalf("err = %v, want ErrNoAbility", err)
	}
}
