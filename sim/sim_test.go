package sim

import (
	"errors"
	"fmt"
	"io"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/automoto/doomerang-brawl/components"
	cfg "github.com/automoto/doomerang-brawl/config"
	"github.com/automoto/doomerang-brawl/events"
	"github.com/automoto/doomerang-brawl/systems/factory"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
)

func quiet() Option {
	return WithLogger(log.New(io.Discard))
}

func newSim(t *testing.T, fighters ...cfg.FighterSpec) (*Sim, []donburi.Entity) {
	t.Helper()
	m := cfg.NewMatch()
	s, err := New(m, quiet())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	var ids []donburi.Entity
	for _, f := range fighters {
		e, err := s.Spawn(f)
		if err != nil {
			t.Fatalf("Spawn: %v", err)
		}
		ids = append(ids, e)
	}
	return s, ids
}

func duel(t *testing.T, attacker, defender cfg.Team) (*Sim, donburi.Entity, donburi.Entity) {
	s, ids := newSim(t,
		cfg.FighterSpec{Character: cfg.Bas, Team: attacker, X: 100, Y: 500, Facing: 1},
		cfg.FighterSpec{Character: cfg.Luca, Team: defender, X: 140, Y: 500, Facing: -1},
	)
	return s, ids[0], ids[1]
}

func hitsLanded(recs []events.Record) []events.HitLanded {
	var out []events.HitLanded
	for _, r := range recs {
		if h, ok := r.Event.(events.HitLanded); ok {
			out = append(out, h)
		}
	}
	return out
}

func step(t *testing.T, s *Sim) {
	t.Helper()
	if err := s.Advance(s.Dt()); err != nil {
		t.Fatalf("Advance at tick %d: %v", s.Tick(), err)
	}
}

func TestSingleLightHit(t *testing.T) {
	s, att, def := duel(t, cfg.TeamPlayer, cfg.TeamEnemy)
	factory.AttachHitbox(s.World(), att, cfg.LightHitbox, 0.1)
	step(t, s)

	hits := hitsLanded(s.DrainEvents())
	if len(hits) != 1 || hits[0].Damage != 5 {
		t.Fatalf("hits = %+v, want one HitLanded of 5", hits)
	}
	v, _ := s.Snapshot().Fighter(def)
	if v.Health != 95 {
		t.Fatalf("health = %v, want 95", v.Health)
	}
	if v.State != cfg.Hitstun {
		t.Fatalf("state = %v, want Hitstun", v.State)
	}
	if v.Velocity.X < 50 {
		t.Fatalf("velocity.x = %v, want >= 50", v.Velocity.X)
	}
}

func TestOneHitPerTarget(t *testing.T) {
	s, att, def := duel(t, cfg.TeamPlayer, cfg.TeamEnemy)
	factory.AttachHitbox(s.World(), att, cfg.LightHitbox, 1.0)
	for range 10 {
		step(t, s)
	}

	if hits := hitsLanded(s.DrainEvents()); len(hits) != 1 {
		t.Fatalf("%d HitLanded events, want 1", len(hits))
	}
	snap := s.Snapshot()
	d, _ := snap.Fighter(def)
	a, _ := snap.Fighter(att)
	if d.Health != 95 {
		t.Fatalf("health = %v, want 95", d.Health)
	}
	if a.Combo != 1 {
		t.Fatalf("combo = %d, want 1", a.Combo)
	}
}

func TestAlliedTargetIsIgnored(t *testing.T) {
	for _, team := range []cfg.Team{cfg.TeamPlayer, cfg.TeamAlly} {
		s, att, def := duel(t, cfg.TeamPlayer, team)
		factory.AttachHitbox(s.World(), att, cfg.LightHitbox, 0.1)
		step(t, s)

		if hits := hitsLanded(s.DrainEvents()); len(hits) != 0 {
			t.Fatalf("team %v: %d HitLanded events, want 0", team, len(hits))
		}
		if v, _ := s.Snapshot().Fighter(def); v.Health != 100 {
			t.Fatalf("team %v: health = %v, want 100", team, v.Health)
		}
	}
}

func TestComboScaling(t *testing.T) {
	s, att, _ := duel(t, cfg.TeamPlayer, cfg.TeamEnemy)
	hitbox := cfg.LightHitbox
	hitbox.Damage = 10
	hitbox.PushbackX = 0

	var got []float64
	for range 5 {
		factory.AttachHitbox(s.World(), att, hitbox, 0.05)
		step(t, s)
		for _, h := range hitsLanded(s.DrainEvents()) {
			got = append(got, h.Damage)
		}
	}

	want := []float64{10, 9.5, 9.025, 8.57375, 8.1450625}
	if len(got) != len(want) {
		t.Fatalf("damages = %v, want %v", got, want)
	}
	total := 0.0
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-9 {
			t.Fatalf("hit %d damage = %v, want %v", i+1, got[i], want[i])
		}
		total += got[i]
	}
	if math.Abs(total-45.2438125) > 1e-9 {
		t.Fatalf("total = %v", total)
	}

	a, _ := s.Snapshot().Fighter(att)
	if a.Combo != 5 || a.Rank != components.RankC {
		t.Fatalf("combo = %d rank %v, want 5 hits rank C", a.Combo, a.Rank)
	}
}

func TestComboDecay(t *testing.T) {
	s, att, _ := duel(t, cfg.TeamPlayer, cfg.TeamEnemy)
	factory.AttachHitbox(s.World(), att, cfg.LightHitbox, 0.1)

	var broken []events.Record
	for s.Time() < 2.01 {
		step(t, s)
		for _, r := range s.DrainEvents() {
			if _, ok := r.Event.(events.ComboBroken); ok {
				broken = append(broken, r)
			}
		}
	}

	if len(broken) != 1 {
		t.Fatalf("%d ComboBroken events, want 1", len(broken))
	}
	if ev := broken[0].Event.(events.ComboBroken); ev.Hits != 1 || ev.Attacker != att {
		t.Fatalf("ComboBroken = %+v", ev)
	}
	if at := float64(broken[0].Tick) * s.Dt(); at < 1.99 || at > 2.01 {
		t.Fatalf("combo broke at %.4fs, want about 2s", at)
	}
	if a, _ := s.Snapshot().Fighter(att); a.Combo != 0 {
		t.Fatalf("combo not reset: %d hits", a.Combo)
	}
}

func TestAccumulator(t *testing.T) {
	s, _ := newSim(t)
	dt := s.Dt()
	frames := []float64{1.0 / 60, 0.003, 0.02, 1.0 / 144, 0, -0.5, 0.011}
	total := 0.0
	for _, ft := range frames {
		if err := s.Advance(ft); err != nil {
			t.Fatal(err)
		}
		total += max(ft, 0)
		if acc := s.Accumulator(); acc < 0 || acc >= dt {
			t.Fatalf("after Advance(%v) accumulator = %v", ft, acc)
		}
		if a := s.Alpha(); a < 0 || a >= 1 {
			t.Fatalf("alpha = %v", a)
		}
	}
	if want := uint32(total / dt); s.Tick() != want && s.Tick() != want-1 {
		t.Fatalf("ticks = %d, want about %d", s.Tick(), want)
	}
}

func TestAccumulatorClamp(t *testing.T) {
	s, _ := newSim(t)
	if err := s.Advance(3.0); err != nil {
		t.Fatal(err)
	}
	if s.Tick() != 30 {
		t.Fatalf("ticks after a 3s stall = %d, want 30", s.Tick())
	}
}

func TestStop(t *testing.T) {
	s, _ := newSim(t)
	s.Stop()
	if err := s.Advance(0.1); !errors.Is(err, ErrStopped) {
		t.Fatalf("err = %v, want ErrStopped", err)
	}
	if s.Tick() != 0 {
		t.Fatalf("ticked after Stop")
	}
}

func TestInjectInputErrors(t *testing.T) {
	player := uint8(0)
	s, _ := newSim(t, cfg.FighterSpec{Character: cfg.Bas, Team: cfg.TeamPlayer, X: 300, Y: 500, Facing: 1, Player: &player})
	step(t, s)
	step(t, s)

	err := s.InjectInput(InputEvent{Player: 0, Action: cfg.ActionJump, Time: 0, Pressed: true})
	if !errors.Is(err, ErrInputOutOfWindow) {
		t.Fatalf("err = %v, want ErrInputOutOfWindow", err)
	}
	if err := s.InjectInput(InputEvent{Player: 0, Action: cfg.ActionJump, Time: 1.0, Pressed: true}); err != nil {
		t.Fatal(err)
	}
	err = s.InjectInput(InputEvent{Player: 0, Action: cfg.ActionJump, Time: 0.5, Pressed: false})
	if !errors.Is(err, ErrInputOutOfOrder) {
		t.Fatalf("err = %v, want ErrInputOutOfOrder", err)
	}
}

func TestInjectedPressStartsAttack(t *testing.T) {
	player := uint8(0)
	s, ids := newSim(t, cfg.FighterSpec{Character: cfg.Bas, Team: cfg.TeamPlayer, X: 300, Y: 500, Facing: 1, Player: &player})
	if err := s.InjectInput(InputEvent{Player: 0, Action: cfg.ActionLightAttack, Time: 0, Pressed: true}); err != nil {
		t.Fatal(err)
	}
	step(t, s)
	if v, _ := s.Snapshot().Fighter(ids[0]); v.State != cfg.LightAttack {
		t.Fatalf("state = %v, want LightAttack", v.State)
	}
}

func TestHostSuperActivation(t *testing.T) {
	s, ids := newSim(t,
		cfg.FighterSpec{Character: cfg.Bas, Team: cfg.TeamPlayer, X: 300, Y: 500, Facing: 1, Meter: 60},
		cfg.FighterSpec{Character: cfg.Luca, Team: cfg.TeamPlayer, X: 600, Y: 500, Facing: 1, Meter: 10},
	)

	if err := s.TryActivateSuper(ids[1]); !errors.Is(err, components.ErrInsufficientMeter) {
		t.Fatalf("err = %v, want ErrInsufficientMeter", err)
	}
	if err := s.TryActivateSuper(ids[0]); err != nil {
		t.Fatal(err)
	}

	var activated bool
	for _, r := range s.DrainEvents() {
		if ev, ok := r.Event.(events.SuperActivated); ok && ev.Entity == ids[0] {
			activated = true
		}
	}
	if !activated {
		t.Fatal("no SuperActivated event")
	}

	snap := s.Snapshot()
	bas, _ := snap.Fighter(ids[0])
	luca, _ := snap.Fighter(ids[1])
	if bas.Super != components.SuperStartup || bas.Meter != 10 {
		t.Fatalf("bas super %v meter %v", bas.Super, bas.Meter)
	}
	if luca.State != cfg.Idle || luca.Super != components.SuperIdle || luca.Meter != 10 {
		t.Fatalf("luca state %v super %v meter %v", luca.State, luca.Super, luca.Meter)
	}
}

func TestSuperCommands(t *testing.T) {
	for _, super := range cfg.Supers {
		t.Run(super.Character.String(), func(t *testing.T) {
			player := uint8(0)
			s, ids := newSim(t, cfg.FighterSpec{
				Character: super.Character, Team: cfg.TeamPlayer, X: 300, Y: 500, Facing: 1,
				Player: &player, Meter: 100,
			})
			for i, a := range super.Sequence {
				at := float64(i) * 0.06
				for _, ev := range []InputEvent{
					{Player: player, Action: a, Time: at, Pressed: true},
					{Player: player, Action: a, Time: at + 0.02},
				} {
					if err := s.InjectInput(ev); err != nil {
						t.Fatal(err)
					}
				}
			}
			for range 60 {
				step(t, s)
			}

			var activated int
			for _, r := range s.DrainEvents() {
				if ev, ok := r.Event.(events.SuperActivated); ok && ev.Entity == ids[0] {
					activated++
					if ev.Name != super.Name {
						t.Errorf("super = %q, want %q", ev.Name, super.Name)
					}
				}
			}
			if activated != 1 {
				t.Fatalf("%d SuperActivated events for %v, want 1", activated, super.Sequence)
			}
			if v, _ := s.Snapshot().Fighter(ids[0]); v.Meter >= 100 {
				t.Fatalf("meter = %v after a super costing %v", v.Meter, super.Cost)
			}
		})
	}
}

func TestSuperCommandNeedsMeter(t *testing.T) {
	player := uint8(0)
	s, ids := newSim(t, cfg.FighterSpec{
		Character: cfg.Nitin, Team: cfg.TeamPlayer, X: 300, Y: 500, Facing: 1,
		Player: &player, Meter: 10,
	})
	for i, a := range []cfg.Action{cfg.ActionLightAttack, cfg.ActionHeavyAttack, cfg.ActionSuper} {
		at := float64(i) * 0.06
		_ = s.InjectInput(InputEvent{Player: player, Action: a, Time: at, Pressed: true})
		_ = s.InjectInput(InputEvent{Player: player, Action: a, Time: at + 0.02})
	}
	for range 60 {
		step(t, s)
	}
	for _, r := range s.DrainEvents() {
		if _, ok := r.Event.(events.SuperActivated); ok {
			t.Fatal("super activated without meter")
		}
	}
	if v, _ := s.Snapshot().Fighter(ids[0]); v.Super != components.SuperIdle {
		t.Fatalf("super phase = %v, want idle", v.Super)
	}
}

// randomScript mashes buttons for player 0 for the given number of seconds.
func randomScript(r *rand.Rand, seconds float64) []cfg.ScriptEvent {
	var out []cfg.ScriptEvent
	for at := 0.0; at < seconds; at += r.Float64() * 0.15 {
		out = append(out, cfg.ScriptEvent{
			Time:   at,
			Player: 0,
			Action: cfg.Action(r.IntN(int(cfg.ActionCount))),
			Hold:   0.01 + r.Float64()*0.4,
		})
	}
	return out
}

func TestRandomInputKeepsInvariants(t *testing.T) {
	for _, seed := range []uint64{1, 2, 3, 42} {
		t.Run(fmt.Sprint(seed), func(t *testing.T) {
			r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
			m := cfg.DefaultMatch()
			m.Seed = seed
			m.Script = randomScript(r, 20)
			s, err := New(m, quiet())
			if err != nil {
				t.Fatalf("New: %v", err)
			}

			for s.Time() < 20 {
				frame := r.Float64() * 0.05
				switch r.IntN(40) {
				case 0:
					frame = -frame
				case 1:
					frame = 1
				}
				if err := s.Advance(frame); err != nil {
					t.Fatalf("Advance(%v) at tick %d: %v", frame, s.Tick(), err)
				}
				if acc := s.Accumulator(); acc < 0 || acc >= s.Dt() {
					t.Fatalf("accumulator %v outside [0, %v) at tick %d", acc, s.Dt(), s.Tick())
				}
			}

			for _, f := range s.Snapshot().Fighters {
				if f.Health < 0 || f.Health > f.MaxHealth {
					t.Errorf("fighter %d health %v of %v", f.ID, f.Health, f.MaxHealth)
				}
				if f.Meter < 0 || f.Meter > m.Tuning.Meter.Maximum {
					t.Errorf("fighter %d meter %v", f.ID, f.Meter)
				}
				if f.Facing != 1 && f.Facing != -1 {
					t.Errorf("fighter %d facing %v", f.ID, f.Facing)
				}
			}
		})
	}
}

func TestInvariantViolationHalts(t *testing.T) {
	s, ids := newSim(t, cfg.FighterSpec{Character: cfg.Bas, Team: cfg.TeamPlayer, X: 300, Y: 500, Facing: 1})
	f := components.Fighter.Get(s.World().World.Entry(ids[0]))
	f.Facing = 0

	err := s.Advance(s.Dt())
	var inv *InvariantError
	if !errors.As(err, &inv) {
		t.Fatalf("err = %v, want *InvariantError", err)
	}
	if inv.Tick != 1 || inv.System != "invariants" {
		t.Fatalf("InvariantError = %+v", inv)
	}
	if err := s.Advance(s.Dt()); !errors.Is(err, ErrHalted) {
		t.Fatalf("err = %v, want ErrHalted", err)
	}
}
