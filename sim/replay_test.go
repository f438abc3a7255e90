package sim

import (
	"errors"
	"testing"

	cfg "github.com/automoto/doomerang-brawl/config"
	"github.com/automoto/doomerang-brawl/replay"
)

func scriptedMatch() cfg.MatchConfig {
	m := cfg.DefaultMatch()
	m.Seed = 0x1234
	return m
}

func record(t *testing.T, m cfg.MatchConfig, seconds float64) *replay.Replay {
	t.Helper()
	s, err := New(m, quiet())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	s.StartRecording(1700000000)
	// Uneven host frames exercise the accumulator.
	frames := []float64{1.0 / 60, 1.0 / 144, 0.02, 1.0 / 30}
	for i := 0; s.Time() < seconds; i++ {
		if err := s.Advance(frames[i%len(frames)]); err != nil {
			t.Fatalf("Advance at tick %d: %v", s.Tick(), err)
		}
	}
	r, err := s.StopRecording("")
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func TestReplayDeterminism(t *testing.T) {
	first := record(t, scriptedMatch(), 10)
	second := record(t, scriptedMatch(), 10)

	if len(first.Frames) < 1200 {
		t.Fatalf("recorded %d frames, want at least 1200", len(first.Frames))
	}
	if first.Meta.Checksum != second.Meta.Checksum {
		t.Fatalf("checksums differ: %08x vs %08x", first.Meta.Checksum, second.Meta.Checksum)
	}
	n := min(len(first.Frames), len(second.Frames))
	for i := 0; i < n; i++ {
		a, b := first.Frames[i], second.Frames[i]
		if replay.FrameChecksum(a) != replay.FrameChecksum(b) || len(a.Entities) != len(b.Entities) {
			t.Fatalf("frame %d differs", a.Number)
		}
		for j := range a.Entities {
			if a.Entities[j] != b.Entities[j] {
				t.Fatalf("frame %d entity %d: %+v vs %+v", a.Number, j, a.Entities[j], b.Entities[j])
			}
		}
	}
}

func TestDifferentSeedsDiverge(t *testing.T) {
	a := scriptedMatch()
	b := scriptedMatch()
	b.Seed = 0x4321
	if record(t, a, 5).Meta.Checksum == record(t, b, 5).Meta.Checksum {
		t.Fatal("different seeds produced the same checksum")
	}
}

func TestSetSeedReplaysFromMatch(t *testing.T) {
	base := scriptedMatch()
	s, err := New(base, quiet())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	s.SetSeed(0x9999)
	if s.Match().Seed != 0x9999 {
		t.Fatalf("Match().Seed = %#x after SetSeed(0x9999)", s.Match().Seed)
	}

	s.StartRecording(1700000000)
	for s.Time() < 10 {
		if err := s.Advance(1.0 / 60); err != nil {
			t.Fatalf("Advance at tick %d: %v", s.Tick(), err)
		}
	}
	r, err := s.StopRecording("")
	if err != nil {
		t.Fatal(err)
	}

	if err := Resimulate(r, s.Match(), quiet()); err != nil {
		t.Fatalf("Resimulate with Match(): %v", err)
	}
	if err := Resimulate(r, base, quiet()); !errors.Is(err, ErrDivergence) {
		t.Fatalf("Resimulate with the construction seed = %v, want ErrDivergence", err)
	}
}

func TestReplayRoundTripResimulates(t *testing.T) {
	m := scriptedMatch()
	r := record(t, m, 10)

	data, err := replay.Marshal(r)
	if err != nil {
		t.Fatal(err)
	}
	loaded, err := replay.Unmarshal(data)
	if err != nil {
		t.Fatal(err)
	}
	if err := replay.Verify(loaded); err != nil {
		t.Fatal(err)
	}
	if err := Resimulate(loaded, m, quiet()); err != nil {
		t.Fatalf("Resimulate: %v", err)
	}
}

func TestResimulateDetectsTampering(t *testing.T) {
	m := scriptedMatch()
	r := record(t, m, 2)
	r.Frames[100].Entities[0].X += 3

	if err := Resimulate(r, m, quiet()); !errors.Is(err, ErrDivergence) {
		t.Fatalf("err = %v, want ErrDivergence", err)
	}
}

func TestResimulateNeedsFirstFrame(t *testing.T) {
	m := scriptedMatch()
	r := record(t, m, 1)
	r.Frames = r.Frames[10:]
	if err := Resimulate(r, m, quiet()); !errors.Is(err, ErrPartialReplay) {
		t.Fatalf("err = %v, want ErrPartialReplay", err)
	}
}
