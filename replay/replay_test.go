package replay

import (
	"bytes"
	"errors"
	"testing"
)

func frame(n uint32, x float32) Frame {
	return Frame{
		Number: n,
		Inputs: []InputSnapshot{{PlayerID: 0, Buttons: 1 | 1<<16, StickX: 0.5}},
		Entities: []EntitySnapshot{
			{ID: 1, X: x, Y: 10, Health: 100, Meter: 25},
			{ID: 2, X: 300, Y: 10, Health: 80, Meter: 0},
		},
	}
}

func TestFrameChecksum(t *testing.T) {
	f := Frame{
		Number:   7,
		Inputs:   []InputSnapshot{{PlayerID: 1, Buttons: 3, StickX: 0.9, StickY: -1}},
		Entities: []EntitySnapshot{{ID: 4, X: 12.7, Y: -3.2}},
	}
	// 7 + 1 + 3 + 0 + uint32(-1) + 4 + 12 + uint32(-3), wrapping
	want := uint32(7+1+3+0+4+12) - 1 - 3
	if got := FrameChecksum(f); got != want {
		t.Fatalf("FrameChecksum = %d, want %d", got, want)
	}
}

func TestChecksumWraps(t *testing.T) {
	frames := []Frame{{Number: 0xFFFFFFFF}, {Number: 2}}
	if got := Checksum(frames); got != 1 {
		t.Fatalf("Checksum = %d, want 1", got)
	}
}

func TestRecorderEvictsOldest(t *testing.T) {
	r := NewRecorder(3, 1.0/120, "1.0")
	r.Start(1000, "arena", []string{"Bas", "Luca"})
	for i := uint32(1); i <= 5; i++ {
		if err := r.Capture(frame(i, float32(i))); err != nil {
			t.Fatalf("capture %d: %v", i, err)
		}
	}
	frames := r.Frames()
	if len(frames) != 3 {
		t.Fatalf("len = %d, want 3", len(frames))
	}
	for i, f := range frames {
		if f.Number != uint32(i+3) {
			t.Fatalf("frames[%d].Number = %d, want %d", i, f.Number, i+3)
		}
	}
}

func TestRecorderRejectsGap(t *testing.T) {
	r := NewRecorder(10, 1.0/120, "1.0")
	r.Start(0, "", nil)
	_ = r.Capture(frame(1, 0))
	if err := r.Capture(frame(3, 0)); !errors.Is(err, ErrFrameGap) {
		t.Fatalf("err = %v, want ErrFrameGap", err)
	}
}

func TestRecorderIdle(t *testing.T) {
	r := NewRecorder(10, 1.0/120, "1.0")
	if err := r.Capture(frame(1, 0)); !errors.Is(err, ErrNotRecording) {
		t.Fatalf("capture err = %v", err)
	}
	if _, err := r.Stop(""); !errors.Is(err, ErrNotRecording) {
		t.Fatalf("stop err = %v", err)
	}
}

func TestStopFillsMetadata(t *testing.T) {
	r := NewRecorder(0, 1.0/120, "1.0")
	r.Start(1700000000, "dojo", []string{"Bas"})
	for i := uint32(1); i <= 240; i++ {
		_ = r.Capture(frame(i, float32(i)))
	}
	rep, err := r.Stop("Player")
	if err != nil {
		t.Fatal(err)
	}
	if r.Recording() {
		t.Fatal("still recording after Stop")
	}
	if rep.Meta.Duration < 1.999 || rep.Meta.Duration > 2.001 {
		t.Fatalf("Duration = %v, want 2", rep.Meta.Duration)
	}
	if rep.Meta.Winner != "Player" || rep.Meta.Stage != "dojo" || rep.Meta.Version != "1.0" {
		t.Fatalf("meta = %+v", rep.Meta)
	}
	if err := Verify(rep); err != nil {
		t.Fatalf("Verify: %v", err)
	}

	rep.Frames[10].Entities[0].X += 5
	if err := Verify(rep); !errors.Is(err, ErrChecksumMismatch) {
		t.Fatalf("Verify after tamper = %v, want ErrChecksumMismatch", err)
	}
}

func TestPlayerSeekAndStop(t *testing.T) {
	rep := &Replay{Frames: []Frame{frame(1, 0), frame(2, 0), frame(3, 0)}}
	p := NewPlayer(rep)
	p.Start()
	if !p.Playing() {
		t.Fatal("not playing after Start")
	}

	p.Seek(1)
	f, ok := p.Next()
	if !ok || f.Number != 2 {
		t.Fatalf("Next after Seek(1) = %d, %v", f.Number, ok)
	}
	if _, ok := p.Next(); !ok {
		t.Fatal("last frame not yielded")
	}
	if p.Playing() {
		t.Fatal("still playing after last frame")
	}
	if _, ok := p.Next(); ok {
		t.Fatal("Next yielded past the end")
	}

	p.Seek(-4)
	if p.Cursor() != 0 {
		t.Fatalf("Seek(-4) cursor = %d", p.Cursor())
	}
	p.Seek(99)
	if p.Cursor() != 3 {
		t.Fatalf("Seek(99) cursor = %d", p.Cursor())
	}
}

func TestPlayerSeekRewindsAfterEnd(t *testing.T) {
	rep := &Replay{Frames: []Frame{frame(1, 0), frame(2, 0), frame(3, 0)}}
	p := NewPlayer(rep)
	p.Start()
	for {
		if _, ok := p.Next(); !ok {
			break
		}
	}

	p.Seek(1)
	if !p.Playing() {
		t.Fatal("not playing after seeking back into the recording")
	}
	f, ok := p.Next()
	if !ok || f.Number != 2 {
		t.Fatalf("Next after rewind = %d, %v", f.Number, ok)
	}

	p.Seek(3)
	if p.Playing() {
		t.Fatal("playing after seeking to the end")
	}
	if _, ok := p.Next(); ok {
		t.Fatal("Next yielded at the end")
	}
}

func TestCodecRoundTrip(t *testing.T) {
	r := NewRecorder(0, 1.0/120, "1.0")
	r.Start(1700000000, "dojo", []string{"Bas", "Wolters"})
	for i := uint32(1); i <= 50; i++ {
		_ = r.Capture(frame(i, float32(i)*1.5))
	}
	rep, _ := r.Stop("Enemy")

	data, err := Marshal(rep)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte(Magic)) {
		t.Fatalf("missing magic: %q", data[:4])
	}
	got, err := Unmarshal(data)
	if err != nil {
		t.Fatal(err)
	}
	if got.Meta.Checksum != rep.Meta.Checksum || got.Meta.Winner != "Enemy" || len(got.Meta.Characters) != 2 {
		t.Fatalf("meta = %+v", got.Meta)
	}
	if len(got.Frames) != 50 {
		t.Fatalf("frames = %d", len(got.Frames))
	}
	want := rep.Frames[49]
	have := got.Frames[49]
	if have.Number != want.Number || have.Entities[1] != want.Entities[1] || have.Inputs[0] != want.Inputs[0] {
		t.Fatalf("frame 50 = %+v, want %+v", have, want)
	}
	if err := Verify(got); err != nil {
		t.Fatal(err)
	}

	again, _ := Marshal(got)
	if !bytes.Equal(again, data) {
		t.Fatal("re-encoding is not byte identical")
	}
}

func TestDecodeRejectsBadMagic(t *testing.T) {
	if _, err := Unmarshal([]byte("NOPE\x00\x00")); !errors.Is(err, ErrBadMagic) {
		t.Fatalf("err = %v, want ErrBadMagic", err)
	}
}

func TestDecodeTruncated(t *testing.T) {
	rep := &Replay{Meta: Metadata{Version: "1.0"}, Frames: []Frame{frame(1, 0)}}
	data, _ := Marshal(rep)
	if _, err := Unmarshal(data[:len(data)-3]); err == nil {
		t.Fatal("truncated replay decoded")
	}
}

func TestCodecRejectsInvalidUTF8(t *testing.T) {
	rep := &Replay{Meta: Metadata{Version: "1.0", Stage: "dojo\xff"}}
	if _, err := Marshal(rep); !errors.Is(err, ErrInvalidString) {
		t.Fatalf("Marshal err = %v, want ErrInvalidString", err)
	}

	data := append([]byte(Magic), 2, 0, 0xc3, 0x28)
	if _, err := Unmarshal(data); !errors.Is(err, ErrInvalidString) {
		t.Fatalf("Unmarshal err = %v, want ErrInvalidString", err)
	}
}
