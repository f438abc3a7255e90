package input

import (
	"testing"

	"github.com/automoto/doomerang-brawl/config"
)

func TestFoldPressAndRelease(t *testing.T) {
	f := Fold(0, []Event{
		press(config.ActionRight, 0.001),
		press(config.ActionLightAttack, 0.002),
		{Action: config.ActionLightAttack, Time: 0.004},
	})
	if !f.IsHeld(config.ActionRight) || f.IsHeld(config.ActionLightAttack) {
		t.Fatalf("held = %016b", f.Held)
	}
	if !f.WasPressed(config.ActionLightAttack) || !f.WasPressed(config.ActionRight) {
		t.Fatalf("pressed = %016b", f.Pressed)
	}
	if f.StickX != 1 || f.StickY != 0 {
		t.Fatalf("stick = (%v,%v), want (1,0)", f.StickX, f.StickY)
	}

	next := Fold(f.Held, nil)
	if next.Pressed != 0 || !next.IsHeld(config.ActionRight) {
		t.Fatalf("held buttons should carry over without re-pressing: %+v", next)
	}
}

func TestButtonsRoundTrip(t *testing.T) {
	f := Fold(config.ActionUp.Bit(), []Event{press(config.ActionSuper, 0), press(config.ActionLeft, 0)})
	back := FrameFromButtons(f.Buttons(), f.StickX, f.StickY)
	if back != f {
		t.Fatalf("round trip = %+v, want %+v", back, f)
	}
	if f.StickX != -1 || f.StickY != -1 {
		t.Fatalf("stick = (%v,%v)", f.StickX, f.StickY)
	}
}

func TestPressEventsOrdered(t *testing.T) {
	f := Frame{Pressed: config.ActionSuper.Bit() | config.ActionDown.Bit()}
	evs := f.PressEvents(1.5)
	if len(evs) != 2 || evs[0].Action != config.ActionDown || evs[1].Action != config.ActionSuper {
		t.Fatalf("PressEvents = %+v", evs)
	}
	for _, ev := range evs {
		if ev.Time != 1.5 || !ev.Pressed {
			t.Fatalf("bad event %+v", ev)
		}
	}
}
