package input

import "github.com/automoto/doomerang-brawl/config"

// Frame is the input state of one source for one tick: held buttons,
// buttons pressed during the tick, and the stick derived from held
// directions.
type Frame struct {
	Held    uint16
	Pressed uint16
	StickX  float32
	StickY  float32
}

// Fold applies the tick's events, in order, on top of the previously held
// buttons. A press and release inside the same tick still counts as pressed.
func Fold(held uint16, events []Event) Frame {
	f := Frame{Held: held}
	for _, ev := range events {
		bit := ev.Action.Bit()
		if ev.Pressed {
			if f.Held&bit == 0 {
				f.Pressed |= bit
			}
			f.Held |= bit
		} else {
			f.Held &^= bit
		}
	}
	f.StickX, f.StickY = stick(f.Held)
	return f
}

func stick(held uint16) (float32, float32) {
	var x, y float32
	if held&config.ActionLeft.Bit() != 0 {
		x--
	}
	if held&config.ActionRight.Bit() != 0 {
		x++
	}
	if held&config.ActionUp.Bit() != 0 {
		y--
	}
	if held&config.ActionDown.Bit() != 0 {
		y++
	}
	return x, y
}

// Buttons packs the frame into the replay bitmask: held in the low half,
// pressed in the high half.
func (f Frame) Buttons() uint32 {
	return uint32(f.Held) | uint32(f.Pressed)<<16
}

// FrameFromButtons rebuilds a frame from a replay bitmask.
func FrameFromButtons(buttons uint32, stickX, stickY float32) Frame {
	return Frame{
		Held:    uint16(buttons),
		Pressed: uint16(buttons >> 16),
		StickX:  stickX,
		StickY:  stickY,
	}
}

func (f Frame) IsHeld(a config.Action) bool {
	return f.Held&a.Bit() != 0
}

func (f Frame) WasPressed(a config.Action) bool {
	return f.Pressed&a.Bit() != 0
}

// PressEvents lists the tick's presses stamped at t, in action order.
func (f Frame) PressEvents(t float64) []Event {
	var out []Event
	for a := config.Action(0); a < config.ActionCount; a++ {
		if f.WasPressed(a) {
			out = append(out, Event{Action: a, Time: t, Pressed: true})
		}
	}
	return out
}
