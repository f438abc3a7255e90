package components

import (
	cfg "github.com/automoto/doomerang-brawl/config"
	"github.com/yohamta/donburi"
)

// SuperPhase is the stage of a super move.
type SuperPhase int

const (
	SuperIdle SuperPhase = iota
	SuperStartup
	SuperActive
	SuperRecovery
)

func (p SuperPhase) String() string {
	switch p {
	case SuperIdle:
		return "Idle"
	case SuperStartup:
		return "Startup"
	case SuperActive:
		return "Active"
	case SuperRecovery:
		return "Recovery"
	}
	return "Unknown"
}

// SuperData is the super move state machine of a fighter.
type SuperData struct {
	Move  cfg.SuperDef
	Phase SuperPhase
	Timer float64 // seconds left in Phase
}

// Running reports whether a super is in progress.
func (s *SuperData) Running() bool {
	return s.Phase != SuperIdle
}

// PhaseDuration returns how long a phase of this super lasts.
func (s *SuperData) PhaseDuration(p SuperPhase) float64 {
	switch p {
	case SuperStartup:
		return s.Move.Startup
	case SuperActive:
		return s.Move.Active
	case SuperRecovery:
		return s.Move.Recovery
	}
	return 0
}

// Enter moves the machine to p and starts its timer.
func (s *SuperData) Enter(p SuperPhase) {
	s.Phase = p
	s.Timer = s.PhaseDuration(p)
}

var Super = donburi.NewComponentType[SuperData]()
