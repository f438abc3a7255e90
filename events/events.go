// Package events defines the combat events the simulation publishes and an
// outbound log the host drains once per frame.
package events

import (
	cfg "github.com/automoto/doomerang-brawl/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

type HitLanded struct {
	Attacker donburi.Entity
	Defender donburi.Entity
	Damage   float64
	Kind     cfg.HitKind
}

type HitBlocked struct {
	Attacker donburi.Entity
	Defender donburi.Entity
	Kind     cfg.HitKind
}

type HitParried struct {
	Attacker donburi.Entity
	Defender donburi.Entity
}

type KO struct {
	Attacker donburi.Entity
	Defender donburi.Entity
}

type ComboBroken struct {
	Attacker donburi.Entity
	Hits     int
}

type SuperActivated struct {
	Entity donburi.Entity
	Name   string
}

type AbilityActivated struct {
	Entity donburi.Entity
	Name   string
}

type WaveStarted struct {
	Wave    int
	Enemies int
}

type WaveCompleted struct {
	Wave int
}

var (
	HitLandedEvent        = events.NewEventType[HitLanded]()
	HitBlockedEvent       = events.NewEventType[HitBlocked]()
	HitParriedEvent       = events.NewEventType[HitParried]()
	KOEvent               = events.NewEventType[KO]()
	ComboBrokenEvent      = events.NewEventType[ComboBroken]()
	SuperActivatedEvent   = events.NewEventType[SuperActivated]()
	AbilityActivatedEvent = events.NewEventType[AbilityActivated]()
	WaveStartedEvent      = events.NewEventType[WaveStarted]()
	WaveCompletedEvent    = events.NewEventType[WaveCompleted]()
)
