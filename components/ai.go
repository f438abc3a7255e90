package components

import (
	cfg "github.com/automoto/doomerang-brawl/config"
	"github.com/yohamta/donburi"
)

// AIControllerData drives a fighter without a human input source.
type AIControllerData struct {
	Behavior   cfg.Behavior
	Phase      cfg.BossPhase
	Difficulty float64 // 0.0 = easy, 1.0 = hard

	Target    donburi.Entity
	HasTarget bool

	ReactionTimer float64 // seconds until the next decision
	LastAction    cfg.Action
	HasAction     bool // LastAction was chosen on the latest decision
}

// ClearTarget forgets the current target.
func (a *AIControllerData) ClearTarget() {
	a.Target = donburi.Null
	a.HasTarget = false
}

var AIController = donburi.NewComponentType[AIControllerData]()
