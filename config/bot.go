package config

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Behavior is the personality of an AI controller
type Behavior int

const (
	BehaviorAggressive Behavior = iota
	BehaviorDefensive
	BehaviorBalanced
	BehaviorEvasive
	BehaviorSupport
	BehaviorBoss
)

var behaviorNames = [...]string{
	BehaviorAggressive: "Aggressive",
	BehaviorDefensive:  "Defensive",
	BehaviorBalanced:   "Balanced",
	BehaviorEvasive:    "Evasive",
	BehaviorSupport:    "Support",
	BehaviorBoss:       "Boss",
}

func (b Behavior) String() string {
	if b < 0 || int(b) >= len(behaviorNames) {
		return fmt.Sprintf("Behavior(%d)", int(b))
	}
	return behaviorNames[b]
}

// ParseBehavior looks a behavior up by name, case-insensitively.
func ParseBehavior(name string) (Behavior, error) {
	for i, n := range behaviorNames {
		if strings.EqualFold(n, name) {
			return Behavior(i), nil
		}
	}
	return 0, fmt.Errorf("config: unknown behavior %q", name)
}

func (b Behavior) MarshalYAML() (interface{}, error) {
	return b.String(), nil
}

func (b *Behavior) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := ParseBehavior(value.Value)
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

// BossPhase escalates boss behavior as its health drops
type BossPhase int

const (
	BossPhase1 BossPhase = iota
	BossPhase2
	BossPhase3
)

// BehaviorDistances are the approach and retreat distances of a behavior
type BehaviorDistances struct {
	Approach float64 // move toward the target beyond this
	Retreat  float64 // back off inside this
}

// Distances holds the spacing each behavior tries to keep
var Distances = map[Behavior]BehaviorDistances{
	BehaviorAggressive: {Approach: 110, Retreat: 35},
	BehaviorDefensive:  {Approach: 170, Retreat: 90},
	BehaviorBalanced:   {Approach: 140, Retreat: 60},
	BehaviorSupport:    {Approach: 130, Retreat: 45},
	BehaviorEvasive:    {Approach: 200, Retreat: 110},
	BehaviorBoss:       {Approach: 150, Retreat: 50},
}

// BotDifficulty names a difficulty preset
type BotDifficulty int

const (
	BotDifficultyEasy BotDifficulty = iota
	BotDifficultyNormal
	BotDifficultyHard
)

// Difficulties maps presets to the [0,1] difficulty scalar the controller uses
var Difficulties = map[BotDifficulty]float64{
	BotDifficultyEasy:   0.2,
	BotDifficultyNormal: 0.5,
	BotDifficultyHard:   0.9,
}
