package config

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Action represents a logical fighter input
type Action int

const (
	ActionLeft Action = iota
	ActionRight
	ActionUp
	ActionDown
	ActionLightAttack
	ActionHeavyAttack
	ActionSpecial
	ActionSuper
	ActionParry
	ActionDodge
	ActionJump
	ActionCrouch
	ActionBlock
	ActionAbility
	ActionCount // Must be last - used for bitmask sizing
)

var actionNames = [...]string{
	ActionLeft:        "Left",
	ActionRight:       "Right",
	ActionUp:          "Up",
	ActionDown:        "Down",
	ActionLightAttack: "LightAttack",
	ActionHeavyAttack: "HeavyAttack",
	ActionSpecial:     "Special",
	ActionSuper:       "Super",
	ActionParry:       "Parry",
	ActionDodge:       "Dodge",
	ActionJump:        "Jump",
	ActionCrouch:      "Crouch",
	ActionBlock:       "Block",
	ActionAbility:     "Ability",
}

func (a Action) String() string {
	if a < 0 || a >= ActionCount {
		return fmt.Sprintf("Action(%d)", int(a))
	}
	return actionNames[a]
}

// Bit returns the bitmask bit of the action.
func (a Action) Bit() uint16 {
	return 1 << uint(a)
}

// ParseAction looks an action up by name, case-insensitively.
func ParseAction(name string) (Action, error) {
	for i, n := range actionNames {
		if strings.EqualFold(n, name) {
			return Action(i), nil
		}
	}
	return 0, fmt.Errorf("config: unknown action %q", name)
}

func (a Action) MarshalYAML() (interface{}, error) {
	return a.String(), nil
}

func (a *Action) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := ParseAction(value.Value)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// LauncherCommand is the motion input for the launcher attack.
var LauncherCommand = []Action{ActionDown, ActionHeavyAttack}
