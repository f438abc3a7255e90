package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/match.yaml
var defaultMatchYAML []byte

// AISpec configures the controller of a computer-driven fighter.
type AISpec struct {
	Behavior   Behavior `yaml:"behavior"`
	Difficulty float64  `yaml:"difficulty"` // 0.0 = easy, 1.0 = hard
}

// FighterSpec describes a fighter placed at match start.
type FighterSpec struct {
	Character Character `yaml:"character"`
	Team      Team      `yaml:"team"`
	X         float64   `yaml:"x"`
	Y         float64   `yaml:"y"`
	Facing    int       `yaml:"facing"`
	Player    *uint8    `yaml:"player"` // input source id, nil when not human driven
	AI        *AISpec   `yaml:"ai"`
	Boss      bool      `yaml:"boss"`
	Meter     float64   `yaml:"meter"` // starting meter
}

// ScriptEvent is one scripted input. Hold expands into a press followed by a
// release Hold seconds later.
type ScriptEvent struct {
	Time    float64 `yaml:"time"`
	Player  uint8   `yaml:"player"`
	Action  Action  `yaml:"action"`
	Pressed bool    `yaml:"pressed"`
	Hold    float64 `yaml:"hold"`
}

// MatchConfig is everything a simulation needs to start a match.
type MatchConfig struct {
	Name     string        `yaml:"name"`
	Seed     uint64        `yaml:"seed"`
	Duration float64       `yaml:"duration"` // seconds to simulate when driven headless
	Fighters []FighterSpec `yaml:"fighters"`
	Script   []ScriptEvent `yaml:"script"`
	Tuning   Config        `yaml:"tuning"`
}

// NewMatch returns an empty match with the stock tuning.
func NewMatch() MatchConfig {
	return MatchConfig{Tuning: *Default()}
}

// Events expands the script into press/release events ordered by time.
func (m MatchConfig) Events() []ScriptEvent {
	out := make([]ScriptEvent, 0, len(m.Script)*2)
	for _, ev := range m.Script {
		if ev.Hold > 0 {
			out = append(out,
				ScriptEvent{Time: ev.Time, Player: ev.Player, Action: ev.Action, Pressed: true},
				ScriptEvent{Time: ev.Time + ev.Hold, Player: ev.Player, Action: ev.Action, Pressed: false},
			)
			continue
		}
		out = append(out, ev)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Time < out[j].Time })
	return out
}

// Characters lists the characters in fighter order.
func (m MatchConfig) Characters() []string {
	names := make([]string, 0, len(m.Fighters))
	for _, f := range m.Fighters {
		names = append(names, f.Character.String())
	}
	return names
}

// Validate checks the fields the simulation relies on.
func (m MatchConfig) Validate() error {
	if m.Tuning.Sim.TickRate <= 0 {
		return fmt.Errorf("config: tick rate must be positive, got %d", m.Tuning.Sim.TickRate)
	}
	if m.Tuning.Meter.Segments <= 0 || m.Tuning.Meter.Maximum <= 0 {
		return fmt.Errorf("config: meter needs positive maximum and segments")
	}
	if m.Tuning.Input.BufferSize <= 0 {
		return fmt.Errorf("config: input buffer size must be positive")
	}
	for i, f := range m.Fighters {
		if _, ok := Characters[f.Character]; !ok {
			return fmt.Errorf("config: fighter %d: unknown character %d", i, int(f.Character))
		}
		if f.Facing != 0 && f.Facing != 1 && f.Facing != -1 {
			return fmt.Errorf("config: fighter %d: facing must be -1 or 1", i)
		}
	}
	return nil
}

// LoadMatch loads a match file.
// Search order: customPath -> ~/.doomerang/matches/default.yaml -> ./configs/match.yaml -> embedded default
func LoadMatch(customPath string) (MatchConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return MatchConfig{}, fmt.Errorf("failed to read match %s: %w", customPath, err)
		}
		m, err := ParseMatch(data)
		if err != nil {
			return MatchConfig{}, fmt.Errorf("failed to parse match %s: %w", customPath, err)
		}
		return m, nil
	}

	if userPath := userMatchPath("default.yaml"); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if m, err := ParseMatch(data); err == nil {
				return m, nil
			}
		}
	}

	if data, err := os.ReadFile("configs/match.yaml"); err == nil {
		if m, err := ParseMatch(data); err == nil {
			return m, nil
		}
	}

	return ParseMatch(defaultMatchYAML)
}

// DefaultMatch returns the embedded exhibition match.
func DefaultMatch() MatchConfig {
	m, err := ParseMatch(defaultMatchYAML)
	if err != nil {
		return NewMatch()
	}
	return m
}

// ParseMatch decodes a match document on top of the stock tuning.
func ParseMatch(data []byte) (MatchConfig, error) {
	m := NewMatch()
	if err := yaml.Unmarshal(data, &m); err != nil {
		return MatchConfig{}, err
	}
	if err := m.Validate(); err != nil {
		return MatchConfig{}, err
	}
	return m, nil
}

func userMatchPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".doomerang", "matches", filename)
}

// ParseTeam looks a team up by name, case-insensitively.
func ParseTeam(name string) (Team, error) {
	for _, t := range []Team{TeamPlayer, TeamAlly, TeamEnemy} {
		if strings.EqualFold(t.String(), name) {
			return t, nil
		}
	}
	return 0, fmt.Errorf("config: unknown team %q", name)
}

func (t Team) MarshalYAML() (interface{}, error) {
	return t.String(), nil
}

func (t *Team) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := ParseTeam(value.Value)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
