package components

import (
	cfg "github.com/automoto/doomerang-brawl/config"
	"github.com/yohamta/donburi"
)

// MatchState is the outcome of a match so far.
type MatchState int

const (
	MatchRunning MatchState = iota
	MatchWon                // every wave cleared
	MatchLost               // no player-side fighter left
)

func (s MatchState) String() string {
	switch s {
	case MatchRunning:
		return "Running"
	case MatchWon:
		return "Won"
	case MatchLost:
		return "Lost"
	}
	return "Unknown"
}

// TeamScore tracks the knockouts a team has scored.
type TeamScore struct {
	Team cfg.Team
	KOs  int
}

// MatchData stores the wave director and match outcome.
// This is a singleton component - only one match exists per world.
type MatchData struct {
	State MatchState

	Wave       int // 1-based, 0 before the first wave
	WaveCount  int
	WaveActive bool
	ToSpawn    int     // enemies of the current wave still to spawn
	Spawned    int     // enemies of the current wave spawned so far
	SpawnTimer float64 // seconds until the next spawn

	Scores []TeamScore
}

// Score returns the score of a team, creating it if needed.
func (m *MatchData) Score(team cfg.Team) *TeamScore {
	for i := range m.Scores {
		if m.Scores[i].Team == team {
			return &m.Scores[i]
		}
	}
	m.Scores = append(m.Scores, TeamScore{Team: team})
	return &m.Scores[len(m.Scores)-1]
}

// AddKO credits a knockout to team.
func (m *MatchData) AddKO(team cfg.Team) {
	m.Score(team).KOs++
}

// Winner names the winning side once the match is over.
func (m *MatchData) Winner() string {
	switch m.State {
	case MatchWon:
		return cfg.TeamPlayer.String()
	case MatchLost:
		return cfg.TeamEnemy.String()
	}
	return ""
}

var Match = donburi.NewComponentType[MatchData]()
