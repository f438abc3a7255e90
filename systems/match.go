package systems

import (
	"github.com/automoto/doomerang-brawl/archetypes"
	"github.com/automoto/doomerang-brawl/components"
	cfg "github.com/automoto/doomerang-brawl/config"
	"github.com/automoto/doomerang-brawl/events"
	"github.com/automoto/doomerang-brawl/systems/factory"
	"github.com/automoto/doomerang-brawl/world"
	"github.com/yohamta/donburi"
)

// CreateMatch adds the match singleton and subscribes the hit effects.
func CreateMatch(w *world.World) *donburi.Entry {
	entry := archetypes.Match.Spawn(w)
	waves := 0
	if w.Config.Waves.Enabled {
		waves = w.Config.Waves.Count
	}
	components.Match.SetValue(entry, components.MatchData{WaveCount: waves})
	subscribeHitSparks(w)
	return entry
}

func matchData(w *world.World) (*components.MatchData, bool) {
	entry, ok := components.Match.First(w.World)
	if !ok {
		return nil, false
	}
	return components.Match.Get(entry), true
}

// UpdateMatch runs the wave director and settles the match outcome. Matches
// without waves never end on their own.
func UpdateMatch(w *world.World) {
	match, ok := matchData(w)
	if !ok || match.State != components.MatchRunning || match.WaveCount == 0 {
		return
	}

	if aliveOnTeam(w, cfg.TeamPlayer) == 0 {
		match.State = components.MatchLost
		w.Logger.Info("match lost", "tick", w.Tick, "wave", match.Wave)
		return
	}

	if !match.WaveActive {
		if match.Wave >= match.WaveCount {
			match.State = components.MatchWon
			w.Logger.Info("match won", "tick", w.Tick, "waves", match.WaveCount)
			return
		}
		startWave(w, match)
		return
	}

	if match.ToSpawn > 0 {
		match.SpawnTimer -= w.Dt
		if match.SpawnTimer <= 0 {
			spawnWaveEnemy(w, match)
			match.ToSpawn--
			match.Spawned++
			match.SpawnTimer = w.Config.Waves.SpawnInterval
		}
		return
	}

	if aliveOnTeam(w, cfg.TeamEnemy) == 0 {
		match.WaveActive = false
		events.Publish(w.Events, events.WaveCompletedEvent, w.Tick, events.WaveCompleted{Wave: match.Wave})
		w.Logger.Info("wave completed", "tick", w.Tick, "wave", match.Wave)
	}
}

func startWave(w *world.World, match *components.MatchData) {
	conf := w.Config.Waves
	match.Wave++
	match.WaveActive = true
	match.ToSpawn = conf.BaseEnemies + match.Wave - 1
	if match.Wave == match.WaveCount && conf.Boss != nil {
		match.ToSpawn++
	}
	match.Spawned = 0
	match.SpawnTimer = conf.FirstSpawnDelay
	events.Publish(w.Events, events.WaveStartedEvent, w.Tick, events.WaveStarted{
		Wave:    match.Wave,
		Enemies: match.ToSpawn,
	})
	w.Logger.Info("wave started", "tick", w.Tick, "wave", match.Wave, "enemies", match.ToSpawn)
}

func spawnWaveEnemy(w *world.World, match *components.MatchData) {
	conf := w.Config.Waves
	stage := w.Stage()

	// The boss closes out the final wave
	if match.ToSpawn == 1 && match.Wave == match.WaveCount && conf.Boss != nil {
		spec := cfg.FighterSpec{
			Character: *conf.Boss,
			Team:      cfg.TeamEnemy,
			X:         stage.MaxX,
			Y:         (stage.MinY + stage.MaxY) / 2,
			Facing:    -1,
			AI:        &cfg.AISpec{Behavior: cfg.BehaviorBoss, Difficulty: conf.Difficulty},
			Boss:      true,
		}
		if _, err := factory.CreateFighter(w, spec); err != nil {
			w.Logger.Error("boss spawn failed", "tick", w.Tick, "err", err)
		}
		return
	}

	if len(conf.EnemyPool) == 0 {
		return
	}
	character := conf.EnemyPool[w.RNG.Intn(len(conf.EnemyPool))]
	behavior := cfg.BehaviorAggressive
	if len(conf.Behaviors) > 0 {
		behavior = conf.Behaviors[w.RNG.Intn(len(conf.Behaviors))]
	}
	x, facing := stage.MinX, 1
	if w.RNG.Chance(0.5) {
		x, facing = stage.MaxX, -1
	}
	spec := cfg.FighterSpec{
		Character: character,
		Team:      cfg.TeamEnemy,
		X:         x,
		Y:         w.RNG.Range(stage.MinY, stage.MaxY),
		Facing:    facing,
		AI:        &cfg.AISpec{Behavior: behavior, Difficulty: conf.Difficulty},
	}
	if _, err := factory.CreateFighter(w, spec); err != nil {
		w.Logger.Error("enemy spawn failed", "tick", w.Tick, "err", err)
	}
}

// aliveOnTeam counts fighters of a team that are not knocked out.
func aliveOnTeam(w *world.World, team cfg.Team) int {
	n := 0
	world.Each(w, components.Fighter, func(e donburi.Entity, f *components.FighterData) {
		if f.Team == team && !world.Has(w, e, components.Death) {
			n++
		}
	})
	return n
}
