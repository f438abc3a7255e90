package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	cfg "github.com/automoto/doomerang-brawl/config"
	"github.com/automoto/doomerang-brawl/events"
	"github.com/automoto/doomerang-brawl/sim"
	"github.com/spf13/cobra"
)

var (
	flagSeed     uint64
	flagDuration float64
	flagRealtime bool
)

var runCmd = &cobra.Command{
	Use:   "run [match.yaml]",
	Short: "Simulate a match and print a summary",
	Long: `Simulate a match file headless and print the result.

Without a file the match is looked up in ~/.doomerang/matches/default.yaml,
then ./configs/match.yaml, then the built-in exhibition.

Examples:
  brawl run
  brawl run duel.yaml --duration 60
  brawl run --realtime`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		match, err := loadMatch(cmd, args)
		if err != nil {
			return err
		}
		s, err := sim.New(match, sim.WithLogger(logger))
		if err != nil {
			return err
		}
		stats, err := play(cmd.Context(), s, match.Duration)
		if err != nil {
			return err
		}
		printSummary(s, stats)
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{runCmd, recordCmd} {
		c.Flags().Uint64Var(&flagSeed, "seed", 0, "RNG seed (0 = the match file's seed)")
		c.Flags().Float64Var(&flagDuration, "duration", 0, "Seconds to simulate (0 = the match file's duration)")
		c.Flags().BoolVar(&flagRealtime, "realtime", false, "Pace ticks with the wall clock")
	}
}

func loadMatch(cmd *cobra.Command, args []string) (cfg.MatchConfig, error) {
	path := ""
	if len(args) > 0 {
		path = args[0]
	}
	match, err := cfg.LoadMatch(path)
	if err != nil {
		return cfg.MatchConfig{}, err
	}
	if cmd.Flags().Changed("seed") {
		match.Seed = flagSeed
	}
	if flagDuration > 0 {
		match.Duration = flagDuration
	}
	if match.Duration <= 0 {
		match.Duration = 30
	}
	return match, nil
}

type runStats struct {
	Hits, Blocks, Parries, KOs, Supers, Waves int
	MaxCombo                                  int
}

func (st *runStats) count(recs []events.Record) {
	for _, r := range recs {
		switch ev := r.Event.(type) {
		case events.HitLanded:
			st.Hits++
		case events.HitBlocked:
			st.Blocks++
		case events.HitParried:
			st.Parries++
		case events.KO:
			st.KOs++
		case events.SuperActivated:
			st.Supers++
		case events.WaveCompleted:
			st.Waves++
		case events.ComboBroken:
			st.MaxCombo = max(st.MaxCombo, ev.Hits)
		}
	}
}

// play runs s for seconds of simulated time or until the match is decided.
func play(ctx context.Context, s *sim.Sim, seconds float64) (runStats, error) {
	var stats runStats
	if !flagRealtime {
		for s.Time() < seconds && !s.Over() {
			if err := s.Advance(s.Dt()); err != nil {
				return stats, err
			}
			stats.count(s.DrainEvents())
		}
		return stats, nil
	}

	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt)
	defer cancel()
	ctx, cancelTimeout := context.WithTimeout(ctx, time.Duration(seconds*float64(time.Second)))
	defer cancelTimeout()

	done := make(chan error, 1)
	go func() { done <- s.Run(ctx, time.Now) }()
	err := <-done
	stats.count(s.DrainEvents())
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return stats, nil
	}
	return stats, err
}

func printSummary(s *sim.Sim, st runStats) {
	snap := s.Snapshot()
	fmt.Printf("Match %q - %d ticks, %.2fs simulated\n", s.Match().Name, snap.Tick, snap.Time)
	if snap.Winner != "" {
		fmt.Printf("Winner: %s\n", snap.Winner)
	} else {
		fmt.Println("Winner: undecided")
	}
	fmt.Printf("Hits %d  Blocks %d  Parries %d  KOs %d  Supers %d  Waves cleared %d  Best combo %d\n",
		st.Hits, st.Blocks, st.Parries, st.KOs, st.Supers, st.Waves, st.MaxCombo)
	fmt.Println()

	fmt.Printf("  %-4s  %-14s  %-6s  %-12s  %-16s  %s\n", "ID", "Character", "Team", "State", "Health", "Meter")
	fmt.Printf("  %-4s  %-14s  %-6s  %-12s  %-16s  %s\n", "--", "---------", "----", "-----", "------", "-----")
	for _, f := range snap.Fighters {
		fmt.Printf("  %-4d  %-14s  %-6s  %-12s  %6.1f / %-7.1f  %5.1f (%d)\n",
			f.ID, f.Character, f.Team, f.State, f.Health, f.MaxHealth, f.Meter, f.Segments)
	}
}
