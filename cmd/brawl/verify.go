package main

import (
	"errors"
	"fmt"
	"os"

	cfg "github.com/automoto/doomerang-brawl/config"
	"github.com/automoto/doomerang-brawl/replay"
	"github.com/automoto/doomerang-brawl/sim"
	"github.com/spf13/cobra"
)

var (
	flagResim     bool
	flagFile      bool
	flagMatchPath string
)

var verifyCmd = &cobra.Command{
	Use:   "verify <key|file>",
	Short: "Verify a replay's checksum",
	Long: `Recompute a stored replay's checksum and compare it with the recorded one.
With --resim the match is also simulated again from the recorded inputs and
compared frame by frame.

Examples:
  brawl verify replay-1700000000-0000beef
  brawl verify replay-1700000000-0000beef --resim
  brawl verify --file duel.dmrp --resim --match duel.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, match, err := loadForVerify(args[0])
		if err != nil {
			return err
		}

		if err := replay.Verify(r); err != nil {
			if errors.Is(err, replay.ErrChecksumMismatch) {
				fmt.Printf("FAIL  %s: %v\n", args[0], err)
			}
			return err
		}
		fmt.Printf("OK    checksum %08x over %d frames (%.2fs, %s)\n",
			r.Meta.Checksum, len(r.Frames), r.Meta.Duration, r.Meta.Stage)

		if !flagResim {
			return nil
		}
		if err := sim.Resimulate(r, match, sim.WithLogger(logger)); err != nil {
			fmt.Printf("FAIL  re-simulation: %v\n", err)
			return err
		}
		fmt.Println("OK    re-simulation matches every frame")
		return nil
	},
}

func init() {
	verifyCmd.Flags().BoolVar(&flagResim, "resim", false, "Re-simulate the match and compare every frame")
	verifyCmd.Flags().BoolVar(&flagFile, "file", false, "Treat the argument as an encoded replay file")
	verifyCmd.Flags().StringVar(&flagMatchPath, "match", "", "Match file used with --file --resim")
}

func loadForVerify(arg string) (*replay.Replay, cfg.MatchConfig, error) {
	if !flagFile {
		archive, closeArchive, err := openArchive()
		if err != nil {
			return nil, cfg.MatchConfig{}, err
		}
		defer closeArchive()
		return archive.Load(arg)
	}

	f, err := os.Open(arg)
	if err != nil {
		return nil, cfg.MatchConfig{}, fmt.Errorf("cannot open %s: %w", arg, err)
	}
	defer f.Close()
	r, err := replay.Decode(f)
	if err != nil {
		return nil, cfg.MatchConfig{}, err
	}
	var match cfg.MatchConfig
	if flagResim {
		if match, err = cfg.LoadMatch(flagMatchPath); err != nil {
			return nil, cfg.MatchConfig{}, err
		}
	}
	return r, match, nil
}
