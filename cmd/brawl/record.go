package main

import (
	"fmt"
	"os"
	"time"

	"github.com/automoto/doomerang-brawl/replay"
	"github.com/automoto/doomerang-brawl/sim"
	"github.com/automoto/doomerang-brawl/storage"
	"github.com/spf13/cobra"
)

var flagOut string

var recordCmd = &cobra.Command{
	Use:   "record [match.yaml]",
	Short: "Simulate a match and store its replay",
	Long: `Simulate a match while recording, then store the replay in the catalog.
With --out the encoded replay is also written to a file.

Examples:
  brawl record
  brawl record duel.yaml --out duel.dmrp`,
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

		s.StartRecording(time.Now().Unix())
		stats, err := play(cmd.Context(), s, match.Duration)
		if err != nil {
			return err
		}
		r, err := s.StopRecording("")
		if err != nil {
			return err
		}

		archive, closeArchive, err := openArchive()
		if err != nil {
			return err
		}
		defer closeArchive()
		entry, err := archive.Save(r, match)
		if err != nil {
			return err
		}

		if flagOut != "" {
			if err := writeReplay(flagOut, r); err != nil {
				return err
			}
		}

		printSummary(s, stats)
		fmt.Println()
		fmt.Printf("Recorded %d frames, checksum %08x\n", len(r.Frames), r.Meta.Checksum)
		fmt.Printf("Stored as %s\n", entry.Key)
		return nil
	},
}

func init() {
	recordCmd.Flags().StringVar(&flagOut, "out", "", "Also write the encoded replay to this file")
}

func openArchive() (*storage.Archive, func(), error) {
	catalog, err := storage.OpenCatalog(flagDBPath)
	if err != nil {
		return nil, nil, err
	}
	blobs, err := storage.OpenDataStore(appName)
	if err != nil {
		catalog.Close()
		return nil, nil, err
	}
	return storage.NewArchive(catalog, blobs), func() { catalog.Close() }, nil
}

func writeReplay(path string, r *replay.Replay) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create %s: %w", path, err)
	}
	if err := replay.Encode(f, r); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
