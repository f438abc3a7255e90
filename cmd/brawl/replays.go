package main

import (
	"fmt"
	"strings"

	"github.com/automoto/doomerang-brawl/storage"
	"github.com/spf13/cobra"
)

var flagLimit int

var replaysCmd = &cobra.Command{
	Use:   "replays",
	Short: "List stored replays",
	Long: `List the most recent replays in the catalog.

Examples:
  brawl replays
  brawl replays --limit 50`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := storage.OpenCatalog(flagDBPath)
		if err != nil {
			return err
		}
		defer catalog.Close()

		entries, err := catalog.List(flagLimit)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Println("No replays recorded yet.")
			fmt.Println()
			fmt.Println("Run 'brawl record' to record one.")
			return nil
		}

		fmt.Printf("  %-32s  %-16s  %-8s  %-7s  %-8s  %s\n", "Key", "Date", "Winner", "Length", "Checksum", "Fighters")
		fmt.Printf("  %-32s  %-16s  %-8s  %-7s  %-8s  %s\n", "---", "----", "------", "------", "--------", "--------")
		for _, e := range entries {
			winner := e.Winner
			if winner == "" {
				winner = "-"
			}
			fmt.Printf("  %-32s  %-16s  %-8s  %6.1fs  %08x  %s\n",
				e.Key, e.RecordedAt.Format("2006-01-02 15:04"), winner, e.Duration, e.Checksum,
				strings.Join(e.Characters, ", "))
		}
		return nil
	},
}

func init() {
	replaysCmd.Flags().IntVar(&flagLimit, "limit", 20, "Number of replays to show")
}
