// brawl runs the beat-'em-up simulation headless.
//
// Usage:
//
//	brawl run [match.yaml]       - Simulate a match and print a summary
//	brawl record [match.yaml]    - Simulate, then store the replay
//	brawl verify <key>           - Check a stored replay's checksum
//	brawl replays                - List stored replays
//
// Global flags:
//
//	--log-level <level>  - debug, info, warn or error (default: warn)
//	--db <path>          - Replay catalog (default: ~/.doomerang/replays.db)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

const appName = "doomerang-brawl"

var (
	// Global flags
	flagLogLevel string
	flagDBPath   string

	logger *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "brawl",
	Short: "Doomerang brawl - deterministic beat-'em-up simulation",
	Long: `brawl steps a beat-'em-up match at a fixed 120 Hz without a window,
records replays and verifies them.

Examples:
  brawl run
  brawl run matches/duel.yaml --seed 4660 --duration 20
  brawl record --out duel.dmrp
  brawl verify replay-1700000000-0000beef --resim
  brawl replays`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level: %w", err)
		}
		logger = log.NewWithOptions(os.Stderr, log.Options{
			Level:           level,
			Prefix:          "brawl",
			ReportTimestamp: true,
		})
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.doomerang/replays.db", "Path to the replay catalog")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(recordCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(replaysCmd)
}
