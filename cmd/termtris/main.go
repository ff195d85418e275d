// termtris is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	termtris                    - Play
//	termtris --scores           - Show the high-score table
//	termtris scores             - Same as --scores
//	termtris serve              - Start SSH server for remote play
//
// Global flags:
//
//	--display <mode>        - single or double (default: single)
//	--seed <value>          - Set RNG seed for reproducible gameplay
//	--config <path>         - Custom game config YAML
//	--scores-file <path>    - Score store (default: scores.json; .db uses SQLite)
//	--log-file <path>       - Write logs to a file
//	--debug                 - Debug logging
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

const (
	displaySingle = "single"
	displayDouble = "double"
)

var (
	// Global flags
	flagDisplay    string
	flagSeed       int64
	flagConfig     string
	flagScoresFile string
	flagLogFile    string
	flagDebug      bool

	// Play flags
	flagScores     bool
	flagSound      bool
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "termtris",
	Short: "termtris - falling blocks in your terminal",
	Long: `termtris is a falling-block puzzle game played in the terminal.

Controls:
  Left/Right - Move
  Up         - Rotate
  Down       - Drop
  R          - Restart (after game over)
  Any other  - Quit

Examples:
  termtris
  termtris --display=double
  termtris --difficulty hard --sound
  termtris --scores
  termtris --scores-file ~/.termtris/scores.db
  termtris serve --ssh :2222`,
	Args:              cobra.NoArgs,
	SilenceErrors:     true,
	PersistentPreRunE: validateGlobalFlags,
	RunE:              runRoot,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDisplay, "display", displaySingle, "Display size: single or double")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagScoresFile, "scores-file", "scores.json", "Path to score store (.json or .db)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.Flags().BoolVar(&flagScores, "scores", false, "Print the high-score table and exit")
	rootCmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound effects")
	rootCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")

	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// validateGlobalFlags rejects malformed flag values before anything starts.
// Usage is printed for these errors only.
func validateGlobalFlags(cmd *cobra.Command, _ []string) error {
	if _, err := parseDisplay(flagDisplay); err != nil {
		return err
	}
	cmd.SilenceUsage = true
	return nil
}

// parseDisplay maps --display to a rendering scale.
func parseDisplay(s string) (int, error) {
	switch s {
	case displaySingle:
		return 1, nil
	case displayDouble:
		return 2, nil
	default:
		return 0, fmt.Errorf("invalid --display %q (want %s or %s)", s, displaySingle, displayDouble)
	}
}

func runRoot(cmd *cobra.Command, _ []string) error {
	if flagScores {
		return printScores(cmd.OutOrStdout(), flagScoresFile, terminalWidth(), newLogger(os.Stderr))
	}
	return runPlay(cmd)
}

// newLogger returns a logger writing to w with the configured level.
func newLogger(w io.Writer) *log.Logger {
	level := log.InfoLevel
	if flagDebug {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "termtris",
		Level:           level,
	})
}

// openLog opens --log-file for appending, or discards logs when unset.
func openLog() (io.Writer, func(), error) {
	if flagLogFile == "" {
		return io.Discard, func() {}, nil
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return f, func() { f.Close() }, nil
}
