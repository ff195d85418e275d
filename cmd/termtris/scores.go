package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/termtris/internal/platform/tui"
	"github.com/vovakirdan/termtris/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the high scores",
	Long: `Display the top 10 scores from the score store.

Examples:
  termtris scores
  termtris scores --scores-file ~/.termtris/scores.db`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return printScores(cmd.OutOrStdout(), flagScoresFile, terminalWidth(), newLogger(os.Stderr))
	},
}

// printScores writes the ranked table for the store at path. A store that
// opens but cannot be read prints as empty, with a warning on logger.
func printScores(w io.Writer, path string, width int, logger *log.Logger) error {
	store, err := storage.Open(path)
	if err != nil {
		return fmt.Errorf("opening score store: %w", err)
	}
	defer store.Close()

	entries, err := store.Top(storage.MaxEntries)
	if err != nil {
		logger.Warn("could not read scores, showing an empty table", "path", path, "error", err)
		entries = nil
	}

	fmt.Fprint(w, tui.RenderScores(entries, width))
	return nil
}
