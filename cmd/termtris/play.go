package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/termtris/internal/audio"
	"github.com/vovakirdan/termtris/internal/config"
	"github.com/vovakirdan/termtris/internal/core"
	"github.com/vovakirdan/termtris/internal/platform/tui"
	"github.com/vovakirdan/termtris/internal/storage"
	"github.com/vovakirdan/termtris/internal/tetris"
)

// loadGameConfig reads the config and applies the difficulty preset.
func loadGameConfig(path, difficulty string) (config.TetrisConfig, error) {
	preset, err := config.ParseDifficulty(difficulty)
	if err != nil {
		return config.TetrisConfig{}, err
	}
	cfg, err := config.LoadTetris(path)
	if err != nil {
		return config.TetrisConfig{}, err
	}
	config.ApplyTetrisPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return config.TetrisConfig{}, err
	}
	return cfg, nil
}

// terminalSize returns the size of stdout, or the default runtime size when
// it is not a terminal.
func terminalSize() (int, int) {
	def := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return def.ScreenW, def.ScreenH
}

func terminalWidth() int {
	w, _ := terminalSize()
	return w
}

func runPlay(cmd *cobra.Command) error {
	scale, _ := parseDisplay(flagDisplay)

	cfg, err := loadGameConfig(flagConfig, flagDifficulty)
	if err != nil {
		return err
	}
	game, err := tetris.New(cfg)
	if err != nil {
		return err
	}

	logOut, closeLog, err := openLog()
	if err != nil {
		return err
	}
	defer closeLog()
	logger := newLogger(logOut)

	store, err := storage.Open(flagScoresFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open score store: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	var sound audio.Player = audio.Nop{}
	if flagSound {
		sp := audio.NewSpeaker()
		if err := sp.Init(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: sound disabled: %v\n", err)
		} else {
			sound = sp
			defer sp.Close()
		}
	}

	width, height := terminalSize()
	logger.Info("starting", "width", width, "height", height, "scale", scale,
		"randomizer", cfg.Pieces.Randomizer, "level", cfg.Rules.StartLevel)

	out, err := tui.Run(game, tui.Options{
		Runtime: core.RuntimeConfig{
			ScreenW: width,
			ScreenH: height,
			Scale:   scale,
			Seed:    flagSeed,
		},
		Player: os.Getenv("USER"),
		Store:  store,
		Sound:  sound,
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Final score: %d (lines %d, level %d)\n", out.Score, out.Lines, out.Level)
	if out.SaveErr != nil {
		fmt.Fprintf(os.Stderr, "Warning: score not saved: %v\n", out.SaveErr)
	}
	return nil
}
