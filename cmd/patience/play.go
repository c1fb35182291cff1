package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-patience/internal/config"
	"github.com/vovakirdan/tui-patience/internal/core"
	"github.com/vovakirdan/tui-patience/internal/games/patience"
	"github.com/vovakirdan/tui-patience/internal/platform/tui"
	"github.com/vovakirdan/tui-patience/internal/registry"
	"github.com/vovakirdan/tui-patience/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a deal",
	Long: `Start playing the specified variant (classic when omitted).

Controls:
  Arrows/hjkl  - Move the cursor, Up extends the picked run
  Space/Enter  - Pick up or drop
  Tab          - Send the card under the cursor home
  G            - Gather a dragon
  A            - Auto-resolve
  Esc          - Return the hand
  U / Y        - Undo / redo
  R / N        - Restart the deal / new deal
  Q/Ctrl+C     - Quit

Examples:
  patience play
  patience play large
  patience play small --seed 7
  patience play --config ./my-patience.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	variant := string(config.PresetClassic)
	if len(args) == 1 {
		variant = args[0]
	}

	if !registry.Exists(variant) {
		return fmt.Errorf("unknown variant %q (run 'patience variants' to see available deals)", variant)
	}

	game, err := registry.Create(variant)
	if err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	closeLog := redirectLog()
	defer closeLog()

	cfg := terminalConfig()
	cfg.Seed = flagSeed
	return tui.Run(game, store, cfg, logger)
}

func runMenu(_ *cobra.Command, _ []string) error {
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	closeLog := redirectLog()
	defer closeLog()

	cfg := terminalConfig()
	cfg.Seed = flagSeed

	for {
		menuResult, err := tui.RunMenu(cfg)
		if err != nil {
			return err
		}
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				return sbErr
			}
			if goBack {
				continue
			}
			return nil
		}

		game, err := registry.Create(menuResult.Variant)
		if err != nil {
			logger.Error("cannot create game", "variant", menuResult.Variant, "err", err)
			continue
		}

		if err := tui.Run(game, store, cfg, logger); err != nil {
			logger.Error("game failed", "variant", menuResult.Variant, "err", err)
		}

		// Only the first deal honours --seed.
		cfg.Seed = time.Now().UnixNano()
	}
}

// terminalConfig sizes the runtime config to the current terminal.
func terminalConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	return cfg
}

// openStore opens the results database. Games still run without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open results database", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}

// redirectLog sends log output to ~/.patience/patience.log while the
// alternate screen is active and hands the logger to new games.
func redirectLog() func() {
	patience.SetLogger(logger)

	dir := config.UserDir()
	if dir == "" {
		return func() {}
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger.Warn("cannot create log directory", "err", err)
		return func() {}
	}

	path := filepath.Join(dir, "patience.log")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		logger.Warn("cannot open log file", "path", path, "err", err)
		return func() {}
	}

	logger.SetOutput(f)
	return func() {
		logger.SetOutput(os.Stderr)
		f.Close()
	}
}
