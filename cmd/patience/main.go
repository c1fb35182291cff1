// patience is a dragon patience card game for the terminal.
//
// Usage:
//
//	patience                    - Pick a deal from the menu
//	patience play [variant]     - Play a variant directly (default: classic)
//	patience variants           - List available deals
//	patience scores [variant]   - Show recorded results
//	patience config             - Print the effective configuration
//
// Global flags:
//
//	--seed <value>      - Set RNG seed for a reproducible deal
//	--db <path>         - Set database path (default: ~/.patience/patience.db)
//	--config <path>     - Load a custom patience.yaml
//	--log-level <level> - debug, info, warn or error
//
// Flags may also be set through PATIENCE_DB, PATIENCE_CONFIG and
// PATIENCE_LOG_LEVEL, including from a .env file in the working directory.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-patience/internal/config"
	"github.com/vovakirdan/tui-patience/internal/games/patience"
)

var (
	// Global flags
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string

	// Set up by the root pre-run hook
	appConfig config.PatienceConfig
	logger    *log.Logger
)

// envFlags maps persistent flags to the environment variables that set them.
var envFlags = map[string]string{
	"db":        "PATIENCE_DB",
	"config":    "PATIENCE_CONFIG",
	"log-level": "PATIENCE_LOG_LEVEL",
}

func main() {
	// A missing .env file is not an error.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "patience",
	Short: "Dragon patience in your terminal",
	Long: `Patience is a solitaire where numbered suits climb to their home
piles while dragons must be gathered into free cells.

Available commands:
  play      - Play a specific deal directly
  variants  - Show all available deals
  scores    - View recorded results
  config    - Print the effective configuration

Run without a command to pick a deal from the menu.

Examples:
  patience
  patience play small
  patience play --seed 42
  patience scores classic --best`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE:              runMenu,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.patience/patience.db", "Path to results database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom patience.yaml")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(variantsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// setup applies environment overrides, builds the logger and loads the
// configuration shared by every command.
func setup(cmd *cobra.Command, _ []string) error {
	applyEnv(cmd)

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "patience",
		Level:           level,
	})

	cfg, err := config.LoadPatience(flagConfig)
	if err != nil {
		return err
	}
	appConfig = cfg
	patience.SetConfig(cfg)
	logger.Debug("configuration loaded", "path", flagConfig, "deal", fmt.Sprintf("%+v", cfg.Deal))
	return nil
}

// applyEnv fills flags the user did not pass from the environment.
func applyEnv(cmd *cobra.Command) {
	flags := cmd.Flags()
	for name, env := range envFlags {
		if flags.Lookup(name) == nil || flags.Changed(name) {
			continue
		}
		if v, ok := os.LookupEnv(env); ok && v != "" {
			_ = flags.Set(name, v)
		}
	}
}
