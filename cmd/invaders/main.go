// invaders plays Space Invaders in the terminal.
//
// Usage:
//
//	invaders play            - Play a game
//	invaders menu            - Start the title menu
//	invaders serve           - Start SSH server for remote play
//	invaders scores          - Show high scores
//	invaders sim             - Let the autopilot play headlessly
//	invaders list            - List registered games
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.arcade/scores.db)
//	--config <path>      - Custom game config YAML
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

var (
	// Global flags
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string

	logger *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "invaders",
	Short: "Space Invaders in your terminal",
	Long: `Space Invaders for the terminal.

Available commands:
  play     - Play a game directly
  menu     - Title menu with high scores
  serve    - Start SSH server for remote play
  scores   - View high scores
  sim      - Let the autopilot play headlessly
  list     - Show registered games and their stats

Examples:
  invaders play
  invaders play --seed 42
  invaders serve --ssh :2222
  invaders sim --ticks 3000 --speed 20`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
		}
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "invaders",
			Level:           level,
		})
		invaders.SetConfigPath(flagConfig)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
}

// openStore opens the scores database, or returns nil so play continues without scores.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, scores will not be saved", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// scoreStore hides a nil *storage.Store behind a nil interface.
func scoreStore(store *storage.Store) tui.ScoreStore {
	if store == nil {
		return nil
	}
	return store
}

// runtimeConfig builds the game runtime from the terminal size and flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.Seed = flagSeed
	return cfg
}

// sessionOptions collects the per-player UI settings.
// No logger is passed: the program owns the terminal it would write to.
func sessionOptions() tui.Options {
	opts := tui.Options{
		Player: playerName(),
	}
	cfg, err := config.LoadInvaders(flagConfig)
	if err != nil {
		logger.Warn("using default input settings", "error", err)
		cfg = config.DefaultInvadersConfig()
	}
	opts.RepeatDelay = cfg.Input.RepeatDelay
	opts.HoldRelease = cfg.Input.HoldRelease
	return opts
}

func playerName() string {
	for _, key := range []string{"INVADERS_PLAYER", "USER", "USERNAME"} {
		if v := os.Getenv(key); v != "" {
			return v
		}
	}
	return "player"
}
