package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"

	"github.com/mitchelldurbincs/Battleship/internal/config"
	"github.com/mitchelldurbincs/Battleship/internal/game"
	"github.com/mitchelldurbincs/Battleship/internal/ui/console"
)

func main() {
	// Command line flags
	flags := pflag.NewFlagSet("battleship", pflag.ExitOnError)
	configPath := flags.String("config", "", "Path to config file")
	flags.String("log-level", "info", "Log level (debug, info, warn, error)")
	flags.String("log-format", "console", "Log format (console, json)")
	flags.String("color", config.ColorAuto, "Colored boards (auto, always, never)")
	flags.Int("board-size", 10, "Board width and height")
	flags.Int64("seed", 0, "Random seed (0 picks one from the clock)")
	watch := flags.Bool("watch-config", false, "Reload log level and display settings when the config file changes")
	_ = flags.Parse(os.Args[1:])

	// Initialize configuration
	if err := config.Init(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize config: %v\n", err)
		os.Exit(1)
	}
	if err := config.LoadEnvironmentConfig(os.Getenv("APP_ENV")); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load environment config: %v\n", err)
		os.Exit(1)
	}
	if err := config.BindFlags(flags); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid flags: %v\n", err)
		os.Exit(1)
	}

	cfg := config.Get()
	setupLogging(cfg.Logging.Level, cfg.Logging.Format)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, *watch); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal().Err(err).Msg("Battleship exited with an error")
	}
}

func run(ctx context.Context, cfg *config.Config, watch bool) error {
	gameCfg, err := game.GameConfigFromSettings(cfg, log.Logger)
	if err != nil {
		return fmt.Errorf("building game config: %w", err)
	}
	gameCfg.Tally = game.NewTally()

	session, err := game.NewSession(ctx, gameCfg)
	if err != nil {
		return fmt.Errorf("starting session: %w", err)
	}

	ui := console.New(session, os.Stdin, os.Stdout, consoleOptions(cfg), log.Logger)

	if watch {
		stopWatching, err := config.WatchConfig(func(c *config.Config) {
			setLevel(c.Logging.Level)
			ui.SetOptions(consoleOptions(c))
			log.Info().Str("file", config.ConfigFilePath()).Msg("Config reloaded")
		}, func(err error) {
			log.Warn().Err(err).Msg("Ignoring invalid config change")
		})
		if err != nil {
			log.Warn().Err(err).Msg("Config watching disabled")
		} else {
			defer stopWatching()
		}
	}

	log.Debug().
		Str("game_id", session.ID()).
		Int("board_size", session.BoardSize()).
		Msg("Starting console")

	return ui.Run(ctx)
}

func consoleOptions(c *config.Config) console.Options {
	return console.Options{
		Color:           console.ResolveColor(c.UI.Color, os.Stdout),
		ShowCoordinates: c.UI.ShowCoordinates,
	}
}

func setupLogging(level, format string) {
	setLevel(level)

	// Logs go to stderr so they never interleave with the boards on stdout
	if format == "json" || os.Getenv("APP_ENV") == "production" {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
			NoColor:    !console.ResolveColor(config.Get().UI.Color, os.Stderr),
		})
	}
}

func setLevel(level string) {
	logLevel, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || logLevel == zerolog.NoLevel {
		logLevel = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(logLevel)
}
