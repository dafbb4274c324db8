package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/pterm/pterm"
)

type config struct {
	Seed     *uint64 `env:"PONTOON_SEED"`
	Player   string  `env:"PONTOON_PLAYER" envDefault:"Player"`
	LogLevel string  `env:"PONTOON_LOG_LEVEL" envDefault:"info"`

	level pterm.LogLevel
}

func parseLogLevel(s string) (pterm.LogLevel, error) {
	switch s {
	case "info":
		return pterm.LogLevelInfo, nil
	case "debug":
		return pterm.LogLevelDebug, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", s)
	}
}

// loadConfig reads the optional dotenv file, then the process environment
// (which wins over the file), then the command-line flags.
func loadConfig(args []string, dotenv string) (config, error) {
	vars := map[string]string{}
	if dotenv != "" {
		fileVars, err := godotenv.Read(dotenv)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return config{}, fmt.Errorf("read %s: %w", dotenv, err)
		}
		for k, v := range fileVars {
			vars[k] = v
		}
	}
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			vars[k] = v
		}
	}

	var cfg config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: vars}); err != nil {
		return config{}, fmt.Errorf("parse env: %w", err)
	}

	flags := flag.NewFlagSet("pontoon", flag.ContinueOnError)
	flags.StringVar(&cfg.Player, "player", cfg.Player, "name shown on the player's hand")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: info or debug")
	flags.Func("seed", "shuffle seed, for a reproducible deal", func(s string) error {
		seed, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return err
		}
		cfg.Seed = &seed
		return nil
	})
	if err := flags.Parse(args); err != nil {
		return config{}, err
	}

	level, err := parseLogLevel(cfg.LogLevel)
	if err != nil {
		return config{}, err
	}
	cfg.level = level
	return cfg, nil
}

func newLogger(level pterm.LogLevel) *slog.Logger {
	return slog.New(pterm.NewSlogHandler(pterm.DefaultLogger.WithLevel(level)))
}
