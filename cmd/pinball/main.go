// cmd/pinball/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/opd-ai/go-pinball/pkg/config"
	"github.com/opd-ai/go-pinball/pkg/engine"
	"github.com/opd-ai/go-pinball/pkg/event"
	"github.com/opd-ai/go-pinball/pkg/logging"
	ebitenhost "github.com/opd-ai/go-pinball/pkg/render/ebiten"
	engohost "github.com/opd-ai/go-pinball/pkg/render/engo"
)

type options struct {
	configPath    string
	createDefault bool
	renderer      string
	seed          uint64
	ticks         int
	logPath       string
}

func parseFlags(args []string) (options, error) {
	var opts options
	fs := flag.NewFlagSet("pinball", flag.ContinueOnError)
	fs.StringVar(&opts.configPath, "config", "pinball.toml", "Path to configuration file (.toml or .json)")
	fs.BoolVar(&opts.createDefault, "default", false, "Create default configuration file and exit")
	fs.StringVar(&opts.renderer, "renderer", "terminal", "Renderer: terminal, engo, ebiten or headless")
	fs.Uint64Var(&opts.seed, "seed", 0, "Launch velocity seed (overrides config when non-zero)")
	fs.IntVar(&opts.ticks, "ticks", 600, "Ticks to simulate (headless only)")
	fs.StringVar(&opts.logPath, "log", "", "Write logs to this file instead of stdout")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	return opts, nil
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, opts, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "pinball: %v\n", err)
		os.Exit(1)
	}
}

// newLogger picks the log destination. Full-screen terminal output must not
// share the terminal with log lines.
func newLogger(opts options, stdout io.Writer) (*logging.Logger, func(), error) {
	if opts.logPath != "" {
		f, err := os.OpenFile(opts.logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		return logging.NewLoggerTo(f), func() { f.Close() }, nil
	}
	if opts.renderer == "terminal" {
		return logging.Discard(), func() {}, nil
	}
	return logging.NewLoggerTo(stdout), func() {}, nil
}

// loadConfig returns the file at path, or the defaults when it does not
// exist, with environment overrides and the seed flag applied
func loadConfig(ctx context.Context, logger *logging.Logger, opts options) (*config.PlayfieldConfig, error) {
	var cfg *config.PlayfieldConfig
	if _, err := os.Stat(opts.configPath); errors.Is(err, os.ErrNotExist) {
		logger.Info(ctx, "Configuration file not found, using default configuration",
			"config_path", opts.configPath,
		)
		cfg = config.DefaultConfig()
	} else {
		cfg, err = config.LoadConfig(opts.configPath)
		if err != nil {
			return nil, err
		}
	}

	if err := config.ApplyEnvironmentOverrides(cfg); err != nil {
		return nil, logging.WrapError(err, "failed to apply environment configuration")
	}
	if opts.seed != 0 {
		cfg.Ball.Seed = opts.seed
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func run(ctx context.Context, opts options, stdout io.Writer) error {
	logger, closeLog, err := newLogger(opts, stdout)
	if err != nil {
		return err
	}
	defer closeLog()

	if opts.createDefault {
		if err := config.SaveConfig(config.DefaultConfig(), opts.configPath); err != nil {
			logger.Error(ctx, "Failed to create default configuration", err,
				"config_path", opts.configPath,
			)
			return err
		}
		logger.Info(ctx, "Created default configuration file",
			"config_path", opts.configPath,
		)
		return nil
	}

	cfg, err := loadConfig(ctx, logger, opts)
	if err != nil {
		logger.Error(ctx, "Failed to load configuration", err, "config_path", opts.configPath)
		return err
	}

	playfield, err := engine.NewPlayfield(cfg, event.NewEventBus(), logger)
	if err != nil {
		return err
	}
	logger.Info(playfield.Context(), "Starting pinball", "renderer", opts.renderer)

	switch opts.renderer {
	case "terminal":
		return runTerminal(ctx, playfield, logger)
	case "engo":
		engohost.Run(playfield, logger)
		return nil
	case "ebiten":
		return ebitenhost.Run(playfield, logger)
	case "headless":
		summary := runHeadless(playfield, opts.ticks)
		fmt.Fprintln(stdout, summary)
		return nil
	default:
		return fmt.Errorf("unknown renderer %q", opts.renderer)
	}
}
