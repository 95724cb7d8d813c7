package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"github.com/LarsEckart/screenshot-renamer/internal"
	"github.com/LarsEckart/screenshot-renamer/internal/history"
	"github.com/LarsEckart/screenshot-renamer/internal/renamer"
	"github.com/LarsEckart/screenshot-renamer/internal/vision"
	pkgconfig "github.com/LarsEckart/screenshot-renamer/pkg/config"
)

// version is overridable at build time with -ldflags "-X main.version=...".
var version = "dev"

func run(ctx context.Context, cmd *cli.Command) error {
	cfg := internal.NewDefaultConfig()
	if err := pkgconfig.LoadOptional(cmd.String("config"), cfg); err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	days := cfg.Rename.Days
	if raw := cmd.String("days"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return fmt.Errorf("--days must be a positive integer (got %q)", raw)
		}
		days = n
	}

	if cmd.Bool("watch") && cmd.Bool("dry-run") {
		return fmt.Errorf("--watch cannot be combined with --dry-run")
	}

	dir := cmd.Args().First()
	if dir == "" {
		dir = "."
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.App.LogLevel,
	}))
	slog.SetDefault(logger)

	var visionOpts []vision.AnthropicOption
	if cfg.Vision.BaseURL != "" {
		visionOpts = append(visionOpts, vision.WithBaseURL(cfg.Vision.BaseURL))
	}

	r := renamer.New(renamer.Options{
		Describer:  vision.NewAnthropicClient(cfg.Vision.APIKey, cfg.Vision.Model, cfg.Vision.MaxTokens, visionOpts...),
		History:    history.New(cfg.Rename.HistoryPath("rename-screenshots")),
		Extensions: cfg.Rename.Extensions,
		DryRun:     cmd.Bool("dry-run"),
		Logger:     logger,
	})

	if _, err := r.RenameScreenshots(ctx, dir, days); err != nil {
		return err
	}

	if cmd.Bool("watch") {
		watchCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
		defer stop()
		return r.Watch(watchCtx, dir)
	}
	return nil
}

func main() {
	cmd := &cli.Command{
		Name:      "rename-screenshots",
		Usage:     "Batch-rename recent screenshots based on AI vision descriptions of their content",
		Version:   version,
		ArgsUsage: "[directory]",
		Action:    run,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "dry-run",
				Aliases: []string{"n"},
				Usage:   "Show the new names without renaming",
			},
			&cli.StringFlag{
				Name:    "days",
				Aliases: []string{"d"},
				Usage:   "Only rename screenshots at most N days old",
			},
			&cli.BoolFlag{
				Name:    "watch",
				Aliases: []string{"w"},
				Usage:   "Keep watching the directory and rename new screenshots as they appear",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to config file",
				Sources: cli.EnvVars("RENAMER_CONFIG_FILE"),
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("rename failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
