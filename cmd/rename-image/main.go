package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

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
	if cmd.Args().Len() != 1 {
		return errors.New("expected exactly one image path (see --help)")
	}

	cfg := internal.NewDefaultConfig()
	if err := pkgconfig.LoadOptional(cmd.String("config"), cfg); err != nil {
		return fmt.Errorf("failed to load config: %w", err)
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
		History:    history.New(cfg.Rename.HistoryPath("rename-image")),
		Extensions: cfg.Rename.Extensions,
		DryRun:     cmd.Bool("dry-run"),
		Logger:     logger,
	})

	if _, err := r.RenameFile(ctx, cmd.Args().First()); err != nil {
		return errors.New(vision.ExtractErrorMessage(err))
	}
	return nil
}

func main() {
	cmd := &cli.Command{
		Name:      "rename-image",
		Usage:     "Rename an image file based on an AI vision description of its content",
		Version:   version,
		ArgsUsage: "<image>",
		Action:    run,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "dry-run",
				Aliases: []string{"n"},
				Usage:   "Show the new name without renaming",
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
