// Command seed populates an empty Eden Garden database from a seed document.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/carlossangronio-sudo/eden-garden/internal/app"
	"github.com/carlossangronio-sudo/eden-garden/internal/config"
	"github.com/carlossangronio-sudo/eden-garden/internal/database"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if err := config.LoadEnvFiles(".env", ".env.local"); err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	file := flag.String("file", cfg.Seed.File, "path to the seed document (.json or .json.gz)")
	source := flag.String("source", cfg.Seed.Source, "where to read the document from: file or s3")
	flag.Parse()

	cfg.Seed.File = *file
	cfg.Seed.Source = *source
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	logger := config.NewLogger(cfg.Logger).With().Str("command", "seed").Logger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	if err := database.EnsureSchema(ctx, pool, logger); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}

	doc, err := app.NewSeedLoader(ctx, cfg.Seed, logger).Load(ctx, cfg.Seed.File)
	if err != nil {
		return err
	}

	seeder := app.NewServices(pool, logger).Seeder(logger)
	report, err := seeder.Apply(ctx, doc.WithAdmin(cfg.Seed.AdminEmail, cfg.Seed.AdminPassword))
	if err != nil {
		return err
	}

	if report.Empty() {
		logger.Info().Msg("database already populated, nothing to seed")
		return nil
	}

	logger.Info().
		Bool("admin_created", report.AdminCreated).
		Bool("restaurant_created", report.RestaurantCreated).
		Int("menu_items", report.MenuItems).
		Int("gallery", report.Gallery).
		Int("instagram", report.Instagram).
		Msg("seed completed")
	return nil
}
