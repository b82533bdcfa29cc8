// Command seed inserts a set of sample products for local development.
package main

import (
	"context"
	"fmt"
	"os"

	"stockroom/internal/config"
	"stockroom/internal/database"
	"stockroom/internal/model"
	"stockroom/internal/repository"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := config.NewLogger(cfg.Logger, cfg.Environment)

	ctx := context.Background()

	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	if err := database.Migrate(cfg.Database.MigrationURL(), logger); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	repo := repository.NewProductRepository(pool, logger)

	samples := []model.ProductInput{
		{
			Name:        "Cordless Drill",
			Description: ptr("18V cordless drill with two batteries"),
			Quantity:    12,
			ImageURL:    ptr("https://images.example.com/products/drill.jpg"),
		},
		{
			Name:        "Claw Hammer",
			Description: ptr("16oz fibreglass handle claw hammer"),
			Quantity:    48,
			ImageURL:    nil,
		},
		{
			Name:     "Wood Screws 4x40",
			Quantity: 0, // on order
		},
		{
			Name:        "Tape Measure",
			Description: ptr("5m / 16ft with magnetic hook"),
			Quantity:    23,
			ImageURL:    ptr("https://images.example.com/products/tape.jpg"),
		},
	}

	for _, input := range samples {
		product, err := repo.Create(ctx, input)
		if err != nil {
			return fmt.Errorf("failed to seed product %q: %w", input.Name, err)
		}
		logger.Info().Int64("product_id", product.ID).Str("name", product.Name).Msg("seeded product")
	}

	logger.Info().Int("count", len(samples)).Msg("seeding completed")

	return nil
}

func ptr(s string) *string {
	return &s
}
