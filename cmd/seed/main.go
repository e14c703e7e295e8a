// Command seed loads the category registry and a generated demo catalog
// into the storefront database.
//
// Usage: go run ./cmd/seed --count 120 --seed 42
package main

import (
	"fmt"
	"os"

	"github.com/devkeshravani/engagewise-commerce-76/catalog"
	"github.com/devkeshravani/engagewise-commerce-76/config"
	"github.com/devkeshravani/engagewise-commerce-76/models"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// init loads environment variables
func init() {
	_ = godotenv.Load()
}

const batchSize = 100

type seedOptions struct {
	count int
	seed  uint64
	reset bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := seedOptions{}
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed the storefront catalog",
		Long: "Migrates the storefront schema, then upserts the category registry and a deterministic " +
			"generated catalog. Running it twice with the same flags leaves the catalog unchanged.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.count < 1 {
				return fmt.Errorf("--count must be at least 1, got %d", opts.count)
			}
			if err := config.InitLogger(os.Getenv("APP_ENV")); err != nil {
				return err
			}
			defer config.SyncLogger()

			config.InitDB()
			defer config.CloseDB()
			return run(config.StorefrontGorm, opts)
		},
	}
	cmd.Flags().IntVar(&opts.count, "count", 120, "number of products to generate")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 42, "generator seed")
	cmd.Flags().BoolVar(&opts.reset, "reset", false, "delete carts, wishlists, reviews and products first")
	return cmd
}

func run(db *gorm.DB, opts seedOptions) error {
	logger := config.Logger
	if err := config.Migrate(db); err != nil {
		return err
	}
	logger.Info("✅ Schema migrated")

	registry, err := catalog.DefaultRegistry()
	if err != nil {
		return err
	}
	products := catalog.Generate(registry, opts.count, opts.seed)

	var reviews []models.Review
	for i := range products {
		reviews = append(reviews, products[i].Reviews...)
		products[i].Reviews = nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if opts.reset {
			for _, table := range []string{"cart_items", "wishlist_items", "reviews", "products"} {
				if err := tx.Exec("DELETE FROM " + table).Error; err != nil {
					return fmt.Errorf("reset %s: %w", table, err)
				}
			}
			logger.Warn("⚠️ Existing catalog removed")
		}

		categories := registry.Categories()
		if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&categories).Error; err != nil {
			return fmt.Errorf("upsert categories: %w", err)
		}
		logger.Info("✅ Categories seeded", zap.Int("count", len(categories)))

		if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).
			Omit(clause.Associations).
			CreateInBatches(&products, batchSize).Error; err != nil {
			return fmt.Errorf("upsert products: %w", err)
		}
		logger.Info("✅ Products seeded", zap.Int("count", len(products)), zap.Uint64("seed", opts.seed))

		if len(reviews) > 0 {
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).CreateInBatches(&reviews, batchSize).Error; err != nil {
				return fmt.Errorf("insert reviews: %w", err)
			}
		}
		logger.Info("✅ Reviews seeded", zap.Int("count", len(reviews)))
		return nil
	})
}
