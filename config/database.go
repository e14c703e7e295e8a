package config

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/devkeshravani/engagewise-commerce-76/models"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	StorefrontDB   *pgxpool.Pool
	StorefrontGorm *gorm.DB
)

func InitDB() {
	url := storefrontURL()
	initPgx(url)
	initGORM(url)
}

// storefrontURL prefers STOREFRONT_DB_URL and falls back to a local database
// assembled from the DB_* variables.
func storefrontURL() string {
	if url := os.Getenv("STOREFRONT_DB_URL"); url != "" {
		return url
	}
	Logger.Warn("⚠️ STOREFRONT_DB_URL not set, using local default")
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		getEnv("DB_USER", "postgres"),
		getEnv("DB_PASSWORD", ""),
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_NAME", "engagewise_storefront"),
	)
}

func initPgx(url string) {
	var err error
	StorefrontDB, err = pgxpool.New(context.Background(), url)
	if err != nil {
		Logger.Fatal("❌ Unable to connect to storefront database", zap.Error(err))
	}

	ctx, cancel := WithTimeout()
	defer cancel()
	if err = StorefrontDB.Ping(ctx); err != nil {
		Logger.Fatal("❌ Storefront database ping failed", zap.Error(err))
	}

	Logger.Info("✅ Storefront database connected (pgx)")
}

func initGORM(url string) {
	gormLogger := logger.Default.LogMode(logger.Info)
	if os.Getenv("APP_ENV") == "production" {
		gormLogger = logger.Default.LogMode(logger.Silent)
	}

	var err error
	StorefrontGorm, err = gorm.Open(postgres.Open(url), &gorm.Config{
		Logger:  gormLogger,
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		Logger.Fatal("❌ Failed to connect to storefront database with GORM", zap.Error(err))
	}
	if sqlDB, err := StorefrontGorm.DB(); err == nil {
		sqlDB.SetMaxOpenConns(5)
		sqlDB.SetMaxIdleConns(2)
		sqlDB.SetConnMaxLifetime(5 * time.Minute)
		sqlDB.SetConnMaxIdleTime(2 * time.Minute)
	}
	Logger.Info("✅ Storefront database connected (GORM)")
}

// Migrate creates or updates the storefront tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Category{},
		&models.Product{},
		&models.Review{},
		&models.CartItem{},
		&models.WishlistItem{},
	); err != nil {
		return fmt.Errorf("migrate storefront schema: %w", err)
	}
	return nil
}

func CloseDB() {
	if StorefrontDB != nil {
		StorefrontDB.Close()
		Logger.Info("✅ Storefront database connection closed (pgx)")
	}
	if StorefrontGorm != nil {
		sqlDB, _ := StorefrontGorm.DB()
		if sqlDB != nil {
			sqlDB.Close()
			Logger.Info("✅ Storefront database connection closed (GORM)")
		}
	}
}

// WithTimeout returns a context with a 10s timeout (bumped from 5s for Neon cold starts)
func WithTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}

func WithCustomTimeout(duration time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), duration)
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
