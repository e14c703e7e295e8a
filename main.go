// @title EngageWise Storefront API
// @version 1.0
// @description Product catalog, cart, wishlist and shopping assistant API for the EngageWise storefront
// @host localhost:8081
// @BasePath /api/v1
// @schemes http
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	catalog_cache "github.com/devkeshravani/engagewise-commerce-76/cache"
	"github.com/devkeshravani/engagewise-commerce-76/assistant"
	"github.com/devkeshravani/engagewise-commerce-76/config"
	_ "github.com/devkeshravani/engagewise-commerce-76/docs"
	"github.com/devkeshravani/engagewise-commerce-76/middleware"
	"github.com/devkeshravani/engagewise-commerce-76/routes/ecommerce_routes"
	"github.com/devkeshravani/engagewise-commerce-76/services"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	settings, err := config.LoadSettings()
	if err != nil {
		config.Logger.Fatal("❌ Invalid settings", zap.Error(err))
	}
	if err := config.InitLogger(settings.AppEnv); err != nil {
		panic(err)
	}
	defer config.SyncLogger()
	logger := config.Logger

	if settings.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	catalog_cache.SetTTL(settings.CatalogCacheTTL)

	// Redis connection (optional)
	if err := config.ConnectRedis(); err != nil {
		logger.Warn("⚠️ Redis unavailable, rate limiting and notification publishing disabled", zap.Error(err))
	}
	defer config.CloseRedis()

	deps, err := storeDependencies(settings)
	if err != nil {
		logger.Fatal("❌ Failed to initialize storefront stores", zap.Error(err))
	}

	images, err := services.NewImageResolver(settings.CloudinaryCloudName, settings.CloudinaryAPIKey, settings.CloudinaryAPISecret, logger)
	if err != nil {
		logger.Fatal("❌ Failed to initialize Cloudinary", zap.Error(err))
	}
	deps.Images = images
	deps.Notifier = services.NewChannelNotifier(logger, config.RedisClient, settings.NotifyChannel)
	deps.Logger = logger
	deps.Sessions = assistant.SessionConfig{
		ReplyDelay: settings.ChatReplyDelay,
		IdleDelay:  settings.ChatIdleDelay,
		TTL:        settings.ChatSessionTTL,
	}

	storefront := services.NewStorefront(deps)
	services.InitStorefront(storefront)
	logger.Info("✅ Storefront services initialized", zap.String("store", settings.StoreDriver))

	corsCfg := cors.Config{
		AllowOrigins:     settings.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", middleware.SessionHeader, "X-Requested-With"},
		ExposeHeaders:    []string{middleware.SessionHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	router := gin.New()
	router.Use(gin.Recovery(), cors.New(corsCfg))

	api := router.Group("/api/v1")
	api.Use(middleware.SessionIdentity(settings.IsProduction()), middleware.ActivityLogger(logger))

	limit := middleware.RateLimiter(settings.RateLimitMax, settings.RateLimitWindow)
	ecommerce_routes.SetupStorefrontRoutes(api, limit)
	ecommerce_routes.SetupCartRoutes(api, limit)
	ecommerce_routes.SetupChatRoutes(api, limit)

	// Swagger docs
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:              settings.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("🚀 Server is running", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("❌ Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("❌ Server forced to shutdown", zap.Error(err))
	}
	storefront.Chat.Shutdown()
	config.CloseDB()
}

// storeDependencies wires the persistence backend chosen by STORE_DRIVER.
func storeDependencies(settings *config.Settings) (services.Dependencies, error) {
	if settings.StoreDriver == "memory" {
		store, err := services.SeededMemoryStore(settings.SeedCount, settings.SeedValue)
		if err != nil {
			return services.Dependencies{}, err
		}
		config.Logger.Info("✅ In-memory catalog generated",
			zap.Int("products", settings.SeedCount),
			zap.Uint64("seed", settings.SeedValue))
		return services.Dependencies{Provider: store, Carts: store, Wishlist: store, Reviews: store}, nil
	}

	config.InitDB()
	if err := config.Migrate(config.StorefrontGorm); err != nil {
		return services.Dependencies{}, err
	}
	gormStore := services.NewGormStore(config.StorefrontGorm)
	return services.Dependencies{
		Provider: gormStore,
		Carts:    gormStore,
		Wishlist: gormStore,
		Reviews:  services.NewPgReviewStore(config.StorefrontDB),
	}, nil
}
