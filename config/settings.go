package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Settings holds the application knobs. Connection strings stay with
// InitDB and ConnectRedis.
type Settings struct {
	Port           int      `env:"PORT" envDefault:"8081"`
	AppEnv         string   `env:"APP_ENV" envDefault:"development"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000,http://localhost:5173"`

	// StoreDriver selects the persistence backend: "postgres" or "memory".
	StoreDriver string `env:"STORE_DRIVER" envDefault:"postgres"`
	SeedCount   int    `env:"SEED_COUNT" envDefault:"120"`
	SeedValue   uint64 `env:"SEED_VALUE" envDefault:"42"`

	CatalogCacheTTL time.Duration `env:"CATALOG_CACHE_TTL" envDefault:"5m"`
	ChatReplyDelay  time.Duration `env:"CHAT_REPLY_DELAY" envDefault:"600ms"`
	ChatIdleDelay   time.Duration `env:"CHAT_IDLE_DELAY" envDefault:"1m"`
	ChatSessionTTL  time.Duration `env:"CHAT_SESSION_TTL" envDefault:"30m"`

	RateLimitMax    int           `env:"RATE_LIMIT_MAX" envDefault:"100"`
	RateLimitWindow time.Duration `env:"RATE_LIMIT_WINDOW" envDefault:"1m"`

	CloudinaryCloudName string `env:"CLOUDINARY_CLOUD_NAME"`
	CloudinaryAPIKey    string `env:"CLOUDINARY_API_KEY"`
	CloudinaryAPISecret string `env:"CLOUDINARY_API_SECRET"`

	NotifyChannel string `env:"NOTIFY_CHANNEL" envDefault:"storefront:notifications"`
}

func LoadSettings() (*Settings, error) {
	s := &Settings{}
	if err := env.Parse(s); err != nil {
		return nil, fmt.Errorf("parse settings: %w", err)
	}
	if s.StoreDriver != "postgres" && s.StoreDriver != "memory" {
		return nil, fmt.Errorf("parse settings: unknown STORE_DRIVER %q", s.StoreDriver)
	}
	return s, nil
}

func (s *Settings) IsProduction() bool {
	return s.AppEnv == "production"
}

func (s *Settings) CloudinaryEnabled() bool {
	return s.CloudinaryCloudName != "" && s.CloudinaryAPIKey != "" && s.CloudinaryAPISecret != ""
}

func (s *Settings) Addr() string {
	return fmt.Sprintf(":%d", s.Port)
}
