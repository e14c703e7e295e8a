package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettings(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		s, err := LoadSettings()
		require.NoError(t, err)
		assert.Equal(t, ":8081", s.Addr())
		assert.Equal(t, 600*time.Millisecond, s.ChatReplyDelay)
		assert.Equal(t, 5*time.Minute, s.CatalogCacheTTL)
		assert.Equal(t, 30*time.Minute, s.ChatSessionTTL)
		assert.Equal(t, []string{"http://localhost:3000", "http://localhost:5173"}, s.AllowedOrigins)
		assert.False(t, s.IsProduction())
		assert.False(t, s.CloudinaryEnabled())
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("PORT", "9000")
		t.Setenv("APP_ENV", "production")
		t.Setenv("ALLOWED_ORIGINS", "https://shop.example,https://admin.example")
		t.Setenv("CHAT_REPLY_DELAY", "0s")
		t.Setenv("STORE_DRIVER", "memory")

		s, err := LoadSettings()
		require.NoError(t, err)
		assert.Equal(t, ":9000", s.Addr())
		assert.True(t, s.IsProduction())
		assert.Equal(t, []string{"https://shop.example", "https://admin.example"}, s.AllowedOrigins)
		assert.Zero(t, s.ChatReplyDelay)
		assert.Equal(t, "memory", s.StoreDriver)
	})

	t.Run("bad values", func(t *testing.T) {
		t.Setenv("RATE_LIMIT_WINDOW", "soon")
		_, err := LoadSettings()
		assert.Error(t, err)
	})

	t.Run("unknown driver", func(t *testing.T) {
		t.Setenv("STORE_DRIVER", "sqlite")
		_, err := LoadSettings()
		assert.ErrorContains(t, err, "STORE_DRIVER")
	})
}

func TestInitLogger(t *testing.T) {
	require.NoError(t, InitLogger("test"))
	assert.NotNil(t, Logger)
	SyncLogger()
}
