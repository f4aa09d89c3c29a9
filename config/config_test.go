package config_test

import (
	"testing"

	"reelskills-backend/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("Should read overrides and sanitize URLs", func(t *testing.T) {
		t.Setenv("SUPABASE_URL", "https://abc.supabase.co/")
		t.Setenv("MAX_VIDEO_UPLOAD_MB", "25")
		t.Setenv("STORAGE_PROVIDER", "Wasabi")
		t.Setenv("RATE_LIMIT_UPLOAD_THRESHOLD", "not-a-number")

		cfg, err := config.LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "https://abc.supabase.co", cfg.SupabaseUrl)
		assert.Equal(t, int64(25<<20), cfg.MaxVideoUploadBytes())
		assert.Equal(t, "wasabi", cfg.StorageProvider)
		assert.Equal(t, 5, cfg.RateLimitUploadThreshold)
	})
}
