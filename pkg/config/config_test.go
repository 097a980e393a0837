package config_test

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/suryalaha/EcoTrack-app-manage/pkg/config"
)

func TestGetters(t *testing.T) {
	t.Setenv("CONFIG_PATH", t.TempDir()+"/missing.env")
	cfg := config.New()

	t.Setenv("PAYMENT_SUCCESS_RATE", "0.75")
	t.Setenv("TOKEN_TTL", "2h")
	t.Setenv("LIMIT", "abc")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("APP_TIMEZONE", "Asia/Kolkata")

	assert.Equal(t, 0.75, cfg.GetFloat("PAYMENT_SUCCESS_RATE", 0.9))
	assert.Equal(t, 2*time.Hour, cfg.GetDuration("TOKEN_TTL", time.Hour))
	assert.Equal(t, 10, cfg.GetInt("LIMIT", 10))
	assert.Equal(t, "fallback", cfg.GetStringOr("UNSET_KEY", "fallback"))
	assert.Equal(t, slog.LevelDebug, cfg.GetLogLevel("LOG_LEVEL"))
	assert.Equal(t, "Asia/Kolkata", cfg.GetLocation("APP_TIMEZONE", time.UTC).String())

	t.Setenv("APP_TIMEZONE", "Mars/Olympus")
	assert.Equal(t, time.UTC, cfg.GetLocation("APP_TIMEZONE", time.UTC))
}
