package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewConfig(t *testing.T) {
	t.Setenv("CATALOG_HTTP_PORT", "8090")
	t.Setenv("MONGO_URI", "mongodb://mongo:27017")
	t.Setenv("MONGO_DATABASE", "books-test")
	t.Setenv("GOOGLE_BOOKS_READ_TIMEOUT", "2s")
	t.Setenv("PROFILE", "ci")
	t.Setenv("RELOAD_DEVELOPMENT_DATA", "true")
	t.Setenv("AUTO_AUTH_USER", "false")

	cfg := NewConfig(
		WithLogLevel(zapcore.InfoLevel),
		WithWriteTimeout(30*time.Second),
	)

	require.Equal(t, "8090", cfg.Server.Port)
	require.Equal(t, 30*time.Second, cfg.Server.WriteTimeout)
	require.Equal(t, "mongodb://mongo:27017", cfg.Mongo.URI)
	require.Equal(t, "books-test", cfg.Mongo.Database)
	require.Equal(t, 2*time.Second, cfg.Google.ReadTimeout)
	require.Equal(t, "https://www.googleapis.com/books/v1/volumes?q=", cfg.Google.SearchURL)
	require.Equal(t, "country=GB", cfg.Google.CountryCode)
	require.Equal(t, "ci", cfg.Preprod.Profile)
	require.True(t, cfg.Preprod.ReloadData)
	require.False(t, cfg.Preprod.AutoAuthUser)
	require.Equal(t, zapcore.InfoLevel, cfg.Log.LogLevel)
}
