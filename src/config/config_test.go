package config

import (
	"bytes"
	"log"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Setenv("DB_DSN", "host=localhost dbname=locations")
	t.Setenv("JWT_SECRET", "s")
	t.Setenv("SERVER_HOST", "")
	t.Setenv("CORS_ORIGINS", "http://a.example, http://b.example ,")
	t.Setenv("PAGE_SIZE", "50")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Host)
	assert.Equal(t, []string{"http://a.example", "http://b.example"}, cfg.CORSOrigins)
	assert.Equal(t, 50, cfg.PageSize)
	assert.Equal(t, "admin", cfg.AdminUsername)
}

func TestLoadRequiresSecrets(t *testing.T) {
	t.Setenv("DB_DSN", "")
	t.Setenv("JWT_SECRET", "s")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("DB_DSN", "dsn")
	t.Setenv("JWT_SECRET", "")
	_, err = Load()
	assert.Error(t, err)
}

func TestLoadIgnoresInvalidPageSize(t *testing.T) {
	t.Setenv("DB_DSN", "dsn")
	t.Setenv("JWT_SECRET", "s")
	t.Setenv("PAGE_SIZE", "lots")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 20, cfg.PageSize)
}

func TestLoadWarnsAboutDefaultAdminPassword(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	t.Setenv("DB_DSN", "dsn")
	t.Setenv("JWT_SECRET", "s")
	t.Setenv("ADMIN_PASSWORD", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.UsesDefaultAdminPassword())
	assert.Contains(t, buf.String(), "default ADMIN_PASSWORD")

	buf.Reset()
	t.Setenv("ADMIN_PASSWORD", "s3cret")
	cfg, err = Load()
	require.NoError(t, err)
	assert.False(t, cfg.UsesDefaultAdminPassword())
	assert.NotContains(t, buf.String(), "ADMIN_PASSWORD")
}
