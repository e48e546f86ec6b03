package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig("")
	assert.Equal(t, "shopd", cfg.System.Appid)
	assert.Equal(t, "postgres", cfg.Database.Type)
	assert.Equal(t, 1816, cfg.Web.Port)
	assert.Equal(t, 99.99, cfg.Payment.DefaultAmount)
	assert.False(t, cfg.Payment.EnableStripe)
}

func TestLoadConfigFromYaml(t *testing.T) {
	dir := t.TempDir()
	cfile := filepath.Join(dir, "shopd.yml")
	data := `
system:
  appid: shoptest
  location: UTC
  workdir: /tmp/shoptest
web:
  host: 127.0.0.1
  port: 9090
  secret: test-secret
  jwt_expire: 2
database:
  type: postgres
  host: db.local
  port: 5433
  name: shoptest
  user: shop
  passwd: shop
payment:
  enable_stripe: true
  default_amount: 12.5
`
	require.NoError(t, os.WriteFile(cfile, []byte(data), 0o644))

	cfg := LoadConfig(cfile)
	assert.Equal(t, "shoptest", cfg.System.Appid)
	assert.Equal(t, 9090, cfg.Web.Port)
	assert.Equal(t, "db.local", cfg.Database.Host)
	assert.True(t, cfg.Payment.EnableStripe)
	assert.Equal(t, 12.5, cfg.Payment.DefaultAmount)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("SHOPD_WEB_PORT", "8181")
	t.Setenv("SHOPD_DB_HOST", "override.local")
	t.Setenv("SHOPD_PAYMENT_ENABLE_STRIPE", "true")

	cfg := LoadConfig("")
	assert.Equal(t, 8181, cfg.Web.Port)
	assert.Equal(t, "override.local", cfg.Database.Host)
	assert.True(t, cfg.Payment.EnableStripe)
}
