package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func envOf(values map[string]string) func(string) string {
	return func(name string) string { return values[name] }
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("", envOf(nil))
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoad_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
env = "production"

[database]
type = "mysql"
host = "db"

[auth.access_token]
expiration = "1h"

[pix]
enabled = true
`), 0600))

	cfg, err := Load(path, envOf(map[string]string{
		"DB_HOST":                 "mysql.internal",
		"ALLOWED_ORIGINS":         "https://rifa.example, https://admin.rifa.example",
		"ACCESS_TOKEN_EXPIRATION": "2h",
		"PIX_WEBHOOK_TOKEN":       "token",
	}))
	require.NoError(t, err)
	require.True(t, cfg.IsProduction())
	require.Equal(t, "mysql", cfg.Database.Type)
	require.Equal(t, "mysql.internal", cfg.Database.Host)
	require.Equal(t, []string{"https://rifa.example", "https://admin.rifa.example"}, cfg.ApiServer.AllowedOrigins)
	require.Equal(t, 2*time.Hour, cfg.Auth.AccessToken.Expiration)
	require.True(t, cfg.Pix.Enabled)
	require.Equal(t, "token", cfg.Pix.WebhookToken)
	// Untouched values keep their defaults.
	require.Equal(t, "https://api.horsepay.io", cfg.Pix.Endpoint)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"), envOf(nil))
	require.NoError(t, err)
}

func TestLoad_InvalidEnv(t *testing.T) {
	_, err := Load("", envOf(map[string]string{"EMAIL_PORT": "smtp"}))
	require.ErrorContains(t, err, "invalid EMAIL_PORT")
}

func TestConnectionString(t *testing.T) {
	d := DatabaseConfigs{User: "root", Password: "pw", Host: "localhost", Port: "3306", Database: "raffle"}
	require.Equal(t, "root:pw@tcp(localhost:3306)/raffle?charset=utf8mb4&parseTime=True&loc=Local", d.ConnectionString())
}
