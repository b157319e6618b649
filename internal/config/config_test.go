package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYAML = `
server:
  port: "8080"
  mode: debug

database:
  host: localhost
  port: 3306
  user: root
  password: root
  dbname: sysdesign_practice
  charset: utf8mb4
  parsetime: true

jwt:
  secret: short
  expire_hours: 168

ai:
  base_url: https://api.perplexity.ai
  model: sonar-pro

storage:
  type: minio
`

func writeConfig(t *testing.T, yaml string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0644))
	return dir
}

func TestLoadConfig(t *testing.T) {
	viper.Reset()
	dir := writeConfig(t, testYAML)

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "sysdesign_practice", cfg.Database.DBName)
	assert.Equal(t, "sonar-pro", cfg.AI.Model)
	// expire_hours 是小时数，加载后换算成 Duration
	assert.Equal(t, 168*time.Hour, cfg.JWT.ExpireTime)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	viper.Reset()
	dir := writeConfig(t, testYAML)

	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("AI_API_KEY", "pplx-from-env")
	t.Setenv("DATABASE_HOST", "db.internal")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "pplx-from-env", cfg.AI.APIKey)
	assert.Equal(t, "db.internal", cfg.Database.Host)
}

func TestLoadConfigWeakSecretInRelease(t *testing.T) {
	viper.Reset()
	dir := writeConfig(t, testYAML)
	t.Setenv("SERVER_MODE", "release")

	_, err := LoadConfig(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT secret is too short")
}

func TestLoadConfigMissingFile(t *testing.T) {
	viper.Reset()
	_, err := LoadConfig(t.TempDir())
	assert.Error(t, err)
}
