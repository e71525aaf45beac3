package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_DefaultsAndOverrides(t *testing.T) {
	t.Setenv("PMS_API_TOKEN", "from-env")
	t.Setenv("PMS_API_URL", "")

	path := writeConfig(t, `
[server]
http_port = 9090

[pms_api]
url = "http://pms.local/api"
token = "from-file"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, "http://pms.local/api", cfg.PMSAPI.URL)
	assert.Equal(t, "from-env", cfg.PMSAPI.Token)
	assert.Equal(t, 10, cfg.PMSAPI.Timeout)
	assert.Equal(t, 720, cfg.Drafts.TTL)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
}

func TestLoad_RequiresPMSURL(t *testing.T) {
	t.Setenv("PMS_API_URL", "")
	path := writeConfig(t, `
[server]
http_port = 8080
`)

	_, err := Load(path)

	assert.Error(t, err)
}

func TestLoad_EventsNeedURL(t *testing.T) {
	t.Setenv("EVENTS_URL", "")
	path := writeConfig(t, `
[pms_api]
url = "http://pms.local/api"

[events]
enabled = true
`)

	_, err := Load(path)

	assert.Error(t, err)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := DatabaseConfig{Host: "db", Port: 5432, User: "u", Password: "p", DBName: "drafts", SSLMode: "disable"}

	assert.Equal(t, "host=db port=5432 user=u password=p dbname=drafts sslmode=disable", d.DSN())
}
