package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeYAML(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// emptyWorkdir moves into a directory without config.yaml
func emptyWorkdir(t *testing.T) {
	t.Helper()

	orig, err := os.Getwd()
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.Chdir(orig) })
	require.NoError(t, os.Chdir(t.TempDir()))
}

const validYAML = `
server:
  addr: "127.0.0.1:9090"
  read_timeout: "5s"
  write_timeout: "15s"
  idle_timeout: "30s"
  shutdown_timeout: "2s"

log:
  level: "debug"
  format: "json"

store:
  seed_path: "/data/seed.yaml"

cors:
  allowed_origins: "http://localhost:3000, http://localhost:5173"
`

func TestLoadYAML(t *testing.T) {
	cfg, err := Load(writeYAML(t, validYAML))
	require.NoError(t, err)

	assert.Equal(t, ServerConfig{
		Addr:            "127.0.0.1:9090",
		ReadTimeout:     5 * time.Second,
		WriteTimeout:    15 * time.Second,
		IdleTimeout:     30 * time.Second,
		ShutdownTimeout: 2 * time.Second,
	}, cfg.Server)
	assert.Equal(t, LogConfig{Level: "debug", Format: "json"}, cfg.Log)
	assert.Equal(t, "/data/seed.yaml", cfg.Store.SeedPath)
	assert.Equal(t, []string{"http://localhost:3000", "http://localhost:5173"}, cfg.CORS.Origins())
}

func TestLoadENVOverridesYAML(t *testing.T) {
	t.Setenv("SERVER_ADDR", ":3000")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := Load(writeYAML(t, validYAML))
	require.NoError(t, err)

	assert.Equal(t, ":3000", cfg.Server.Addr)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadConfigPathEnv(t *testing.T) {
	t.Setenv("CONFIG_PATH", writeYAML(t, validYAML))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9090", cfg.Server.Addr)
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	emptyWorkdir(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, Config{
		Server: ServerConfig{
			Addr:            ":8080",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    10 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 5 * time.Second,
		},
		Log:  LogConfig{Level: "info", Format: "text"},
		CORS: CORSConfig{AllowedOrigins: "*"},
	}, *cfg)
}

func TestLoadENVOnly(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("STORE_SEED_PATH", "seed.json")
	t.Setenv("SERVER_WRITE_TIMEOUT", "1m")
	emptyWorkdir(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "seed.json", cfg.Store.SeedPath)
	assert.Equal(t, time.Minute, cfg.Server.WriteTimeout)
}

func TestLoadExplicitPathNotFound(t *testing.T) {
	_, err := Load("/nonexistent/config.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "/nonexistent/config.yaml")
}

func TestLoadInvalid(t *testing.T) {
	for name, tc := range map[string]struct {
		env     map[string]string
		wantErr string
	}{
		"bad addr": {
			env:     map[string]string{"SERVER_ADDR": "localhost"},
			wantErr: "server: addr",
		},
		"bad port": {
			env:     map[string]string{"SERVER_ADDR": ":http-alt"},
			wantErr: "invalid port",
		},
		"zero timeout": {
			env:     map[string]string{"SERVER_SHUTDOWN_TIMEOUT": "0s"},
			wantErr: "shutdown_timeout must be > 0",
		},
		"bad level": {
			env:     map[string]string{"LOG_LEVEL": "verbose"},
			wantErr: "log: level",
		},
		"bad format": {
			env:     map[string]string{"LOG_FORMAT": "xml"},
			wantErr: "log: format",
		},
		"no origins": {
			env:     map[string]string{"CORS_ALLOWED_ORIGINS": " , "},
			wantErr: "cors",
		},
	} {
		t.Run(name, func(t *testing.T) {
			t.Setenv("CONFIG_PATH", "")
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			emptyWorkdir(t)

			_, err := Load("")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}
