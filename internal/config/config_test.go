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
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o600))
	return dir
}

func TestLoadFrom(t *testing.T) {
	tests := []struct {
		name        string
		configFile  string
		env         map[string]string
		expectError bool
		validate    func(*testing.T, *Config)
	}{
		{
			name: "valid config file",
			configFile: `
server:
  port: "8081"
  mode: release
storage:
  driver: postgres
  seed: false
database:
  host: db.internal
  port: 6543
  user: dao
  password: secret
  dbname: spacedao_test
chain:
  provider: ethereum
  rpc_url: "http://localhost:8545"
  pool_size: 4
task:
  stats_interval: 30
log:
  level: debug
  output: file
  file: /tmp/spacedao.log
`,
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "8081", cfg.Server.Port)
				assert.Equal(t, "release", cfg.Server.Mode)
				assert.Equal(t, StoragePostgres, cfg.Storage.Driver)
				assert.False(t, cfg.Storage.Seed)
				assert.Equal(t, "db.internal", cfg.Database.Host)
				assert.Equal(t, 6543, cfg.Database.Port)
				assert.Equal(t, "disable", cfg.Database.SSLMode)
				assert.Equal(t, ChainProviderEthereum, cfg.Chain.Provider)
				assert.Equal(t, "http://localhost:8545", cfg.Chain.RpcUrl)
				assert.Equal(t, 4, cfg.Chain.PoolSize)
				assert.Equal(t, 10, cfg.Chain.Timeout)
				assert.Equal(t, 30, cfg.Task.StatsInterval)
				assert.Equal(t, "debug", cfg.Log.GetLevel())
				assert.Equal(t, "file", cfg.Log.GetOutput())
				assert.Equal(t, "/tmp/spacedao.log", cfg.Log.GetFile())
			},
		},
		{
			name:       "defaults",
			configFile: "",
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "5000", cfg.Server.Port)
				assert.Equal(t, StorageMemory, cfg.Storage.Driver)
				assert.True(t, cfg.Storage.Seed)
				assert.Equal(t, ChainProviderMock, cfg.Chain.Provider)
				assert.Equal(t, 8, cfg.Chain.PoolSize)
				assert.Equal(t, 0, cfg.Task.StatsInterval)
				assert.Equal(t, "info", cfg.Log.Level)
			},
		},
		{
			name:       "environment overrides file",
			configFile: "server:\n  port: \"8081\"\n",
			env: map[string]string{
				"SPACEDAO_SERVER_PORT":         "9090",
				"SPACEDAO_TASK_STATS_INTERVAL": "120",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "9090", cfg.Server.Port)
				assert.Equal(t, 120, cfg.Task.StatsInterval)
			},
		},
		{
			name:        "unknown storage driver",
			configFile:  "storage:\n  driver: redis\n",
			expectError: true,
		},
		{
			name:        "ethereum provider without rpc url",
			configFile:  "chain:\n  provider: ethereum\n",
			expectError: true,
		},
		{
			name:        "negative stats interval",
			configFile:  "task:\n  stats_interval: -5\n",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			dir := t.TempDir()
			if tt.configFile != "" {
				dir = writeConfig(t, tt.configFile)
			}

			cfg, err := LoadFrom(dir)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.validate(t, cfg)
		})
	}
}

func TestDatabaseConfigDSN(t *testing.T) {
	d := DatabaseConfig{Host: "localhost", Port: 5432, User: "postgres", Password: "pw", DBName: "spacedao", SSLMode: "disable"}
	assert.Equal(t, "host=localhost port=5432 user=postgres password=pw dbname=spacedao sslmode=disable", d.DSN())
}
