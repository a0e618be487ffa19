package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testLogConfig struct {
	level, output, file string
}

func (c testLogConfig) GetLevel() string  { return c.level }
func (c testLogConfig) GetOutput() string { return c.output }
func (c testLogConfig) GetFile() string   { return c.file }

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, DEBUG, ParseLogLevel("DEBUG"))
	assert.Equal(t, WARN, ParseLogLevel("warning"))
	assert.Equal(t, ERROR, ParseLogLevel("error"))
	assert.Equal(t, INFO, ParseLogLevel("verbose"))
}

func TestInitFileOutput(t *testing.T) {
	t.Cleanup(func() { SetDefaultLogger(NewNop()) })

	path := filepath.Join(t.TempDir(), "app.log")
	require.NoError(t, Init(testLogConfig{level: "warn", output: "file", file: path}))

	Info("dropped %d", 1)
	Warn("mission %d not found", 42)
	Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "mission 42 not found")
	assert.Contains(t, string(data), `"level":"WARN"`)
	assert.NotContains(t, string(data), "dropped 1")
}

func TestFileOutputRequiresPath(t *testing.T) {
	_, err := NewWithLumberjackConfig(INFO, LumberjackConfig{})
	assert.Error(t, err)
}
