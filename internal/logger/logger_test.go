package logger

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "info", cfg.Level)
	assert.Equal(t, "console", cfg.Format)
	assert.Equal(t, "stderr", cfg.Output)
	assert.NotEmpty(t, cfg.TimeFormat)
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *Config
		wantErr bool
	}{
		{name: "default config", cfg: DefaultConfig()},
		{name: "debug json stdout", cfg: &Config{Level: "debug", Format: "json", Output: "stdout"}},
		{name: "warning alias", cfg: &Config{Level: "WARNING", Format: "console"}},
		{name: "empty config", cfg: &Config{}},
		{name: "invalid level", cfg: &Config{Level: "verbose"}, wantErr: true},
		{name: "invalid file", cfg: &Config{Output: filepath.Join(t.TempDir(), "missing", "log.txt")}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := New(tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, logger)
		})
	}
}

func TestNew_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tablestate.log")
	logger, err := New(&Config{Level: "debug", Format: "json", Output: path})
	require.NoError(t, err)

	logger.Debug("table sort", zap.String("key", "cliente.nombre"))
	logger.Info("loaded", zap.Int("rows", 37))
	require.NoError(t, logger.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "table sort", entry["msg"])
	assert.Equal(t, "cliente.nombre", entry["key"])
	assert.Contains(t, entry, "caller")
	assert.Contains(t, entry, "time")
}

func TestNew_Level(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tablestate.log")
	logger, err := New(&Config{Level: "warn", Format: "console", Output: path})
	require.NoError(t, err)

	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))
	logger.Info("hidden")
	logger.Warn("visible")
	require.NoError(t, logger.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden")
	assert.Contains(t, string(data), "WARN")
	assert.Contains(t, string(data), "visible")
}

func TestContext(t *testing.T) {
	ctx := context.Background()
	assert.NotNil(t, FromContext(ctx))

	logger := zap.NewExample()
	assert.Same(t, logger, FromContext(WithContext(ctx, logger)))
}
