package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"ENVIRONMENT", "LOG_LEVEL", "BRIDGE", "NPC_LANGUAGE", "OFFENDED_KEYWORD"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, BridgeFile, cfg.Bridge)
	assert.Equal(t, "en", cfg.Language)
	assert.Equal(t, "Offended", cfg.OffendedKeyword)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("LOG_LEVEL", "WARNING")
	t.Setenv("BRIDGE", "Redis")
	t.Setenv("REDIS_URL", "redis://cache:6379/2")
	t.Setenv("NPC_LANGUAGE", "de")
	t.Setenv("OFFENDED_KEYWORD", "Beleidigt")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, slog.LevelWarn, cfg.LogLevel)
	assert.Equal(t, BridgeRedis, cfg.Bridge)
	assert.Equal(t, "redis://cache:6379/2", cfg.RedisURL)
	assert.Equal(t, "de", cfg.Language)
	assert.Equal(t, "Beleidigt", cfg.OffendedKeyword)
}

func TestLoad_InvalidBridge(t *testing.T) {
	t.Setenv("BRIDGE", "carrier-pigeon")
	_, err := Load()
	assert.Error(t, err)
}

func TestParseLogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"error":   slog.LevelError,
		"verbose": slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, parseLogLevel(in), in)
	}
}

func TestLoadPrompts(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prompts.yaml")
	content := `single_npc_prompt: |
  You are {name}, talking to {player_name}.
multi_npc_prompt: |
  This is a conversation between {names_w_player}.
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	tpl, err := LoadPrompts(path)
	require.NoError(t, err)
	assert.Equal(t, "You are {name}, talking to {player_name}.\n", tpl.Single)
	assert.Equal(t, "This is a conversation between {names_w_player}.\n", tpl.Multi)
}

func TestLoadPrompts_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadPrompts(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	partial := filepath.Join(dir, "partial.yaml")
	require.NoError(t, os.WriteFile(partial, []byte("single_npc_prompt: hi\n"), 0o644))
	_, err = LoadPrompts(partial)
	assert.ErrorContains(t, err, "multi_npc_prompt")

	broken := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(broken, []byte("single_npc_prompt: [unclosed\n"), 0o644))
	_, err = LoadPrompts(broken)
	assert.Error(t, err)
}
