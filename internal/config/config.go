package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/jwebster45206/npc-engine/pkg/prompts"
)

const (
	BridgeFile  = "file"
	BridgeRedis = "redis"
)

type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevelRaw string `env:"LOG_LEVEL" envDefault:"info"`
	LogLevel    slog.Level

	// Game-state bridge
	Bridge       string `env:"BRIDGE" envDefault:"file"`
	GameStateDir string `env:"GAME_STATE_DIR" envDefault:"."`
	RedisURL     string `env:"REDIS_URL" envDefault:"redis://localhost:6379"`
	RedisHash    string `env:"REDIS_HASH" envDefault:"gameinfo"`

	// Conversation
	Language    string `env:"NPC_LANGUAGE" envDefault:"en"`
	PromptsFile string `env:"PROMPTS_FILE" envDefault:"prompts.yaml"`

	// Behavior keywords, translated for non-English conversations
	OffendedKeyword string `env:"OFFENDED_KEYWORD" envDefault:"Offended"`
	ForgivenKeyword string `env:"FORGIVEN_KEYWORD" envDefault:"Forgiven"`
	FollowKeyword   string `env:"FOLLOW_KEYWORD" envDefault:"Follow"`
}

// Load reads the configuration from environment variables
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	cfg.LogLevel = parseLogLevel(cfg.LogLevelRaw)
	cfg.Bridge = strings.ToLower(strings.TrimSpace(cfg.Bridge))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that the configured values can be used together
func (c *Config) Validate() error {
	switch c.Bridge {
	case BridgeFile:
		if c.GameStateDir == "" {
			return fmt.Errorf("GAME_STATE_DIR is required for the file bridge")
		}
	case BridgeRedis:
		if c.RedisURL == "" {
			return fmt.Errorf("REDIS_URL is required for the redis bridge")
		}
	default:
		return fmt.Errorf("invalid BRIDGE %q, supported: %s, %s", c.Bridge, BridgeFile, BridgeRedis)
	}
	if strings.TrimSpace(c.Language) == "" {
		return fmt.Errorf("NPC_LANGUAGE cannot be empty")
	}
	return nil
}

// LoadPrompts reads the single- and multi-NPC templates from a YAML file
func LoadPrompts(path string) (prompts.Templates, error) {
	var tpl prompts.Templates

	data, err := os.ReadFile(path)
	if err != nil {
		return tpl, fmt.Errorf("failed to read prompts file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &tpl); err != nil {
		return tpl, fmt.Errorf("failed to unmarshal prompts file %s: %w", path, err)
	}
	if strings.TrimSpace(tpl.Single) == "" {
		return tpl, fmt.Errorf("prompts file %s: single_npc_prompt is empty", path)
	}
	if strings.TrimSpace(tpl.Multi) == "" {
		return tpl, fmt.Errorf("prompts file %s: multi_npc_prompt is empty", path)
	}
	return tpl, nil
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
