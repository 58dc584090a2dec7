package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Loader handles configuration loading
type Loader struct {
	configPath string
}

// NewLoader creates a new config loader
func NewLoader(configPath string) *Loader {
	return &Loader{
		configPath: configPath,
	}
}

// Load loads the configuration from file, .env and environment variables.
// Precedence, lowest first: defaults, config file, BESEDKA_* env, the
// TELEGRAM_TOKEN / OPENAI_API_KEY / ANTHROPIC_API_KEY shortcuts.
func (l *Loader) Load() (*Config, error) {
	// Pull a .env file into the environment if one is present.
	_ = godotenv.Load()

	configPath := l.configPath
	if configPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		configPath = filepath.Join(home, ".besedka", "besedka.json")
	}

	cfg := DefaultConfig()

	if _, err := os.Stat(configPath); err == nil {
		v := viper.New()
		v.SetConfigFile(configPath)
		v.SetConfigType("json")

		v.SetEnvPrefix("BESEDKA")
		v.AutomaticEnv()

		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := v.Unmarshal(cfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config: %w", err)
		}
	}

	l.applyEnvOverrides(cfg)

	if cfg.DataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		cfg.DataDir = filepath.Join(home, ".besedka")
	}

	if cfg.Logging.File == "" {
		cfg.Logging.File = filepath.Join(cfg.DataDir, "besedka.log")
	}

	return cfg, nil
}

// applyEnvOverrides applies the conventional credential variables so the bot
// runs from a bare environment without a config file.
func (l *Loader) applyEnvOverrides(cfg *Config) {
	if token := os.Getenv("TELEGRAM_TOKEN"); token != "" {
		cfg.Telegram.BotToken = token
	}

	switch cfg.Completion.Provider {
	case "anthropic":
		if key := os.Getenv("ANTHROPIC_API_KEY"); key != "" {
			cfg.Completion.APIKey = key
		}
	default:
		if key := os.Getenv("OPENAI_API_KEY"); key != "" {
			cfg.Completion.APIKey = key
		}
	}
}
