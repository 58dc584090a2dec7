package config

import (
	"fmt"
	"regexp"
	"strings"
)

// Validator validates configuration values
type Validator struct{}

// NewValidator creates a new validator
func NewValidator() *Validator {
	return &Validator{}
}

// Validate checks a loaded configuration for startup-blocking problems.
func (v *Validator) Validate(cfg *Config) error {
	if err := v.ValidateTelegramToken(cfg.Telegram.BotToken); err != nil {
		return err
	}
	if err := v.ValidateAPIKey(cfg.Completion.APIKey, cfg.Completion.Provider); err != nil {
		return err
	}
	if cfg.Completion.Model == "" {
		return fmt.Errorf("completion model cannot be empty")
	}
	if cfg.Chat.MaxHistory < 1 {
		return fmt.Errorf("chat max_history must be at least 1")
	}
	if cfg.Completion.TimeoutSeconds < 1 {
		return fmt.Errorf("completion timeout_seconds must be at least 1")
	}
	return nil
}

// ValidateAPIKey validates an API key format
func (v *Validator) ValidateAPIKey(key string, provider string) error {
	if key == "" {
		return fmt.Errorf("%s API key cannot be empty", provider)
	}

	switch provider {
	case "anthropic":
		if !strings.HasPrefix(key, "sk-ant-") {
			return fmt.Errorf("invalid Anthropic API key format (should start with sk-ant-)")
		}
	case "openai":
		if !strings.HasPrefix(key, "sk-") {
			return fmt.Errorf("invalid OpenAI API key format (should start with sk-)")
		}
	}

	return nil
}

// ValidateTelegramToken validates a Telegram bot token
func (v *Validator) ValidateTelegramToken(token string) error {
	if token == "" {
		return fmt.Errorf("telegram bot token cannot be empty")
	}

	// Telegram bot tokens have format: <bot_id>:<token>
	// Example: 123456789:ABCdefGHIjklMNOpqrsTUVwxyz
	pattern := regexp.MustCompile(`^\d+:[A-Za-z0-9_-]+$`)
	if !pattern.MatchString(token) {
		return fmt.Errorf("invalid Telegram bot token format")
	}

	return nil
}
