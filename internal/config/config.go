package config

import "time"

// Config represents the main Besedka configuration.
type Config struct {
	// Telegram
	Telegram TelegramConfig `json:"telegram" mapstructure:"telegram"`

	// Completion service
	Completion CompletionConfig `json:"completion" mapstructure:"completion"`

	// Chat behavior
	Chat ChatConfig `json:"chat" mapstructure:"chat"`

	// Logging
	Logging LoggingConfig `json:"logging" mapstructure:"logging"`

	// Metrics
	Metrics MetricsConfig `json:"metrics" mapstructure:"metrics"`

	// Data directory
	DataDir string `json:"data_dir" mapstructure:"data_dir"`
}

// TelegramConfig holds Telegram bot configuration.
type TelegramConfig struct {
	BotToken string `json:"bot_token" mapstructure:"bot_token"`
}

// CompletionConfig holds completion service configuration. MaxTokens,
// Temperature and SystemPrompt are fixed design constants, not user-facing
// tuning knobs; they live here so tests can isolate them.
type CompletionConfig struct {
	Provider       string  `json:"provider" mapstructure:"provider"` // openai, anthropic
	APIKey         string  `json:"api_key" mapstructure:"api_key"`
	Model          string  `json:"model" mapstructure:"model"`
	MaxTokens      int     `json:"max_tokens" mapstructure:"max_tokens"`
	Temperature    float64 `json:"temperature" mapstructure:"temperature"`
	TimeoutSeconds int     `json:"timeout_seconds" mapstructure:"timeout_seconds"`
	SystemPrompt   string  `json:"system_prompt" mapstructure:"system_prompt"`
	Apology        string  `json:"apology" mapstructure:"apology"`
}

// ChatConfig holds conversation history settings.
type ChatConfig struct {
	MaxHistory int `json:"max_history" mapstructure:"max_history"`

	// Idle-session reaping. Disabled by default: the bot then holds every
	// session for the process lifetime, which grows without bound under a
	// large user population.
	ReapIdleSessions    bool `json:"reap_idle_sessions" mapstructure:"reap_idle_sessions"`
	IdleTTLMinutes      int  `json:"idle_ttl_minutes" mapstructure:"idle_ttl_minutes"`
	ReapIntervalMinutes int  `json:"reap_interval_minutes" mapstructure:"reap_interval_minutes"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level   string `json:"level" mapstructure:"level"`
	File    string `json:"file" mapstructure:"file"`
	Console bool   `json:"console" mapstructure:"console"`
	Pretty  bool   `json:"pretty" mapstructure:"pretty"`
}

// MetricsConfig holds the Prometheus listener configuration.
type MetricsConfig struct {
	Enabled bool   `json:"enabled" mapstructure:"enabled"`
	Addr    string `json:"addr" mapstructure:"addr"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Completion: CompletionConfig{
			Provider:       "openai",
			Model:          "gpt-4o-mini",
			MaxTokens:      1000,
			Temperature:    0.7,
			TimeoutSeconds: 60,
			SystemPrompt:   "Ты полезный ассистент. Отвечай кратко и по делу.",
			Apology:        "Извините, произошла ошибка при обращении к ChatGPT.",
		},
		Chat: ChatConfig{
			MaxHistory:          20,
			IdleTTLMinutes:      24 * 60,
			ReapIntervalMinutes: 10,
		},
		Logging: LoggingConfig{
			Level:   "info",
			Console: true,
		},
		Metrics: MetricsConfig{
			Addr: "127.0.0.1:9090",
		},
	}
}

// CompletionTimeout returns the completion call deadline as a duration.
func (c *CompletionConfig) CompletionTimeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// IdleTTL returns the idle-session TTL as a duration.
func (c *ChatConfig) IdleTTL() time.Duration {
	return time.Duration(c.IdleTTLMinutes) * time.Minute
}

// ReapInterval returns the reaper check interval as a duration.
func (c *ChatConfig) ReapInterval() time.Duration {
	return time.Duration(c.ReapIntervalMinutes) * time.Minute
}
