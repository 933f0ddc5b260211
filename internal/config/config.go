package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all senior-care configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	LLM      LLMConfig      `yaml:"llm"`
	Secrets  SecretsConfig  `yaml:"secrets"`
	Database DatabaseConfig `yaml:"database"`
	Logging  LoggingConfig  `yaml:"logging"`
}

type ServerConfig struct {
	Port      string `yaml:"port"`
	StaticDir string `yaml:"static_dir"` // optional front-end assets
}

// LLMConfig configures the chat-completion endpoint and the model fallback order.
type LLMConfig struct {
	BaseURL     string   `yaml:"base_url"`
	Models      []string `yaml:"models"`
	Temperature float64  `yaml:"temperature"`
	MaxTokens   int      `yaml:"max_tokens"`
	Timeout     string   `yaml:"timeout"`
}

// SecretsConfig points at the structured secret store checked before the environment.
type SecretsConfig struct {
	Path string `yaml:"path"`
}

type DatabaseConfig struct {
	Path string `yaml:"path"`
}

type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// DefaultModels is the fallback order used when the config file names none.
var DefaultModels = []string{
	"xiaomi/mimo-v2-flash:free",
	"nvidia/nemotron-3-nano-30b-a3b:free",
	"mistralai/devstral-2512:free",
	"qwen/qwen3-coder:free",
}

func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{Port: "8100"},
		LLM: LLMConfig{
			BaseURL:     "https://openrouter.ai/api/v1",
			Models:      append([]string(nil), DefaultModels...),
			Temperature: 0.7,
			MaxTokens:   2000,
			Timeout:     "60s",
		},
		Secrets:  SecretsConfig{Path: ".streamlit/secrets.toml"},
		Database: DatabaseConfig{Path: "file:consultations?mode=memory&cache=shared"},
		Logging:  LoggingConfig{Level: "info"},
	}
}

// Load reads the YAML file at path on top of the defaults and then applies
// environment overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadDotEnv loads a .env file into the process environment if one exists.
// Variables already set win.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv("PORT"); v != "" {
		c.Server.Port = v
	}
	if v := os.Getenv("OPENROUTER_BASE_URL"); v != "" {
		c.LLM.BaseURL = v
	}
	if v := os.Getenv("SENIORCARE_DB_PATH"); v != "" {
		c.Database.Path = v
	}
	if v := os.Getenv("SENIORCARE_SECRETS_PATH"); v != "" {
		c.Secrets.Path = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("SENIORCARE_MAX_TOKENS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid SENIORCARE_MAX_TOKENS: %w", err)
		}
		c.LLM.MaxTokens = n
	}
	return nil
}

// Validate rejects configurations the services cannot start with.
func (c *Config) Validate() error {
	if len(c.LLM.Models) == 0 {
		return errors.New("llm.models must list at least one model")
	}
	if c.LLM.MaxTokens <= 0 {
		return fmt.Errorf("llm.max_tokens must be positive, got %d", c.LLM.MaxTokens)
	}
	if _, err := c.LLM.TimeoutDuration(); err != nil {
		return err
	}
	return nil
}

// TimeoutDuration parses the HTTP client timeout. Empty means no timeout.
func (l LLMConfig) TimeoutDuration() (time.Duration, error) {
	if l.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(l.Timeout)
	if err != nil {
		return 0, fmt.Errorf("invalid llm.timeout %q: %w", l.Timeout, err)
	}
	return d, nil
}
