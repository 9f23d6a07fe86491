package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	configPathEnv = "LEADSCORE_CONFIG"

	defaultModel   = "gpt-4o-mini"
	defaultBaseURL = "https://api.openai.com/v1"
)

type Config struct {
	Env            string        `yaml:"env"`
	Host           string        `yaml:"host"`
	Port           string        `yaml:"port"`
	LogLevel       string        `yaml:"log_level"`
	ScoreWorkers   int           `yaml:"score_workers"`
	ScorePerMinute int           `yaml:"score_per_minute"`
	MaxUploadBytes int64         `yaml:"max_upload_bytes"`
	CORSOrigins    []string      `yaml:"cors_allowed_origins"`
	AMQPURL        string        `yaml:"amqp_url"`
	OpenAI         OpenAIConfig  `yaml:"openai"`
	ShutdownWait   time.Duration `yaml:"shutdown_wait"`
}

type OpenAIConfig struct {
	APIKey            string        `yaml:"api_key"`
	Model             string        `yaml:"model"`
	BaseURL           string        `yaml:"base_url"`
	Timeout           time.Duration `yaml:"timeout"`
	RequestsPerSecond float64       `yaml:"requests_per_second"`
	Burst             int           `yaml:"burst"`
}

// ListenAddr joins host and port.
func (c Config) ListenAddr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// ModelEnabled reports whether the remote intent model can be used.
func (c Config) ModelEnabled() bool {
	return strings.TrimSpace(c.OpenAI.APIKey) != ""
}

func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

func Default() Config {
	return Config{
		Env:            "development",
		Host:           "0.0.0.0",
		Port:           "8000",
		LogLevel:       "info",
		ScoreWorkers:   4,
		ScorePerMinute: 30,
		MaxUploadBytes: 10 << 20,
		CORSOrigins:    []string{"*"},
		ShutdownWait:   5 * time.Second,
		OpenAI: OpenAIConfig{
			Model:             defaultModel,
			BaseURL:           defaultBaseURL,
			Timeout:           20 * time.Second,
			RequestsPerSecond: 5,
			Burst:             5,
		},
	}
}

// Load starts from defaults, merges the optional YAML file named by
// LEADSCORE_CONFIG and then applies environment overrides.
func Load() (Config, error) {
	cfg := Default()

	if path := os.Getenv(configPathEnv); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return cfg, err
	}
	return cfg, cfg.validate()
}

func (c *Config) applyEnvOverrides() error {
	c.Env = getenv("APP_ENV", c.Env)
	c.Host = getenv("HOST", c.Host)
	c.Port = getenv("PORT", c.Port)
	c.LogLevel = getenv("LOG_LEVEL", c.LogLevel)
	c.AMQPURL = getenv("AMQP_URL", c.AMQPURL)
	c.OpenAI.APIKey = getenv("OPENAI_API_KEY", c.OpenAI.APIKey)
	c.OpenAI.Model = getenv("OPENAI_MODEL", c.OpenAI.Model)
	c.OpenAI.BaseURL = getenv("OPENAI_BASE_URL", c.OpenAI.BaseURL)

	if v := os.Getenv("CORS_ALLOWED_ORIGINS"); v != "" {
		c.CORSOrigins = splitList(v)
	}

	var err error
	if c.ScoreWorkers, err = getenvInt("SCORE_WORKERS", c.ScoreWorkers); err != nil {
		return err
	}
	if c.ScorePerMinute, err = getenvInt("SCORE_RATE_PER_MINUTE", c.ScorePerMinute); err != nil {
		return err
	}
	if c.OpenAI.Burst, err = getenvInt("OPENAI_BURST", c.OpenAI.Burst); err != nil {
		return err
	}
	if c.OpenAI.Timeout, err = getenvDuration("OPENAI_TIMEOUT", c.OpenAI.Timeout); err != nil {
		return err
	}
	if v := os.Getenv("OPENAI_RPS"); v != "" {
		rps, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("OPENAI_RPS: %w", err)
		}
		c.OpenAI.RequestsPerSecond = rps
	}
	if v := os.Getenv("MAX_UPLOAD_BYTES"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("MAX_UPLOAD_BYTES: %w", err)
		}
		c.MaxUploadBytes = n
	}
	return nil
}

func (c Config) validate() error {
	if _, err := strconv.Atoi(c.Port); err != nil {
		return fmt.Errorf("invalid port %q", c.Port)
	}
	if c.ScoreWorkers < 1 {
		return fmt.Errorf("score_workers must be at least 1, got %d", c.ScoreWorkers)
	}
	if c.OpenAI.Model == "" {
		return fmt.Errorf("openai model must not be empty")
	}
	return nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func getenvDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}

func splitList(v string) []string {
	var out []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
