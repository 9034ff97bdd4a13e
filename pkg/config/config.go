// Package config loads the process configuration once at startup. Values
// are resolved in order: defaults, YAML file, .env and environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server ServerConfig `yaml:"server"`
	Model  ModelConfig  `yaml:"model"`
	Upload UploadConfig `yaml:"upload"`
	Log    LogConfig    `yaml:"log"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

type ModelConfig struct {
	Provider string `yaml:"provider"` // gemini, openai, anthropic, ollama, dummy
	Name     string `yaml:"name"`
	APIKey   string `yaml:"api_key"`
	Host     string `yaml:"host"` // ollama only
}

type UploadConfig struct {
	MaxMB  int  `yaml:"max_mb"`
	Redact bool `yaml:"redact"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

const defaultModelName = "gemini-1.5-flash"

func Default() *Config {
	return &Config{
		Server: ServerConfig{Addr: ":8080"},
		Model:  ModelConfig{Provider: "gemini", Name: defaultModelName},
		Upload: UploadConfig{MaxMB: 10},
		Log:    LogConfig{Level: "info", Format: "text"},
	}
}

// Load reads the optional YAML file at path (a missing file is not an
// error), then .env, then the environment.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("read config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	// .env never overrides variables already set in the environment.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	cfg.resolveModelName()
	return cfg, cfg.Validate()
}

// Override applies command-line choices on top of a loaded config. A new
// provider reads its own credential from the environment.
func (c *Config) Override(provider, model string) {
	if provider != "" && !strings.EqualFold(provider, c.Model.Provider) {
		c.Model.Provider = provider
		c.Model.APIKey = ""
		c.applyAPIKey(os.LookupEnv)
	}
	if model != "" {
		c.Model.Name = model
	}
	c.resolveModelName()
}

// resolveModelName drops the Gemini default name for other providers so
// they fall back to their own default model.
func (c *Config) resolveModelName() {
	if c.Model.Name != defaultModelName {
		return
	}
	switch strings.ToLower(c.Model.Provider) {
	case "", "gemini", "google":
	default:
		c.Model.Name = ""
	}
}

func (c *Config) applyAPIKey(lookup func(string) (string, bool)) {
	for _, k := range apiKeyVars(c.Model.Provider) {
		if v, ok := lookup(k); ok && v != "" {
			c.Model.APIKey = v
			return
		}
	}
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	str := func(dst *string, keys ...string) {
		for _, k := range keys {
			if v, ok := lookup(k); ok && v != "" {
				*dst = v
				return
			}
		}
	}
	str(&c.Server.Addr, "DOCDECODE_ADDR")
	provider := c.Model.Provider
	str(&c.Model.Provider, "DOCDECODE_PROVIDER")
	if !strings.EqualFold(provider, c.Model.Provider) {
		// a key from the config file belongs to the provider it named
		c.Model.APIKey = ""
	}
	str(&c.Model.Name, "DOCDECODE_MODEL")
	str(&c.Model.Host, "OLLAMA_HOST")
	str(&c.Log.Level, "LOG_LEVEL")
	str(&c.Log.Format, "LOG_FORMAT")

	if c.Model.APIKey == "" {
		c.applyAPIKey(lookup)
	}

	if v, ok := lookup("DOCDECODE_MAX_UPLOAD_MB"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("DOCDECODE_MAX_UPLOAD_MB: %w", err)
		}
		c.Upload.MaxMB = n
	}
	if v, ok := lookup("DOCDECODE_REDACT"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("DOCDECODE_REDACT: %w", err)
		}
		c.Upload.Redact = b
	}
	return nil
}

// NeedsAPIKey reports whether the selected provider takes a credential.
func (c *Config) NeedsAPIKey() bool {
	return len(apiKeyVars(c.Model.Provider)) > 0
}

// apiKeyVars lists the environment variables holding the credential for
// provider, in priority order.
func apiKeyVars(provider string) []string {
	switch strings.ToLower(provider) {
	case "openai":
		return []string{"OPENAI_API_KEY", "OPENAI_KEY"}
	case "anthropic", "claude":
		return []string{"ANTHROPIC_API_KEY"}
	case "ollama", "dummy":
		return nil
	default:
		return []string{"GOOGLE_API_KEY", "GEMINI_API_KEY"}
	}
}

func (c *Config) Validate() error {
	if c.Upload.MaxMB <= 0 {
		return fmt.Errorf("upload.max_mb must be positive, got %d", c.Upload.MaxMB)
	}
	if strings.TrimSpace(c.Server.Addr) == "" {
		return errors.New("server.addr is empty")
	}
	return nil
}

// MaxUploadBytes is the upload cap in bytes.
func (c *Config) MaxUploadBytes() int64 {
	return int64(c.Upload.MaxMB) << 20
}
