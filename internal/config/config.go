package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override, e.g. CAPTIONS_SERVER_ADDR.
const EnvPrefix = "CAPTIONS"

type Config struct {
	Server      ServerConfig      `yaml:"server" envconfig:"SERVER"`
	Downloader  DownloaderConfig  `yaml:"downloader" envconfig:"DOWNLOADER"`
	Tracks      TracksConfig      `yaml:"tracks" envconfig:"TRACKS"`
	Paths       PathsConfig       `yaml:"paths" envconfig:"PATHS"`
	Logging     LoggingConfig     `yaml:"logging" envconfig:"LOGGING"`
	Performance PerformanceConfig `yaml:"performance" envconfig:"PERFORMANCE"`
}

type ServerConfig struct {
	Addr            string        `yaml:"addr" envconfig:"ADDR"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" envconfig:"SHUTDOWN_TIMEOUT"`
}

type DownloaderConfig struct {
	BinaryPath string        `yaml:"binary_path" envconfig:"BINARY_PATH"`
	Timeout    time.Duration `yaml:"timeout" envconfig:"TIMEOUT"`
	OutputBase string        `yaml:"output_base" envconfig:"OUTPUT_BASE"`
	ExtraArgs  []string      `yaml:"extra_args" envconfig:"EXTRA_ARGS"`
}

type TracksConfig struct {
	PreferredLanguages []string `yaml:"preferred_languages" envconfig:"PREFERRED_LANGUAGES"`
}

type PathsConfig struct {
	Temp string `yaml:"temp" envconfig:"TEMP"`
}

type LoggingConfig struct {
	Level  string `yaml:"level" envconfig:"LEVEL"`
	Format string `yaml:"format" envconfig:"FORMAT"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent" envconfig:"MAX_CONCURRENT"`
}

// Load reads the YAML file at path, applies environment overrides and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return parse(data)
}

// LoadOrDefault behaves like Load but starts from an empty configuration
// when the file does not exist.
func LoadOrDefault(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("read config: %w", err)
		}
		data = nil
	}
	return parse(data)
}

func parse(data []byte) (*Config, error) {
	var cfg Config
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("apply environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &cfg, nil
}

// Validate checks the configuration and fills in defaults for unset fields.
func (c *Config) Validate() error {
	if c.Performance.MaxConcurrent < 0 {
		return fmt.Errorf("performance.max_concurrent must not be negative")
	}
	if c.Downloader.Timeout < 0 {
		return fmt.Errorf("downloader.timeout must not be negative")
	}
	if c.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("server.shutdown_timeout must not be negative")
	}
	if strings.ContainsAny(c.Downloader.OutputBase, `/\%`) {
		return fmt.Errorf("downloader.output_base must be a bare file name")
	}
	switch strings.ToLower(c.Logging.Format) {
	case "", "auto", "text", "json":
	default:
		return fmt.Errorf("logging.format must be one of auto, text, json")
	}

	langs := make([]string, 0, len(c.Tracks.PreferredLanguages))
	for _, raw := range c.Tracks.PreferredLanguages {
		code := strings.TrimSpace(raw)
		if code == "" {
			continue
		}
		if _, err := language.Parse(code); err != nil {
			return fmt.Errorf("tracks.preferred_languages: %q: %w", code, err)
		}
		langs = append(langs, code)
	}
	c.Tracks.PreferredLanguages = langs

	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10 * time.Second
	}
	if c.Downloader.BinaryPath == "" {
		c.Downloader.BinaryPath = "yt-dlp"
	}
	if c.Downloader.Timeout == 0 {
		c.Downloader.Timeout = 2 * time.Minute
	}
	if c.Downloader.OutputBase == "" {
		c.Downloader.OutputBase = "captions"
	}
	if len(c.Tracks.PreferredLanguages) == 0 {
		c.Tracks.PreferredLanguages = []string{"en"}
	}
	if c.Paths.Temp == "" {
		c.Paths.Temp = "data/temp"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "auto"
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 4
	}

	return nil
}
