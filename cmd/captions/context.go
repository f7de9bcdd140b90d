package main

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"github.com/joho/godotenv"

	"github.com/nguyentantai21042004/autocaptions/internal/config"
	"github.com/nguyentantai21042004/autocaptions/internal/logger"
)

type commandContext struct {
	configFlag *string
	envFlag    *string

	// explicitConfig is set when --config was given, making a missing file an error.
	explicitConfig bool

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag, envFlag *string) *commandContext {
	return &commandContext{
		configFlag: configFlag,
		envFlag:    envFlag,
	}
}

// loadEnvFile populates the process environment from the dotenv file.
// Variables already set win, and a missing file is ignored.
func (c *commandContext) loadEnvFile() error {
	path := strings.TrimSpace(*c.envFlag)
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		path := c.configPath()
		var (
			cfg *config.Config
			err error
		)
		if c.explicitConfig {
			cfg, err = config.Load(path)
		} else {
			cfg, err = config.LoadOrDefault(path)
		}
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) configPath() string {
	path := strings.TrimSpace(*c.configFlag)
	if path == "" {
		return defaultConfigPath
	}
	return path
}

func (c *commandContext) newLogger() (logger.Logger, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return logger.New(cfg.Logging.Level, cfg.Logging.Format), nil
}
