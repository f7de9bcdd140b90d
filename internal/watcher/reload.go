package watcher

import (
	"context"
	"fmt"

	"github.com/nguyentantai21042004/autocaptions/internal/config"
	"github.com/nguyentantai21042004/autocaptions/internal/logger"
)

// LogLevelReloader returns a handler that re-reads the config file and applies
// its logging level. Other settings take effect on restart.
func LogLevelReloader(log logger.Logger) EventHandler {
	return func(ctx context.Context, filePath string) error {
		cfg, err := config.Load(filePath)
		if err != nil {
			return fmt.Errorf("reload config: %w", err)
		}
		log.SetLevel(cfg.Logging.Level)
		log.Info(ctx, "Log level set to %s", cfg.Logging.Level)
		return nil
	}
}
