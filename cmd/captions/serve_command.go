package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/autocaptions/internal/deps"
	"github.com/nguyentantai21042004/autocaptions/internal/httpapi"
	"github.com/nguyentantai21042004/autocaptions/internal/scratch"
	"github.com/nguyentantai21042004/autocaptions/internal/watcher"
	"github.com/nguyentantai21042004/autocaptions/pkg/executor"
)

func newServeCommand(ctx *commandContext) *cobra.Command {
	var addrFlag string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the caption HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if addrFlag != "" {
				cfg.Server.Addr = addrFlag
			}
			log, err := ctx.newLogger()
			if err != nil {
				return err
			}

			runCtx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			log.Info(runCtx, "Caption service starting (%s/%s, max concurrent downloads: %d)",
				runtime.GOOS, runtime.GOARCH, cfg.Performance.MaxConcurrent)

			for _, status := range deps.CheckBinaries([]deps.Requirement{deps.Downloader(cfg.Downloader.BinaryPath)}) {
				if !status.Available {
					log.Warn(runCtx, "%s unavailable: %s", status.Name, status.Detail)
				}
			}

			s, err := scratch.New(cfg.Paths.Temp, scratch.Options{Exclusive: true}, log)
			if err != nil {
				if errors.Is(err, scratch.ErrLocked) {
					return fmt.Errorf("another server is using %s: %w", cfg.Paths.Temp, err)
				}
				return err
			}
			defer s.Close()

			if _, err := s.Purge(runCtx); err != nil {
				log.Warn(runCtx, "Failed to purge stale scratch entries: %v", err)
			}

			if cfg.Logging.Level != "debug" {
				gin.SetMode(gin.ReleaseMode)
			}
			proc := newProcessor(cfg, executor.New(), s, log)
			srv := httpapi.New(cfg, proc, log)

			if path := ctx.configPath(); fileExists(path) {
				w, err := watcher.New(path, watcher.LogLevelReloader(log), log)
				if err != nil {
					log.Warn(runCtx, "Config hot reload disabled: %v", err)
				} else {
					defer w.Stop()
					go func() {
						if err := w.Start(runCtx); err != nil && !errors.Is(err, context.Canceled) {
							log.Error(runCtx, "Config watcher error: %v", err)
						}
					}()
				}
			}

			if err := srv.Run(runCtx); err != nil {
				return err
			}
			log.Info(context.Background(), "Caption service stopped")
			return nil
		},
	}

	cmd.Flags().StringVar(&addrFlag, "addr", "", "Listen address (overrides server.addr)")
	return cmd
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
