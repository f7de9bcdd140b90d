package httpapi

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nguyentantai21042004/autocaptions/internal/config"
	"github.com/nguyentantai21042004/autocaptions/internal/logger"
	"github.com/nguyentantai21042004/autocaptions/internal/processor"
)

type implServer struct {
	addr            string
	shutdownTimeout time.Duration
	downloader      string
	processor       processor.Processor
	logger          logger.Logger
	engine          *gin.Engine
}

// New creates a Server. Call gin.SetMode before New to pick the gin mode.
func New(cfg *config.Config, proc processor.Processor, log logger.Logger) Server {
	s := &implServer{
		addr:            cfg.Server.Addr,
		shutdownTimeout: cfg.Server.ShutdownTimeout,
		downloader:      cfg.Downloader.BinaryPath,
		processor:       proc,
		logger:          log,
	}
	s.engine = s.routes()
	return s
}
