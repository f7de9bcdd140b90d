package httpapi

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/nguyentantai21042004/autocaptions/internal/captions"
	"github.com/nguyentantai21042004/autocaptions/internal/deps"
)

// getCaptions handles GET /api/getCaptions?url=<videoUrl>.
func (s *implServer) getCaptions(c *gin.Context) {
	ctx := c.Request.Context()

	videoURL := strings.TrimSpace(c.Query("url"))
	if videoURL == "" {
		s.fail(c, captions.E(captions.KindInvalidRequest, "get captions", captions.ErrNoURL))
		return
	}

	cues, err := s.processor.Process(ctx, videoURL)
	if err != nil {
		s.fail(c, err)
		return
	}
	if len(cues) == 0 {
		s.fail(c, captions.E(captions.KindNotFound, "get captions", captions.ErrEmptyCaptions))
		return
	}

	c.JSON(http.StatusOK, gin.H{captionsField: cues})
}

func (s *implServer) fail(c *gin.Context, err error) {
	status, message := StatusFor(err)
	ctx := c.Request.Context()
	if status >= http.StatusInternalServerError {
		s.logger.Error(ctx, "Caption request failed: %v", err)
	} else {
		s.logger.Warn(ctx, "Caption request failed (%s): %v", captions.KindOf(err), err)
	}
	c.JSON(status, gin.H{errorField: message})
}

func (s *implServer) health(c *gin.Context) {
	statuses := deps.CheckBinaries([]deps.Requirement{deps.Downloader(s.downloader)})
	ready := deps.Ready(statuses)

	status := http.StatusOK
	state := "ok"
	if !ready {
		status = http.StatusServiceUnavailable
		state = "degraded"
	}
	c.JSON(status, gin.H{"status": state, "downloader": ready})
}
