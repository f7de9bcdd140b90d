package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *implServer) routes() *gin.Engine {
	r := gin.New()
	r.Use(s.requestID(), s.accessLog(), gin.CustomRecovery(s.handlePanic))

	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, "Hello, World!") })
	r.GET("/about", func(c *gin.Context) { c.String(http.StatusOK, "About") })
	r.GET("/healthz", s.health)

	api := r.Group("/api")
	api.GET("/getCaptions", s.getCaptions)

	return r
}

func (s *implServer) Handler() http.Handler {
	return s.engine
}
