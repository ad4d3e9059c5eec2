package ui

import (
	"net/http"

	"pulsex/internal/errors"
	"pulsex/ui/middleware"

	"github.com/gin-gonic/gin"
)

// setupMiddleware configures Gin middleware
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.EnsureSession(s.logger))
}

// requireDataset rejects data requests until the table has been loaded
func (s *Server) requireDataset(c *gin.Context) {
	if s.dataset.Table() == nil {
		s.logger.Warn("[requireDataset] %s requested before dataset was loaded", c.Request.URL.Path)
		c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{
			"error": "dataset not loaded",
			"code":  errors.CodeInternalError,
		})
		return
	}
	c.Next()
}
