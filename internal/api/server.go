// Package api exposes the reader's view models over HTTP, plus the
// contact-form and push-notification endpoints. Nothing here touches
// article state beyond the bookmark toggle.
package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"news_reader/internal/service"
)

type Server struct {
	feed   *service.FeedService
	logger *slog.Logger
}

func NewServer(feed *service.FeedService, logger *slog.Logger) *Server {
	return &Server{feed: feed, logger: logger}
}

// Router constructs a Gin engine with registered routes.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/healthz", s.handleHealth)

	s.registerFeedRoutes(r)
	s.registerContactRoutes(r)
	s.registerPushRoutes(r)

	return r
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
