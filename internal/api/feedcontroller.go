package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"news_reader/internal/domain"
)

func (s *Server) registerFeedRoutes(r *gin.Engine) {
	r.GET("/api/feed", s.handleFeed)
	r.GET("/api/search", s.handleSearch)
	r.GET("/api/saved", s.handleSaved)
	r.POST("/api/articles/:id/bookmark", s.handleToggleBookmark)
}

// handleFeed returns the featured/regular split for a category.
// GET /api/feed?category=sport (defaults to home)
func (s *Server) handleFeed(c *gin.Context) {
	category := c.DefaultQuery("category", domain.CategoryHome)
	c.JSON(http.StatusOK, s.feed.Browse(category))
}

// handleSearch returns at most the configured cap of substring matches.
// GET /api/search?q=rugby
func (s *Server) handleSearch(c *gin.Context) {
	c.JSON(http.StatusOK, s.feed.Search(c.Query("q")))
}

// handleSaved returns the bookmarked subset in canonical order.
// GET /api/saved
func (s *Server) handleSaved(c *gin.Context) {
	c.JSON(http.StatusOK, s.feed.Saved())
}

// handleToggleBookmark flips the bookmark flag. A lookup miss is a silent
// no-op, so the response is 204 either way.
// POST /api/articles/:id/bookmark
func (s *Server) handleToggleBookmark(c *gin.Context) {
	s.feed.ToggleBookmark(c.Param("id"))
	c.Status(http.StatusNoContent)
}
