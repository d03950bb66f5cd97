package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type contactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required"`
}

func (s *Server) registerContactRoutes(r *gin.Engine) {
	r.POST("/contact-form", s.handleContactForm)
}

// handleContactForm validates the submission and acknowledges it with a
// synthetic id. Nothing is persisted or delivered.
func (s *Server) handleContactForm(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	submissionID := uuid.NewString()
	s.logger.Info("contact form submitted", "submission_id", submissionID, "name", req.Name)

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"submissionId": submissionID,
		"message":      "Thanks for reaching out. We'll get back to you soon.",
	})
}
