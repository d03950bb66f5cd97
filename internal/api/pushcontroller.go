package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type pushRequest struct {
	Action   string `json:"action" binding:"required,oneof=subscribe unsubscribe send test"`
	Endpoint string `json:"endpoint"`
	Title    string `json:"title"`
	Body     string `json:"body"`
}

func (s *Server) registerPushRoutes(r *gin.Engine) {
	r.POST("/push-notifications", s.handlePushNotifications)
}

// handlePushNotifications dispatches on the action field. Every branch
// returns a synthetic id; no subscription or message outlives the request.
func (s *Server) handlePushNotifications(c *gin.Context) {
	var req pushRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	s.logger.Info("push notification request", "action", req.Action)

	switch req.Action {
	case "subscribe":
		c.JSON(http.StatusOK, gin.H{
			"success":        true,
			"subscriptionId": uuid.NewString(),
		})
	case "unsubscribe":
		c.JSON(http.StatusOK, gin.H{
			"success": true,
		})
	case "send":
		c.JSON(http.StatusOK, gin.H{
			"success":        true,
			"notificationId": uuid.NewString(),
			"title":          req.Title,
		})
	case "test":
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"testId":  uuid.NewString(),
		})
	}
}
