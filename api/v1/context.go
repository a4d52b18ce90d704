package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// callerIdentity pulls the authenticated user's identity from the gin
// context (set by AuthMiddleware). The bool result is false when the
// request is unauthenticated; the handler should return immediately, the
// 401 has already been written.
func callerIdentity(c *gin.Context) (userID, companyID string, ok bool) {
	userIDValue, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "User not authenticated"})
		return "", "", false
	}
	companyIDValue, exists := c.Get("companyId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "User not authenticated"})
		return "", "", false
	}
	return userIDValue.(string), companyIDValue.(string), true
}
