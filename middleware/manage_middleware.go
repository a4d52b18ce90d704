package middleware

import (
	"net/http"

	"github.com/buildledger/models"
	"github.com/gin-gonic/gin"
)

// ManageMiddleware ensures the caller holds a role allowed to create,
// update or delete resources. Must run after AuthMiddleware.
func ManageMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{
				"status":  "error",
				"message": "Authentication required",
			})
			c.Abort()
			return
		}

		roleStr, ok := role.(string)
		if !ok || !models.Role(roleStr).CanManage() {
			c.JSON(http.StatusForbidden, gin.H{
				"status":  "error",
				"message": "Owner or admin privileges required",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
