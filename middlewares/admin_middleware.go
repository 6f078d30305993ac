package middlewares

import (
	"net/http"

	"cloud.google.com/go/logging"
	"firebase.google.com/go/auth"
	"github.com/gin-gonic/gin"
)

// AdminAuthMiddleware gates the maintenance routes. It expects AuthMiddleware
// to have run first and stored the decoded token on the context.
func AdminAuthMiddleware(logger *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if user, exists := c.Get("user"); exists {
			decodedToken, ok := user.(*auth.Token)
			if !ok {
				logger.Log(logging.Entry{
					Severity: logging.Error,
					Payload:  "Failed to cast the user to *auth.Token",
				})

				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Unexpected error occurred"})
				return
			}

			if admin, ok := decodedToken.Claims["admin"].(bool); ok && admin {
				c.Next()
				return
			}
		}

		logger.Log(logging.Entry{
			Severity: logging.Error,
			Payload:  "You must be an admin to perform this action",
		})
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "You must be an admin to perform this action"})
	}
}
