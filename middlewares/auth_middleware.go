package middlewares

import (
	"net/http"
	"strings"

	"cloud.google.com/go/logging"
	"firebase.google.com/go/auth"
	"github.com/gin-gonic/gin"
)

// AuthMiddleware verifies the Firebase ID token on mutating routes. The
// widget runs as an anonymous-auth client, so any valid token passes. With
// authDisabled set (local development) the check is skipped entirely.
func AuthMiddleware(logger *logging.Logger, authClient *auth.Client, authDisabled bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if authDisabled {
			c.Next()
			return
		}

		idToken := extractToken(c)
		if idToken == "" {
			logger.Log(logging.Entry{
				Severity: logging.Error,
				Payload:  "Unauthorized - No ID token provided",
			})

			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized - No ID token provided"})
			return
		}

		decodedToken, err := authClient.VerifyIDToken(c.Request.Context(), idToken)
		if err != nil {
			logger.Log(logging.Entry{
				Severity: logging.Error,
				Payload:  "Unauthorized - Invalid ID token: " + err.Error(),
			})

			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized - Invalid ID token, " + err.Error()})
			return
		}

		c.Set("user", decodedToken)
		c.Next()
	}
}

// Extracts token from the Authorization header or the hosting session cookie.
func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	if cookie, err := c.Cookie("__session"); err == nil {
		return cookie
	}
	return ""
}
