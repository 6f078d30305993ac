package handlers

import (
	"net/http"

	"dogcommunity_api/tools"
	"dogcommunity_api/types"

	"cloud.google.com/go/firestore"
	"cloud.google.com/go/logging"
	"github.com/gin-gonic/gin"
)

type registrationTokenRequest struct {
	ClientId string `json:"clientId"`
	Token    string `json:"token" binding:"required"`
}

// SetMessagingRegistrationToken stores the widget's FCM registration token so
// the photo processing task can push completion messages back.
func SetMessagingRegistrationToken(logger *logging.Logger, client *firestore.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req registrationTokenRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			tools.LogError(logger, c, err)
			return
		}

		err := tools.SetFirestoreDocument(c, client, types.FIREBASE_MESSAGING_TOKEN_COLLECTION, types.FIREBASE_MESSAGING_TOKEN_DOCUMENT, map[string]interface{}{
			"clientId": req.ClientId,
			"token":    req.Token,
		})
		if err != nil {
			tools.LogError(logger, c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
