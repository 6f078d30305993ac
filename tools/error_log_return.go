package tools

import (
	"net/http"

	"cloud.google.com/go/logging"
	"github.com/gin-gonic/gin"
)

// LogError reports a request failure to Cloud Logging and answers the client
// with a 400. Used for validation and malformed-input failures. A nil logger
// skips the Cloud Logging write.
func LogError(logger *logging.Logger, c *gin.Context, err error) {
	logErrorStatus(logger, c, err, http.StatusBadRequest)
}

// LogInternalError is LogError for failures of the remote stores themselves.
func LogInternalError(logger *logging.Logger, c *gin.Context, err error) {
	logErrorStatus(logger, c, err, http.StatusInternalServerError)
}

func logErrorStatus(logger *logging.Logger, c *gin.Context, err error, status int) {
	if logger == nil {
		c.JSON(status, gin.H{
			"error": err.Error(),
		})
		return
	}

	logger.Log(logging.Entry{
		Severity: logging.Error,
		Payload:  err.Error(),
		Labels:   map[string]string{"status": "error"},
	})

	c.JSON(status, gin.H{
		"error": err.Error(),
	})
}
