package tasks

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"dogcommunity_api/notifications"
	"dogcommunity_api/store"
	"dogcommunity_api/tools"
	"dogcommunity_api/types"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"

	"cloud.google.com/go/firestore"
	"cloud.google.com/go/logging"
	gcs "cloud.google.com/go/storage"
	"firebase.google.com/go/messaging"
	"github.com/disintegration/imaging"
	"github.com/gin-gonic/gin"
)

// Longest edge of the optimized display copy.
const displayMaxDimension = 1600

// PhotoProcessingTaskHandler runs the optimization job Cloud Tasks delivers
// after an upload: correct EXIF orientation, run SafeSearch moderation,
// resize, re-encode as JPEG, swap the photo document onto the display copy
// and drop the original. Moderation rejects delete the photo entirely.
func PhotoProcessingTaskHandler(logger *logging.Logger, messageClient *messaging.Client, db *firestore.Client, storage *gcs.Client, photos store.PhotoStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			tools.LogError(logger, c, err)
			return
		}

		var job types.PhotoProcessingJob
		if err := json.Unmarshal(body, &job); err != nil {
			tools.LogError(logger, c, err)
			return
		}

		img, err := tools.GetImageFromStorage(c, job.StoragePath, storage)
		if err != nil {
			tools.LogInternalError(logger, c, err)
			return
		}

		img = tools.CorrectImageOrientation(img, job.Orientation)

		unsafe, category, err := tools.IsPhotoUnsafe(c, img)
		if err != nil {
			tools.LogInternalError(logger, c, err)
			return
		}
		if unsafe {
			logger.Log(logging.Entry{
				Severity: logging.Warning,
				Payload:  "Photo " + job.PhotoId + " rejected by moderation",
				Labels:   map[string]string{"category": category},
			})

			if err := tools.DeleteObjectFromStorage(c, job.StoragePath, storage); err != nil {
				tools.LogInternalError(logger, c, err)
				return
			}
			if err := photos.Delete(c, job.PhotoId); err != nil {
				tools.LogInternalError(logger, c, err)
				return
			}

			c.JSON(http.StatusOK, gin.H{"rejected": true, "category": category})
			return
		}

		display := imaging.Fit(img, displayMaxDimension, displayMaxDimension, imaging.Lanczos)
		width, height := tools.GetImageDimensions(display)

		var buf bytes.Buffer
		if err := imaging.Encode(&buf, display, imaging.JPEG, imaging.JPEGQuality(85)); err != nil {
			tools.LogInternalError(logger, c, err)
			return
		}

		displayPath := types.FIREBASE_STORAGE_PHOTOS_FOLDER + job.PhotoId + "_display.jpg"
		url, err := tools.UploadObject(c, storage, displayPath, "image/jpeg", &buf)
		if err != nil {
			tools.LogInternalError(logger, c, err)
			return
		}

		if err := photos.SetProcessed(c, job.PhotoId, url, displayPath, width, height); err != nil {
			tools.LogInternalError(logger, c, err)
			return
		}

		// Document no longer points at the original upload.
		if err := tools.DeleteObjectFromStorage(c, job.StoragePath, storage); err != nil {
			logger.Log(logging.Entry{
				Severity: logging.Warning,
				Payload:  "Failed to delete original upload " + job.StoragePath,
				Labels:   map[string]string{"error": err.Error()},
			})
		}

		if err := notifications.SendPhotoReadyNotification(c, messageClient, db, logger, types.PhotoReadyMessage{
			PhotoId:     job.PhotoId,
			Url:         url,
			StoragePath: displayPath,
		}); err != nil {
			logger.Log(logging.Entry{
				Severity: logging.Warning,
				Payload:  "Photo " + job.PhotoId + " processed but client notification failed",
				Labels:   map[string]string{"error": err.Error()},
			})
		}

		c.JSON(http.StatusOK, gin.H{"processed": true})
	}
}
