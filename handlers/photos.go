package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"dogcommunity_api/identity"
	"dogcommunity_api/store"
	"dogcommunity_api/tasks"
	"dogcommunity_api/tools"
	"dogcommunity_api/types"

	cloudtasks "cloud.google.com/go/cloudtasks/apiv2"
	"cloud.google.com/go/logging"
	"github.com/gin-gonic/gin"
)

// PhotoSource serves the current photos snapshot, newest first.
type PhotoSource interface {
	Photos() []types.Photo
}

func GetPhotosHandler(source PhotoSource) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"photos": source.Photos()})
	}
}

// UploadPhotoHandler stores the validated photo in the bucket, creates its
// gallery document, then enqueues the optimization task. Enqueue failures are
// logged only; the unprocessed original still shows in the gallery.
func UploadPhotoHandler(logger *logging.Logger, photos store.PhotoStore, blobs store.BlobStore, tasksClient *cloudtasks.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		authorName := strings.TrimSpace(c.PostForm("authorName"))
		if authorName == "" {
			tools.LogError(logger, c, errors.New("photo author name must not be blank"))
			return
		}

		uploadedValue, exists := c.Get("uploadedPhoto")
		if !exists {
			tools.LogInternalError(logger, c, errors.New("validated photo missing from context"))
			return
		}
		uploaded, ok := uploadedValue.(types.UploadedFile)
		if !ok {
			tools.LogInternalError(logger, c, errors.New("unexpected uploaded photo type in context"))
			return
		}
		defer uploaded.File.Close()

		// Missing or unreadable EXIF falls back to orientation 1 inside the
		// probe; a returned error means the rewind failed and the read
		// offset is unknown, so uploading would store a truncated object.
		orientation, err := tools.TryFindExifOrientation(logger, uploaded.File)
		if err != nil {
			tools.LogInternalError(logger, c, err)
			return
		}

		token, err := tools.GenerateRandomToken()
		if err != nil {
			tools.LogInternalError(logger, c, err)
			return
		}

		objectName := fmt.Sprintf("%s%s_%d_%s",
			types.FIREBASE_STORAGE_PHOTOS_FOLDER,
			token,
			time.Now().UnixMilli(),
			tools.SanitizeFilename(uploaded.OriginalName),
		)

		url, err := blobs.Upload(c, objectName, uploaded.ContentType, uploaded.File)
		if err != nil {
			tools.LogInternalError(logger, c, err)
			return
		}

		photoId, err := photos.Add(c, types.Photo{
			Url:         url,
			Caption:     strings.TrimSpace(c.PostForm("caption")),
			AuthorName:  authorName,
			StoragePath: objectName,
		})
		if err != nil {
			tools.LogInternalError(logger, c, err)
			return
		}

		if _, err := tasks.CreatePhotoProcessingTask(c, tasksClient, logger, types.PhotoProcessingJob{
			PhotoId:     photoId,
			StoragePath: objectName,
			ContentType: uploaded.ContentType,
			Orientation: orientation,
		}); err != nil {
			logger.Log(logging.Entry{
				Severity: logging.Warning,
				Payload:  "Photo " + photoId + " uploaded but processing task enqueue failed",
				Labels:   map[string]string{"error": err.Error()},
			})
		}

		c.JSON(http.StatusCreated, gin.H{
			"id":  photoId,
			"url": url,
		})
	}
}

func TogglePhotoLikeHandler(logger *logging.Logger, photos store.PhotoStore, ids *identity.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		photoId := c.Param("id")

		var req types.ToggleLikeRequest
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			tools.LogError(logger, c, err)
			return
		}

		deviceId := req.DeviceId
		if deviceId == "" {
			var err error
			deviceId, err = ids.GetOrCreateDeviceID()
			if err != nil {
				tools.LogInternalError(logger, c, err)
				return
			}
		}

		liked, err := photos.ToggleLike(c, photoId, deviceId)
		if err != nil {
			tools.LogInternalError(logger, c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"liked": liked, "deviceId": deviceId})
	}
}

// DeleteOrphanPhotosHandler removes bucket objects no photo document points
// at anymore, left behind by interrupted uploads and moderation deletes.
func DeleteOrphanPhotosHandler(logger *logging.Logger, photos store.PhotoStore, blobs store.BlobStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		referenced, err := photos.ReferencedStoragePaths(c)
		if err != nil {
			tools.LogInternalError(logger, c, err)
			return
		}

		objects, err := blobs.ListPrefix(c, types.FIREBASE_STORAGE_PHOTOS_FOLDER)
		if err != nil {
			tools.LogInternalError(logger, c, err)
			return
		}

		deleted := []string{}
		for _, object := range objects {
			if referenced[object] {
				continue
			}
			if err := blobs.Delete(c, object); err != nil {
				logger.Log(logging.Entry{
					Severity: logging.Warning,
					Payload:  "Failed to delete orphan photo object " + object,
					Labels:   map[string]string{"error": err.Error()},
				})
				continue
			}
			deleted = append(deleted, object)
		}

		c.JSON(http.StatusOK, gin.H{"deleted": deleted})
	}
}
