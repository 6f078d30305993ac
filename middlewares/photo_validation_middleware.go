package middlewares

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"

	"dogcommunity_api/types"

	"cloud.google.com/go/logging"
	"github.com/gin-gonic/gin"
)

const maxPhotoSize = 10 * 1024 * 1024

// PhotoValidationMiddleware checks the "photo" multipart file before the
// upload handler runs: image content types only, 10MB cap. The validated file
// lands on the context under "uploadedPhoto" with its pointer rewound.
func PhotoValidationMiddleware(logger *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		fileHeader, err := c.FormFile("photo")
		if err != nil {
			logger.Log(logging.Entry{
				Severity: logging.Error,
				Payload:  "No photo file received: " + err.Error(),
			})

			c.JSON(http.StatusBadRequest, gin.H{"error": "no photo file received"})
			c.Abort()
			return
		}

		uploaded, err := validatePhotoFile(fileHeader)
		if err != nil {
			logger.Log(logging.Entry{
				Severity: logging.Error,
				Payload:  "Photo validation failed: " + err.Error(),
			})

			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			c.Abort()
			return
		}

		c.Set("uploadedPhoto", uploaded)
		c.Next()
	}
}

func validatePhotoFile(fileHeader *multipart.FileHeader) (types.UploadedFile, error) {
	if fileHeader.Size > maxPhotoSize {
		return types.UploadedFile{}, fmt.Errorf("file too large: maximum size 10MB")
	}

	f, err := fileHeader.Open()
	if err != nil {
		return types.UploadedFile{}, fmt.Errorf("error opening file: %v", err)
	}

	// Only the first 512 bytes matter for content type detection.
	buf := make([]byte, 512)
	n, err := f.Read(buf)
	if err != nil && err != io.EOF {
		f.Close()
		return types.UploadedFile{}, fmt.Errorf("error reading file: %v", err)
	}

	contentType := http.DetectContentType(buf[:n])
	switch contentType {
	case "image/jpeg", "image/png", "image/gif", "image/webp":
	default:
		f.Close()
		return types.UploadedFile{}, fmt.Errorf("unsupported file type: %v", contentType)
	}

	if _, err = f.Seek(0, 0); err != nil {
		f.Close()
		return types.UploadedFile{}, fmt.Errorf("error seeking file: %v", err)
	}

	return types.UploadedFile{
		File:         f,
		OriginalName: fileHeader.Filename,
		ContentType:  contentType,
		Extension:    filepath.Ext(fileHeader.Filename),
		Size:         fileHeader.Size,
	}, nil
}
