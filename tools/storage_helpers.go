package tools

import (
	"context"
	"fmt"
	"image"
	"io"
	"net/url"
	"strings"

	"dogcommunity_api/types"

	gcs "cloud.google.com/go/storage"
	"google.golang.org/api/iterator"
)

// UploadObject writes r to the bucket under objectName, mints a Firebase
// download token for it and returns the public download URL.
func UploadObject(c context.Context, storage *gcs.Client, objectName, contentType string, r io.Reader) (string, error) {
	bucket := types.FIREBASE_STORAGE_BUCKET
	obj := storage.Bucket(bucket).Object(objectName)

	sw := obj.NewWriter(c)
	sw.ContentType = contentType

	if _, err := io.Copy(sw, r); err != nil {
		return "", err
	}
	if err := sw.Close(); err != nil {
		return "", err
	}

	downloadToken, err := GenerateRandomToken()
	if err != nil {
		return "", err
	}

	if err := UpdateFirebaseStorageDownloadToken(c, obj, downloadToken); err != nil {
		return "", err
	}

	return DownloadURL(bucket, objectName, downloadToken), nil
}

// UpdateFirebaseStorageDownloadToken attaches the download token the Firebase
// SDK looks for when serving the object over the public media endpoint.
func UpdateFirebaseStorageDownloadToken(ctx context.Context, obj *gcs.ObjectHandle, token string) error {
	newMetadata := map[string]string{
		"firebaseStorageDownloadTokens": token,
	}

	_, err := obj.Update(ctx, gcs.ObjectAttrsToUpdate{
		Metadata: newMetadata,
	})
	return err
}

func DownloadURL(bucket, objectName, token string) string {
	return "https://firebasestorage.googleapis.com/v0/b/" + bucket + "/o/" + url.PathEscape(objectName) + "?alt=media&token=" + token
}

func DeleteObjectFromStorage(c context.Context, path string, storage *gcs.Client) error {
	obj := storage.Bucket(types.FIREBASE_STORAGE_BUCKET).Object(path)
	if err := obj.Delete(c); err != nil {
		return err
	}

	return nil
}

func ObjectExistsInStorage(c context.Context, path string, storage *gcs.Client) (bool, error) {
	obj := storage.Bucket(types.FIREBASE_STORAGE_BUCKET).Object(path)

	_, err := obj.Attrs(c)
	if err == gcs.ErrObjectNotExist {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("object.Attrs: %v", err)
	}

	return true, nil
}

// ListObjectsWithPrefix returns the names of every object under prefix.
func ListObjectsWithPrefix(c context.Context, storage *gcs.Client, prefix string) ([]string, error) {
	bucketHandle := storage.Bucket(types.FIREBASE_STORAGE_BUCKET)

	var names []string
	it := bucketHandle.Objects(c, &gcs.Query{Prefix: prefix})
	for {
		attrs, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		names = append(names, attrs.Name)
	}

	return names, nil
}

// GetImageFromStorage downloads and decodes an image object.
func GetImageFromStorage(c context.Context, filePath string, storage *gcs.Client) (image.Image, error) {
	rc, err := storage.Bucket(types.FIREBASE_STORAGE_BUCKET).Object(filePath).NewReader(c)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	img, _, err := image.Decode(rc)
	if err != nil {
		return nil, err
	}

	return img, nil
}

// SanitizeFilename keeps letters, digits, dots, dashes and underscores of an
// uploaded filename and replaces everything else with a dash, so the original
// name can be embedded into a storage object name.
func SanitizeFilename(name string) string {
	sanitized := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.', r == '-', r == '_':
			return r
		default:
			return '-'
		}
	}, name)

	if sanitized == "" || strings.Trim(sanitized, "-._") == "" {
		return "photo"
	}
	return sanitized
}
