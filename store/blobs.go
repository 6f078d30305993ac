package store

import (
	"context"
	"io"

	"dogcommunity_api/tools"

	gcs "cloud.google.com/go/storage"
)

// BlobStore is the file-store surface the photo paths need: raw bytes in,
// public download URL out.
type BlobStore interface {
	Upload(ctx context.Context, objectName, contentType string, r io.Reader) (string, error)
	Delete(ctx context.Context, objectName string) error
	ListPrefix(ctx context.Context, prefix string) ([]string, error)
}

type gcsBlobStore struct {
	client *gcs.Client
}

func NewBlobStore(client *gcs.Client) BlobStore {
	return &gcsBlobStore{client: client}
}

func (s *gcsBlobStore) Upload(ctx context.Context, objectName, contentType string, r io.Reader) (string, error) {
	return tools.UploadObject(ctx, s.client, objectName, contentType, r)
}

func (s *gcsBlobStore) Delete(ctx context.Context, objectName string) error {
	return tools.DeleteObjectFromStorage(ctx, objectName, s.client)
}

func (s *gcsBlobStore) ListPrefix(ctx context.Context, prefix string) ([]string, error) {
	return tools.ListObjectsWithPrefix(ctx, s.client, prefix)
}
