package store

import (
	"context"

	"dogcommunity_api/tools"
	"dogcommunity_api/types"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// PhotoStore is the mutation surface of the photos collection. Like fields
// carry the same toggle semantics as posts.
type PhotoStore interface {
	Add(ctx context.Context, photo types.Photo) (string, error)
	ToggleLike(ctx context.Context, photoId, deviceId string) (bool, error)
	Get(ctx context.Context, photoId string) (*types.Photo, error)
	// SetProcessed swaps in the optimized display copy once the processing
	// task has produced it.
	SetProcessed(ctx context.Context, photoId, url, storagePath string, width, height int) error
	Delete(ctx context.Context, photoId string) error
	// ReferencedStoragePaths returns every storage path some photo document
	// still points at, for the orphan sweep.
	ReferencedStoragePaths(ctx context.Context) (map[string]bool, error)
}

type firestorePhotoStore struct {
	client *firestore.Client
}

func NewPhotoStore(client *firestore.Client) PhotoStore {
	return &firestorePhotoStore{client: client}
}

func (s *firestorePhotoStore) Add(ctx context.Context, photo types.Photo) (string, error) {
	caption := photo.Caption
	if caption == "" {
		caption = types.DEFAULT_PHOTO_CAPTION
	}

	return tools.AddFirestoreDocument(ctx, s.client, types.FIREBASE_PHOTOS_COLLECTION, map[string]interface{}{
		types.FIREBASE_PHOTOS_FIELDS_URL:          photo.Url,
		types.FIREBASE_PHOTOS_FIELDS_CAPTION:      caption,
		types.FIREBASE_PHOTOS_FIELDS_AUTHOR_NAME:  photo.AuthorName,
		types.FIREBASE_PHOTOS_FIELDS_CREATED_AT:   firestore.ServerTimestamp,
		types.FIREBASE_PHOTOS_FIELDS_LIKES:        0,
		types.FIREBASE_PHOTOS_FIELDS_LIKED_BY:     []string{},
		types.FIREBASE_PHOTOS_FIELDS_STORAGE_PATH: photo.StoragePath,
		types.FIREBASE_PHOTOS_FIELDS_PROCESSED:    false,
	})
}

func (s *firestorePhotoStore) ToggleLike(ctx context.Context, photoId, deviceId string) (bool, error) {
	docRef := s.client.Collection(types.FIREBASE_PHOTOS_COLLECTION).Doc(photoId)

	var liked bool
	err := s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(docRef)
		if err != nil {
			return err
		}

		data := doc.Data()
		likes := intField(data, types.FIREBASE_PHOTOS_FIELDS_LIKES)
		likedBy := stringSliceField(data, types.FIREBASE_PHOTOS_FIELDS_LIKED_BY)

		var newLikes int
		newLikes, liked = NextLikeState(likes, likedBy, deviceId)

		return tx.Update(docRef, likeUpdates(
			types.FIREBASE_PHOTOS_FIELDS_LIKES,
			types.FIREBASE_PHOTOS_FIELDS_LIKED_BY,
			newLikes, liked, deviceId,
		))
	})
	if err != nil {
		return false, err
	}

	return liked, nil
}

func (s *firestorePhotoStore) Get(ctx context.Context, photoId string) (*types.Photo, error) {
	doc, err := s.client.Collection(types.FIREBASE_PHOTOS_COLLECTION).Doc(photoId).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, err
	}

	photo := PhotoFromDoc(doc)
	return &photo, nil
}

func (s *firestorePhotoStore) SetProcessed(ctx context.Context, photoId, url, storagePath string, width, height int) error {
	return tools.UpdateFirestoreDocument(ctx, s.client, types.FIREBASE_PHOTOS_COLLECTION, photoId, map[string]interface{}{
		types.FIREBASE_PHOTOS_FIELDS_URL:          url,
		types.FIREBASE_PHOTOS_FIELDS_STORAGE_PATH: storagePath,
		types.FIREBASE_PHOTOS_FIELDS_PROCESSED:    true,
		types.FIREBASE_PHOTOS_FIELDS_WIDTH:        width,
		types.FIREBASE_PHOTOS_FIELDS_HEIGHT:       height,
	})
}

func (s *firestorePhotoStore) Delete(ctx context.Context, photoId string) error {
	return tools.DeleteFirestoreDocument(ctx, s.client, types.FIREBASE_PHOTOS_COLLECTION, photoId)
}

func (s *firestorePhotoStore) ReferencedStoragePaths(ctx context.Context) (map[string]bool, error) {
	referenced := make(map[string]bool)

	iter := s.client.Collection(types.FIREBASE_PHOTOS_COLLECTION).Documents(ctx)
	defer iter.Stop()

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}

		if path := stringField(doc.Data(), types.FIREBASE_PHOTOS_FIELDS_STORAGE_PATH); path != "" {
			referenced[path] = true
		}
	}

	return referenced, nil
}
