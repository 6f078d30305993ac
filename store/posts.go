// Package store dispatches widget mutations to the remote document and file
// stores. Handlers depend on the interfaces here, never on a process-wide
// client.
package store

import (
	"context"
	"fmt"

	"dogcommunity_api/tools"
	"dogcommunity_api/types"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// PostStore is the mutation surface of the posts collection.
type PostStore interface {
	// Submit writes a new post and returns its store-assigned id. CreatedAt
	// is server-assigned; the caller's value is ignored.
	Submit(ctx context.Context, post types.Post) (string, error)
	// ToggleLike flips the device's like on a post and reports whether the
	// post ends up liked by it.
	ToggleLike(ctx context.Context, postId, deviceId string) (bool, error)
	// AddComment appends a comment to the post's comment list.
	AddComment(ctx context.Context, postId string, comment types.Comment) error
	// Get fetches a single post, or nil when it does not exist.
	Get(ctx context.Context, postId string) (*types.Post, error)
}

type firestorePostStore struct {
	client *firestore.Client
}

func NewPostStore(client *firestore.Client) PostStore {
	return &firestorePostStore{client: client}
}

func (s *firestorePostStore) Submit(ctx context.Context, post types.Post) (string, error) {
	return tools.AddFirestoreDocument(ctx, s.client, types.FIREBASE_POSTS_COLLECTION, map[string]interface{}{
		types.FIREBASE_POSTS_FIELDS_TITLE:       post.Title,
		types.FIREBASE_POSTS_FIELDS_CONTENT:     post.Content,
		types.FIREBASE_POSTS_FIELDS_TOPIC:       post.Topic,
		types.FIREBASE_POSTS_FIELDS_AUTHOR_NAME: post.AuthorName,
		types.FIREBASE_POSTS_FIELDS_CREATED_AT:  firestore.ServerTimestamp,
		types.FIREBASE_POSTS_FIELDS_LIKES:       0,
		types.FIREBASE_POSTS_FIELDS_LIKED_BY:    []string{},
		types.FIREBASE_POSTS_FIELDS_COMMENTS:    []types.Comment{},
	})
}

// ToggleLike reads and rewrites the counter inside a transaction so that
// concurrent toggles from different devices cannot lose updates against each
// other. The likedBy membership itself still goes through the store's atomic
// array union/remove.
func (s *firestorePostStore) ToggleLike(ctx context.Context, postId, deviceId string) (bool, error) {
	docRef := s.client.Collection(types.FIREBASE_POSTS_COLLECTION).Doc(postId)

	var liked bool
	err := s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(docRef)
		if err != nil {
			return err
		}

		data := doc.Data()
		likes := intField(data, types.FIREBASE_POSTS_FIELDS_LIKES)
		likedBy := stringSliceField(data, types.FIREBASE_POSTS_FIELDS_LIKED_BY)

		var newLikes int
		newLikes, liked = NextLikeState(likes, likedBy, deviceId)

		return tx.Update(docRef, likeUpdates(
			types.FIREBASE_POSTS_FIELDS_LIKES,
			types.FIREBASE_POSTS_FIELDS_LIKED_BY,
			newLikes, liked, deviceId,
		))
	})
	if err != nil {
		return false, err
	}

	return liked, nil
}

func (s *firestorePostStore) AddComment(ctx context.Context, postId string, comment types.Comment) error {
	docRef := s.client.Collection(types.FIREBASE_POSTS_COLLECTION).Doc(postId)

	_, err := docRef.Update(ctx, []firestore.Update{
		{
			Path: types.FIREBASE_POSTS_FIELDS_COMMENTS,
			Value: firestore.ArrayUnion(map[string]interface{}{
				types.FIREBASE_COMMENTS_FIELDS_TEXT:    comment.Text,
				types.FIREBASE_COMMENTS_FIELDS_AUTHOR:  comment.AuthorName,
				types.FIREBASE_COMMENTS_FIELDS_CREATED: comment.CreatedAt,
			}),
		},
	})
	if err != nil {
		return fmt.Errorf("adding comment to post %s: %w", postId, err)
	}
	return nil
}

func (s *firestorePostStore) Get(ctx context.Context, postId string) (*types.Post, error) {
	doc, err := s.client.Collection(types.FIREBASE_POSTS_COLLECTION).Doc(postId).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, err
	}

	post := PostFromDoc(doc)
	return &post, nil
}
