package feed

import (
	"context"
	"sync"

	"dogcommunity_api/store"
	"dogcommunity_api/types"

	"cloud.google.com/go/firestore"
	"cloud.google.com/go/logging"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Mirror keeps an in-memory copy of the posts and photos collections, updated
// from Firestore snapshot listeners. Read handlers serve from the mirror so a
// page load never waits on a collection scan.
type Mirror struct {
	mu     sync.RWMutex
	posts  []types.Post
	photos []types.Photo

	client *firestore.Client
	logger *logging.Logger
}

func NewMirror(client *firestore.Client, logger *logging.Logger) *Mirror {
	return &Mirror{client: client, logger: logger}
}

// Run starts the snapshot listeners. It returns immediately; the listeners
// stop when ctx is cancelled.
func (m *Mirror) Run(ctx context.Context) {
	go m.watchPosts(ctx)
	go m.watchPhotos(ctx)
}

// Posts returns a copy of the mirrored posts, newest first.
func (m *Mirror) Posts() []types.Post {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]types.Post, len(m.posts))
	copy(out, m.posts)
	return out
}

// Photos returns a copy of the mirrored photos, newest first.
func (m *Mirror) Photos() []types.Photo {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]types.Photo, len(m.photos))
	copy(out, m.photos)
	return out
}

func (m *Mirror) setPosts(posts []types.Post) {
	m.mu.Lock()
	m.posts = posts
	m.mu.Unlock()
}

func (m *Mirror) setPhotos(photos []types.Photo) {
	m.mu.Lock()
	m.photos = photos
	m.mu.Unlock()
}

func (m *Mirror) watchPosts(ctx context.Context) {
	snapshots := m.client.Collection(types.FIREBASE_POSTS_COLLECTION).
		OrderBy(types.FIREBASE_POSTS_FIELDS_CREATED_AT, firestore.Desc).
		Snapshots(ctx)
	defer snapshots.Stop()

	for {
		snap, err := snapshots.Next()
		if err != nil {
			if status.Code(err) == codes.Canceled {
				return
			}
			m.logger.Log(logging.Entry{
				Severity: logging.Error,
				Payload:  "Posts snapshot listener failed: " + err.Error(),
			})
			return
		}

		var posts []types.Post
		docs := snap.Documents
		for {
			doc, err := docs.Next()
			if err == iterator.Done {
				break
			}
			if err != nil {
				m.logger.Log(logging.Entry{
					Severity: logging.Error,
					Payload:  "Reading posts snapshot failed: " + err.Error(),
				})
				break
			}
			posts = append(posts, store.PostFromDoc(doc))
		}
		m.setPosts(posts)
	}
}

func (m *Mirror) watchPhotos(ctx context.Context) {
	snapshots := m.client.Collection(types.FIREBASE_PHOTOS_COLLECTION).
		OrderBy(types.FIREBASE_PHOTOS_FIELDS_CREATED_AT, firestore.Desc).
		Snapshots(ctx)
	defer snapshots.Stop()

	for {
		snap, err := snapshots.Next()
		if err != nil {
			if status.Code(err) == codes.Canceled {
				return
			}
			m.logger.Log(logging.Entry{
				Severity: logging.Error,
				Payload:  "Photos snapshot listener failed: " + err.Error(),
			})
			return
		}

		var photos []types.Photo
		docs := snap.Documents
		for {
			doc, err := docs.Next()
			if err == iterator.Done {
				break
			}
			if err != nil {
				m.logger.Log(logging.Entry{
					Severity: logging.Error,
					Payload:  "Reading photos snapshot failed: " + err.Error(),
				})
				break
			}
			photos = append(photos, store.PhotoFromDoc(doc))
		}
		m.setPhotos(photos)
	}
}
