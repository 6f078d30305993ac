package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"dogcommunity_api/config"
	"dogcommunity_api/identity"
	"dogcommunity_api/types"

	"github.com/gin-gonic/gin"
)

// fakePostStore records mutations and serves canned posts.
type fakePostStore struct {
	submitted []types.Post
	comments  map[string][]types.Comment
	likes     map[string][]string
	posts     map[string]types.Post
}

func newFakePostStore() *fakePostStore {
	return &fakePostStore{
		comments: map[string][]types.Comment{},
		likes:    map[string][]string{},
		posts:    map[string]types.Post{},
	}
}

func (f *fakePostStore) Submit(ctx context.Context, post types.Post) (string, error) {
	f.submitted = append(f.submitted, post)
	return "post-1", nil
}

func (f *fakePostStore) ToggleLike(ctx context.Context, postId, deviceId string) (bool, error) {
	for i, id := range f.likes[postId] {
		if id == deviceId {
			f.likes[postId] = append(f.likes[postId][:i], f.likes[postId][i+1:]...)
			return false, nil
		}
	}
	f.likes[postId] = append(f.likes[postId], deviceId)
	return true, nil
}

func (f *fakePostStore) AddComment(ctx context.Context, postId string, comment types.Comment) error {
	f.comments[postId] = append(f.comments[postId], comment)
	return nil
}

func (f *fakePostStore) Get(ctx context.Context, postId string) (*types.Post, error) {
	post, ok := f.posts[postId]
	if !ok {
		return nil, nil
	}
	return &post, nil
}

type fixedPosts []types.Post

func (f fixedPosts) Posts() []types.Post { return f }

func newTestIdentity(t *testing.T) *identity.Manager {
	t.Helper()
	ids, err := identity.NewManager(t.TempDir())
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	return ids
}

func postJSON(handler gin.HandlerFunc, path string, body interface{}, params gin.Params) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	raw, _ := json.Marshal(body)
	c.Request = httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = params

	handler(c)
	return w
}

func TestSubmitPostUsesPseudonymAndDefaults(t *testing.T) {
	posts := newFakePostStore()
	ids := newTestIdentity(t)
	handler := SubmitPostHandler(nil, posts, ids, config.WidgetConfig{})

	w := postJSON(handler, "/api/posts", types.SubmitPostRequest{
		Title:   "Recall wins",
		Content: "Finally got a solid recall at the park",
		Topic:   types.TOPIC_TRAINING,
	}, nil)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if len(posts.submitted) != 1 {
		t.Fatalf("expected 1 submitted post, got %d", len(posts.submitted))
	}

	got := posts.submitted[0]
	if got.Topic != types.TOPIC_TRAINING {
		t.Errorf("topic = %q, want %q", got.Topic, types.TOPIC_TRAINING)
	}
	if !regexp.MustCompile(`^[A-Za-z]+[0-9]{1,3}$`).MatchString(got.AuthorName) {
		t.Errorf("author name %q does not look like a generated pseudonym", got.AuthorName)
	}
	if got.Likes != 0 || len(got.LikedBy) != 0 || len(got.Comments) != 0 {
		t.Errorf("new post must start empty, got likes=%d likedBy=%v comments=%v", got.Likes, got.LikedBy, got.Comments)
	}
}

func TestSubmitPostUnknownTopicFallsBackToGeneral(t *testing.T) {
	posts := newFakePostStore()
	handler := SubmitPostHandler(nil, posts, newTestIdentity(t), config.WidgetConfig{})

	w := postJSON(handler, "/api/posts", types.SubmitPostRequest{
		Content: "Where do you all buy harnesses?",
		Topic:   "not-a-topic",
	}, nil)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if posts.submitted[0].Topic != types.TOPIC_GENERAL {
		t.Errorf("topic = %q, want fallback %q", posts.submitted[0].Topic, types.TOPIC_GENERAL)
	}
}

func TestSubmitPostBlankContentRejectedBeforeWrite(t *testing.T) {
	posts := newFakePostStore()
	handler := SubmitPostHandler(nil, posts, newTestIdentity(t), config.WidgetConfig{})

	w := postJSON(handler, "/api/posts", map[string]string{"content": "   "}, nil)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if len(posts.submitted) != 0 {
		t.Fatalf("blank post must not reach the store, got %d writes", len(posts.submitted))
	}
}

func TestSubmitPostTitleRequiredFlag(t *testing.T) {
	posts := newFakePostStore()
	handler := SubmitPostHandler(nil, posts, newTestIdentity(t), config.WidgetConfig{TitleRequired: true})

	w := postJSON(handler, "/api/posts", types.SubmitPostRequest{Content: "No title here"}, nil)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400 when title is required", w.Code)
	}
	if len(posts.submitted) != 0 {
		t.Fatal("post without required title must not reach the store")
	}
}

func TestAddCommentAppendsWithAuthorAndTimestamp(t *testing.T) {
	posts := newFakePostStore()
	handler := AddCommentHandler(nil, posts, newTestIdentity(t))

	w := postJSON(handler, "/api/posts/post-7/comments", types.AddCommentRequest{
		Text:       "Such a good boy!",
		AuthorName: "Sam",
	}, gin.Params{{Key: "id", Value: "post-7"}})

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	comments := posts.comments["post-7"]
	if len(comments) != 1 {
		t.Fatalf("expected 1 comment on post-7, got %d", len(comments))
	}
	last := comments[len(comments)-1]
	if last.Text != "Such a good boy!" || last.AuthorName != "Sam" {
		t.Errorf("comment = %+v", last)
	}
	if last.CreatedAt == "" {
		t.Error("comment missing createdAt timestamp")
	}
}

func TestAddCommentAppendsAfterExistingComments(t *testing.T) {
	posts := newFakePostStore()
	posts.comments["post-7"] = []types.Comment{
		{Text: "First!", AuthorName: "PawsomeParent42", CreatedAt: "2026-08-01T10:00:00Z"},
		{Text: "What breed?", AuthorName: "WoofExpert9", CreatedAt: "2026-08-02T11:30:00Z"},
	}
	handler := AddCommentHandler(nil, posts, newTestIdentity(t))

	w := postJSON(handler, "/api/posts/post-7/comments", types.AddCommentRequest{
		Text:       "Golden retriever, I think",
		AuthorName: "Sam",
	}, gin.Params{{Key: "id", Value: "post-7"}})

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	comments := posts.comments["post-7"]
	if len(comments) != 3 {
		t.Fatalf("expected 3 comments, got %d", len(comments))
	}
	if comments[0].Text != "First!" || comments[1].Text != "What breed?" {
		t.Fatalf("existing comments reordered: %+v", comments)
	}
	last := comments[2]
	if last.Text != "Golden retriever, I think" || last.AuthorName != "Sam" {
		t.Errorf("new comment not appended last, got %+v", last)
	}
}

func TestAddCommentBlankTextRejected(t *testing.T) {
	posts := newFakePostStore()
	handler := AddCommentHandler(nil, posts, newTestIdentity(t))

	w := postJSON(handler, "/api/posts/post-7/comments", map[string]string{"text": "  "}, gin.Params{{Key: "id", Value: "post-7"}})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if len(posts.comments["post-7"]) != 0 {
		t.Fatal("blank comment must not reach the store")
	}
}

func TestToggleLikeFallsBackToLocalDeviceId(t *testing.T) {
	posts := newFakePostStore()
	ids := newTestIdentity(t)
	handler := ToggleLikeHandler(nil, posts, ids)

	w := postJSON(handler, "/api/posts/post-3/like", types.ToggleLikeRequest{}, gin.Params{{Key: "id", Value: "post-3"}})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	deviceId, err := ids.GetOrCreateDeviceID()
	if err != nil {
		t.Fatalf("GetOrCreateDeviceID: %v", err)
	}
	if likes := posts.likes["post-3"]; len(likes) != 1 || likes[0] != deviceId {
		t.Fatalf("expected like recorded under local device id %s, got %v", deviceId, likes)
	}
}

func TestSharePostPayload(t *testing.T) {
	posts := newFakePostStore()
	posts.posts["post-9"] = types.Post{Id: "post-9", Title: "Pumpkin treats"}
	handler := SharePostHandler(nil, posts, "https://doggy-forum.web.app/dog-forum-widget.html")

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/posts/post-9/share", nil)
	c.Params = gin.Params{{Key: "id", Value: "post-9"}}
	handler(c)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var payload types.SharePayload
	if err := json.Unmarshal(w.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decoding payload: %v", err)
	}
	if payload.Text != "Pumpkin treats - DogLovers Forum" {
		t.Errorf("share text = %q", payload.Text)
	}
	if payload.Url != "https://doggy-forum.web.app/dog-forum-widget.html" {
		t.Errorf("share url = %q", payload.Url)
	}
}

func TestSharePostUnknownIdReturns404(t *testing.T) {
	handler := SharePostHandler(nil, newFakePostStore(), "https://example.com")

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/posts/missing/share", nil)
	c.Params = gin.Params{{Key: "id", Value: "missing"}}
	handler(c)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestGetPostsAppliesViewQuery(t *testing.T) {
	source := fixedPosts{
		{Id: "a", Content: "husky pulling", Topic: types.TOPIC_TRAINING},
		{Id: "b", Content: "treat recipe", Topic: types.TOPIC_RECIPES},
	}
	handler := GetPostsHandler(nil, source)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/posts?topic=training", nil)
	handler(c)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var resp struct {
		Posts []types.Post `json:"posts"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(resp.Posts) != 1 || resp.Posts[0].Id != "a" {
		t.Fatalf("expected only the training post, got %+v", resp.Posts)
	}
}
