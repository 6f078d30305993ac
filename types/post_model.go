package types

import "time"

// Comment is one entry of a post's append-only comment list. CreatedAt is a
// client-generated RFC3339 string, not a server timestamp.
type Comment struct {
	Text       string `json:"text"`
	AuthorName string `json:"authorName"`
	CreatedAt  string `json:"createdAt"`
}

// Post mirrors one document of the posts collection. CreatedAt stays zero
// until the server-assigned timestamp comes back on the subscription.
type Post struct {
	Id         string    `json:"id"`
	Title      string    `json:"title,omitempty"`
	Content    string    `json:"content"`
	Topic      string    `json:"topic"`
	AuthorName string    `json:"authorName"`
	CreatedAt  time.Time `json:"createdAt"`
	Likes      int       `json:"likes"`
	LikedBy    []string  `json:"likedBy"`
	Comments   []Comment `json:"comments"`
}

type SubmitPostRequest struct {
	Title      string `json:"title"`
	Content    string `json:"content" validate:"required"`
	Topic      string `json:"topic"`
	AuthorName string `json:"authorName"`
}

type AddCommentRequest struct {
	Text       string `json:"text" validate:"required"`
	AuthorName string `json:"authorName"`
}

type ToggleLikeRequest struct {
	DeviceId string `json:"deviceId"`
}

// SharePayload is what the widget feeds into the native share sheet, or
// copies to the clipboard when the share sheet is unavailable.
type SharePayload struct {
	Title string `json:"title"`
	Text  string `json:"text"`
	Url   string `json:"url"`
}
