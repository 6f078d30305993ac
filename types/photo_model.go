package types

import "time"

// Photo mirrors one document of the photos collection. Url points at the
// Firebase Storage download URL; after the processing task runs it is swapped
// for the optimized display copy and Processed flips to true.
type Photo struct {
	Id          string    `json:"id"`
	Url         string    `json:"url"`
	Caption     string    `json:"caption"`
	AuthorName  string    `json:"authorName"`
	CreatedAt   time.Time `json:"createdAt"`
	Likes       int       `json:"likes"`
	LikedBy     []string  `json:"likedBy"`
	StoragePath string    `json:"storagePath"`
	Processed   bool      `json:"processed"`
	Width       int       `json:"width,omitempty"`
	Height      int       `json:"height,omitempty"`
}

// PhotoProcessingJob is the Cloud Tasks payload handed to the processing
// handler after an upload lands.
type PhotoProcessingJob struct {
	PhotoId     string `json:"photoId"`
	StoragePath string `json:"storagePath"`
	ContentType string `json:"contentType"`
	Orientation int    `json:"orientation"`
}
