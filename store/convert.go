package store

import (
	"time"

	"dogcommunity_api/types"

	"cloud.google.com/go/firestore"
)

// PostFromDoc maps a raw posts document onto the wire model. Documents
// written by older widget revisions miss fields (no title, no likedBy), so
// every field tolerates absence.
func PostFromDoc(doc *firestore.DocumentSnapshot) types.Post {
	data := doc.Data()
	return types.Post{
		Id:         doc.Ref.ID,
		Title:      stringField(data, types.FIREBASE_POSTS_FIELDS_TITLE),
		Content:    stringField(data, types.FIREBASE_POSTS_FIELDS_CONTENT),
		Topic:      stringField(data, types.FIREBASE_POSTS_FIELDS_TOPIC),
		AuthorName: stringField(data, types.FIREBASE_POSTS_FIELDS_AUTHOR_NAME),
		CreatedAt:  timeField(data, types.FIREBASE_POSTS_FIELDS_CREATED_AT),
		Likes:      intField(data, types.FIREBASE_POSTS_FIELDS_LIKES),
		LikedBy:    stringSliceField(data, types.FIREBASE_POSTS_FIELDS_LIKED_BY),
		Comments:   commentsField(data, types.FIREBASE_POSTS_FIELDS_COMMENTS),
	}
}

func PhotoFromDoc(doc *firestore.DocumentSnapshot) types.Photo {
	data := doc.Data()
	return types.Photo{
		Id:          doc.Ref.ID,
		Url:         stringField(data, types.FIREBASE_PHOTOS_FIELDS_URL),
		Caption:     stringField(data, types.FIREBASE_PHOTOS_FIELDS_CAPTION),
		AuthorName:  stringField(data, types.FIREBASE_PHOTOS_FIELDS_AUTHOR_NAME),
		CreatedAt:   timeField(data, types.FIREBASE_PHOTOS_FIELDS_CREATED_AT),
		Likes:       intField(data, types.FIREBASE_PHOTOS_FIELDS_LIKES),
		LikedBy:     stringSliceField(data, types.FIREBASE_PHOTOS_FIELDS_LIKED_BY),
		StoragePath: stringField(data, types.FIREBASE_PHOTOS_FIELDS_STORAGE_PATH),
		Processed:   boolField(data, types.FIREBASE_PHOTOS_FIELDS_PROCESSED),
		Width:       intField(data, types.FIREBASE_PHOTOS_FIELDS_WIDTH),
		Height:      intField(data, types.FIREBASE_PHOTOS_FIELDS_HEIGHT),
	}
}

func stringField(data map[string]interface{}, key string) string {
	v, _ := data[key].(string)
	return v
}

func boolField(data map[string]interface{}, key string) bool {
	v, _ := data[key].(bool)
	return v
}

func timeField(data map[string]interface{}, key string) time.Time {
	v, _ := data[key].(time.Time)
	return v
}

func intField(data map[string]interface{}, key string) int {
	switch v := data[key].(type) {
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return 0
	}
}

func stringSliceField(data map[string]interface{}, key string) []string {
	raw, ok := data[key].([]interface{})
	if !ok {
		return []string{}
	}

	result := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			result = append(result, s)
		}
	}
	return result
}

func commentsField(data map[string]interface{}, key string) []types.Comment {
	raw, ok := data[key].([]interface{})
	if !ok {
		return []types.Comment{}
	}

	comments := make([]types.Comment, 0, len(raw))
	for _, v := range raw {
		entry, ok := v.(map[string]interface{})
		if !ok {
			continue
		}
		comments = append(comments, types.Comment{
			Text:       stringField(entry, types.FIREBASE_COMMENTS_FIELDS_TEXT),
			AuthorName: stringField(entry, types.FIREBASE_COMMENTS_FIELDS_AUTHOR),
			CreatedAt:  stringField(entry, types.FIREBASE_COMMENTS_FIELDS_CREATED),
		})
	}
	return comments
}
