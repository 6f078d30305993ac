package types

// PhotoReadyMessage is pushed over FCM once the processing task has swapped
// in the optimized display copy of an uploaded photo.
type PhotoReadyMessage struct {
	PhotoId     string `json:"photoId"`
	Url         string `json:"url"`
	StoragePath string `json:"storagePath"`
}
