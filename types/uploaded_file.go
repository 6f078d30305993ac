package types

import "mime/multipart"

// UploadedFile is the validated photo the image validation middleware leaves
// on the request context for the upload handler.
type UploadedFile struct {
	File         multipart.File
	OriginalName string
	ContentType  string
	Extension    string
	Size         int64
}
