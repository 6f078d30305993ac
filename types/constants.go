package types

const (
	FIREBASE_PROJECT_ID     = "doggy-forum"
	FIREBASE_LOCATION_ID    = "us-central1"
	FIREBASE_STORAGE_BUCKET = "doggy-forum.appspot.com"

	FIREBASE_STORAGE_PHOTOS_FOLDER = "photos/"

	CLOUD_PHOTOS_QUEUE_ID    = "photo-processing"
	CLOUD_RUN_SERVICE_URL    = "https://dogcommunity-api-ew.a.run.app"
	CLOUD_TASKS_HANDLER_PATH = "/tasks/photoProcessing"

	FIREBASE_POSTS_COLLECTION          = "posts"
	FIREBASE_POSTS_FIELDS_TITLE        = "title"
	FIREBASE_POSTS_FIELDS_CONTENT      = "content"
	FIREBASE_POSTS_FIELDS_TOPIC        = "topic"
	FIREBASE_POSTS_FIELDS_AUTHOR_NAME  = "authorName"
	FIREBASE_POSTS_FIELDS_CREATED_AT   = "createdAt"
	FIREBASE_POSTS_FIELDS_LIKES        = "likes"
	FIREBASE_POSTS_FIELDS_LIKED_BY     = "likedBy"
	FIREBASE_POSTS_FIELDS_COMMENTS     = "comments"
	FIREBASE_COMMENTS_FIELDS_TEXT      = "text"
	FIREBASE_COMMENTS_FIELDS_AUTHOR    = "authorName"
	FIREBASE_COMMENTS_FIELDS_CREATED   = "createdAt"

	FIREBASE_PHOTOS_COLLECTION          = "photos"
	FIREBASE_PHOTOS_FIELDS_URL          = "url"
	FIREBASE_PHOTOS_FIELDS_CAPTION      = "caption"
	FIREBASE_PHOTOS_FIELDS_AUTHOR_NAME  = "authorName"
	FIREBASE_PHOTOS_FIELDS_CREATED_AT   = "createdAt"
	FIREBASE_PHOTOS_FIELDS_LIKES        = "likes"
	FIREBASE_PHOTOS_FIELDS_LIKED_BY     = "likedBy"
	FIREBASE_PHOTOS_FIELDS_STORAGE_PATH = "storagePath"
	FIREBASE_PHOTOS_FIELDS_PROCESSED    = "processed"
	FIREBASE_PHOTOS_FIELDS_WIDTH        = "width"
	FIREBASE_PHOTOS_FIELDS_HEIGHT       = "height"

	FIREBASE_MESSAGING_TOKEN_COLLECTION = "messagingTokens"
	FIREBASE_MESSAGING_TOKEN_DOCUMENT   = "widget"

	// Caption used when a photo is shared without one.
	DEFAULT_PHOTO_CAPTION = "My furry friend!"
)
