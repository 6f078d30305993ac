package main

import (
	"context"
	"log"

	"dogcommunity_api/config"
	"dogcommunity_api/feed"
	"dogcommunity_api/firebase"
	"dogcommunity_api/handlers"
	"dogcommunity_api/identity"
	"dogcommunity_api/middlewares"
	"dogcommunity_api/store"
	"dogcommunity_api/tasks"
	"dogcommunity_api/types"

	"github.com/gin-gonic/gin"
)

func main() {
	ctx := context.Background()

	cfg := config.Load()

	firebaseApp, err := firebase.InitFirebaseApp(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v\n", err)
	}

	if firebaseApp.Admin == nil {
		log.Fatalf("Failed to initialize Firebase Admin app\n")
	}
	if firebaseApp.DB == nil {
		log.Fatalf("Failed to initialize Firestore client\n")
	}
	if firebaseApp.Storage == nil {
		log.Fatalf("Failed to initialize Google Cloud Storage client\n")
	}
	if firebaseApp.Auth == nil {
		log.Fatalf("Failed to initialize Firebase Auth client\n")
	}
	if firebaseApp.Logger == nil {
		log.Fatalf("Failed to initialize Cloud Logging client\n")
	}
	if firebaseApp.MessageClient == nil {
		log.Fatalf("Failed to initialize Firebase Messaging client\n")
	}
	if firebaseApp.TaskClient == nil {
		log.Fatalf("Failed to initialize Cloud Tasks client\n")
	}

	ids, err := identity.NewManager(cfg.DataDir)
	if err != nil {
		log.Fatalf("Failed to initialize identity manager: %v\n", err)
	}

	posts := store.NewPostStore(firebaseApp.DB)
	photos := store.NewPhotoStore(firebaseApp.DB)
	blobs := store.NewBlobStore(firebaseApp.Storage)

	mirror := feed.NewMirror(firebaseApp.DB, firebaseApp.Logger)
	mirror.Run(ctx)

	r := gin.Default()

	err = r.SetTrustedProxies(nil)
	if err != nil {
		log.Fatalf("Failed to set trusted proxies: %v\n", err)
	}

	taskGroup := r.Group(types.CLOUD_TASKS_HANDLER_PATH)
	taskGroup.POST("", tasks.PhotoProcessingTaskHandler(firebaseApp.Logger, firebaseApp.MessageClient, firebaseApp.DB, firebaseApp.Storage, photos))

	postsGroup := r.Group("/api/posts")
	postsGroup.GET("", handlers.GetPostsHandler(firebaseApp.Logger, mirror))
	postsGroup.GET("/:id/share", handlers.SharePostHandler(firebaseApp.Logger, posts, cfg.WidgetURL))
	postsGroup.Use(middlewares.AuthMiddleware(firebaseApp.Logger, firebaseApp.Auth, cfg.AuthDisabled))
	postsGroup.POST("", handlers.SubmitPostHandler(firebaseApp.Logger, posts, ids, cfg.Widget))
	postsGroup.POST("/:id/like", handlers.ToggleLikeHandler(firebaseApp.Logger, posts, ids))
	postsGroup.POST("/:id/comments", handlers.AddCommentHandler(firebaseApp.Logger, posts, ids))

	photosGroup := r.Group("/api/photos")
	photosGroup.GET("", handlers.GetPhotosHandler(mirror))
	photosGroup.Use(middlewares.AuthMiddleware(firebaseApp.Logger, firebaseApp.Auth, cfg.AuthDisabled))
	photosGroup.POST("", middlewares.PhotoValidationMiddleware(firebaseApp.Logger), handlers.UploadPhotoHandler(firebaseApp.Logger, photos, blobs, firebaseApp.TaskClient))
	photosGroup.POST("/:id/like", handlers.TogglePhotoLikeHandler(firebaseApp.Logger, photos, ids))
	photosGroup.Use(middlewares.AdminAuthMiddleware(firebaseApp.Logger))
	photosGroup.DELETE("/orphans", handlers.DeleteOrphanPhotosHandler(firebaseApp.Logger, photos, blobs))

	r.GET("/api/topics", handlers.GetTopicsHandler(mirror))
	r.GET("/api/widget/config", handlers.GetWidgetConfigHandler(cfg.Widget))

	messagingGroup := r.Group("/api/messaging")
	messagingGroup.Use(middlewares.AuthMiddleware(firebaseApp.Logger, firebaseApp.Auth, cfg.AuthDisabled))
	messagingGroup.POST("", handlers.SetMessagingRegistrationToken(firebaseApp.Logger, firebaseApp.DB))

	r.Run("0.0.0.0:" + cfg.Port)
}
