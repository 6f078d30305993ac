package handlers

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"dogcommunity_api/config"
	"dogcommunity_api/feed"
	"dogcommunity_api/identity"
	"dogcommunity_api/store"
	"dogcommunity_api/tools"
	"dogcommunity_api/types"

	"cloud.google.com/go/logging"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// PostSource serves the current posts snapshot, newest first. The feed mirror
// satisfies it; tests plug in a fixed slice.
type PostSource interface {
	Posts() []types.Post
}

func GetPostsHandler(logger *logging.Logger, source PostSource) gin.HandlerFunc {
	return func(c *gin.Context) {
		view := feed.DeriveView(source.Posts(), feed.ViewQuery{
			SearchQuery: c.Query("q"),
			FilterTopic: c.Query("topic"),
			SortBy:      c.Query("sort"),
		})

		c.JSON(http.StatusOK, gin.H{"posts": view})
	}
}

func SubmitPostHandler(logger *logging.Logger, posts store.PostStore, ids *identity.Manager, widget config.WidgetConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.SubmitPostRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			tools.LogError(logger, c, err)
			return
		}
		if err := validate.Struct(req); err != nil {
			tools.LogError(logger, c, err)
			return
		}

		req.Title = strings.TrimSpace(req.Title)
		req.Content = strings.TrimSpace(req.Content)
		if req.Content == "" {
			tools.LogError(logger, c, errors.New("post content must not be blank"))
			return
		}
		if widget.TitleRequired && req.Title == "" {
			tools.LogError(logger, c, errors.New("post title must not be blank"))
			return
		}

		if !types.IsValidTopic(req.Topic) {
			req.Topic = types.TOPIC_GENERAL
		}

		authorName, err := ids.GetOrCreateDisplayName(req.AuthorName)
		if err != nil {
			tools.LogInternalError(logger, c, err)
			return
		}

		id, err := posts.Submit(c, types.Post{
			Title:      req.Title,
			Content:    req.Content,
			Topic:      req.Topic,
			AuthorName: authorName,
		})
		if err != nil {
			tools.LogInternalError(logger, c, err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"id":         id,
			"authorName": authorName,
		})
	}
}

func ToggleLikeHandler(logger *logging.Logger, posts store.PostStore, ids *identity.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		postId := c.Param("id")

		var req types.ToggleLikeRequest
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			tools.LogError(logger, c, err)
			return
		}

		deviceId := req.DeviceId
		if deviceId == "" {
			var err error
			deviceId, err = ids.GetOrCreateDeviceID()
			if err != nil {
				tools.LogInternalError(logger, c, err)
				return
			}
		}

		liked, err := posts.ToggleLike(c, postId, deviceId)
		if err != nil {
			tools.LogInternalError(logger, c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"liked": liked, "deviceId": deviceId})
	}
}

func AddCommentHandler(logger *logging.Logger, posts store.PostStore, ids *identity.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		postId := c.Param("id")

		var req types.AddCommentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			tools.LogError(logger, c, err)
			return
		}
		if err := validate.Struct(req); err != nil {
			tools.LogError(logger, c, err)
			return
		}

		req.Text = strings.TrimSpace(req.Text)
		if req.Text == "" {
			tools.LogError(logger, c, errors.New("comment text must not be blank"))
			return
		}

		authorName, err := ids.GetOrCreateDisplayName(req.AuthorName)
		if err != nil {
			tools.LogInternalError(logger, c, err)
			return
		}

		comment := types.Comment{
			Text:       req.Text,
			AuthorName: authorName,
			CreatedAt:  time.Now().UTC().Format(time.RFC3339),
		}
		if err := posts.AddComment(c, postId, comment); err != nil {
			tools.LogInternalError(logger, c, err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{"comment": comment})
	}
}

func SharePostHandler(logger *logging.Logger, posts store.PostStore, widgetURL string) gin.HandlerFunc {
	return func(c *gin.Context) {
		post, err := posts.Get(c, c.Param("id"))
		if err != nil {
			tools.LogInternalError(logger, c, err)
			return
		}
		if post == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
			return
		}

		c.JSON(http.StatusOK, types.SharePayload{
			Title: post.Title,
			Text:  post.Title + " - DogLovers Forum",
			Url:   widgetURL,
		})
	}
}

func GetTopicsHandler(source PostSource) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"topics": types.Topics,
			"counts": feed.TopicCounts(source.Posts()),
		})
	}
}

func GetWidgetConfigHandler(widget config.WidgetConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, widget)
	}
}
