package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         string
	DataDir      string
	WidgetURL    string
	AuthDisabled bool
	Widget       WidgetConfig
}

// WidgetConfig is the layout/feature flag set that drives the single
// configurable forum view: which of the iterated designs the embed shows.
type WidgetConfig struct {
	SearchEnabled  bool `json:"searchEnabled"`
	TagsEnabled    bool `json:"tagsEnabled"`
	CommentsInline bool `json:"commentsInline"`
	TitleRequired  bool `json:"titleRequired"`
}

func Load() *Config {
	// Missing .env is fine; the environment may already be set.
	_ = godotenv.Load()

	return &Config{
		Port:         getEnv("PORT", "8080"),
		DataDir:      getEnv("DATA_DIR", "./data"),
		WidgetURL:    getEnv("WIDGET_URL", "https://doggy-forum.web.app/dog-forum-widget.html"),
		AuthDisabled: os.Getenv("AUTH_DISABLED") == "1",
		Widget: WidgetConfig{
			SearchEnabled:  getEnvBool("WIDGET_SEARCH_ENABLED", true),
			TagsEnabled:    getEnvBool("WIDGET_TAGS_ENABLED", true),
			CommentsInline: getEnvBool("WIDGET_COMMENTS_INLINE", false),
			TitleRequired:  getEnvBool("WIDGET_TITLE_REQUIRED", true),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	switch os.Getenv(key) {
	case "1", "true":
		return true
	case "0", "false":
		return false
	default:
		return defaultValue
	}
}
