package types

// Topic tags a post for filtering. The set is fixed; anything unknown at
// submission time falls back to general.
const (
	TOPIC_GENERAL  = "general"
	TOPIC_PARKS    = "parks"
	TOPIC_RECIPES  = "recipes"
	TOPIC_TRAINING = "training"
	TOPIC_HEALTH   = "health"
	TOPIC_GROOMING = "grooming"

	// TOPIC_ALL is a filter sentinel only, never stored on a post.
	TOPIC_ALL = "all"
)

var Topics = []string{
	TOPIC_GENERAL,
	TOPIC_PARKS,
	TOPIC_RECIPES,
	TOPIC_TRAINING,
	TOPIC_HEALTH,
	TOPIC_GROOMING,
}

func IsValidTopic(topic string) bool {
	for _, t := range Topics {
		if t == topic {
			return true
		}
	}
	return false
}

// Sort keys accepted by the posts view.
const (
	SORT_LATEST  = "latest"
	SORT_OLDEST  = "oldest"
	SORT_POPULAR = "popular"
	SORT_LIKES   = "likes"
)
