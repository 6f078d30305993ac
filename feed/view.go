// Package feed holds the widget's read path: the in-memory mirror of the
// posts and photos collections and the pure view derivation over it.
package feed

import (
	"sort"
	"strings"

	"dogcommunity_api/types"
)

// ViewQuery selects and orders the posts the widget shows. Zero values mean
// no search, all topics, latest first.
type ViewQuery struct {
	SearchQuery string
	FilterTopic string
	SortBy      string
}

// DeriveView filters and sorts a posts snapshot for display. Pure: the input
// slice is never mutated. Search matches case-insensitively against title,
// content and author name; the topic sentinel "all" (or empty) passes
// everything. Sorting is stable, so ties keep their prior relative order;
// "latest" is the input order since the store already delivers newest first.
func DeriveView(posts []types.Post, q ViewQuery) []types.Post {
	search := strings.ToLower(q.SearchQuery)

	filtered := make([]types.Post, 0, len(posts))
	for _, post := range posts {
		if search != "" && !matchesSearch(post, search) {
			continue
		}
		if q.FilterTopic != "" && q.FilterTopic != types.TOPIC_ALL && post.Topic != q.FilterTopic {
			continue
		}
		filtered = append(filtered, post)
	}

	switch q.SortBy {
	case types.SORT_OLDEST:
		for i, j := 0, len(filtered)-1; i < j; i, j = i+1, j-1 {
			filtered[i], filtered[j] = filtered[j], filtered[i]
		}
	case types.SORT_POPULAR:
		sort.SliceStable(filtered, func(i, j int) bool {
			return len(filtered[i].Comments) > len(filtered[j].Comments)
		})
	case types.SORT_LIKES:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Likes > filtered[j].Likes
		})
	}

	return filtered
}

func matchesSearch(post types.Post, search string) bool {
	return strings.Contains(strings.ToLower(post.Title), search) ||
		strings.Contains(strings.ToLower(post.Content), search) ||
		strings.Contains(strings.ToLower(post.AuthorName), search)
}

// TopicCounts tallies posts per topic for the filter sidebar, with "all"
// carrying the total.
func TopicCounts(posts []types.Post) map[string]int {
	counts := make(map[string]int, len(types.Topics)+1)
	for _, topic := range types.Topics {
		counts[topic] = 0
	}
	for _, post := range posts {
		counts[post.Topic]++
	}
	counts[types.TOPIC_ALL] = len(posts)
	return counts
}
