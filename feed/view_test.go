package feed

import (
	"testing"

	"dogcommunity_api/types"
)

func samplePosts() []types.Post {
	return []types.Post{
		{Id: "a", Title: "Best leash for pullers", Content: "My husky drags me everywhere", Topic: types.TOPIC_TRAINING, AuthorName: "PawsomeParent42", Likes: 3, Comments: []types.Comment{{Text: "Try a front clip harness"}}},
		{Id: "b", Title: "Pumpkin treats", Content: "Easy three ingredient recipe", Topic: types.TOPIC_RECIPES, AuthorName: "BarkingBuddy7", Likes: 9},
		{Id: "c", Title: "Dog park etiquette", Content: "What do you wish people knew?", Topic: types.TOPIC_PARKS, AuthorName: "FurryFriend3", Likes: 3, Comments: []types.Comment{{Text: "Pick up after your dog"}, {Text: "Watch the gate"}}},
		{Id: "d", Title: "Recall training wins", Content: "Finally got a solid recall", Topic: types.TOPIC_TRAINING, AuthorName: "WoofWarrior12", Likes: 5},
		{Id: "e", Title: "Grooming a doodle", Content: "Matting behind the ears again", Topic: types.TOPIC_GROOMING, AuthorName: "PuppyPal99", Likes: 0},
	}
}

func TestDeriveViewTopicFilter(t *testing.T) {
	posts := samplePosts()
	view := DeriveView(posts, ViewQuery{FilterTopic: types.TOPIC_TRAINING})

	if len(view) != 2 {
		t.Fatalf("expected 2 training posts, got %d", len(view))
	}
	for _, post := range view {
		if post.Topic != types.TOPIC_TRAINING {
			t.Errorf("post %s has topic %q, want %q", post.Id, post.Topic, types.TOPIC_TRAINING)
		}
	}

	// Every training post from the input must survive the filter.
	seen := map[string]bool{}
	for _, post := range view {
		seen[post.Id] = true
	}
	for _, post := range posts {
		if post.Topic == types.TOPIC_TRAINING && !seen[post.Id] {
			t.Errorf("training post %s missing from filtered view", post.Id)
		}
	}
}

func TestDeriveViewTopicAllPassesEverything(t *testing.T) {
	posts := samplePosts()
	for _, topic := range []string{"", types.TOPIC_ALL} {
		view := DeriveView(posts, ViewQuery{FilterTopic: topic})
		if len(view) != len(posts) {
			t.Errorf("topic %q: expected all %d posts, got %d", topic, len(posts), len(view))
		}
	}
}

func TestDeriveViewSearchMatchesAnyField(t *testing.T) {
	posts := samplePosts()

	cases := []struct {
		query string
		want  string
	}{
		{"LEASH", "a"},       // title, case-insensitive
		{"ingredient", "b"},  // content
		{"furryfriend", "c"}, // author name
	}
	for _, tc := range cases {
		view := DeriveView(posts, ViewQuery{SearchQuery: tc.query})
		if len(view) != 1 || view[0].Id != tc.want {
			t.Errorf("search %q: expected single post %s, got %v", tc.query, tc.want, ids(view))
		}
	}

	if view := DeriveView(posts, ViewQuery{SearchQuery: "no such phrase"}); len(view) != 0 {
		t.Errorf("expected empty view for unmatched search, got %v", ids(view))
	}
}

func TestDeriveViewSortLikesNonIncreasing(t *testing.T) {
	view := DeriveView(samplePosts(), ViewQuery{SortBy: types.SORT_LIKES})
	for i := 1; i < len(view); i++ {
		if view[i-1].Likes < view[i].Likes {
			t.Fatalf("likes out of order at %d: %d before %d", i, view[i-1].Likes, view[i].Likes)
		}
	}
	// Posts a and c both have 3 likes; stable sort keeps input order.
	var tied []string
	for _, post := range view {
		if post.Likes == 3 {
			tied = append(tied, post.Id)
		}
	}
	if len(tied) != 2 || tied[0] != "a" || tied[1] != "c" {
		t.Errorf("expected tied posts in input order [a c], got %v", tied)
	}
}

func TestDeriveViewSortPopularByCommentCount(t *testing.T) {
	view := DeriveView(samplePosts(), ViewQuery{SortBy: types.SORT_POPULAR})
	for i := 1; i < len(view); i++ {
		if len(view[i-1].Comments) < len(view[i].Comments) {
			t.Fatalf("comment counts out of order at %d", i)
		}
	}
	if view[0].Id != "c" {
		t.Errorf("expected most-commented post c first, got %s", view[0].Id)
	}
}

func TestDeriveViewSortOldestReversesLatest(t *testing.T) {
	posts := samplePosts()
	view := DeriveView(posts, ViewQuery{SortBy: types.SORT_OLDEST})
	if len(view) != len(posts) {
		t.Fatalf("expected %d posts, got %d", len(posts), len(view))
	}
	for i := range posts {
		if view[i].Id != posts[len(posts)-1-i].Id {
			t.Fatalf("position %d: got %s, want %s", i, view[i].Id, posts[len(posts)-1-i].Id)
		}
	}
}

func TestDeriveViewDoesNotMutateInput(t *testing.T) {
	posts := samplePosts()
	original := ids(posts)

	DeriveView(posts, ViewQuery{SortBy: types.SORT_LIKES})
	DeriveView(posts, ViewQuery{SortBy: types.SORT_OLDEST})

	after := ids(posts)
	for i := range original {
		if original[i] != after[i] {
			t.Fatalf("input mutated at %d: %v -> %v", i, original, after)
		}
	}
}

func TestTopicCounts(t *testing.T) {
	counts := TopicCounts(samplePosts())
	if counts[types.TOPIC_ALL] != 5 {
		t.Errorf("all = %d, want 5", counts[types.TOPIC_ALL])
	}
	if counts[types.TOPIC_TRAINING] != 2 {
		t.Errorf("training = %d, want 2", counts[types.TOPIC_TRAINING])
	}
	if counts[types.TOPIC_GENERAL] != 0 {
		t.Errorf("general = %d, want 0", counts[types.TOPIC_GENERAL])
	}
}

func TestMirrorReturnsCopies(t *testing.T) {
	m := &Mirror{}
	m.setPosts(samplePosts())

	got := m.Posts()
	got[0].Title = "tampered"

	if m.Posts()[0].Title == "tampered" {
		t.Fatal("mirror state leaked through Posts()")
	}
}

func ids(posts []types.Post) []string {
	out := make([]string, len(posts))
	for i, post := range posts {
		out[i] = post.Id
	}
	return out
}
