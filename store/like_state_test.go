package store

import (
	"reflect"
	"testing"

	"cloud.google.com/go/firestore"
)

func TestNextLikeStateAddsThenRemoves(t *testing.T) {
	likes, liked := NextLikeState(2, []string{"guest_1_aaa"}, "guest_2_bbb")
	if !liked || likes != 3 {
		t.Fatalf("first toggle: got likes=%d liked=%v, want 3 true", likes, liked)
	}

	likes, liked = NextLikeState(3, []string{"guest_1_aaa", "guest_2_bbb"}, "guest_2_bbb")
	if liked || likes != 2 {
		t.Fatalf("second toggle: got likes=%d liked=%v, want 2 false", likes, liked)
	}
}

func TestNextLikeStateDoubleToggleRestoresCount(t *testing.T) {
	likedBy := []string{"guest_1_aaa"}

	likes, liked := NextLikeState(1, likedBy, "guest_9_zzz")
	if !liked {
		t.Fatal("expected like on first toggle")
	}
	likes, liked = NextLikeState(likes, append(likedBy, "guest_9_zzz"), "guest_9_zzz")
	if liked || likes != 1 {
		t.Fatalf("toggle twice: got likes=%d liked=%v, want 1 false", likes, liked)
	}
}

func TestLikeUpdatesMembershipFollowsToggleDirection(t *testing.T) {
	up := likeUpdates("likes", "likedBy", 4, true, "guest_1_aaa")
	if len(up) != 2 || up[0].Path != "likes" || up[0].Value != 4 {
		t.Fatalf("counter update = %+v", up[0])
	}
	if !reflect.DeepEqual(up[1].Value, firestore.ArrayUnion("guest_1_aaa")) {
		t.Errorf("like must add the device to likedBy, got %+v", up[1].Value)
	}

	down := likeUpdates("likes", "likedBy", 3, false, "guest_1_aaa")
	if down[0].Value != 3 {
		t.Fatalf("counter update = %+v", down[0])
	}
	if !reflect.DeepEqual(down[1].Value, firestore.ArrayRemove("guest_1_aaa")) {
		t.Errorf("unlike must remove the device from likedBy, got %+v", down[1].Value)
	}
}

func TestNextLikeStateNeverGoesNegative(t *testing.T) {
	// A stale count of zero with the device still in likedBy must not
	// underflow.
	likes, liked := NextLikeState(0, []string{"guest_1_aaa"}, "guest_1_aaa")
	if liked || likes != 0 {
		t.Fatalf("got likes=%d liked=%v, want 0 false", likes, liked)
	}
}
