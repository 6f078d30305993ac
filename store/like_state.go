package store

import "cloud.google.com/go/firestore"

// NextLikeState computes a like toggle: if deviceId is already a liker the
// toggle removes it and decrements the counter (floored at zero), otherwise
// it adds the id and increments. Applying the toggle twice with the same
// device id returns likes and membership to their original state.
func NextLikeState(likes int, likedBy []string, deviceId string) (newLikes int, liked bool) {
	for _, id := range likedBy {
		if id == deviceId {
			if likes <= 0 {
				return 0, false
			}
			return likes - 1, false
		}
	}
	return likes + 1, true
}

// likeUpdates builds the transactional write for one like toggle: the new
// counter value plus the matching likedBy membership change.
func likeUpdates(likesField, likedByField string, newLikes int, liked bool, deviceId string) []firestore.Update {
	var membership interface{} = firestore.ArrayRemove(deviceId)
	if liked {
		membership = firestore.ArrayUnion(deviceId)
	}

	return []firestore.Update{
		{Path: likesField, Value: newLikes},
		{Path: likedByField, Value: membership},
	}
}
