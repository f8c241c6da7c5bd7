package feed

import (
	"expohub/models"
	"expohub/store"
)

// ToggleLike removes userID from the post's liked-by set if present and adds
// it otherwise. The like count always equals the size of the set afterwards, so
// two consecutive toggles by the same user restore the original set.
func ToggleLike(p models.Post, userID string) models.Post {
	p.LikedBy = store.ToggleMember(dedupe(p.LikedBy), userID)
	p.LikeCount = len(p.LikedBy)
	return p
}
