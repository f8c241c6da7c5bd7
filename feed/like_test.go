package feed

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"expohub/models"
)

func TestToggleLike_Involution(t *testing.T) {
	sets := [][]string{
		{},
		{"u1"},
		{"u1", "u2", "u3"},
		{"u2", "u3"},
	}

	for i, set := range sets {
		for _, user := range []string{"u1", "u4"} {
			t.Run(fmt.Sprintf("%d/%s", i, user), func(t *testing.T) {
				p := models.Post{LikedBy: append([]string(nil), set...), LikeCount: len(set)}

				once := ToggleLike(p, user)
				assert.Equal(t, len(once.LikedBy), once.LikeCount)
				assert.NotEqual(t, p.LikedByUser(user), once.LikedByUser(user))

				twice := ToggleLike(once, user)
				assert.ElementsMatch(t, set, twice.LikedBy)
				assert.Equal(t, len(set), twice.LikeCount)
			})
		}
	}
}

func TestToggleLike_Unlike(t *testing.T) {
	p := models.Post{LikedBy: []string{"u1", "u2", "u3"}, LikeCount: 3}

	p = ToggleLike(p, "u2")

	assert.Equal(t, []string{"u1", "u3"}, p.LikedBy)
	assert.Equal(t, 2, p.LikeCount)
	assert.False(t, p.LikedByUser("u2"))
}

func TestToggleLike_CountFollowsSetNotCache(t *testing.T) {
	p := models.Post{LikedBy: []string{"u1"}, LikeCount: 40}

	p = ToggleLike(p, "u2")

	assert.Equal(t, 2, p.LikeCount)
}
