package feed

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"expohub/store"
)

func comment(id string, ts interface{}) map[string]interface{} {
	return map[string]interface{}{
		"id":         id,
		"authorId":   "u-" + id,
		"authorName": "Author " + id,
		"content":    "text " + id,
		"timestamp":  ts,
	}
}

func TestNormalizePost_CommentShapes(t *testing.T) {
	t1 := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Minute)
	t3 := t2.Add(time.Minute)

	tt := []struct {
		name     string
		comments interface{}
		wantIDs  []string
	}{
		{
			name:     "absent",
			comments: nil,
			wantIDs:  []string{},
		},
		{
			name:     "array",
			comments: []interface{}{comment("a", t1), comment("b", t2)},
			wantIDs:  []string{"a", "b"},
		},
		{
			name: "map sorted by timestamp",
			comments: map[string]interface{}{
				"k1": comment("late", t3),
				"k2": comment("early", t1),
				"k3": comment("middle", t2),
			},
			wantIDs: []string{"early", "middle", "late"},
		},
		{
			name:     "unsorted array",
			comments: []interface{}{comment("b", t2), comment("a", t1)},
			wantIDs:  []string{"a", "b"},
		},
		{
			name:     "garbage elements skipped",
			comments: []interface{}{"oops", 42, comment("a", t1)},
			wantIDs:  []string{"a"},
		},
		{
			name:     "scalar",
			comments: "not comments",
			wantIDs:  []string{},
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			raw := store.Document{"id": "p1", "content": "hi"}
			if tc.comments != nil {
				raw[store.FieldComments] = tc.comments
			}

			p := NormalizePost(raw)

			ids := make([]string, 0, len(p.Comments))
			for _, c := range p.Comments {
				ids = append(ids, c.ID)
			}
			assert.Equal(t, tc.wantIDs, ids)
			assert.Equal(t, len(tc.wantIDs), p.CommentCount)
			assert.NotNil(t, p.Comments)
		})
	}
}

func TestNormalizePost_CountersFromLists(t *testing.T) {
	raw := store.Document{
		"id":                    "p1",
		"authorId":              "author",
		"authorName":            "Acme",
		"createdAt":             time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		store.FieldLikes:        int64(7),
		store.FieldLikedBy:      []interface{}{"u1", "u2", "u1"},
		store.FieldCommentCount: int32(9),
		store.FieldComments:     []interface{}{comment("a", time.Now())},
	}

	assert.True(t, CounterDrift(raw))

	p := NormalizePost(raw)
	assert.Equal(t, "p1", p.ID)
	assert.Equal(t, "Acme", p.AuthorName)
	assert.Equal(t, []string{"u1", "u2"}, p.LikedBy)
	assert.Equal(t, 2, p.LikeCount)
	assert.Equal(t, 1, p.CommentCount)
}

func TestNormalizePost_Empty(t *testing.T) {
	p := NormalizePost(store.Document{"id": "p1"})

	assert.Empty(t, p.LikedBy)
	assert.Zero(t, p.LikeCount)
	assert.Empty(t, p.Comments)
	assert.Zero(t, p.CommentCount)
	assert.True(t, p.CreatedAt.IsZero())
	assert.False(t, CounterDrift(store.Document{"id": "p1"}))
}

func TestTimestamp(t *testing.T) {
	want := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	tt := []struct {
		name string
		in   interface{}
	}{
		{"time", want},
		{"pointer", &want},
		{"rfc3339", "2024-03-01T10:00:00Z"},
		{"seconds", want.Unix()},
		{"milliseconds", want.UnixMilli()},
		{"float seconds", float64(want.Unix())},
		{"numeric string", "1709287200"},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			require.True(t, want.Equal(timestamp(tc.in)), "got %v", timestamp(tc.in))
		})
	}

	assert.True(t, timestamp("yesterday").IsZero())
	assert.True(t, timestamp(nil).IsZero())
}
