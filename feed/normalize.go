package feed

import (
	"math"
	"sort"
	"strconv"
	"time"

	"expohub/models"
	"expohub/store"
)

// NormalizePost converts a stored post into the canonical in-memory shape.
//
// postComments may be absent, an array or a map of comments; the result always
// holds a slice sorted by timestamp. Counters are derived from the lists:
// postLikes and postCommentsCount are treated as caches and ignored.
func NormalizePost(raw store.Document) models.Post {
	p := models.Post{
		ID:           str(raw["id"]),
		AuthorID:     str(raw["authorId"]),
		AuthorName:   str(raw["authorName"]),
		AuthorType:   str(raw["authorType"]),
		AuthorImage:  str(raw["authorImage"]),
		Content:      str(raw["content"]),
		MediaURL:     str(raw["mediaUrl"]),
		MediaType:    models.MediaType(str(raw["mediaType"])),
		ExhibitionID: str(raw["exhibitionId"]),
		CreatedAt:    timestamp(raw["createdAt"]),
	}

	p.LikedBy = dedupe(store.StringList(raw[store.FieldLikedBy]))
	p.LikeCount = len(p.LikedBy)

	p.Comments = NormalizeComments(raw[store.FieldComments])
	p.CommentCount = len(p.Comments)

	return p
}

// NormalizeComments decodes a stored postComments value of any historical
// shape. Elements that are not comment records are skipped.
func NormalizeComments(v interface{}) []models.Comment {
	list := store.CommentList(v)
	out := make([]models.Comment, 0, len(list))
	for _, e := range list {
		var m map[string]interface{}
		switch c := e.(type) {
		case map[string]interface{}:
			m = c
		case store.Document:
			m = c
		default:
			continue
		}
		out = append(out, models.Comment{
			ID:          str(m["id"]),
			AuthorID:    str(m["authorId"]),
			AuthorName:  str(m["authorName"]),
			AuthorType:  str(m["authorType"]),
			AuthorImage: str(m["authorImage"]),
			Content:     str(m["content"]),
			Timestamp:   timestamp(m["timestamp"]),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.Before(out[j].Timestamp)
	})
	return out
}

// CounterDrift reports whether the stored like or comment counters of raw
// disagree with the lists they summarize.
func CounterDrift(raw store.Document) bool {
	if n, ok := number(raw[store.FieldLikes]); ok && int(n) != len(dedupe(store.StringList(raw[store.FieldLikedBy]))) {
		return true
	}
	if n, ok := number(raw[store.FieldCommentCount]); ok && n != 0 && int(n) != len(store.CommentList(raw[store.FieldComments])) {
		return true
	}
	return false
}

func dedupe(list []string) []string {
	seen := make(map[string]struct{}, len(list))
	out := make([]string, 0, len(list))
	for _, v := range list {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

func str(v interface{}) string {
	s, _ := v.(string)
	return s
}

func number(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

// timestamp accepts time values, RFC 3339 strings and unix epochs. Epochs above
// 1e12 are taken as milliseconds.
func timestamp(v interface{}) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case *time.Time:
		if t != nil {
			return *t
		}
	case string:
		if parsed, err := time.Parse(time.RFC3339Nano, t); err == nil {
			return parsed
		}
		if n, err := strconv.ParseInt(t, 10, 64); err == nil {
			return epoch(float64(n))
		}
	default:
		if n, ok := number(v); ok {
			return epoch(n)
		}
	}
	return time.Time{}
}

func epoch(n float64) time.Time {
	if math.Abs(n) > 1e12 {
		return time.UnixMilli(int64(n)).UTC()
	}
	return time.Unix(int64(n), 0).UTC()
}
