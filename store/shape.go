package store

import (
	"sort"
	"strings"
	"unicode"

	"expohub/models"
)

// Stored post field names.
const (
	FieldComments     = "postComments"
	FieldCommentCount = "postCommentsCount"
	FieldLikes        = "postLikes"
	FieldLikedBy      = "likedBy"
)

// CommentList returns the elements of a stored postComments value. Historical
// posts keep comments as an array, a map keyed by comment id, or not at all;
// map values are returned ordered by key so the result is deterministic.
func CommentList(v interface{}) []interface{} {
	switch c := v.(type) {
	case nil:
		return []interface{}{}
	case []interface{}:
		return c
	case []map[string]interface{}:
		out := make([]interface{}, 0, len(c))
		for _, e := range c {
			out = append(out, e)
		}
		return out
	case map[string]interface{}:
		keys := make([]string, 0, len(c))
		for k := range c {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		out := make([]interface{}, 0, len(c))
		for _, k := range keys {
			out = append(out, c[k])
		}
		return out
	default:
		return []interface{}{}
	}
}

// CommentDocument converts c to the raw shape stored inside postComments.
func CommentDocument(c models.Comment) map[string]interface{} {
	return map[string]interface{}{
		"id":          c.ID,
		"authorId":    c.AuthorID,
		"authorName":  c.AuthorName,
		"authorType":  c.AuthorType,
		"authorImage": c.AuthorImage,
		"content":     c.Content,
		"timestamp":   c.Timestamp,
	}
}

// StringList returns the string elements of a stored array value.
func StringList(v interface{}) []string {
	switch l := v.(type) {
	case []string:
		return l
	case []interface{}:
		out := make([]string, 0, len(l))
		for _, e := range l {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

// ToggleMember removes id from list if present and appends it otherwise,
// keeping the order of the other members.
func ToggleMember(list []string, id string) []string {
	out := make([]string, 0, len(list)+1)
	found := false
	for _, v := range list {
		if v == id {
			found = true
			continue
		}
		out = append(out, v)
	}
	if !found {
		out = append(out, id)
	}
	return out
}

// IndustryID derives the stored id of an industry from its name, so seeding the
// same name twice targets the same document.
func IndustryID(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			dash = false
		case !dash && b.Len() > 0:
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
