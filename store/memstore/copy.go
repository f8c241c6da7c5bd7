package memstore

import (
	"time"

	"expohub/models"
	"expohub/store"
)

func copyUser(u *models.User) *models.User {
	v := *u
	v.Exhibitions = append([]string(nil), u.Exhibitions...)
	v.Interests = append([]string(nil), u.Interests...)
	v.Posts = append([]string(nil), u.Posts...)
	return &v
}

func copyExhibition(e *models.Exhibition) *models.Exhibition {
	v := *e
	v.Brochures = append([]string(nil), e.Brochures...)
	v.JoinedUsers = make(map[string]models.JoinedProfile, len(e.JoinedUsers))
	for k, m := range e.JoinedUsers {
		v.JoinedUsers[k] = m
	}
	return &v
}

func copyChat(c *models.Chat) *models.Chat {
	v := *c
	v.Participants = append([]string(nil), c.Participants...)
	v.ParticipantInfo = make(map[string]models.ParticipantInfo, len(c.ParticipantInfo))
	for k, p := range c.ParticipantInfo {
		v.ParticipantInfo[k] = p
	}
	v.UnreadCount = make(map[string]int, len(c.UnreadCount))
	for k, n := range c.UnreadCount {
		v.UnreadCount[k] = n
	}
	if c.LastMessage != nil {
		lm := *c.LastMessage
		v.LastMessage = &lm
	}
	return &v
}

func copyMessage(m *models.Message) *models.Message {
	v := *m
	v.ReadBy = make(map[string]time.Time, len(m.ReadBy))
	for k, t := range m.ReadBy {
		v.ReadBy[k] = t
	}
	return &v
}

func copyDocument(d store.Document) store.Document {
	out := make(store.Document, len(d))
	for k, v := range d {
		out[k] = copyValue(v)
	}
	return out
}

func copyValue(v interface{}) interface{} {
	switch t := v.(type) {
	case map[string]interface{}:
		m := make(map[string]interface{}, len(t))
		for k, e := range t {
			m[k] = copyValue(e)
		}
		return m
	case store.Document:
		return map[string]interface{}(copyDocument(t))
	case []interface{}:
		l := make([]interface{}, len(t))
		for i, e := range t {
			l[i] = copyValue(e)
		}
		return l
	case []string:
		l := make([]interface{}, len(t))
		for i, e := range t {
			l[i] = e
		}
		return l
	default:
		return v
	}
}
