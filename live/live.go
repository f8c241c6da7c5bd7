// Package live shares store watches between subscribers. Each topic holds at
// most one upstream watch no matter how many subscribers listen to it; the
// watch is cancelled when the last subscriber is released.
package live

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"expohub/store"
)

const defaultBuffer = 32

type TopicKind string

const (
	TopicChats    TopicKind = "chats"
	TopicMessages TopicKind = "messages"
	TopicPosts    TopicKind = "posts"
)

// Topic names a stream of store events.
type Topic struct {
	Kind TopicKind
	Key  string
}

// ChatsTopic streams changes to the chats of a user.
func ChatsTopic(userID string) Topic { return Topic{Kind: TopicChats, Key: userID} }

// MessagesTopic streams changes to the messages of a chat.
func MessagesTopic(chatID string) Topic { return Topic{Kind: TopicMessages, Key: chatID} }

// PostsTopic streams changes to posts.
func PostsTopic() Topic { return Topic{Kind: TopicPosts} }

func (t Topic) String() string {
	if t.Key == "" {
		return string(t.Kind)
	}
	return string(t.Kind) + ":" + t.Key
}

// ParseTopic is the inverse of Topic.String.
func ParseTopic(s string) (Topic, error) {
	kind, key, _ := strings.Cut(s, ":")
	t := Topic{Kind: TopicKind(kind), Key: key}
	switch t.Kind {
	case TopicChats, TopicMessages:
		if t.Key == "" {
			return Topic{}, fmt.Errorf("topic %q needs a key", s)
		}
	case TopicPosts:
		if t.Key != "" {
			return Topic{}, fmt.Errorf("topic %q takes no key", s)
		}
	default:
		return Topic{}, fmt.Errorf("unknown topic %q", s)
	}
	return t, nil
}

type upstream struct {
	cancel context.CancelFunc
	subs   map[*Subscription]struct{}
}

// Hub multiplexes store watches by topic.
type Hub struct {
	watcher store.Watcher
	log     logrus.FieldLogger
	buffer  int

	mu     sync.Mutex
	topics map[Topic]*upstream
}

func NewHub(w store.Watcher, log logrus.FieldLogger) *Hub {
	return &Hub{
		watcher: w,
		log:     log,
		buffer:  defaultBuffer,
		topics:  map[Topic]*upstream{},
	}
}

// Subscription receives the events of one topic until released.
type Subscription struct {
	hub   *Hub
	topic Topic
	ch    chan store.Event
	done  chan struct{}
}

// C returns the event channel. It is closed on Release or when the upstream
// watch ends.
func (s *Subscription) C() <-chan store.Event {
	return s.ch
}

func (s *Subscription) Topic() Topic {
	return s.topic
}

// end closes the subscription. Callers hold the hub lock and have removed
// sub from its upstream, so it runs once.
func (s *Subscription) end() {
	close(s.ch)
	close(s.done)
}

// Release unsubscribes. It is safe to call more than once.
func (s *Subscription) Release() {
	s.hub.release(s)
}

// Subscribe attaches to topic, opening the upstream watch if this is the
// first subscriber. The subscription is released when ctx is done.
func (h *Hub) Subscribe(ctx context.Context, t Topic) (*Subscription, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	up, ok := h.topics[t]
	if !ok {
		upCtx, cancel := context.WithCancel(context.Background())
		events, err := h.open(upCtx, t)
		if err != nil {
			cancel()
			return nil, fmt.Errorf("failed to watch %s: %w", t, err)
		}
		up = &upstream{cancel: cancel, subs: map[*Subscription]struct{}{}}
		h.topics[t] = up
		go h.pump(t, up, events)
		h.log.WithField("topic", t.String()).Debug("opened upstream watch")
	}

	sub := &Subscription{
		hub:   h,
		topic: t,
		ch:    make(chan store.Event, h.buffer),
		done:  make(chan struct{}),
	}
	up.subs[sub] = struct{}{}

	if ctxDone := ctx.Done(); ctxDone != nil {
		go func() {
			select {
			case <-ctxDone:
				sub.Release()
			case <-sub.done:
			}
		}()
	}
	return sub, nil
}

func (h *Hub) open(ctx context.Context, t Topic) (<-chan store.Event, error) {
	switch t.Kind {
	case TopicChats:
		return h.watcher.WatchChats(ctx, t.Key)
	case TopicMessages:
		return h.watcher.WatchMessages(ctx, t.Key)
	case TopicPosts:
		return h.watcher.WatchPosts(ctx)
	default:
		return nil, fmt.Errorf("unknown topic kind %q", t.Kind)
	}
}

// pump fans events out until the upstream channel closes. Subscribers that do
// not keep up lose events rather than stall the topic.
func (h *Hub) pump(t Topic, up *upstream, events <-chan store.Event) {
	log := h.log.WithField("topic", t.String())

	for e := range events {
		h.mu.Lock()
		for sub := range up.subs {
			select {
			case sub.ch <- e:
			default:
				log.Warn("subscriber too slow, dropping event")
			}
		}
		h.mu.Unlock()
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.topics[t] == up {
		delete(h.topics, t)
		log.Debug("upstream watch ended")
	}
	for sub := range up.subs {
		delete(up.subs, sub)
		sub.end()
	}
	up.cancel()
}

func (h *Hub) release(sub *Subscription) {
	h.mu.Lock()
	defer h.mu.Unlock()

	up, ok := h.topics[sub.topic]
	if !ok {
		return
	}
	if _, ok := up.subs[sub]; !ok {
		return
	}
	delete(up.subs, sub)
	sub.end()

	if len(up.subs) == 0 {
		delete(h.topics, sub.topic)
		up.cancel()
		h.log.WithField("topic", sub.topic.String()).Debug("closed upstream watch")
	}
}

// Topics returns the number of open upstream watches.
func (h *Hub) Topics() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.topics)
}

// Subscribers returns the number of subscribers of t.
func (h *Hub) Subscribers(t Topic) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	if up, ok := h.topics[t]; ok {
		return len(up.subs)
	}
	return 0
}

// Close cancels every upstream watch and closes all subscriptions.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for t, up := range h.topics {
		for sub := range up.subs {
			delete(up.subs, sub)
			sub.end()
		}
		up.cancel()
		delete(h.topics, t)
	}
}
