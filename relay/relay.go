// Package relay spreads user notifications over Redis pub/sub so that a user
// connected to any instance receives them.
package relay

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

// Notifier delivers a notification to the connections held by this instance.
type Notifier interface {
	SendToUser(userID, kind string, payload interface{})
}

type envelope struct {
	UserID  string          `json:"userId"`
	Kind    string          `json:"kind"`
	Payload json.RawMessage `json:"payload"`
}

// Relay publishes notifications on a channel and hands every notification
// received on it to the local notifier, including its own.
type Relay struct {
	rdb     *redis.Client
	channel string
	local   Notifier
	log     logrus.FieldLogger
}

// Connect opens a client for url and checks the connection.
func Connect(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return rdb, nil
}

func New(rdb *redis.Client, channel string, local Notifier, log logrus.FieldLogger) *Relay {
	return &Relay{
		rdb:     rdb,
		channel: channel,
		local:   local,
		log:     log.WithField("channel", channel),
	}
}

// SendToUser publishes the notification. When publishing fails it is
// delivered locally only.
func (r *Relay) SendToUser(userID, kind string, payload interface{}) {
	raw, err := json.Marshal(payload)
	if err != nil {
		r.log.WithError(err).WithField("kind", kind).Error("failed to marshal notification")
		return
	}
	msg, err := json.Marshal(envelope{UserID: userID, Kind: kind, Payload: raw})
	if err != nil {
		r.log.WithError(err).WithField("kind", kind).Error("failed to marshal notification")
		return
	}

	if err := r.rdb.Publish(context.Background(), r.channel, msg).Err(); err != nil {
		r.log.WithError(err).Warn("failed to publish notification, delivering locally")
		r.local.SendToUser(userID, kind, json.RawMessage(raw))
	}
}

// Run forwards received notifications to the local notifier until ctx is done.
func (r *Relay) Run(ctx context.Context) error {
	sub := r.rdb.Subscribe(ctx, r.channel)
	defer sub.Close()

	if _, err := sub.Receive(ctx); err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", r.channel, err)
	}
	r.log.Info("relaying notifications")

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			var e envelope
			if err := json.Unmarshal([]byte(msg.Payload), &e); err != nil {
				r.log.WithError(err).Warn("dropping malformed notification")
				continue
			}
			r.local.SendToUser(e.UserID, e.Kind, e.Payload)
		}
	}
}
