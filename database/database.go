// Package database owns the clients of the document stores.
package database

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names.
const (
	Users       = "users"
	Exhibitions = "exhibitions"
	Posts       = "posts"
	Chats       = "chats"
	Messages    = "messages"
	Industries  = "industries"
)

// ConnectMongo connects to uri, pings the server and registers the indexes of
// the database's collections.
func ConnectMongo(ctx context.Context, uri, name string) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	db := client.Database(name)
	if err := RegisterIndexes(ctx, db); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	logrus.WithField("database", name).Info("connected to mongo")
	return db, nil
}

// ConnectMongoWithRetry calls ConnectMongo up to attempts times, waiting
// between failures.
func ConnectMongoWithRetry(ctx context.Context, uri, name string, attempts int, wait time.Duration) (*mongo.Database, error) {
	var err error
	for i := 1; i <= attempts; i++ {
		var db *mongo.Database
		if db, err = ConnectMongo(ctx, uri, name); err == nil {
			return db, nil
		}
		logrus.WithError(err).Warnf("mongo connection attempt %d failed", i)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(wait):
		}
	}
	return nil, err
}

// DisconnectMongo closes the client of db.
func DisconnectMongo(db *mongo.Database) error {
	if db == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := db.Client().Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to disconnect from mongo: %w", err)
	}

	logrus.Info("disconnected from mongo")
	return nil
}

// RegisterIndexes creates the indexes queried by the mongo store.
func RegisterIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := map[string][]mongo.IndexModel{
		Users: {
			{
				Keys:    bson.D{{Key: "email", Value: 1}},
				Options: options.Index().SetName("email_index").SetUnique(true),
			},
		},
		Posts: {
			{
				Keys:    bson.D{{Key: "createdAt", Value: -1}},
				Options: options.Index().SetName("created_at_index"),
			},
			{
				Keys:    bson.D{{Key: "authorId", Value: 1}, {Key: "createdAt", Value: -1}},
				Options: options.Index().SetName("author_index"),
			},
			{
				Keys:    bson.D{{Key: "exhibitionId", Value: 1}, {Key: "createdAt", Value: -1}},
				Options: options.Index().SetName("exhibition_index"),
			},
		},
		Chats: {
			{
				Keys:    bson.D{{Key: "participants", Value: 1}, {Key: "updatedAt", Value: -1}},
				Options: options.Index().SetName("participants_index"),
			},
		},
		Messages: {
			{
				Keys:    bson.D{{Key: "chatId", Value: 1}, {Key: "createdAt", Value: 1}},
				Options: options.Index().SetName("chat_timestamp_index"),
			},
		},
	}

	for coll, models := range indexes {
		if _, err := db.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("failed to register indexes of %s: %w", coll, err)
		}
	}
	return nil
}

// ConnectFirestore creates a Firestore client for projectID.
func ConnectFirestore(ctx context.Context, projectID string) (*firestore.Client, error) {
	if projectID == "" {
		return nil, fmt.Errorf("firestore project id is required")
	}

	client, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to create firestore client: %w", err)
	}

	logrus.WithField("project", projectID).Info("connected to firestore")
	return client, nil
}
