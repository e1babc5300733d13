package db

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"time"

	"munhub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var MongoClient *mongo.Client
var MongoDatabase *mongo.Database
var SessionCollection *mongo.Collection

// GetCollection returns a collection by name
func GetCollection(collectionName string) *mongo.Collection {
	return MongoDatabase.Collection(collectionName)
}

// extractDBName parses the database name from the URI, defaulting to "munhub"
func extractDBName(uri string) string {
	u, err := url.Parse(uri)
	if err != nil {
		return "munhub"
	}
	if u.Path != "" && u.Path != "/" {
		return u.Path[1:] // Trim leading '/'
	}
	return "munhub"
}

// ConnectMongoDB establishes a connection to MongoDB using the provided URI
func ConnectMongoDB(uri string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	// Verify connection with a ping
	if err := client.Ping(ctx, nil); err != nil {
		return fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	MongoClient = client
	dbName := extractDBName(uri)
	log.Printf("Using database: %s", dbName)

	MongoDatabase = client.Database(dbName)
	SessionCollection = MongoDatabase.Collection("sessions")
	return nil
}

// SaveSessionSnapshot upserts the current authoritative copy of a session.
// The in-memory authority stays correct without the database; persistence is
// skipped entirely when MongoDB was never connected.
func SaveSessionSnapshot(session models.Session) error {
	if SessionCollection == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	filter := bson.M{"_id": session.ID}
	opts := options.Replace().SetUpsert(true)
	_, err := SessionCollection.ReplaceOne(ctx, filter, session, opts)
	if err != nil {
		log.Printf("Error saving session snapshot: %v", err)
		return err
	}
	return nil
}

// LoadSessionSnapshot restores the persisted copy of a session, if any
func LoadSessionSnapshot(sessionID string) (*models.Session, error) {
	if SessionCollection == nil {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var session models.Session
	err := SessionCollection.FindOne(ctx, bson.M{"_id": sessionID}).Decode(&session)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &session, nil
}

// DeleteSessionSnapshot removes the persisted copy of a session
func DeleteSessionSnapshot(sessionID string) error {
	if SessionCollection == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := SessionCollection.DeleteOne(ctx, bson.M{"_id": sessionID})
	if err != nil {
		log.Printf("Error deleting session snapshot: %v", err)
	}
	return err
}
