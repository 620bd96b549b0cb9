package database

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// MongoClient holds the document-store connection used for clinical
// histories.
var MongoClient *mongo.Client

const clinicalHistoryDatabase = "clinical_history"

// InitializeMongo connects to the document store and verifies the
// connection.
func InitializeMongo(ctx context.Context) error {
	uri := os.Getenv("MONGO_URL")
	if uri == "" {
		return fmt.Errorf("missing MONGO_URL environment variable")
	}

	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(uri))
	if err != nil {
		return fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		return fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	MongoClient = client
	log.Println("MongoDB connection initialized successfully.")
	return nil
}

// ClinicalHistoryCollection returns the collection holding per-patient
// clinical histories.
func ClinicalHistoryCollection() *mongo.Collection {
	return MongoClient.Database(clinicalHistoryDatabase).Collection("records")
}

// CloseMongo disconnects the document store client.
func CloseMongo(ctx context.Context) error {
	if MongoClient == nil {
		return nil
	}
	return MongoClient.Disconnect(ctx)
}
