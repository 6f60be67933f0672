package database

import (
	"context"
	"fmt"
	"log"
	"practice-service/internal/app/config"
	"practice-service/internal/pkg/constvars"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func buildMongoURI(mongoConfig config.MongoDB) string {
	credentials := ""
	if mongoConfig.Username != "" {
		credentials = fmt.Sprintf("%s:%s@", mongoConfig.Username, mongoConfig.Password)
	}
	uri := fmt.Sprintf("mongodb://%s%s:%s", credentials, mongoConfig.Host, mongoConfig.Port)
	if mongoConfig.ReplicaSet != "" {
		uri = fmt.Sprintf("%s/?replicaSet=%s", uri, mongoConfig.ReplicaSet)
	}
	return uri
}

// NewMongoDB connects to MongoDB. Multi-document transactions need the
// server to run as a replica set.
func NewMongoDB(driverConfig *config.DriverConfig) *mongo.Client {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbOptions := options.Client().ApplyURI(buildMongoURI(driverConfig.MongoDB))
	client, err := mongo.Connect(ctx, dbOptions)
	if err != nil {
		log.Fatalf("Failed to connect to mongo database: %s", err.Error())
	}
	err = client.Ping(ctx, nil)
	if err != nil {
		log.Fatalf("Failed to ping or test the connection to mongo database: %s", err.Error())
	}
	log.Println("Successfully connected to mongo database")
	return client
}

// EnsureIndexes creates the indexes the repositories rely on.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := map[string][]mongo.IndexModel{
		constvars.MongoCollectionDoctors: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		constvars.MongoCollectionCustomers: {
			{Keys: bson.D{{Key: "doctorId", Value: 1}, {Key: "name", Value: 1}}},
			{Keys: bson.D{{Key: "email", Value: 1}}},
			{Keys: bson.D{{Key: "paymentType", Value: 1}}},
		},
		constvars.MongoCollectionAppointments: {
			{Keys: bson.D{{Key: "customerId", Value: 1}, {Key: "date", Value: 1}}},
		},
		constvars.MongoCollectionPayments: {
			{Keys: bson.D{{Key: "customerId", Value: 1}, {Key: "paymentDate", Value: 1}}},
		},
		constvars.MongoCollectionCharges: {
			{Keys: bson.D{{Key: "customerId", Value: 1}, {Key: "status", Value: 1}, {Key: "dueDate", Value: 1}}},
		},
	}

	for collection, models := range indexes {
		if _, err := db.Collection(collection).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("create indexes on %s: %w", collection, err)
		}
	}
	return nil
}
