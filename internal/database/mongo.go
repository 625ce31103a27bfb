package database

import (
	"context"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

var DB *mongo.Database

// Connect opens the client, pings it and selects dbName as the global DB.
// The caller owns the returned client and must Disconnect it.
func Connect(uri, dbName string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOpts := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(clientOpts)
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	DB = client.Database(dbName)
	slog.Info("connected to mongodb", "db", dbName)
	return client, nil
}

func GetCollection(name string) *mongo.Collection {
	return DB.Collection(name)
}
