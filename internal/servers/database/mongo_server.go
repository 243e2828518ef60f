package database

import (
	"context"
	"duoChat/configs"

	pkgerrors "github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoClient struct {
	Client   *mongo.Client
	Database *mongo.Database
}

func NewMongoConnection(config *configs.Config) (*MongoClient, error) {
	timeout := config.Viper.GetDuration("mongodb.timeout")
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(config.MongoURI()))
	if err != nil {
		return nil, pkgerrors.Wrap(err, "failed to connect MongoDB")
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, pkgerrors.Wrap(err, "failed to ping MongoDB")
	}

	return &MongoClient{
		Client:   client,
		Database: client.Database(config.Viper.GetString("mongodb.database")),
	}, nil
}

func (mc *MongoClient) Close(ctx context.Context) error {
	return mc.Client.Disconnect(ctx)
}
