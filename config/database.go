package config

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ConnectDB opens the shared MongoDB client. A failed connect or ping is
// logged but does not abort startup: the process keeps serving and each
// request then fails individually at the store call.
func ConnectDB(uri string) *mongo.Client {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		logrus.WithError(err).Error("mongodb connect failed; requests will fail at the store boundary")
		return client
	}

	if err := client.Ping(ctx, nil); err != nil {
		logrus.WithError(err).Error("mongodb unreachable; continuing to serve")
	} else {
		logrus.WithField("uri", uri).Info("connected to MongoDB")
	}
	return client
}

func GetCollection(client *mongo.Client, db string, collectionName string) *mongo.Collection {
	return client.Database(db).Collection(collectionName)
}
