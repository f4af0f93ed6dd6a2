package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ngocsang1201/blog-server/config"
)

var Client *mongo.Client

// Connect dials MongoDB using the configured URI. config.Init must run first.
func Connect() {
	client, err := mongo.NewClient(options.Client().ApplyURI(config.GlobalConfig.Mongo.URI))
	if err != nil {
		panic(err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	err = client.Connect(ctx)
	if err != nil {
		panic(err)
	}
	fmt.Println("Connected to MongoDB!")
	Client = client
}

func OpenCollection(client *mongo.Client, collectionName string) *mongo.Collection {
	collection := client.Database(config.GlobalConfig.Mongo.Database).Collection(collectionName)
	return collection
}
