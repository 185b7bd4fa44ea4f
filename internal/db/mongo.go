package db

import (
	"context"
	"log"
	"os"
	"time"

	"coffeeshop/internal/store"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Short timeouts so an unreachable Mongo degrades instead of hanging startup.
const connectTimeout = 500 * time.Millisecond

// Connect builds the document store from DATABASE_URL and DATABASE_NAME.
// If either is missing or the client cannot be constructed, the process
// runs with the unavailable store rather than failing.
func Connect() store.Store {
	url := os.Getenv("DATABASE_URL")
	name := os.Getenv("DATABASE_NAME")

	if url == "" || name == "" {
		log.Println("⚠️ DATABASE_URL or DATABASE_NAME not set, running without persistence")
		return store.NewUnavailableStore()
	}

	opts := options.Client().
		ApplyURI(url).
		SetServerSelectionTimeout(connectTimeout).
		SetConnectTimeout(connectTimeout).
		SetSocketTimeout(connectTimeout).
		SetRetryWrites(true)

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		log.Println("⚠️ Mongo client init failed, running without persistence:", err)
		return store.NewUnavailableStore()
	}

	// No ping here: startup stays non-blocking, reachability is checked
	// per operation and by the /test diagnostic.
	log.Println("✅ Document store configured:", name)
	return store.NewMongoStore(client.Database(name))
}
