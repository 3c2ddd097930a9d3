package config

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

var (
	MongoClient *mongo.Client
	DB          *mongo.Database
)

func InitDB() {
	mongoURL := os.Getenv("MONGO_URL")
	if mongoURL == "" {
		mongoURL = fmt.Sprintf(
			"mongodb://%s:%s",
			getEnv("MONGO_HOST", "localhost"),
			getEnv("MONGO_PORT", "27017"),
		)
		log.Println("⚠️ MONGO_URL not set, using local default")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var err error
	MongoClient, err = mongo.Connect(ctx, options.Client().ApplyURI(mongoURL))
	if err != nil {
		log.Fatalf("❌ Unable to connect to MongoDB: %v", err)
	}

	if err = MongoClient.Ping(ctx, readpref.Primary()); err != nil {
		log.Fatalf("❌ MongoDB ping failed: %v", err)
	}

	DB = MongoClient.Database(getEnv("MONGO_DB", "ecommerce"))

	log.Println("✅ MongoDB connected:", DB.Name())
}

func CloseDB() {
	if MongoClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := MongoClient.Disconnect(ctx); err != nil {
			log.Printf("⚠️ Error closing MongoDB connection: %v", err)
			return
		}
		log.Println("✅ MongoDB connection closed")
	}
}

// WithTimeout returns a context with a 10s timeout for database and cache calls
func WithTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}

func WithCustomTimeout(duration time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), duration)
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
