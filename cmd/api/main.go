package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"

	"todoapp/internal/config"
	"todoapp/internal/routes"
	"todoapp/internal/store/mongostore"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongostore.Dial(ctx, cfg.MongoURI)
	if err != nil {
		log.Fatalf("Fatal: %v", err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Printf("Failed to disconnect from MongoDB: %v", err)
		}
	}()

	todos := mongostore.New(client, cfg.MongoDB)
	r := routes.SetupRouter(todos, cfg)

	log.Printf("Server listening on port %s...", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
