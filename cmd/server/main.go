package main

import (
	"context"
	"log"

	"github.com/dmitrijs2005/roomsplit/internal/config"
	"github.com/dmitrijs2005/roomsplit/internal/server"
	"github.com/joho/godotenv"
)

func main() {

	// a missing .env is fine; real environment variables still apply
	_ = godotenv.Load()

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := server.NewApp(ctx, cfg)

	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)

}
