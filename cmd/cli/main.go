package main

import (
	"context"
	"log"

	"github.com/dmitrijs2005/roomsplit/internal/cli"
	"github.com/dmitrijs2005/roomsplit/internal/config"
	"github.com/joho/godotenv"
)

func main() {

	_ = godotenv.Load()

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := cli.NewApp(ctx, cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
