package main

import (
	"context"
	"log"

	"github.com/hyperaware/doorbell-relay/internal/relay"
	"github.com/hyperaware/doorbell-relay/internal/relay/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := relay.NewApp(ctx, cfg)

	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)

}
