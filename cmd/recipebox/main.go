package main

import (
	"context"
	"log"

	"github.com/dmitrijs2005/recipebox/internal/client/cli"
	"github.com/dmitrijs2005/recipebox/internal/client/config"
)

func main() {
	cfg := config.LoadConfig()

	app, err := cli.NewApp(cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer app.Close()

	app.Run(context.Background())
}
