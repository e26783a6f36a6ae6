package main

import (
	"log"

	"github.com/namminarasimhamurthy/ApiEvent/internal/app"
	"github.com/namminarasimhamurthy/ApiEvent/internal/config"

	_ "github.com/lib/pq"
)

func main() {
	cfg := config.MustLoad()

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("app init: %v", err)
	}

	if err = application.Run(); err != nil {
		log.Fatalf("app run: %v", err)
	}
}
