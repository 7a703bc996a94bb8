package main

import (
	"log"

	"hades-save-manager/internal/app"
	"hades-save-manager/internal/config"
)

func main() {
	cfg := config.FromEnvironment()

	application, err := app.NewApplication(cfg)
	if err != nil {
		log.Fatalf("Application initialization failed: %v", err)
	}

	if err := application.Run(); err != nil {
		log.Fatalf("Application execution failed: %v", err)
	}
}
