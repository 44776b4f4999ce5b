package main

import (
	"log"

	"github.com/edusearch/edusearch/internal/app"
)

func main() {
	if err := app.New().Run(); err != nil {
		log.Fatalf("❌ edusearch failed to start: %v", err)
	}
}
