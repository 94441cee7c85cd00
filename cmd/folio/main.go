package main

import (
	"log"

	_ "github.com/joho/godotenv/autoload"

	"github.com/MrSnakeDoc/folio/internal/app"
)

func main() {
	a, err := app.New()
	if err != nil {
		log.Fatalf("❌ folio failed to start: %v", err)
	}
	if err := a.Run(); err != nil {
		log.Fatalf("❌ folio stopped with error: %v", err)
	}
}
