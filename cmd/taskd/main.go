package main

import (
	"log"

	"taskd/cmd/internal/app"

	"github.com/joho/godotenv"
)

func main() {
	// Local development convenience; absence of a .env file is not an error.
	_ = godotenv.Load()

	if err := app.Run(); err != nil {
		log.Fatal(err)
	}
}
