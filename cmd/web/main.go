package main

import (
	"jobboard_backend/internal/app"

	"github.com/joho/godotenv"
)

func main() {
	// Missing .env is fine, configuration falls back to the YAML file
	// and process environment.
	_ = godotenv.Load()

	app.Run()
}
