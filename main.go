package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/IceRabbit1999/watchingir/configuration"
	"github.com/IceRabbit1999/watchingir/internal/api/app"
)

// @title           Watchingir REST API
// @version         1.0
// @description     Latest Dota 2 match tracker for a list of friends

// @host      localhost:8000
func main() {
	_ = godotenv.Load()

	err := configuration.LoadConfig(".env")
	if err != nil {
		log.Fatalln("Failed to load environment variables!", err.Error())
	}
	app.Run(&configuration.EnvConfig)
}
