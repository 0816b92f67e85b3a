package main

import (
	_ "caca_precos/docs"
	"caca_precos/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Price Capture API
// @version         1.0
// @description     Price submission, reconciliation and moderation pipeline backed by DynamoDB.

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
