package main

import (
	_ "cercovibrados/docs"
	"cercovibrados/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Cercovibrados API
// @version         1.0
// @description     Fence business backend (quotes, catalog, invoicing) backed by DynamoDB.

// @contact.name   API Support

// @host localhost:8080

// @BasePath  /api

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	routes.Run()
}
