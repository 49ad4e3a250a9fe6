package main

import (
	_ "autokorea/docs"
	"autokorea/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           AutoKorea CRM API
// @version         1.0
// @description     CRM for a used-car import business: vehicle lifecycle, staff, landed-cost calculator and financial reports, backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	routes.Run()
}
