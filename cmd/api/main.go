package main

import (
	_ "github.com/joho/godotenv/autoload"

	_ "github.com/jonmaxmore/Botanical-Audit-Framework-sub007/docs"
	"github.com/jonmaxmore/Botanical-Audit-Framework-sub007/internal/adapter/http/routes"
)

// @title           Certification Lifecycle API
// @version         1.0
// @description     Agricultural certification lifecycle engine (applications, inspections, certificates) backed by DynamoDB.
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
