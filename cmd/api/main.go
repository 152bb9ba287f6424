package main

import (
	_ "woodshop_builds/docs"
	"woodshop_builds/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Woodshop Builds API
// @version         1.0
// @description     Custom build configurator backend: build records, revision versions, render queue and cloud sync.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
