package main

import (
	_ "smartride/docs"
	"smartride/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Smart Ride Booking API
// @version         1.0
// @description     Delivery booking funnel: wizard sessions, pricing and card checkout.

// @contact.name   API Support

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
