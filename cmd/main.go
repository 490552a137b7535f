// Package main is the entry point for the menu-service application.
//
// @title           Menu Service API
// @version         1.0.0
// @description     API for generating weekly menus from a dish catalog and fridge stock.
//
//	Menus are filled per meal type, ranked by fridge overlap, and come with a
//	shopping list netted against what is already in the fridge.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/guttosm/menu-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @tag.name        Menus
// @tag.description Menu generation and lifecycle
//
// @tag.name        Dishes
// @tag.description Dish catalog
//
// @tag.name        Fridge
// @tag.description Fridge stock
//
// @tag.name        Shopping Lists
// @tag.description Shopping lists derived from menus
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	_ "github.com/guttosm/menu-service/docs" // swagger docs

	"github.com/guttosm/menu-service/config"
	"github.com/guttosm/menu-service/internal/app"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Load()

	application := app.InitializeApp(cfg)
	server := app.NewServer(application.Router, cfg.Server)

	err := server.Run()
	application.Close()
	if err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
