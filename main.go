package main

import (
	"log"

	"github.com/rohand-19/gully/config"
	_ "github.com/rohand-19/gully/docs"
	"github.com/rohand-19/gully/internal/game"
	"github.com/rohand-19/gully/internal/team"
	"github.com/rohand-19/gully/internal/user"
	"github.com/rohand-19/gully/routes"
)

// @title Gully REST API
// @version 1.0
// @description Scoring backend for a turn-based cricket-simulation game 🏏
// @host localhost:8090
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := config.Initialize(); err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	cfg := config.GetConfig()

	err := config.DB.AutoMigrate(
		&user.User{}, &team.Team{}, &game.Match{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
	log.Println("AutoMigrate successful")

	r := routes.SetupRoutes()

	log.Printf("Starting server on port %s in %s mode\n", cfg.App.Port, cfg.App.Env)
	if err := r.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
