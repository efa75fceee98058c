package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/cardcast-dev/cardcast/db"
	"github.com/cardcast-dev/cardcast/internal/auth"
	"github.com/cardcast-dev/cardcast/internal/config"
	"github.com/cardcast-dev/cardcast/internal/handlers"
	"github.com/cardcast-dev/cardcast/internal/router"
	"github.com/cardcast-dev/cardcast/internal/services"
	"github.com/cardcast-dev/cardcast/internal/ws"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env file not found, using environment")
	}

	cfg := config.Load()

	if err := auth.InitJWTSecret(); err != nil {
		log.Fatalf("Failed to initialize JWT: %v", err)
	}

	if err := db.ConnectDatabase(cfg.DSN()); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	hub := ws.NewHub()

	userService := services.NewUserService(db.DB)
	teamService := services.NewTeamService(db.DB)
	cardService := services.NewCardService(db.DB, teamService)
	verificationService := services.NewVerificationService(db.DB, teamService, hub)

	r := router.NewRouter(router.Handlers{
		Auth: handlers.NewAuthHandler(userService),
		Team: handlers.NewTeamHandler(teamService),
		Card: handlers.NewCardHandler(cardService, verificationService),
		WS:   handlers.NewWSHandler(hub, teamService),
	})

	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
