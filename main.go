package main

import (
	"context"
	"log"

	"github.com/geodata/location-admin/src/config"
	"github.com/geodata/location-admin/src/db"
	"github.com/geodata/location-admin/src/middleware"
	"github.com/geodata/location-admin/src/routes"
	"github.com/geodata/location-admin/src/seed"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading configuration: %v\n", err)
	}
	middleware.SetSecretKey(cfg.JWTSecret)

	// Database connection
	database, err := db.Connect(cfg.DSN)
	if err != nil {
		log.Fatalf("Error connecting to database: %v\n", err)
	}

	// Auto-migrate models
	if err := db.Migrate(database); err != nil {
		log.Fatalf("Error during auto-migration: %v\n", err)
	}

	if err := seed.Seed(context.Background(), database, cfg.AdminUsername, cfg.AdminPassword); err != nil {
		log.Fatalf("Error seeding database: %v\n", err)
	}

	router, err := routes.NewRouter(database, routes.Options{
		PageSize:    cfg.PageSize,
		CORSOrigins: cfg.CORSOrigins,
	})
	if err != nil {
		log.Fatalf("Error building router: %v\n", err)
	}

	log.Printf("Server is running on %s\n", cfg.Host)
	if err := router.Run(cfg.Host); err != nil {
		log.Fatalf("Error starting server on %s: %v\n", cfg.Host, err)
	}
}
