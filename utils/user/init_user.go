package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"

	"github.com/geodata/location-admin/src/db"
	"github.com/geodata/location-admin/src/services"
	"github.com/joho/godotenv"
)

func main() {
	username := flag.String("username", "admin", "user to create")
	password := flag.String("password", "", "password to set")
	reset := flag.Bool("reset", false, "reset the password of an existing user")
	flag.Parse()

	if *password == "" {
		log.Fatal("-password is required")
	}

	// Environment variables may come from a .env file
	_ = godotenv.Load()
	dsn := os.Getenv("DB_DSN")
	database, err := db.Connect(dsn)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	if err := db.Migrate(database); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	ctx := context.Background()
	users := services.NewUserService(database)

	if *reset {
		if err := users.ResetPassword(ctx, *username, *password); err != nil {
			if errors.Is(err, services.ErrNotFound) {
				log.Fatalf("User '%s' does not exist", *username)
			}
			log.Fatalf("failed to reset password: %v", err)
		}
		log.Printf("Password of user '%s' reset", *username)
		return
	}

	created, err := users.EnsureUser(ctx, *username, *password)
	if err != nil {
		log.Fatalf("failed to create user: %v", err)
	}
	if !created {
		log.Printf("User '%s' already exists", *username)
		return
	}
	log.Printf("User '%s' created", *username)
}
