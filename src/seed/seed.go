package seed

import (
	"context"
	"log"

	"github.com/geodata/location-admin/src/services"
	"gorm.io/gorm"
)

// Seed creates the administrator account when it does not exist yet.
func Seed(ctx context.Context, db *gorm.DB, username, password string) error {
	created, err := services.NewUserService(db).EnsureUser(ctx, username, password)
	if err != nil {
		return err
	}
	if created {
		log.Printf("User '%s' created\n", username)
	} else {
		log.Printf("User '%s' already exists\n", username)
	}
	return nil
}
