package daemon

import (
	"gorm.io/gorm"

	"github.com/garantico/feedsite/internal/config"
	"github.com/garantico/feedsite/internal/db/models"
)

func seed(_ *config.Config, db *gorm.DB) {
	// Seed a default admin if the user table is empty. The password must be
	// changed with the create-admin command before going live.

	var count int64
	db.Model(&models.User{}).Count(&count)
	if count == 0 {
		db.Create(
			&models.User{
				Username: "admin",
				Password: models.HashPassword("changeme"),
			},
		)
	}
}
