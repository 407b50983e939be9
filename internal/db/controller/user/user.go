// Package user provides operations for admin panel accounts.
package user

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/garantico/feedsite/internal/db/models"
)

var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrUsernameEmpty is returned for an empty username.
	ErrUsernameEmpty = errors.New("username cannot be empty")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// GetByUsername returns the user with the given username.
func GetByUsername(db *gorm.DB, username string) (*models.User, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if username == "" {
		return nil, ErrUsernameEmpty
	}

	var u models.User
	result := db.Where("username = ?", username).First(&u)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, result.Error
	}

	return &u, nil
}

// Upsert creates the user or replaces its password hash when the username
// already exists. Used by the create-admin command.
func Upsert(db *gorm.DB, username, passwordHash string) error {
	if db == nil {
		return ErrDBNil
	}
	if username == "" {
		return ErrUsernameEmpty
	}

	existing, err := GetByUsername(db, username)
	if errors.Is(err, ErrUserNotFound) {
		return db.Create(&models.User{Username: username, Password: passwordHash}).Error
	}
	if err != nil {
		return err
	}

	existing.Password = passwordHash

	return db.Save(existing).Error
}

// TouchLastLogin records a successful login.
func TouchLastLogin(db *gorm.DB, id uint64) error {
	if db == nil {
		return ErrDBNil
	}

	now := time.Now()

	return db.Model(&models.User{}).Where("id = ?", id).Update("last_login", &now).Error
}
