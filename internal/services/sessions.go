package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/localnerve/httpassert/internal/models"
	"gorm.io/gorm"
)

// CreateSession stores a new session for user and returns it
func CreateSession(db *gorm.DB, user string) (models.Session, error) {
	user = strings.TrimSpace(user)
	if user == "" {
		return models.Session{}, fmt.Errorf("%w: user is required", ErrInvalid)
	}

	session := models.Session{
		Token:    uuid.NewString(),
		UserName: user,
	}
	if err := db.Create(&session).Error; err != nil {
		return models.Session{}, fmt.Errorf("failed to create session: %w", err)
	}
	return session, nil
}

// LookupSession returns the session for token
func LookupSession(db *gorm.DB, token string) (models.Session, error) {
	var session models.Session
	err := db.Where("token = ?", token).First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return session, ErrNotFound
	}
	return session, err
}

// DeleteSession removes the session for token; missing sessions are not an error
func DeleteSession(db *gorm.DB, token string) error {
	return db.Where("token = ?", token).Delete(&models.Session{}).Error
}
