package repo

import "github.com/otuedon/shop-tracker/internal/models"

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	// CreateOrGetByPhone returns the existing user for a phone number, or
	// creates one on first sign-in.
	CreateOrGetByPhone(phone string) (models.User, error)
	GetByID(id string) (models.User, error)
	UpdateProfile(user models.User) (models.User, error)
	SetBusinessType(id, businessType string) error
}
