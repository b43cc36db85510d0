package repo

import (
	"time"

	"github.com/google/uuid"
	"github.com/otuedon/shop-tracker/internal/models"
)

// InMemoryUserRepository is an in-memory implementation of UserRepository.
type InMemoryUserRepository struct {
	users []models.User
}

func NewInMemoryUserRepository() *InMemoryUserRepository {
	return &InMemoryUserRepository{users: []models.User{}}
}

func (r *InMemoryUserRepository) CreateOrGetByPhone(phone string) (models.User, error) {
	for _, u := range r.users {
		if u.Phone == phone {
			return u, nil
		}
	}
	u := models.User{
		ID:        uuid.NewString(),
		Phone:     phone,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	r.users = append(r.users, u)
	return u, nil
}

func (r *InMemoryUserRepository) GetByID(id string) (models.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return models.User{}, ErrUserNotFound
}

func (r *InMemoryUserRepository) UpdateProfile(user models.User) (models.User, error) {
	for i, u := range r.users {
		if u.ID == user.ID {
			user.Phone = u.Phone
			user.BusinessType = u.BusinessType
			user.CreatedAt = u.CreatedAt
			user.UpdatedAt = time.Now().UTC()
			r.users[i] = user
			return user, nil
		}
	}
	return models.User{}, ErrUserNotFound
}

func (r *InMemoryUserRepository) SetBusinessType(id, businessType string) error {
	for i, u := range r.users {
		if u.ID == id {
			r.users[i].BusinessType = businessType
			r.users[i].UpdatedAt = time.Now().UTC()
			return nil
		}
	}
	return ErrUserNotFound
}
