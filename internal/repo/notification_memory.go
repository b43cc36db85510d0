package repo

import (
	"sort"

	"github.com/google/uuid"
	"github.com/otuedon/shop-tracker/internal/models"
)

// InMemoryNotificationRepository is an in-memory implementation of NotificationRepository.
type InMemoryNotificationRepository struct {
	notifications []models.Notification
}

func NewInMemoryNotificationRepository() *InMemoryNotificationRepository {
	return &InMemoryNotificationRepository{notifications: []models.Notification{}}
}

func (r *InMemoryNotificationRepository) Create(n models.Notification) (models.Notification, error) {
	n.ID = uuid.NewString()
	r.notifications = append(r.notifications, n)
	return n, nil
}

func (r *InMemoryNotificationRepository) GetAll(ownerID string) ([]models.Notification, error) {
	var owned []models.Notification
	for _, n := range r.notifications {
		if n.OwnerID == ownerID {
			owned = append(owned, n)
		}
	}
	sort.Slice(owned, func(i, j int) bool { return owned[i].DateAdded > owned[j].DateAdded })
	return owned, nil
}

func (r *InMemoryNotificationRepository) GetByID(ownerID, id string) (models.Notification, error) {
	for _, n := range r.notifications {
		if n.ID == id && n.OwnerID == ownerID {
			return n, nil
		}
	}
	return models.Notification{}, ErrNotificationNotFound
}

func (r *InMemoryNotificationRepository) MarkRead(ownerID, id string) error {
	for i, n := range r.notifications {
		if n.ID == id && n.OwnerID == ownerID {
			r.notifications[i].Read = true
			return nil
		}
	}
	return ErrNotificationNotFound
}

func (r *InMemoryNotificationRepository) Delete(ownerID, id string) error {
	for i, n := range r.notifications {
		if n.ID == id && n.OwnerID == ownerID {
			r.notifications = append(r.notifications[:i], r.notifications[i+1:]...)
			return nil
		}
	}
	return ErrNotificationNotFound
}

func (r *InMemoryNotificationRepository) Clear() {
	r.notifications = []models.Notification{}
}
