package repo

import "github.com/otuedon/shop-tracker/internal/models"

// NotificationRepository defines the interface for notification data operations.
type NotificationRepository interface {
	Create(n models.Notification) (models.Notification, error)
	GetAll(ownerID string) ([]models.Notification, error)
	GetByID(ownerID, id string) (models.Notification, error)
	MarkRead(ownerID, id string) error
	Delete(ownerID, id string) error
}
