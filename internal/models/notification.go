package models

// Notification types surfaced on the home screen.
const (
	NotificationLowStock   = "low_stock"
	NotificationOutOfStock = "out_of_stock"
	NotificationSale       = "sale"
)

type Notification struct {
	ID        string `json:"id"`
	OwnerID   string `json:"user_id"`
	Type      string `json:"type"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	ProductID string `json:"product_id,omitempty"`
	Read      bool   `json:"read"`
	DateAdded string `json:"date_added"`
}
