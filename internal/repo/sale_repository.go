package repo

import "github.com/otuedon/shop-tracker/internal/models"

// SalesSummary aggregates a user's sales for the dashboard.
type SalesSummary struct {
	TotalAmount  float64 `json:"total_amount"`
	TotalProfit  float64 `json:"total_profit"`
	Transactions int     `json:"transactions"`
}

// SaleRepository defines the interface for sale data operations.
type SaleRepository interface {
	Create(sale models.Sale) (models.Sale, error)
	GetAll(ownerID string) ([]models.Sale, error)
	Summary(ownerID string) (SalesSummary, error)
}
