package models

// Sale records a completed sale of a product.
type Sale struct {
	ID          string  `json:"id"`
	OwnerID     string  `json:"user_id"`
	ProductID   string  `json:"product_id,omitempty"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	Amount      float64 `json:"amount"`
	Profit      float64 `json:"profit"`
	Date        string  `json:"date"`
}
