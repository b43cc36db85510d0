package models

// Supplier is the contact attached to a product.
type Supplier struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// Product represents a persisted product document. The ID is assigned by the
// store at create time; a draft never carries one.
type Product struct {
	ID                string   `json:"id"`
	OwnerID           string   `json:"user_id"`
	Name              string   `json:"name"`
	Category          string   `json:"category"`
	Barcode           string   `json:"barcode"`
	ImageURL          string   `json:"image_url,omitempty"`
	QuantityType      string   `json:"quantity_type"`
	UnitsInStock      int      `json:"units_in_stock"`
	CostPrice         float64  `json:"cost_price"`
	SellingPrice      float64  `json:"selling_price"`
	LowStockThreshold int      `json:"low_stock_threshold"`
	ExpiryDate        string   `json:"expiry_date"` // MM/DD/YYYY
	Supplier          Supplier `json:"supplier"`
	DateAdded         string   `json:"date_added,omitempty"`
	UpdatedAt         string   `json:"updated_at,omitempty"`
}

// LowStock reports whether the product sits at or below its threshold.
func (p Product) LowStock() bool {
	return p.UnitsInStock <= p.LowStockThreshold
}
