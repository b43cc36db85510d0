package handlers

import (
	"github.com/otuedon/shop-tracker/internal/form"
	"github.com/otuedon/shop-tracker/internal/models"
)

type OTPRequest struct {
	Phone string `json:"phone"`
}

type OTPRequestResult struct {
	Message string `json:"message"`
	// DevCode carries the plaintext code in development mode only.
	DevCode string `json:"dev_code,omitempty"`
}

type OTPVerifyRequest struct {
	Phone string `json:"phone"`
	Code  string `json:"code"`
}

type AuthResult struct {
	Token        string      `json:"token"`
	RefreshToken string      `json:"refresh_token"`
	User         models.User `json:"user"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type RefreshResult struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refresh_token"`
}

type UpdateProfileRequest struct {
	Name         string `json:"name"`
	ProfileImage string `json:"profile_image"`
}

type BusinessTypeRequest struct {
	BusinessType string `json:"business_type"`
}

type FieldUpdate struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

type FieldsRequest struct {
	Fields []FieldUpdate `json:"fields"`
}

type DraftResponse struct {
	ID       string     `json:"id"`
	Step     int        `json:"step"`
	Progress float64    `json:"progress"`
	Busy     bool       `json:"busy"`
	Draft    form.Draft `json:"draft"`
}

type AdvanceResult struct {
	Step          int      `json:"step"`
	Progress      float64  `json:"progress"`
	MissingFields []string `json:"missing_fields,omitempty"`
}

type ProductResponse struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	Category          string          `json:"category"`
	Barcode           string          `json:"barcode"`
	ImageURL          string          `json:"image_url,omitempty"`
	QuantityType      string          `json:"quantity_type"`
	UnitsInStock      int             `json:"units_in_stock"`
	CostPrice         float64         `json:"cost_price"`
	SellingPrice      float64         `json:"selling_price"`
	LowStockThreshold int             `json:"low_stock_threshold"`
	ExpiryDate        string          `json:"expiry_date"`
	Supplier          models.Supplier `json:"supplier"`
	DateAdded         string          `json:"date_added,omitempty"`
	LowStock          bool            `json:"low_stock,omitempty"`
}

func toProductResponse(p models.Product) ProductResponse {
	return ProductResponse{
		ID:                p.ID,
		Name:              p.Name,
		Category:          p.Category,
		Barcode:           p.Barcode,
		ImageURL:          p.ImageURL,
		QuantityType:      p.QuantityType,
		UnitsInStock:      p.UnitsInStock,
		CostPrice:         p.CostPrice,
		SellingPrice:      p.SellingPrice,
		LowStockThreshold: p.LowStockThreshold,
		ExpiryDate:        p.ExpiryDate,
		Supplier:          p.Supplier,
		DateAdded:         p.DateAdded,
		LowStock:          p.LowStock(),
	}
}

type Meta struct {
	TotalCount int `json:"total_count"`
}

type ProductsSearchResult struct {
	Data []ProductResponse `json:"data"`
	Meta Meta              `json:"meta,omitempty"`
}

type SaleRequest struct {
	ProductID string   `json:"product_id"`
	Quantity  int      `json:"quantity"`
	Amount    *float64 `json:"amount,omitempty"` // overrides quantity * selling price
}

type SaleResponse struct {
	ID          string  `json:"id"`
	ProductID   string  `json:"product_id,omitempty"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	Amount      float64 `json:"amount"`
	Profit      float64 `json:"profit"`
	Date        string  `json:"date"`
}

type SummaryResponse struct {
	TotalSales   float64 `json:"total_sales"`
	Profit       float64 `json:"profit"`
	Transactions int     `json:"transactions"`
	StockLeft    int     `json:"stock_left"`
}

type NotificationResponse struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	ProductID string `json:"product_id,omitempty"`
	Read      bool   `json:"read"`
	DateAdded string `json:"date_added"`
}
