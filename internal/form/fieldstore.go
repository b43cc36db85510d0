package form

import (
	"strconv"
	"strings"

	"github.com/otuedon/shop-tracker/internal/models"
)

// defaultQuantityType is preselected when the form opens.
const defaultQuantityType = "Single Items"

// Field enumerates the closed set of writable draft fields. Nested paths from
// the form ("supplier.phone") map onto plain variants here, so a typo is a
// compile- or parse-time error instead of a silently dropped update.
type Field int

const (
	FieldName Field = iota
	FieldSKU
	FieldCategory
	FieldQuantityType
	FieldUnitsInStock
	FieldCostPrice
	FieldSellingPrice
	FieldLowStockThreshold
	FieldExpiryDay
	FieldExpiryMonth
	FieldExpiryYear
	FieldSupplierName
	FieldSupplierPhone
)

var fieldNames = map[string]Field{
	"name":                FieldName,
	"sku":                 FieldSKU,
	"category":            FieldCategory,
	"quantity_type":       FieldQuantityType,
	"units_in_stock":      FieldUnitsInStock,
	"cost_price":          FieldCostPrice,
	"selling_price":       FieldSellingPrice,
	"low_stock_threshold": FieldLowStockThreshold,
	"expiry.day":          FieldExpiryDay,
	"expiry.month":        FieldExpiryMonth,
	"expiry.year":         FieldExpiryYear,
	"supplier.name":       FieldSupplierName,
	"supplier.phone":      FieldSupplierPhone,
}

// ParseField resolves a wire-level field name to its Field.
func ParseField(name string) (Field, error) {
	f, ok := fieldNames[name]
	if !ok {
		return 0, ErrUnknownField
	}
	return f, nil
}

// Expiry holds the three expiry inputs exactly as entered.
type Expiry struct {
	Day   string `json:"day"`
	Month string `json:"month"`
	Year  string `json:"year"`
}

// SupplierDraft holds the supplier inputs exactly as entered.
type SupplierDraft struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// Draft is the in-progress product record. Numeric fields stay strings until
// the save pipeline coerces them; nothing is validated on the way in.
type Draft struct {
	Name              string        `json:"name"`
	SKU               string        `json:"sku"`
	Category          string        `json:"category"`
	Image             *ImageRef     `json:"image,omitempty"`
	QuantityType      string        `json:"quantity_type"`
	UnitsInStock      string        `json:"units_in_stock"`
	CostPrice         string        `json:"cost_price"`
	SellingPrice      string        `json:"selling_price"`
	LowStockThreshold string        `json:"low_stock_threshold"`
	Expiry            Expiry        `json:"expiry"`
	Supplier          SupplierDraft `json:"supplier"`
}

func emptyDraft() Draft {
	return Draft{QuantityType: defaultQuantityType}
}

// FieldStore holds one form session's draft. It is a pure merge layer: set a
// leaf, keep its siblings.
type FieldStore struct {
	draft Draft
}

// NewFieldStore creates an empty store for an add flow.
func NewFieldStore() *FieldStore {
	return &FieldStore{draft: emptyDraft()}
}

// Set writes one field value.
func (s *FieldStore) Set(f Field, value string) {
	switch f {
	case FieldName:
		s.draft.Name = value
	case FieldSKU:
		s.draft.SKU = value
	case FieldCategory:
		s.draft.Category = value
	case FieldQuantityType:
		s.draft.QuantityType = value
	case FieldUnitsInStock:
		s.draft.UnitsInStock = value
	case FieldCostPrice:
		s.draft.CostPrice = value
	case FieldSellingPrice:
		s.draft.SellingPrice = value
	case FieldLowStockThreshold:
		s.draft.LowStockThreshold = value
	case FieldExpiryDay:
		s.draft.Expiry.Day = value
	case FieldExpiryMonth:
		s.draft.Expiry.Month = value
	case FieldExpiryYear:
		s.draft.Expiry.Year = value
	case FieldSupplierName:
		s.draft.Supplier.Name = value
	case FieldSupplierPhone:
		s.draft.Supplier.Phone = value
	}
}

// SetImage replaces the staged image reference. A nil ref clears it.
func (s *FieldStore) SetImage(ref *ImageRef) {
	if ref == nil {
		s.draft.Image = nil
		return
	}
	r := *ref
	s.draft.Image = &r
}

// Snapshot returns a read-only copy of the draft.
func (s *FieldStore) Snapshot() Draft {
	d := s.draft
	if d.Image != nil {
		img := *d.Image
		d.Image = &img
	}
	return d
}

// Reset restores the store to its initial empty state.
func (s *FieldStore) Reset() {
	s.draft = emptyDraft()
}

// Seed loads an existing product into the store for the edit flow,
// decomposing the combined expiry date back into its parts.
func (s *FieldStore) Seed(p models.Product) {
	d := Draft{
		Name:         p.Name,
		SKU:          p.Barcode,
		Category:     p.Category,
		QuantityType: p.QuantityType,
		UnitsInStock: strconv.Itoa(p.UnitsInStock),
		CostPrice:    formatPrice(p.CostPrice),
		SellingPrice: formatPrice(p.SellingPrice),
		Supplier:     SupplierDraft{Name: p.Supplier.Name, Phone: p.Supplier.Phone},
	}
	if d.QuantityType == "" {
		d.QuantityType = defaultQuantityType
	}
	if p.LowStockThreshold > 0 {
		d.LowStockThreshold = strconv.Itoa(p.LowStockThreshold)
	}
	if p.ImageURL != "" {
		d.Image = &ImageRef{Kind: ImageRemote, URI: p.ImageURL}
	}
	if p.ExpiryDate != "" {
		parts := strings.SplitN(p.ExpiryDate, "/", 3)
		for len(parts) < 3 {
			parts = append(parts, "")
		}
		d.Expiry = Expiry{Month: parts[0], Day: parts[1], Year: parts[2]}
	}
	s.draft = d
}

func formatPrice(v float64) string {
	if v == 0 {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
