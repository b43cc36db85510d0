package form

import (
	"context"
	"strconv"
	"time"

	"github.com/otuedon/shop-tracker/internal/models"
	"github.com/otuedon/shop-tracker/internal/repo"
)

// Fallbacks applied once, at persist time. Absence never blocks a save.
const (
	fallbackName          = "Untitled Product"
	fallbackCategory      = "Food"
	fallbackThreshold     = 10
	fallbackExpiryDate    = "12/01/2025"
	fallbackExpiryDay     = "01"
	fallbackSupplierName  = "Gideon Otuedor"
	fallbackSupplierPhone = "+234 123 4567 890"
)

// Pipeline is the terminal transition from draft to persisted product:
// validate, upload the staged image, coerce and default the fields, create or
// update through the store. Every failure comes back as a tagged error and
// leaves the draft intact for retry.
type Pipeline struct {
	products repo.ProductRepository
	staging  *Staging
	now      func() time.Time
}

func NewPipeline(products repo.ProductRepository, staging *Staging) *Pipeline {
	return &Pipeline{products: products, staging: staging, now: time.Now}
}

// WithClock overrides the persistence timestamp clock; tests use this.
func (p *Pipeline) WithClock(now func() time.Time) *Pipeline {
	p.now = now
	return p
}

// Submit runs the draft through the save pipeline. existingID is empty for
// the add flow; for the edit flow it carries the product being updated.
func (p *Pipeline) Submit(ctx context.Context, store *FieldStore, ownerID, existingID string) (models.Product, error) {
	if ownerID == "" {
		return models.Product{}, ErrAuthRequired
	}

	d := store.Snapshot()

	// Validating
	for step := 0; step <= 1; step++ {
		if mf := ValidateStep(step, d); mf != nil {
			return models.Product{}, mf
		}
	}

	// Uploading
	var imageURL string
	if d.Image != nil {
		remote, err := p.staging.Commit(ctx, *d.Image, ownerID)
		if err != nil {
			return models.Product{}, err
		}
		// Once durable, the draft keeps the remote ref so a retry after a
		// persist failure does not upload twice.
		store.SetImage(&remote)
		imageURL = remote.URI
	}

	// Persisting
	product := buildProduct(d, ownerID, imageURL, p.now())
	var (
		saved models.Product
		err   error
	)
	if existingID != "" {
		current, getErr := p.products.GetByID(ownerID, existingID)
		if getErr != nil {
			return models.Product{}, &PersistError{Cause: getErr}
		}
		product.ID = existingID
		// An edit keeps the original DateAdded; only UpdatedAt moves.
		product.DateAdded = current.DateAdded
		product.UpdatedAt = p.now().UTC().Format(time.RFC3339)
		saved, err = p.products.Update(product)
	} else {
		saved, err = p.products.Create(product)
	}
	if err != nil {
		return models.Product{}, &PersistError{Cause: err}
	}
	return saved, nil
}

// buildProduct applies the coercion-and-defaulting policy exactly once.
// Unparseable numerics become 0, never an error; a zero or missing threshold
// becomes 10; a missing expiry month or year selects the fixed fallback date.
func buildProduct(d Draft, ownerID, imageURL string, now time.Time) models.Product {
	product := models.Product{
		OwnerID:           ownerID,
		Name:              orDefault(d.Name, fallbackName),
		Category:          orDefault(d.Category, fallbackCategory),
		Barcode:           d.SKU,
		ImageURL:          imageURL,
		QuantityType:      orDefault(d.QuantityType, defaultQuantityType),
		UnitsInStock:      atoiOrZero(d.UnitsInStock),
		CostPrice:         parseFloatOrZero(d.CostPrice),
		SellingPrice:      parseFloatOrZero(d.SellingPrice),
		LowStockThreshold: atoiOrZero(d.LowStockThreshold),
		ExpiryDate:        fallbackExpiryDate,
		Supplier: models.Supplier{
			Name:  orDefault(d.Supplier.Name, fallbackSupplierName),
			Phone: orDefault(d.Supplier.Phone, fallbackSupplierPhone),
		},
		DateAdded: now.UTC().Format(time.RFC3339),
	}

	if product.LowStockThreshold == 0 {
		product.LowStockThreshold = fallbackThreshold
	}
	if d.Expiry.Month != "" && d.Expiry.Year != "" {
		product.ExpiryDate = d.Expiry.Month + "/" + orDefault(d.Expiry.Day, fallbackExpiryDay) + "/" + d.Expiry.Year
	}
	return product
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func atoiOrZero(s string) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return v
}

func parseFloatOrZero(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
