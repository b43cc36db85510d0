package repo

import (
	"strings"

	"github.com/google/uuid"
	"github.com/otuedon/shop-tracker/internal/models"
)

// InMemoryProductRepository is an in-memory implementation of ProductRepository.
type InMemoryProductRepository struct {
	products []models.Product
}

// NewInMemoryProductRepository creates a new instance of InMemoryProductRepository.
func NewInMemoryProductRepository() *InMemoryProductRepository {
	return &InMemoryProductRepository{products: []models.Product{}}
}

// Create adds a new product to the repository, assigning its identity.
func (r *InMemoryProductRepository) Create(product models.Product) (models.Product, error) {
	product.ID = uuid.NewString()
	r.products = append(r.products, product)
	return product, nil
}

// GetAll retrieves all products belonging to ownerID.
func (r *InMemoryProductRepository) GetAll(ownerID string) ([]models.Product, error) {
	var owned []models.Product
	for _, p := range r.products {
		if p.OwnerID == ownerID {
			owned = append(owned, p)
		}
	}
	return owned, nil
}

// GetByID retrieves a product by its ID.
func (r *InMemoryProductRepository) GetByID(ownerID, id string) (models.Product, error) {
	for _, p := range r.products {
		if p.ID == id && p.OwnerID == ownerID {
			return p, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

// Update modifies an existing product in the repository.
func (r *InMemoryProductRepository) Update(product models.Product) (models.Product, error) {
	for i, p := range r.products {
		if p.ID == product.ID && p.OwnerID == product.OwnerID {
			r.products[i] = product
			return product, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

// Delete removes a product from the repository by its ID.
func (r *InMemoryProductRepository) Delete(ownerID, id string) error {
	for i, p := range r.products {
		if p.ID == id && p.OwnerID == ownerID {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return ErrProductNotFound
}

func matchesProductFilter(p models.Product, f ProductFilter) bool {
	if f.Name != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(f.Name)) {
		return false
	}
	if f.Category != "" && p.Category != f.Category {
		return false
	}
	if f.LowStockOnly && !p.LowStock() {
		return false
	}
	return true
}

func (r *InMemoryProductRepository) Filter(ownerID string, f ProductFilter) ([]models.Product, int, error) {
	var filtered []models.Product
	for _, p := range r.products {
		if p.OwnerID == ownerID && matchesProductFilter(p, f) {
			filtered = append(filtered, p)
		}
	}

	if f.Offset != nil && *f.Offset > len(filtered) {
		return []models.Product{}, len(filtered), nil
	}

	start := 0
	if f.Offset != nil {
		start = clamp(*f.Offset, 0, len(filtered))
	}
	end := len(filtered)
	if f.Limit != nil && *f.Limit > 0 {
		end = clamp(start+*f.Limit, start, len(filtered))
	}
	return filtered[start:end], len(filtered), nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// AdjustStock implements ProductRepository.
func (r *InMemoryProductRepository) AdjustStock(ownerID, id string, delta int) (models.Product, error) {
	for i, p := range r.products {
		if p.ID == id && p.OwnerID == ownerID {
			if p.UnitsInStock+delta < 0 {
				return models.Product{}, ErrInvalidStockChange
			}
			p.UnitsInStock += delta
			r.products[i] = p
			return p, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

func (r *InMemoryProductRepository) Clear() {
	r.products = []models.Product{}
}
