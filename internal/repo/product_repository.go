package repo

import "github.com/otuedon/shop-tracker/internal/models"

// ProductRepository defines the interface for product data operations. Every
// read and write is scoped to the owning user.
type ProductRepository interface {
	Create(product models.Product) (models.Product, error)
	GetAll(ownerID string) ([]models.Product, error)
	GetByID(ownerID, id string) (models.Product, error)
	Update(product models.Product) (models.Product, error)
	Delete(ownerID, id string) error
	Filter(ownerID string, f ProductFilter) ([]models.Product, int, error)
	// AdjustStock applies delta to the product's stock level. It returns
	// ErrProductNotFound when the product does not exist and
	// ErrInvalidStockChange when the delta would drive the stock negative.
	AdjustStock(ownerID, id string, delta int) (models.Product, error)
}
