package repo

import (
	"sort"

	"github.com/google/uuid"
	"github.com/otuedon/shop-tracker/internal/models"
)

// InMemorySaleRepository is an in-memory implementation of SaleRepository.
type InMemorySaleRepository struct {
	sales []models.Sale
}

func NewInMemorySaleRepository() *InMemorySaleRepository {
	return &InMemorySaleRepository{sales: []models.Sale{}}
}

func (r *InMemorySaleRepository) Create(sale models.Sale) (models.Sale, error) {
	sale.ID = uuid.NewString()
	r.sales = append(r.sales, sale)
	return sale, nil
}

func (r *InMemorySaleRepository) GetAll(ownerID string) ([]models.Sale, error) {
	var owned []models.Sale
	for _, s := range r.sales {
		if s.OwnerID == ownerID {
			owned = append(owned, s)
		}
	}
	sort.Slice(owned, func(i, j int) bool { return owned[i].Date > owned[j].Date })
	return owned, nil
}

func (r *InMemorySaleRepository) Summary(ownerID string) (SalesSummary, error) {
	var sum SalesSummary
	for _, s := range r.sales {
		if s.OwnerID == ownerID {
			sum.TotalAmount += s.Amount
			sum.TotalProfit += s.Profit
			sum.Transactions++
		}
	}
	return sum, nil
}

func (r *InMemorySaleRepository) Clear() {
	r.sales = []models.Sale{}
}
