package repo

import (
	"errors"
	"testing"

	"github.com/otuedon/shop-tracker/internal/models"
)

func TestInMemoryProductRepository_AdjustStock(t *testing.T) {
	r := NewInMemoryProductRepository()
	created, err := r.Create(models.Product{OwnerID: "user-1", Name: "Rice", UnitsInStock: 3})
	if err != nil {
		t.Fatal(err)
	}

	p, err := r.AdjustStock("user-1", created.ID, -2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.UnitsInStock != 1 {
		t.Errorf("expected 1 unit left, got %d", p.UnitsInStock)
	}

	if _, err := r.AdjustStock("user-1", created.ID, -2); !errors.Is(err, ErrInvalidStockChange) {
		t.Errorf("draining below zero should be ErrInvalidStockChange, got %v", err)
	}
	if _, err := r.AdjustStock("user-1", "nope", -1); !errors.Is(err, ErrProductNotFound) {
		t.Errorf("a missing product should be ErrProductNotFound, got %v", err)
	}
	if _, err := r.AdjustStock("user-2", created.ID, -1); !errors.Is(err, ErrProductNotFound) {
		t.Errorf("another owner's product should be ErrProductNotFound, got %v", err)
	}
}

func TestInMemoryProductRepository_FilterLowStockBoundary(t *testing.T) {
	r := NewInMemoryProductRepository()
	atThreshold, _ := r.Create(models.Product{OwnerID: "user-1", Name: "Beans", UnitsInStock: 5, LowStockThreshold: 5})
	r.Create(models.Product{OwnerID: "user-1", Name: "Rice", UnitsInStock: 6, LowStockThreshold: 5})

	got, total, err := r.Filter("user-1", ProductFilter{LowStockOnly: true})
	if err != nil {
		t.Fatal(err)
	}
	if total != 1 || len(got) != 1 || got[0].ID != atThreshold.ID {
		t.Errorf("stock equal to the threshold should match the low stock filter, got %+v", got)
	}
}
