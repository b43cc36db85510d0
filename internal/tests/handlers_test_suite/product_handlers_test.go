package handlers_test_suite

import (
	"encoding/json"
	"net/http"
	"testing"

	handler "github.com/otuedon/shop-tracker/internal/http/handlers"
	"github.com/otuedon/shop-tracker/internal/models"
)

func seedProduct(t *testing.T, p models.Product) models.Product {
	t.Helper()
	p.OwnerID = userID
	created, err := productRepo.Create(p)
	if err != nil {
		t.Fatal(err)
	}
	return created
}

func TestGetProductsHandler(t *testing.T) {
	t.Cleanup(clearAll)
	seedProduct(t, models.Product{Name: "Rice", Category: "Food", UnitsInStock: 12, LowStockThreshold: 5})
	seedProduct(t, models.Product{Name: "Soap", Category: "Household", UnitsInStock: 2, LowStockThreshold: 5})

	w := doJSON(http.MethodGet, "/products", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp []handler.ProductResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if len(resp) != 2 {
		t.Fatalf("expected 2 products, got %d", len(resp))
	}
	for _, p := range resp {
		if p.Name == "Soap" && !p.LowStock {
			t.Error("expected Soap flagged low stock")
		}
		if p.Name == "Rice" && p.LowStock {
			t.Error("Rice should not be low stock")
		}
	}
}

func TestGetProductsHandler_StockAtThresholdIsLow(t *testing.T) {
	t.Cleanup(clearAll)
	seedProduct(t, models.Product{Name: "Beans", Category: "Food", UnitsInStock: 5, LowStockThreshold: 5})

	w := doJSON(http.MethodGet, "/products", token, nil)
	var resp []handler.ProductResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if len(resp) != 1 || !resp[0].LowStock {
		t.Errorf("stock equal to the threshold should read as low, got %+v", resp)
	}

	wSearch := doJSON(http.MethodGet, "/products/search?lowStock=true", token, nil)
	var search handler.ProductsSearchResult
	if err := json.NewDecoder(wSearch.Body).Decode(&search); err != nil {
		t.Fatal(err)
	}
	if len(search.Data) != 1 {
		t.Errorf("low stock filter should include the threshold boundary, got %d", len(search.Data))
	}
}

func TestGetProductByIDHandler_NotFound(t *testing.T) {
	t.Cleanup(clearAll)
	if w := doJSON(http.MethodGet, "/products/nope", token, nil); w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestDeleteProductHandler(t *testing.T) {
	t.Cleanup(clearAll)
	created := seedProduct(t, models.Product{Name: "Rice"})

	if w := doJSON(http.MethodDelete, "/products/"+created.ID, token, nil); w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
	if w := doJSON(http.MethodGet, "/products/"+created.ID, token, nil); w.Code != http.StatusNotFound {
		t.Errorf("expected 404 after delete, got %d", w.Code)
	}
}

func TestFilterProductsHandler(t *testing.T) {
	t.Cleanup(clearAll)
	seedProduct(t, models.Product{Name: "Golden Rice", Category: "Food", UnitsInStock: 12, LowStockThreshold: 5})
	seedProduct(t, models.Product{Name: "Brown Rice", Category: "Food", UnitsInStock: 2, LowStockThreshold: 5})
	seedProduct(t, models.Product{Name: "Soap", Category: "Household", UnitsInStock: 9, LowStockThreshold: 5})

	tests := []struct {
		name      string
		query     string
		wantCount int
		wantTotal int
	}{
		{"by name", "?name=rice", 2, 2},
		{"by category", "?category=Household", 1, 1},
		{"low stock only", "?lowStock=true", 1, 1},
		{"paginated", "?limit=2", 2, 3},
		{"offset past the end", "?offset=5", 0, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(http.MethodGet, "/products/search"+tt.query, token, nil)
			if w.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", w.Code)
			}
			var resp handler.ProductsSearchResult
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatal(err)
			}
			if len(resp.Data) != tt.wantCount {
				t.Errorf("expected %d products, got %d", tt.wantCount, len(resp.Data))
			}
			if resp.Meta.TotalCount != tt.wantTotal {
				t.Errorf("expected total %d, got %d", tt.wantTotal, resp.Meta.TotalCount)
			}
		})
	}
}

func TestFilterProductsHandler_InvalidQuery(t *testing.T) {
	t.Cleanup(clearAll)
	if w := doJSON(http.MethodGet, "/products/search?limit=0", token, nil); w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for zero limit, got %d", w.Code)
	}
	if w := doJSON(http.MethodGet, "/products/search?offset=-1", token, nil); w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for negative offset, got %d", w.Code)
	}
}

func TestProducts_OwnerScoped(t *testing.T) {
	t.Cleanup(clearAll)
	created := seedProduct(t, models.Product{Name: "Rice"})

	otherToken, _, err := signIn("+2348088888888")
	if err != nil {
		t.Fatal(err)
	}

	w := doJSON(http.MethodGet, "/products", otherToken, nil)
	var resp []handler.ProductResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if len(resp) != 0 {
		t.Errorf("expected no products for another user, got %d", len(resp))
	}
	if w := doJSON(http.MethodGet, "/products/"+created.ID, otherToken, nil); w.Code != http.StatusNotFound {
		t.Errorf("expected 404 for another user's product, got %d", w.Code)
	}
}
