package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	mw "github.com/otuedon/shop-tracker/internal/http/middleware"
	"github.com/otuedon/shop-tracker/internal/logger"
	"github.com/otuedon/shop-tracker/internal/models"
	"github.com/otuedon/shop-tracker/internal/repo"
	"go.uber.org/zap"
)

// RecordSaleHandler godoc
// @Summary Record a sale and decrement stock
// @Tags sales
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param sale body SaleRequest true "Sale to record"
// @Success 201 {object} SaleResponse
// @Failure 400 {string} string "Invalid input"
// @Failure 404 {string} string "Product not found"
// @Failure 409 {string} string "Not enough stock"
// @Router /sales [post]
func RecordSaleHandler(w http.ResponseWriter, r *http.Request) {
	ownerID := mw.UserID(r)

	var req SaleRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if req.ProductID == "" {
		http.Error(w, "product_id is required", http.StatusBadRequest)
		return
	}
	if req.Quantity <= 0 {
		http.Error(w, "quantity must be greater than zero", http.StatusBadRequest)
		return
	}

	product, err := productRepo.GetByID(ownerID, req.ProductID)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch product", http.StatusInternalServerError)
		return
	}

	updated, err := productRepo.AdjustStock(ownerID, product.ID, -req.Quantity)
	if err != nil {
		if errors.Is(err, repo.ErrInvalidStockChange) {
			http.Error(w, "not enough stock for this sale", http.StatusConflict)
			return
		}
		http.Error(w, "could not update stock", http.StatusInternalServerError)
		return
	}

	amount := product.SellingPrice * float64(req.Quantity)
	if req.Amount != nil {
		amount = *req.Amount
	}

	sale := models.Sale{
		OwnerID:     ownerID,
		ProductID:   product.ID,
		ProductName: product.Name,
		Quantity:    req.Quantity,
		Amount:      amount,
		Profit:      (product.SellingPrice - product.CostPrice) * float64(req.Quantity),
		Date:        time.Now().UTC().Format(time.RFC3339),
	}
	created, err := saleRepo.Create(sale)
	if err != nil {
		http.Error(w, "could not record sale", http.StatusInternalServerError)
		return
	}

	notifyStockLevel(ownerID, updated)

	writeJSON(w, http.StatusCreated, SaleResponse{
		ID:          created.ID,
		ProductID:   created.ProductID,
		ProductName: created.ProductName,
		Quantity:    created.Quantity,
		Amount:      created.Amount,
		Profit:      created.Profit,
		Date:        created.Date,
	})
}

// notifyStockLevel raises a notification when a sale empties the shelf or
// crosses the low-stock threshold.
func notifyStockLevel(ownerID string, p models.Product) {
	var n models.Notification
	switch {
	case p.UnitsInStock == 0:
		n = models.Notification{
			Type:  models.NotificationOutOfStock,
			Title: "Out of stock",
			Body:  fmt.Sprintf("%s is out of stock", p.Name),
		}
	case p.LowStock():
		n = models.Notification{
			Type:  models.NotificationLowStock,
			Title: "Low stock",
			Body:  fmt.Sprintf("%s is running low (%d left)", p.Name, p.UnitsInStock),
		}
	default:
		return
	}

	n.OwnerID = ownerID
	n.ProductID = p.ID
	n.DateAdded = time.Now().UTC().Format(time.RFC3339)
	if _, err := notificationRepo.Create(n); err != nil {
		logger.Get().Warn("failed to create stock notification", zap.Error(err))
	}
}

// GetSalesHandler godoc
// @Summary List sales, newest first
// @Tags sales
// @Produce json
// @Security BearerAuth
// @Success 200 {array} SaleResponse
// @Failure 500 {string} string "Internal error"
// @Router /sales [get]
func GetSalesHandler(w http.ResponseWriter, r *http.Request) {
	sales, err := saleRepo.GetAll(mw.UserID(r))
	if err != nil {
		http.Error(w, "could not fetch sales", http.StatusInternalServerError)
		return
	}
	response := make([]SaleResponse, len(sales))
	for i, s := range sales {
		response[i] = SaleResponse{
			ID:          s.ID,
			ProductID:   s.ProductID,
			ProductName: s.ProductName,
			Quantity:    s.Quantity,
			Amount:      s.Amount,
			Profit:      s.Profit,
			Date:        s.Date,
		}
	}
	writeJSON(w, http.StatusOK, response)
}
