package handlers

import (
	"net/http"

	mw "github.com/otuedon/shop-tracker/internal/http/middleware"
)

// GetSummaryHandler godoc
// @Summary Dashboard totals: sales, profit, transactions and stock left
// @Tags summary
// @Produce json
// @Security BearerAuth
// @Success 200 {object} SummaryResponse
// @Failure 500 {string} string "Internal error"
// @Router /summary [get]
func GetSummaryHandler(w http.ResponseWriter, r *http.Request) {
	ownerID := mw.UserID(r)

	summary, err := saleRepo.Summary(ownerID)
	if err != nil {
		http.Error(w, "could not fetch sales summary", http.StatusInternalServerError)
		return
	}

	products, err := productRepo.GetAll(ownerID)
	if err != nil {
		http.Error(w, "could not fetch products", http.StatusInternalServerError)
		return
	}
	stockLeft := 0
	for _, p := range products {
		stockLeft += p.UnitsInStock
	}

	writeJSON(w, http.StatusOK, SummaryResponse{
		TotalSales:   summary.TotalAmount,
		Profit:       summary.TotalProfit,
		Transactions: summary.Transactions,
		StockLeft:    stockLeft,
	})
}
