package repo

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/otuedon/shop-tracker/internal/models"
)

type PostgresSaleRepository struct {
	db *sql.DB
}

func NewPostgresSaleRepository(db *sql.DB) *PostgresSaleRepository {
	return &PostgresSaleRepository{db: db}
}

func (r *PostgresSaleRepository) Create(s models.Sale) (models.Sale, error) {
	s.ID = uuid.NewString()
	query := `INSERT INTO sales (id, owner_id, product_id, product_name, quantity, amount, profit, date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	_, err := r.db.ExecContext(ctx, query, s.ID, s.OwnerID, s.ProductID, s.ProductName,
		s.Quantity, s.Amount, s.Profit, s.Date)
	if err != nil {
		return models.Sale{}, err
	}
	return s, nil
}

func (r *PostgresSaleRepository) GetAll(ownerID string) ([]models.Sale, error) {
	query := `SELECT id, owner_id, product_id, product_name, quantity, amount, profit, date
		FROM sales WHERE owner_id = $1 ORDER BY date DESC`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sales []models.Sale
	for rows.Next() {
		var s models.Sale
		if err := rows.Scan(&s.ID, &s.OwnerID, &s.ProductID, &s.ProductName,
			&s.Quantity, &s.Amount, &s.Profit, &s.Date); err != nil {
			return nil, err
		}
		sales = append(sales, s)
	}
	return sales, rows.Err()
}

func (r *PostgresSaleRepository) Summary(ownerID string) (SalesSummary, error) {
	query := `SELECT COALESCE(SUM(amount), 0), COALESCE(SUM(profit), 0), COUNT(*)
		FROM sales WHERE owner_id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var sum SalesSummary
	err := r.db.QueryRowContext(ctx, query, ownerID).
		Scan(&sum.TotalAmount, &sum.TotalProfit, &sum.Transactions)
	return sum, err
}
