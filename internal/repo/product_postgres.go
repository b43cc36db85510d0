package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/otuedon/shop-tracker/internal/models"
)

type PostgresProductRepository struct {
	db *sql.DB
}

func NewPostgresProductRepository(db *sql.DB) *PostgresProductRepository {
	return &PostgresProductRepository{db: db}
}

const productColumns = `id, owner_id, name, category, barcode, image_url, quantity_type,
	units_in_stock, cost_price, selling_price, low_stock_threshold, expiry_date,
	supplier_name, supplier_phone, date_added, updated_at`

func scanProduct(row interface{ Scan(...any) error }) (models.Product, error) {
	var p models.Product
	err := row.Scan(&p.ID, &p.OwnerID, &p.Name, &p.Category, &p.Barcode, &p.ImageURL,
		&p.QuantityType, &p.UnitsInStock, &p.CostPrice, &p.SellingPrice,
		&p.LowStockThreshold, &p.ExpiryDate, &p.Supplier.Name, &p.Supplier.Phone,
		&p.DateAdded, &p.UpdatedAt)
	return p, err
}

func (r *PostgresProductRepository) Create(p models.Product) (models.Product, error) {
	p.ID = uuid.NewString()
	query := `INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	_, err := r.db.ExecContext(ctx, query, p.ID, p.OwnerID, p.Name, p.Category, p.Barcode,
		p.ImageURL, p.QuantityType, p.UnitsInStock, p.CostPrice, p.SellingPrice,
		p.LowStockThreshold, p.ExpiryDate, p.Supplier.Name, p.Supplier.Phone,
		p.DateAdded, p.UpdatedAt)
	if err != nil {
		return models.Product{}, err
	}
	return p, nil
}

func (r *PostgresProductRepository) GetAll(ownerID string) ([]models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE owner_id = $1 ORDER BY date_added`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *PostgresProductRepository) GetByID(ownerID, id string) (models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1 AND owner_id = $2`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	p, err := scanProduct(r.db.QueryRowContext(ctx, query, id, ownerID))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, ErrProductNotFound
	}
	return p, err
}

func (r *PostgresProductRepository) Update(p models.Product) (models.Product, error) {
	query := `UPDATE products SET name = $1, category = $2, barcode = $3, image_url = $4,
		quantity_type = $5, units_in_stock = $6, cost_price = $7, selling_price = $8,
		low_stock_threshold = $9, expiry_date = $10, supplier_name = $11,
		supplier_phone = $12, updated_at = $13
		WHERE id = $14 AND owner_id = $15`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, p.Name, p.Category, p.Barcode, p.ImageURL,
		p.QuantityType, p.UnitsInStock, p.CostPrice, p.SellingPrice, p.LowStockThreshold,
		p.ExpiryDate, p.Supplier.Name, p.Supplier.Phone, p.UpdatedAt, p.ID, p.OwnerID)
	if err != nil {
		return models.Product{}, err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return models.Product{}, ErrProductNotFound
	}
	return p, nil
}

func (r *PostgresProductRepository) Delete(ownerID, id string) error {
	query := `DELETE FROM products WHERE id = $1 AND owner_id = $2`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, id, ownerID)
	if err != nil {
		return err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}

func (r *PostgresProductRepository) Filter(ownerID string, f ProductFilter) ([]models.Product, int, error) {
	conditions, args, argIdx := productConditions(ownerID, f)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var totalCount int
	countQuery := "SELECT COUNT(*) FROM products WHERE 1=1" + conditions
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + productColumns + ` FROM products WHERE 1=1` + conditions + ` ORDER BY date_added`
	if f.Limit != nil && *f.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argIdx)
		args = append(args, *f.Limit)
		argIdx++
	}
	if f.Offset != nil && *f.Offset > 0 {
		query += fmt.Sprintf(" OFFSET $%d", argIdx)
		args = append(args, *f.Offset)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, 0, err
		}
		products = append(products, p)
	}
	return products, totalCount, rows.Err()
}

func productConditions(ownerID string, f ProductFilter) (string, []any, int) {
	query := " AND owner_id = $1"
	args := []any{ownerID}
	argIdx := 2

	if f.Name != "" {
		query += fmt.Sprintf(" AND name ILIKE $%d", argIdx)
		args = append(args, "%"+f.Name+"%")
		argIdx++
	}
	if f.Category != "" {
		query += fmt.Sprintf(" AND category = $%d", argIdx)
		args = append(args, f.Category)
		argIdx++
	}
	if f.LowStockOnly {
		query += " AND units_in_stock <= low_stock_threshold"
	}
	return query, args, argIdx
}

func (r *PostgresProductRepository) AdjustStock(ownerID, id string, delta int) (models.Product, error) {
	query := `
		UPDATE products
		SET units_in_stock = units_in_stock + $1, updated_at = $2
		WHERE id = $3 AND owner_id = $4 AND units_in_stock + $1 >= 0
		RETURNING ` + productColumns
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	p, err := scanProduct(r.db.QueryRowContext(ctx, query, delta,
		time.Now().UTC().Format(time.RFC3339), id, ownerID))
	if errors.Is(err, sql.ErrNoRows) {
		// No row updated: either the product does not exist or the
		// delta would drive the stock negative.
		if _, getErr := r.GetByID(ownerID, id); getErr != nil {
			return models.Product{}, getErr
		}
		return models.Product{}, ErrInvalidStockChange
	}
	return p, err
}
