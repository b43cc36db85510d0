package repo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/otuedon/shop-tracker/internal/models"
)

type PostgresNotificationRepository struct {
	db *sql.DB
}

func NewPostgresNotificationRepository(db *sql.DB) *PostgresNotificationRepository {
	return &PostgresNotificationRepository{db: db}
}

func (r *PostgresNotificationRepository) Create(n models.Notification) (models.Notification, error) {
	n.ID = uuid.NewString()
	query := `INSERT INTO notifications (id, owner_id, type, title, body, product_id, read, date_added)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	_, err := r.db.ExecContext(ctx, query, n.ID, n.OwnerID, n.Type, n.Title, n.Body,
		n.ProductID, n.Read, n.DateAdded)
	if err != nil {
		return models.Notification{}, err
	}
	return n, nil
}

func (r *PostgresNotificationRepository) GetAll(ownerID string) ([]models.Notification, error) {
	query := `SELECT id, owner_id, type, title, body, product_id, read, date_added
		FROM notifications WHERE owner_id = $1 ORDER BY date_added DESC`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notifications []models.Notification
	for rows.Next() {
		var n models.Notification
		if err := rows.Scan(&n.ID, &n.OwnerID, &n.Type, &n.Title, &n.Body,
			&n.ProductID, &n.Read, &n.DateAdded); err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}
	return notifications, rows.Err()
}

func (r *PostgresNotificationRepository) GetByID(ownerID, id string) (models.Notification, error) {
	query := `SELECT id, owner_id, type, title, body, product_id, read, date_added
		FROM notifications WHERE id = $1 AND owner_id = $2`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var n models.Notification
	err := r.db.QueryRowContext(ctx, query, id, ownerID).
		Scan(&n.ID, &n.OwnerID, &n.Type, &n.Title, &n.Body, &n.ProductID, &n.Read, &n.DateAdded)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Notification{}, ErrNotificationNotFound
	}
	return n, err
}

func (r *PostgresNotificationRepository) MarkRead(ownerID, id string) error {
	query := `UPDATE notifications SET read = TRUE WHERE id = $1 AND owner_id = $2`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, id, ownerID)
	if err != nil {
		return err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrNotificationNotFound
	}
	return nil
}

func (r *PostgresNotificationRepository) Delete(ownerID, id string) error {
	query := `DELETE FROM notifications WHERE id = $1 AND owner_id = $2`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, id, ownerID)
	if err != nil {
		return err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrNotificationNotFound
	}
	return nil
}
