package repo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/otuedon/shop-tracker/internal/models"
)

type PostgresUserRepository struct {
	db *sql.DB
}

func NewPostgresUserRepository(db *sql.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) CreateOrGetByPhone(phone string) (models.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var u models.User
	err := r.db.QueryRowContext(ctx,
		`SELECT id, phone, name, business_type, profile_image, created_at, updated_at
		 FROM users WHERE phone = $1`, phone).
		Scan(&u.ID, &u.Phone, &u.Name, &u.BusinessType, &u.ProfileImageURL, &u.CreatedAt, &u.UpdatedAt)
	if err == nil {
		return u, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return models.User{}, err
	}

	u = models.User{
		ID:        uuid.NewString(),
		Phone:     phone,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO users (id, phone, name, business_type, profile_image, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		u.ID, u.Phone, u.Name, u.BusinessType, u.ProfileImageURL, u.CreatedAt, u.UpdatedAt)
	if err != nil {
		return models.User{}, err
	}
	return u, nil
}

func (r *PostgresUserRepository) GetByID(id string) (models.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var u models.User
	err := r.db.QueryRowContext(ctx,
		`SELECT id, phone, name, business_type, profile_image, created_at, updated_at
		 FROM users WHERE id = $1`, id).
		Scan(&u.ID, &u.Phone, &u.Name, &u.BusinessType, &u.ProfileImageURL, &u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	return u, err
}

func (r *PostgresUserRepository) UpdateProfile(u models.User) (models.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	u.UpdatedAt = time.Now().UTC()
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET name = $1, profile_image = $2, updated_at = $3 WHERE id = $4`,
		u.Name, u.ProfileImageURL, u.UpdatedAt, u.ID)
	if err != nil {
		return models.User{}, err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return models.User{}, ErrUserNotFound
	}
	return u, nil
}

func (r *PostgresUserRepository) SetBusinessType(id, businessType string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET business_type = $1, updated_at = $2 WHERE id = $3`,
		businessType, time.Now().UTC(), id)
	if err != nil {
		return err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}
