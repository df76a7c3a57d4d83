package repository

import (
	"context"

	"github.com/denisMujuzi/ezyagric-backend/internal/domain"

	"github.com/jmoiron/sqlx"
)

type farmerRepository struct {
	db *sqlx.DB
}

func NewFarmerRepository(db *sqlx.DB) FarmerRepository {
	return &farmerRepository{db: db}
}

func (r *farmerRepository) Create(ctx context.Context, farmer *domain.Farmer) error {
	query := `
		INSERT INTO farmers (name, phone_number, email, gender, hashed_password, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	return r.db.QueryRowxContext(ctx, query,
		farmer.Name,
		farmer.PhoneNumber,
		farmer.Email,
		farmer.Gender,
		farmer.HashedPassword,
		farmer.CreatedAt,
	).Scan(&farmer.ID)
}

func (r *farmerRepository) GetByID(ctx context.Context, id int64) (*domain.Farmer, error) {
	query := `
		SELECT id, name, phone_number, email, gender, hashed_password, created_at
		FROM farmers
		WHERE id = $1
	`

	var farmer domain.Farmer
	err := r.db.GetContext(ctx, &farmer, query, id)
	if err != nil {
		return nil, err
	}

	return &farmer, nil
}

func (r *farmerRepository) GetByPhone(ctx context.Context, phoneNumber string) (*domain.Farmer, error) {
	query := `
		SELECT id, name, phone_number, email, gender, hashed_password, created_at
		FROM farmers
		WHERE phone_number = $1
	`

	var farmer domain.Farmer
	err := r.db.GetContext(ctx, &farmer, query, phoneNumber)
	if err != nil {
		return nil, err
	}

	return &farmer, nil
}

func (r *farmerRepository) GetByEmail(ctx context.Context, email string) (*domain.Farmer, error) {
	query := `
		SELECT id, name, phone_number, email, gender, hashed_password, created_at
		FROM farmers
		WHERE email = $1
	`

	var farmer domain.Farmer
	err := r.db.GetContext(ctx, &farmer, query, email)
	if err != nil {
		return nil, err
	}

	return &farmer, nil
}

func (r *farmerRepository) List(ctx context.Context) ([]*domain.Farmer, error) {
	query := `
		SELECT id, name, phone_number, email, gender, hashed_password, created_at
		FROM farmers
		ORDER BY id
	`

	var farmers []*domain.Farmer
	err := r.db.SelectContext(ctx, &farmers, query)
	if err != nil {
		return nil, err
	}

	return farmers, nil
}

func (r *farmerRepository) Delete(ctx context.Context, id int64) error {
	// farms, seasons and activities go with the farmer via ON DELETE CASCADE
	query := `DELETE FROM farmers WHERE id = $1`

	_, err := r.db.ExecContext(ctx, query, id)
	return err
}
