package repository

import (
	"context"

	"github.com/denisMujuzi/ezyagric-backend/internal/domain"

	"github.com/jmoiron/sqlx"
)

type farmRepository struct {
	db *sqlx.DB
}

func NewFarmRepository(db *sqlx.DB) FarmRepository {
	return &farmRepository{db: db}
}

func (r *farmRepository) Create(ctx context.Context, farm *domain.Farm) error {
	query := `
		INSERT INTO farms (farmer_id, name, size_acres)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	return r.db.QueryRowxContext(ctx, query,
		farm.FarmerID,
		farm.Name,
		farm.SizeAcres,
	).Scan(&farm.ID)
}

func (r *farmRepository) GetByID(ctx context.Context, id int64) (*domain.Farm, error) {
	query := `
		SELECT id, farmer_id, name, size_acres
		FROM farms
		WHERE id = $1
	`

	var farm domain.Farm
	err := r.db.GetContext(ctx, &farm, query, id)
	if err != nil {
		return nil, err
	}

	return &farm, nil
}

func (r *farmRepository) Update(ctx context.Context, farm *domain.Farm) error {
	query := `
		UPDATE farms
		SET name = $2, size_acres = $3
		WHERE id = $1
	`

	_, err := r.db.ExecContext(ctx, query,
		farm.ID,
		farm.Name,
		farm.SizeAcres,
	)

	return err
}

func (r *farmRepository) ListByFarmer(ctx context.Context, farmerID int64) ([]*domain.Farm, error) {
	query := `
		SELECT id, farmer_id, name, size_acres
		FROM farms
		WHERE farmer_id = $1
		ORDER BY id
	`

	var farms []*domain.Farm
	err := r.db.SelectContext(ctx, &farms, query, farmerID)
	if err != nil {
		return nil, err
	}

	return farms, nil
}

func (r *farmRepository) List(ctx context.Context) ([]*domain.Farm, error) {
	query := `
		SELECT id, farmer_id, name, size_acres
		FROM farms
		ORDER BY id
	`

	var farms []*domain.Farm
	err := r.db.SelectContext(ctx, &farms, query)
	if err != nil {
		return nil, err
	}

	return farms, nil
}

func (r *farmRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM farms WHERE id = $1`

	_, err := r.db.ExecContext(ctx, query, id)
	return err
}
