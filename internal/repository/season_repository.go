package repository

import (
	"context"

	"github.com/denisMujuzi/ezyagric-backend/internal/domain"

	"github.com/jmoiron/sqlx"
)

type seasonRepository struct {
	db *sqlx.DB
}

func NewSeasonRepository(db *sqlx.DB) SeasonRepository {
	return &seasonRepository{db: db}
}

func (r *seasonRepository) Create(ctx context.Context, season *domain.SeasonPlan) error {
	query := `
		INSERT INTO season_plans (farm_id, crop_name, season_name)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	return r.db.QueryRowxContext(ctx, query,
		season.FarmID,
		season.CropName,
		season.SeasonName,
	).Scan(&season.ID)
}

func (r *seasonRepository) GetByID(ctx context.Context, id int64) (*domain.SeasonPlan, error) {
	query := `
		SELECT id, farm_id, crop_name, season_name
		FROM season_plans
		WHERE id = $1
	`

	var season domain.SeasonPlan
	err := r.db.GetContext(ctx, &season, query, id)
	if err != nil {
		return nil, err
	}

	return &season, nil
}

func (r *seasonRepository) Update(ctx context.Context, season *domain.SeasonPlan) error {
	query := `
		UPDATE season_plans
		SET crop_name = $2, season_name = $3
		WHERE id = $1
	`

	_, err := r.db.ExecContext(ctx, query,
		season.ID,
		season.CropName,
		season.SeasonName,
	)

	return err
}
