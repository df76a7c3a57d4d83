package repository

import (
	"context"
	"time"

	"github.com/denisMujuzi/ezyagric-backend/internal/domain"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type activityRepository struct {
	db *sqlx.DB
}

func NewActivityRepository(db *sqlx.DB) ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) CreatePlannedBatch(ctx context.Context, activities []*domain.PlannedActivity) error {
	query := `
		INSERT INTO planned_activities (season_plan_id, activity_type, target_date, estimated_cost_ugx, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, activity := range activities {
		err = tx.QueryRowxContext(ctx, query,
			activity.SeasonPlanID,
			activity.ActivityType,
			activity.TargetDate,
			activity.EstimatedCostUgx,
			activity.Status,
		).Scan(&activity.ID)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *activityRepository) ListPlannedBySeason(ctx context.Context, seasonID int64) ([]*domain.PlannedActivity, error) {
	query := `
		SELECT id, season_plan_id, activity_type, target_date, estimated_cost_ugx, status
		FROM planned_activities
		WHERE season_plan_id = $1
		ORDER BY id
	`

	var activities []*domain.PlannedActivity
	err := r.db.SelectContext(ctx, &activities, query, seasonID)
	if err != nil {
		return nil, err
	}

	return activities, nil
}

func (r *activityRepository) GetPlannedByID(ctx context.Context, id int64) (*domain.PlannedActivity, error) {
	query := `
		SELECT id, season_plan_id, activity_type, target_date, estimated_cost_ugx, status
		FROM planned_activities
		WHERE id = $1
	`

	var activity domain.PlannedActivity
	err := r.db.GetContext(ctx, &activity, query, id)
	if err != nil {
		return nil, err
	}

	return &activity, nil
}

func (r *activityRepository) UpdatePlannedStatus(ctx context.Context, id int64, status string) error {
	query := `
		UPDATE planned_activities
		SET status = $2
		WHERE id = $1
	`

	_, err := r.db.ExecContext(ctx, query, id, status)
	return err
}

func (r *activityRepository) CreateActualBatch(ctx context.Context, activities []*domain.ActualActivity, completedPlannedIDs []int64) error {
	insertQuery := `
		INSERT INTO actual_activities (season_plan_id, activity_type, actual_date, actual_cost_ugx, notes, planned_activity_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	completeQuery := `
		UPDATE planned_activities
		SET status = $2
		WHERE id = ANY($1)
	`

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, activity := range activities {
		err = tx.QueryRowxContext(ctx, insertQuery,
			activity.SeasonPlanID,
			activity.ActivityType,
			activity.ActualDate,
			activity.ActualCostUgx,
			activity.Notes,
			activity.PlannedActivityID,
		).Scan(&activity.ID)
		if err != nil {
			return err
		}
	}

	if len(completedPlannedIDs) > 0 {
		_, err = tx.ExecContext(ctx, completeQuery, pq.Array(completedPlannedIDs), domain.StatusCompleted)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *activityRepository) ListActualBySeason(ctx context.Context, seasonID int64) ([]*domain.ActualActivity, error) {
	query := `
		SELECT id, season_plan_id, activity_type, actual_date, actual_cost_ugx, notes, planned_activity_id
		FROM actual_activities
		WHERE season_plan_id = $1
		ORDER BY id
	`

	var activities []*domain.ActualActivity
	err := r.db.SelectContext(ctx, &activities, query, seasonID)
	if err != nil {
		return nil, err
	}

	return activities, nil
}

func (r *activityRepository) ListPlannedDueBefore(ctx context.Context, cutoff time.Time, excludeStatuses []string) ([]*domain.PlannedActivity, error) {
	query := `
		SELECT id, season_plan_id, activity_type, target_date, estimated_cost_ugx, status
		FROM planned_activities
		WHERE target_date < $1 AND status != ALL($2)
		ORDER BY id
	`

	var activities []*domain.PlannedActivity
	err := r.db.SelectContext(ctx, &activities, query, cutoff, pq.Array(excludeStatuses))
	if err != nil {
		return nil, err
	}

	return activities, nil
}
