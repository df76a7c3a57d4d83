package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/denisMujuzi/ezyagric-backend/internal/domain"
	"github.com/denisMujuzi/ezyagric-backend/internal/repository"
	"github.com/denisMujuzi/ezyagric-backend/pkg/apperrors"
	"github.com/denisMujuzi/ezyagric-backend/pkg/dates"

	"github.com/shopspring/decimal"
)

// SeasonService is the season lifecycle engine: it owns season creation and
// updates, activity batch attachment and the lazy status derivation that
// runs on every season read.
type SeasonService struct {
	seasonRepo   repository.SeasonRepository
	farmRepo     repository.FarmRepository
	activityRepo repository.ActivityRepository
	loc          *time.Location
	now          func() time.Time
}

func NewSeasonService(
	seasonRepo repository.SeasonRepository,
	farmRepo repository.FarmRepository,
	activityRepo repository.ActivityRepository,
	loc *time.Location,
) *SeasonService {
	return &SeasonService{
		seasonRepo:   seasonRepo,
		farmRepo:     farmRepo,
		activityRepo: activityRepo,
		loc:          loc,
		now:          time.Now,
	}
}

// CreateSeason creates a season plan on a farm owned by the caller.
func (s *SeasonService) CreateSeason(ctx context.Context, request *domain.CreateSeasonRequest, callerFarmerID int64) (*domain.SeasonPlan, error) {
	farm, err := s.farmRepo.GetByID(ctx, request.FarmID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.WrapFarmNotFound(request.FarmID)
		}
		return nil, apperrors.WrapDatabaseError(err)
	}

	if farm.FarmerID != callerFarmerID {
		return nil, apperrors.WrapForbidden("You can only create seasons for your own farms")
	}

	season := &domain.SeasonPlan{
		FarmID:     request.FarmID,
		CropName:   request.CropName,
		SeasonName: request.SeasonName,
	}

	if err := s.seasonRepo.Create(ctx, season); err != nil {
		return nil, apperrors.WrapDatabaseError(err)
	}

	return season, nil
}

// UpdateSeason applies a partial update; absent fields are left untouched.
func (s *SeasonService) UpdateSeason(ctx context.Context, seasonID int64, request *domain.UpdateSeasonRequest, callerFarmerID int64) (*domain.SeasonPlan, error) {
	season, _, err := s.ownedSeason(ctx, seasonID, callerFarmerID)
	if err != nil {
		return nil, err
	}

	if request.CropName != nil {
		season.CropName = *request.CropName
	}
	if request.SeasonName != nil {
		season.SeasonName = *request.SeasonName
	}

	if err := s.seasonRepo.Update(ctx, season); err != nil {
		return nil, apperrors.WrapDatabaseError(err)
	}

	return season, nil
}

// AddPlannedActivities attaches a batch of planned activities to a season.
// Status is fixed at insertion from the target date; the whole batch is
// persisted in one transaction or not at all.
func (s *SeasonService) AddPlannedActivities(ctx context.Context, seasonID int64, items []domain.PlannedActivityCreate, callerFarmerID int64) error {
	if _, _, err := s.ownedSeason(ctx, seasonID, callerFarmerID); err != nil {
		return err
	}

	today := dates.Today(s.now(), s.loc)

	activities := make([]*domain.PlannedActivity, 0, len(items))
	for _, item := range items {
		targetDate, err := s.parseCivilDate(item.TargetDate)
		if err != nil {
			return apperrors.WrapValidation(fmt.Sprintf("Invalid targetDate: %s", item.TargetDate))
		}
		if item.EstimatedCostUgx.IsNegative() {
			return apperrors.WrapValidation("estimatedCostUgx must not be negative")
		}

		activities = append(activities, &domain.PlannedActivity{
			SeasonPlanID:     seasonID,
			ActivityType:     item.ActivityType,
			TargetDate:       targetDate,
			EstimatedCostUgx: item.EstimatedCostUgx.Round(2),
			Status:           domain.DeriveStatus(targetDate, today, false),
		})
	}

	if err := s.activityRepo.CreatePlannedBatch(ctx, activities); err != nil {
		return apperrors.WrapDatabaseError(err)
	}

	return nil
}

// AddActualActivities attaches a batch of actual activities. Every linked
// planned activity must belong to the same season; the first bad reference
// aborts the batch before anything is written. Valid links force the planned
// activity to COMPLETED in the same transaction as the inserts.
func (s *SeasonService) AddActualActivities(ctx context.Context, seasonID int64, items []domain.ActualActivityCreate, callerFarmerID int64) error {
	if _, _, err := s.ownedSeason(ctx, seasonID, callerFarmerID); err != nil {
		return err
	}

	activities := make([]*domain.ActualActivity, 0, len(items))
	var completedIDs []int64
	seen := make(map[int64]bool)

	for _, item := range items {
		actualDate, err := s.parseCivilDate(item.ActualDate)
		if err != nil {
			return apperrors.WrapValidation(fmt.Sprintf("Invalid actualDate: %s", item.ActualDate))
		}
		if item.ActualCostUgx.IsNegative() {
			return apperrors.WrapValidation("actualCostUgx must not be negative")
		}

		if item.PlannedActivityID != nil {
			plannedID := *item.PlannedActivityID
			planned, err := s.activityRepo.GetPlannedByID(ctx, plannedID)
			if err != nil {
				if errors.Is(err, sql.ErrNoRows) {
					return apperrors.WrapInvalidReference(plannedID)
				}
				return apperrors.WrapDatabaseError(err)
			}
			if planned.SeasonPlanID != seasonID {
				return apperrors.WrapInvalidReference(plannedID)
			}
			if !seen[plannedID] {
				seen[plannedID] = true
				completedIDs = append(completedIDs, plannedID)
			}
		}

		activities = append(activities, &domain.ActualActivity{
			SeasonPlanID:      seasonID,
			ActivityType:      item.ActivityType,
			ActualDate:        actualDate,
			ActualCostUgx:     item.ActualCostUgx.Round(2),
			Notes:             item.Notes,
			PlannedActivityID: item.PlannedActivityID,
		})
	}

	if err := s.activityRepo.CreateActualBatch(ctx, activities, completedIDs); err != nil {
		return apperrors.WrapDatabaseError(err)
	}

	return nil
}

// GetSeasonDetails returns the season joined with its farm name plus both
// activity lists. Stale statuses are flipped to OVERDUE and persisted before
// the response is built.
func (s *SeasonService) GetSeasonDetails(ctx context.Context, seasonID int64, callerFarmerID int64) (*domain.SeasonDetailsResponse, error) {
	season, farm, err := s.ownedSeason(ctx, seasonID, callerFarmerID)
	if err != nil {
		return nil, err
	}

	planned, err := s.refreshPlannedStatuses(ctx, seasonID)
	if err != nil {
		return nil, err
	}

	actual, err := s.activityRepo.ListActualBySeason(ctx, seasonID)
	if err != nil {
		return nil, apperrors.WrapDatabaseError(err)
	}

	return &domain.SeasonDetailsResponse{
		Season: domain.SeasonView{
			ID: season.ID,
			FarmDetails: domain.FarmDetails{
				FarmID:   farm.ID,
				FarmName: farm.Name,
			},
			CropName:   season.CropName,
			SeasonName: season.SeasonName,
		},
		PlannedActivities: planned,
		ActualActivities:  actual,
	}, nil
}

// GetSeasonSummary aggregates status counts and cost totals for a season.
// The same lazy OVERDUE flip as GetSeasonDetails runs during the counting
// pass; a season with no activities yields all zeros.
func (s *SeasonService) GetSeasonSummary(ctx context.Context, seasonID int64, callerFarmerID int64) (*domain.SeasonSummaryResponse, error) {
	season, _, err := s.ownedSeason(ctx, seasonID, callerFarmerID)
	if err != nil {
		return nil, err
	}

	planned, err := s.refreshPlannedStatuses(ctx, seasonID)
	if err != nil {
		return nil, err
	}

	summary := &domain.SeasonSummaryResponse{
		SeasonID:              season.ID,
		TotalEstimatedCostUgx: decimal.Zero,
		TotalActualCostUgx:    decimal.Zero,
	}

	for _, activity := range planned {
		switch activity.Status {
		case domain.StatusUpcoming:
			summary.ActivitiesUpcomingCount++
		case domain.StatusCompleted:
			summary.ActivitiesCompletedCount++
		case domain.StatusOverdue:
			summary.ActivitiesOverdueCount++
		}
		summary.TotalEstimatedCostUgx = summary.TotalEstimatedCostUgx.Add(activity.EstimatedCostUgx)
	}

	actual, err := s.activityRepo.ListActualBySeason(ctx, seasonID)
	if err != nil {
		return nil, apperrors.WrapDatabaseError(err)
	}
	for _, activity := range actual {
		summary.TotalActualCostUgx = summary.TotalActualCostUgx.Add(activity.ActualCostUgx)
	}

	return summary, nil
}

// ownedSeason loads a season and its farm, verifying the caller owns the
// chain season -> farm -> farmer. Existence is checked before ownership, so
// a differently-owned season leaks nothing beyond that it exists.
func (s *SeasonService) ownedSeason(ctx context.Context, seasonID, callerFarmerID int64) (*domain.SeasonPlan, *domain.Farm, error) {
	season, err := s.seasonRepo.GetByID(ctx, seasonID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, apperrors.WrapSeasonNotFound(seasonID)
		}
		return nil, nil, apperrors.WrapDatabaseError(err)
	}

	farm, err := s.farmRepo.GetByID(ctx, season.FarmID)
	if err != nil {
		return nil, nil, apperrors.WrapDatabaseError(err)
	}

	if farm.FarmerID != callerFarmerID {
		return nil, nil, apperrors.WrapForbidden("You can only access your own seasons")
	}

	return season, farm, nil
}

// refreshPlannedStatuses is the lazy recomputation point: any planned
// activity past its target date that is not COMPLETED becomes OVERDUE and
// the new status is written back. The flip is idempotent, so concurrent
// readers at worst issue redundant identical writes.
func (s *SeasonService) refreshPlannedStatuses(ctx context.Context, seasonID int64) ([]*domain.PlannedActivity, error) {
	planned, err := s.activityRepo.ListPlannedBySeason(ctx, seasonID)
	if err != nil {
		return nil, apperrors.WrapDatabaseError(err)
	}

	today := dates.Today(s.now(), s.loc)

	for _, activity := range planned {
		if activity.Status == domain.StatusCompleted {
			continue
		}
		derived := domain.DeriveStatus(activity.TargetDate, today, false)
		if derived == domain.StatusOverdue && activity.Status != domain.StatusOverdue {
			activity.Status = domain.StatusOverdue
			if err := s.activityRepo.UpdatePlannedStatus(ctx, activity.ID, domain.StatusOverdue); err != nil {
				return nil, apperrors.WrapDatabaseError(err)
			}
		}
	}

	return planned, nil
}

func (s *SeasonService) parseCivilDate(value string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", value, s.loc)
}
