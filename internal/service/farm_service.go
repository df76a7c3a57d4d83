package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/denisMujuzi/ezyagric-backend/internal/domain"
	"github.com/denisMujuzi/ezyagric-backend/internal/repository"
	"github.com/denisMujuzi/ezyagric-backend/pkg/apperrors"
)

// FarmService handles ownership-scoped farm CRUD.
type FarmService struct {
	farmRepo repository.FarmRepository
}

func NewFarmService(farmRepo repository.FarmRepository) *FarmService {
	return &FarmService{farmRepo: farmRepo}
}

// Create registers a farm for the caller's own account only.
func (s *FarmService) Create(ctx context.Context, request *domain.CreateFarmRequest, callerFarmerID int64) (*domain.Farm, error) {
	if request.FarmerID != callerFarmerID {
		return nil, apperrors.WrapForbidden("You can only create farms for your own account")
	}

	if request.SizeAcres.IsNegative() {
		return nil, apperrors.WrapValidation("sizeAcres must not be negative")
	}

	farm := &domain.Farm{
		FarmerID:  request.FarmerID,
		Name:      request.Name,
		SizeAcres: request.SizeAcres.Round(2),
	}

	if err := s.farmRepo.Create(ctx, farm); err != nil {
		return nil, apperrors.WrapDatabaseError(err)
	}

	return farm, nil
}

// Update applies a partial update to a farm owned by the caller.
func (s *FarmService) Update(ctx context.Context, farmID int64, request *domain.UpdateFarmRequest, callerFarmerID int64) (*domain.Farm, error) {
	farm, err := s.ownedFarm(ctx, farmID, callerFarmerID)
	if err != nil {
		return nil, err
	}

	if request.Name != nil {
		farm.Name = *request.Name
	}
	if request.SizeAcres != nil {
		if request.SizeAcres.IsNegative() {
			return nil, apperrors.WrapValidation("sizeAcres must not be negative")
		}
		farm.SizeAcres = request.SizeAcres.Round(2)
	}

	if err := s.farmRepo.Update(ctx, farm); err != nil {
		return nil, apperrors.WrapDatabaseError(err)
	}

	return farm, nil
}

// ListByFarmer returns the caller's own farms. The admin surface may list
// any farmer's farms, or all farms when farmerID is zero.
func (s *FarmService) ListByFarmer(ctx context.Context, farmerID, callerFarmerID int64, isAdmin bool) ([]*domain.Farm, error) {
	if isAdmin {
		if farmerID == 0 {
			farms, err := s.farmRepo.List(ctx)
			if err != nil {
				return nil, apperrors.WrapDatabaseError(err)
			}
			return farms, nil
		}
	} else if farmerID != callerFarmerID {
		return nil, apperrors.WrapForbidden("You can only access your own farms")
	}

	farms, err := s.farmRepo.ListByFarmer(ctx, farmerID)
	if err != nil {
		return nil, apperrors.WrapDatabaseError(err)
	}
	return farms, nil
}

// Delete removes a farm owned by the caller; seasons and activities cascade
// in the store.
func (s *FarmService) Delete(ctx context.Context, farmID, callerFarmerID int64) error {
	if _, err := s.ownedFarm(ctx, farmID, callerFarmerID); err != nil {
		return err
	}

	if err := s.farmRepo.Delete(ctx, farmID); err != nil {
		return apperrors.WrapDatabaseError(err)
	}
	return nil
}

func (s *FarmService) ownedFarm(ctx context.Context, farmID, callerFarmerID int64) (*domain.Farm, error) {
	farm, err := s.farmRepo.GetByID(ctx, farmID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.WrapFarmNotFound(farmID)
		}
		return nil, apperrors.WrapDatabaseError(err)
	}

	if farm.FarmerID != callerFarmerID {
		return nil, apperrors.WrapForbidden("You can only manage your own farms")
	}

	return farm, nil
}
