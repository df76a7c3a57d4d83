package service

import (
	"context"
	"time"

	"github.com/denisMujuzi/ezyagric-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

type MockFarmerRepository struct {
	mock.Mock
}

func (m *MockFarmerRepository) Create(ctx context.Context, farmer *domain.Farmer) error {
	args := m.Called(ctx, farmer)
	return args.Error(0)
}

func (m *MockFarmerRepository) GetByID(ctx context.Context, id int64) (*domain.Farmer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Farmer), args.Error(1)
}

func (m *MockFarmerRepository) GetByPhone(ctx context.Context, phoneNumber string) (*domain.Farmer, error) {
	args := m.Called(ctx, phoneNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Farmer), args.Error(1)
}

func (m *MockFarmerRepository) GetByEmail(ctx context.Context, email string) (*domain.Farmer, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Farmer), args.Error(1)
}

func (m *MockFarmerRepository) List(ctx context.Context) ([]*domain.Farmer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Farmer), args.Error(1)
}

func (m *MockFarmerRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockFarmRepository struct {
	mock.Mock
}

func (m *MockFarmRepository) Create(ctx context.Context, farm *domain.Farm) error {
	args := m.Called(ctx, farm)
	return args.Error(0)
}

func (m *MockFarmRepository) GetByID(ctx context.Context, id int64) (*domain.Farm, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Farm), args.Error(1)
}

func (m *MockFarmRepository) Update(ctx context.Context, farm *domain.Farm) error {
	args := m.Called(ctx, farm)
	return args.Error(0)
}

func (m *MockFarmRepository) ListByFarmer(ctx context.Context, farmerID int64) ([]*domain.Farm, error) {
	args := m.Called(ctx, farmerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Farm), args.Error(1)
}

func (m *MockFarmRepository) List(ctx context.Context) ([]*domain.Farm, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Farm), args.Error(1)
}

func (m *MockFarmRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockSeasonRepository struct {
	mock.Mock
}

func (m *MockSeasonRepository) Create(ctx context.Context, season *domain.SeasonPlan) error {
	args := m.Called(ctx, season)
	return args.Error(0)
}

func (m *MockSeasonRepository) GetByID(ctx context.Context, id int64) (*domain.SeasonPlan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SeasonPlan), args.Error(1)
}

func (m *MockSeasonRepository) Update(ctx context.Context, season *domain.SeasonPlan) error {
	args := m.Called(ctx, season)
	return args.Error(0)
}

type MockActivityRepository struct {
	mock.Mock
}

func (m *MockActivityRepository) CreatePlannedBatch(ctx context.Context, activities []*domain.PlannedActivity) error {
	args := m.Called(ctx, activities)
	return args.Error(0)
}

func (m *MockActivityRepository) ListPlannedBySeason(ctx context.Context, seasonID int64) ([]*domain.PlannedActivity, error) {
	args := m.Called(ctx, seasonID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.PlannedActivity), args.Error(1)
}

func (m *MockActivityRepository) GetPlannedByID(ctx context.Context, id int64) (*domain.PlannedActivity, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PlannedActivity), args.Error(1)
}

func (m *MockActivityRepository) UpdatePlannedStatus(ctx context.Context, id int64, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockActivityRepository) CreateActualBatch(ctx context.Context, activities []*domain.ActualActivity, completedPlannedIDs []int64) error {
	args := m.Called(ctx, activities, completedPlannedIDs)
	return args.Error(0)
}

func (m *MockActivityRepository) ListActualBySeason(ctx context.Context, seasonID int64) ([]*domain.ActualActivity, error) {
	args := m.Called(ctx, seasonID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ActualActivity), args.Error(1)
}

func (m *MockActivityRepository) ListPlannedDueBefore(ctx context.Context, cutoff time.Time, excludeStatuses []string) ([]*domain.PlannedActivity, error) {
	args := m.Called(ctx, cutoff, excludeStatuses)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.PlannedActivity), args.Error(1)
}
