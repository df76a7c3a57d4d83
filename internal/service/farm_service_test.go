package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/denisMujuzi/ezyagric-backend/internal/domain"
	"github.com/denisMujuzi/ezyagric-backend/pkg/apperrors"
)

func TestCreateFarm(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		repo := &MockFarmRepository{}
		svc := NewFarmService(repo)

		repo.On("Create", mock.Anything, mock.MatchedBy(func(f *domain.Farm) bool {
			return f.FarmerID == 1 && f.SizeAcres.Equal(decimal.RequireFromString("12.50"))
		})).Return(nil)

		farm, err := svc.Create(context.Background(), &domain.CreateFarmRequest{
			FarmerID:  1,
			Name:      "Kiboga North",
			SizeAcres: decimal.RequireFromString("12.5"),
		}, 1)

		require.NoError(t, err)
		assert.Equal(t, "Kiboga North", farm.Name)
		repo.AssertExpectations(t)
	})

	t.Run("Cannot create for another account", func(t *testing.T) {
		repo := &MockFarmRepository{}
		svc := NewFarmService(repo)

		_, err := svc.Create(context.Background(), &domain.CreateFarmRequest{
			FarmerID:  2,
			Name:      "Kiboga North",
			SizeAcres: decimal.NewFromInt(5),
		}, 1)

		require.Error(t, err)
		assert.Equal(t, apperrors.ErrCodeForbidden, apperrors.CodeOf(err))
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestUpdateFarm(t *testing.T) {
	t.Run("Partial update leaves absent fields untouched", func(t *testing.T) {
		repo := &MockFarmRepository{}
		svc := NewFarmService(repo)

		repo.On("GetByID", mock.Anything, int64(10)).Return(&domain.Farm{
			ID:        10,
			FarmerID:  1,
			Name:      "Kiboga North",
			SizeAcres: decimal.RequireFromString("12.50"),
		}, nil)
		repo.On("Update", mock.Anything, mock.MatchedBy(func(f *domain.Farm) bool {
			return f.Name == "Kiboga South" && f.SizeAcres.Equal(decimal.RequireFromString("12.50"))
		})).Return(nil)

		name := "Kiboga South"
		farm, err := svc.Update(context.Background(), 10, &domain.UpdateFarmRequest{Name: &name}, 1)

		require.NoError(t, err)
		assert.Equal(t, "Kiboga South", farm.Name)
		repo.AssertExpectations(t)
	})

	t.Run("Forbidden for non-owner", func(t *testing.T) {
		repo := &MockFarmRepository{}
		svc := NewFarmService(repo)

		repo.On("GetByID", mock.Anything, int64(10)).Return(&domain.Farm{ID: 10, FarmerID: 1}, nil)

		name := "Taken Over"
		_, err := svc.Update(context.Background(), 10, &domain.UpdateFarmRequest{Name: &name}, 99)

		require.Error(t, err)
		assert.Equal(t, apperrors.ErrCodeForbidden, apperrors.CodeOf(err))
	})

	t.Run("Not found", func(t *testing.T) {
		repo := &MockFarmRepository{}
		svc := NewFarmService(repo)

		repo.On("GetByID", mock.Anything, int64(11)).Return(nil, sql.ErrNoRows)

		name := "Ghost Farm"
		_, err := svc.Update(context.Background(), 11, &domain.UpdateFarmRequest{Name: &name}, 1)

		require.Error(t, err)
		assert.Equal(t, apperrors.ErrCodeNotFound, apperrors.CodeOf(err))
	})
}

func TestListFarms(t *testing.T) {
	t.Run("Caller may only list own farms", func(t *testing.T) {
		repo := &MockFarmRepository{}
		svc := NewFarmService(repo)

		_, err := svc.ListByFarmer(context.Background(), 2, 1, false)

		require.Error(t, err)
		assert.Equal(t, apperrors.ErrCodeForbidden, apperrors.CodeOf(err))
	})

	t.Run("Admin may list any farmer's farms", func(t *testing.T) {
		repo := &MockFarmRepository{}
		svc := NewFarmService(repo)

		repo.On("ListByFarmer", mock.Anything, int64(2)).Return([]*domain.Farm{{ID: 20, FarmerID: 2}}, nil)

		farms, err := svc.ListByFarmer(context.Background(), 2, 0, true)

		require.NoError(t, err)
		assert.Len(t, farms, 1)
	})

	t.Run("Admin without farmerId lists everything", func(t *testing.T) {
		repo := &MockFarmRepository{}
		svc := NewFarmService(repo)

		repo.On("List", mock.Anything).Return([]*domain.Farm{{ID: 20}, {ID: 21}}, nil)

		farms, err := svc.ListByFarmer(context.Background(), 0, 0, true)

		require.NoError(t, err)
		assert.Len(t, farms, 2)
	})
}

func TestDeleteFarm(t *testing.T) {
	repo := &MockFarmRepository{}
	svc := NewFarmService(repo)

	repo.On("GetByID", mock.Anything, int64(10)).Return(&domain.Farm{ID: 10, FarmerID: 1}, nil)
	repo.On("Delete", mock.Anything, int64(10)).Return(nil)

	require.NoError(t, svc.Delete(context.Background(), 10, 1))
	repo.AssertExpectations(t)
}
