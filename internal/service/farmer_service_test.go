package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/denisMujuzi/ezyagric-backend/internal/auth"
	"github.com/denisMujuzi/ezyagric-backend/internal/config"
	"github.com/denisMujuzi/ezyagric-backend/internal/domain"
	"github.com/denisMujuzi/ezyagric-backend/pkg/apperrors"

	"golang.org/x/crypto/bcrypt"
)

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:          "test-secret",
			TokenExpireMinutes: 60,
			AdminKey:           "admin-key",
			LoginMaxAttempts:   5,
			LoginWindow:        "15m",
		},
		Business: config.BusinessConfig{Timezone: "Africa/Nairobi"},
	}
}

func newTestFarmerService() (*FarmerService, *MockFarmerRepository) {
	repo := &MockFarmerRepository{}
	svc := &FarmerService{
		farmerRepo: repo,
		config:     testConfig(),
		now:        func() time.Time { return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC) },
	}
	return svc, repo
}

func TestRegister(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc, repo := newTestFarmerService()

		repo.On("GetByPhone", mock.Anything, "+256700000001").Return(nil, sql.ErrNoRows)
		repo.On("Create", mock.Anything, mock.MatchedBy(func(f *domain.Farmer) bool {
			// the hash must verify and the raw password must not be stored
			return f.PhoneNumber == "+256700000001" &&
				f.HashedPassword != "hunter22" &&
				bcrypt.CompareHashAndPassword([]byte(f.HashedPassword), []byte("hunter22")) == nil
		})).Return(nil)

		farmer, err := svc.Register(context.Background(), &domain.RegisterFarmerRequest{
			Name:        "Alice Nansubuga",
			PhoneNumber: "+256700000001",
			Gender:      "F",
			Password:    "hunter22",
		})

		require.NoError(t, err)
		assert.Equal(t, "Alice Nansubuga", farmer.Name)
		repo.AssertExpectations(t)
	})

	t.Run("Duplicate phone number", func(t *testing.T) {
		svc, repo := newTestFarmerService()

		repo.On("GetByPhone", mock.Anything, "+256700000001").Return(&domain.Farmer{ID: 1}, nil)

		_, err := svc.Register(context.Background(), &domain.RegisterFarmerRequest{
			Name:        "Alice",
			PhoneNumber: "+256700000001",
			Password:    "hunter22",
		})

		require.Error(t, err)
		assert.Equal(t, apperrors.ErrCodeConflict, apperrors.CodeOf(err))
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Duplicate email", func(t *testing.T) {
		svc, repo := newTestFarmerService()

		email := "alice@example.com"
		repo.On("GetByPhone", mock.Anything, "+256700000002").Return(nil, sql.ErrNoRows)
		repo.On("GetByEmail", mock.Anything, email).Return(&domain.Farmer{ID: 2}, nil)

		_, err := svc.Register(context.Background(), &domain.RegisterFarmerRequest{
			Name:        "Alice",
			PhoneNumber: "+256700000002",
			Email:       &email,
			Password:    "hunter22",
		})

		require.Error(t, err)
		assert.Equal(t, apperrors.ErrCodeConflict, apperrors.CodeOf(err))
	})
}

func TestLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.MinCost)
	require.NoError(t, err)

	t.Run("Success issues a verifiable token", func(t *testing.T) {
		svc, repo := newTestFarmerService()

		repo.On("GetByPhone", mock.Anything, "+256700000001").Return(&domain.Farmer{
			ID:             7,
			PhoneNumber:    "+256700000001",
			HashedPassword: string(hash),
		}, nil)

		result, err := svc.Login(context.Background(), &domain.LoginRequest{
			PhoneNumber: "+256700000001",
			Password:    "hunter22",
		})

		require.NoError(t, err)
		assert.Equal(t, int64(7), result.FarmerID)

		farmerID, err := auth.ParseFarmerID("test-secret", result.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, int64(7), farmerID)
	})

	t.Run("Wrong password", func(t *testing.T) {
		svc, repo := newTestFarmerService()

		repo.On("GetByPhone", mock.Anything, "+256700000001").Return(&domain.Farmer{
			ID:             7,
			HashedPassword: string(hash),
		}, nil)

		_, err := svc.Login(context.Background(), &domain.LoginRequest{
			PhoneNumber: "+256700000001",
			Password:    "wrong",
		})

		require.Error(t, err)
		assert.Equal(t, apperrors.ErrCodeUnauthorized, apperrors.CodeOf(err))
		// message must not reveal whether the phone or the password failed
		assert.Equal(t, "Invalid phone number or password", apperrors.MessageOf(err))
	})

	t.Run("Unknown phone gets the same vague message", func(t *testing.T) {
		svc, repo := newTestFarmerService()

		repo.On("GetByPhone", mock.Anything, "+256700999999").Return(nil, sql.ErrNoRows)

		_, err := svc.Login(context.Background(), &domain.LoginRequest{
			PhoneNumber: "+256700999999",
			Password:    "hunter22",
		})

		require.Error(t, err)
		assert.Equal(t, apperrors.ErrCodeUnauthorized, apperrors.CodeOf(err))
		assert.Equal(t, "Invalid phone number or password", apperrors.MessageOf(err))
	})
}

func TestDeleteFarmer(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc, repo := newTestFarmerService()

		repo.On("GetByID", mock.Anything, int64(7)).Return(&domain.Farmer{ID: 7}, nil)
		repo.On("Delete", mock.Anything, int64(7)).Return(nil)

		require.NoError(t, svc.Delete(context.Background(), 7))
		repo.AssertExpectations(t)
	})

	t.Run("Not found", func(t *testing.T) {
		svc, repo := newTestFarmerService()

		repo.On("GetByID", mock.Anything, int64(8)).Return(nil, sql.ErrNoRows)

		err := svc.Delete(context.Background(), 8)
		require.Error(t, err)
		assert.Equal(t, apperrors.ErrCodeNotFound, apperrors.CodeOf(err))
		repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}
