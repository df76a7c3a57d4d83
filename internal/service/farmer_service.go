package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/denisMujuzi/ezyagric-backend/internal/auth"
	"github.com/denisMujuzi/ezyagric-backend/internal/config"
	"github.com/denisMujuzi/ezyagric-backend/internal/domain"
	"github.com/denisMujuzi/ezyagric-backend/internal/repository"
	"github.com/denisMujuzi/ezyagric-backend/pkg/apperrors"

	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
)

// FarmerService handles registration, login and the admin-only farmer
// operations.
type FarmerService struct {
	farmerRepo repository.FarmerRepository
	redis      *redis.Client
	config     *config.Config
	now        func() time.Time
}

func NewFarmerService(farmerRepo repository.FarmerRepository, redisClient *redis.Client, cfg *config.Config) *FarmerService {
	return &FarmerService{
		farmerRepo: farmerRepo,
		redis:      redisClient,
		config:     cfg,
		now:        time.Now,
	}
}

// Register creates a farmer account. Phone numbers and emails are unique.
func (s *FarmerService) Register(ctx context.Context, request *domain.RegisterFarmerRequest) (*domain.Farmer, error) {
	existing, err := s.farmerRepo.GetByPhone(ctx, request.PhoneNumber)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.WrapDatabaseError(err)
	}
	if existing != nil {
		return nil, apperrors.WrapDuplicateFarmer("phone number")
	}

	if request.Email != nil {
		existing, err = s.farmerRepo.GetByEmail(ctx, *request.Email)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.WrapDatabaseError(err)
		}
		if existing != nil {
			return nil, apperrors.WrapDuplicateFarmer("email")
		}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	farmer := &domain.Farmer{
		Name:           request.Name,
		PhoneNumber:    request.PhoneNumber,
		Email:          request.Email,
		Gender:         request.Gender,
		HashedPassword: string(hashed),
		CreatedAt:      s.now().In(s.config.Location()),
	}

	if err := s.farmerRepo.Create(ctx, farmer); err != nil {
		return nil, apperrors.WrapDatabaseError(err)
	}

	return farmer, nil
}

// Login verifies phone number and password and issues an access token. The
// failure message never says which of the two was wrong.
func (s *FarmerService) Login(ctx context.Context, request *domain.LoginRequest) (*domain.LoginResponse, error) {
	if err := s.checkLoginThrottle(ctx, request.PhoneNumber); err != nil {
		return nil, err
	}

	farmer, err := s.farmerRepo.GetByPhone(ctx, request.PhoneNumber)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			s.recordFailedLogin(ctx, request.PhoneNumber)
			return nil, apperrors.WrapUnauthorized("Invalid phone number or password")
		}
		return nil, apperrors.WrapDatabaseError(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(farmer.HashedPassword), []byte(request.Password)); err != nil {
		s.recordFailedLogin(ctx, request.PhoneNumber)
		return nil, apperrors.WrapUnauthorized("Invalid phone number or password")
	}

	token, err := auth.GenerateToken(s.config.Auth.JWTSecret, s.config.TokenExpiry(), farmer.ID)
	if err != nil {
		return nil, fmt.Errorf("signing token: %w", err)
	}

	s.clearFailedLogins(ctx, request.PhoneNumber)

	return &domain.LoginResponse{
		Message:     "Login successful",
		FarmerID:    farmer.ID,
		AccessToken: token,
	}, nil
}

// List returns all farmers (admin surface).
func (s *FarmerService) List(ctx context.Context) ([]*domain.FarmerResponse, error) {
	farmers, err := s.farmerRepo.List(ctx)
	if err != nil {
		return nil, apperrors.WrapDatabaseError(err)
	}

	out := make([]*domain.FarmerResponse, 0, len(farmers))
	for _, farmer := range farmers {
		out = append(out, farmer.ToResponse())
	}
	return out, nil
}

// Delete removes a farmer; farms, seasons and activities cascade in the
// store.
func (s *FarmerService) Delete(ctx context.Context, farmerID int64) error {
	if _, err := s.farmerRepo.GetByID(ctx, farmerID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperrors.WrapFarmerNotFound(farmerID)
		}
		return apperrors.WrapDatabaseError(err)
	}

	if err := s.farmerRepo.Delete(ctx, farmerID); err != nil {
		return apperrors.WrapDatabaseError(err)
	}
	return nil
}

func loginAttemptsKey(phoneNumber string) string {
	return fmt.Sprintf("login_attempts:%s", phoneNumber)
}

// checkLoginThrottle rejects logins once the failed-attempt counter for a
// phone number hits the configured limit. Throttling is skipped when no
// redis client is wired (tests).
func (s *FarmerService) checkLoginThrottle(ctx context.Context, phoneNumber string) error {
	if s.redis == nil {
		return nil
	}

	attempts, err := s.redis.Get(ctx, loginAttemptsKey(phoneNumber)).Int()
	if err != nil && !errors.Is(err, redis.Nil) {
		// Redis being down must not lock everyone out
		return nil
	}

	if attempts >= s.config.Auth.LoginMaxAttempts {
		return apperrors.WrapUnauthorized("Too many failed login attempts, try again later")
	}
	return nil
}

func (s *FarmerService) recordFailedLogin(ctx context.Context, phoneNumber string) {
	if s.redis == nil {
		return
	}

	key := loginAttemptsKey(phoneNumber)
	if err := s.redis.Incr(ctx, key).Err(); err != nil {
		return
	}
	s.redis.Expire(ctx, key, s.config.LoginAttemptWindow())
}

func (s *FarmerService) clearFailedLogins(ctx context.Context, phoneNumber string) {
	if s.redis == nil {
		return
	}
	s.redis.Del(ctx, loginAttemptsKey(phoneNumber))
}
