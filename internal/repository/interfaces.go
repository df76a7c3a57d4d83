package repository

import (
	"context"
	"time"

	"github.com/denisMujuzi/ezyagric-backend/internal/domain"
)

// FarmerRepository defines the interface for farmer data operations
type FarmerRepository interface {
	// Create creates a new farmer and fills in the generated ID
	Create(ctx context.Context, farmer *domain.Farmer) error

	// GetByID retrieves a farmer by ID
	GetByID(ctx context.Context, id int64) (*domain.Farmer, error)

	// GetByPhone retrieves a farmer by phone number
	GetByPhone(ctx context.Context, phoneNumber string) (*domain.Farmer, error)

	// GetByEmail retrieves a farmer by email
	GetByEmail(ctx context.Context, email string) (*domain.Farmer, error)

	// List retrieves all farmers
	List(ctx context.Context) ([]*domain.Farmer, error)

	// Delete removes a farmer; owned farms and their seasons cascade in the store
	Delete(ctx context.Context, id int64) error
}

// FarmRepository defines the interface for farm data operations
type FarmRepository interface {
	// Create creates a new farm and fills in the generated ID
	Create(ctx context.Context, farm *domain.Farm) error

	// GetByID retrieves a farm by ID
	GetByID(ctx context.Context, id int64) (*domain.Farm, error)

	// Update updates a farm
	Update(ctx context.Context, farm *domain.Farm) error

	// ListByFarmer retrieves all farms owned by a farmer
	ListByFarmer(ctx context.Context, farmerID int64) ([]*domain.Farm, error)

	// List retrieves all farms
	List(ctx context.Context) ([]*domain.Farm, error)

	// Delete removes a farm; seasons and activities cascade in the store
	Delete(ctx context.Context, id int64) error
}

// SeasonRepository defines the interface for season plan data operations
type SeasonRepository interface {
	// Create creates a new season plan and fills in the generated ID
	Create(ctx context.Context, season *domain.SeasonPlan) error

	// GetByID retrieves a season plan by ID
	GetByID(ctx context.Context, id int64) (*domain.SeasonPlan, error)

	// Update updates a season plan
	Update(ctx context.Context, season *domain.SeasonPlan) error
}

// ActivityRepository defines the interface for planned and actual activity
// data operations
type ActivityRepository interface {
	// CreatePlannedBatch inserts planned activities in a single transaction
	CreatePlannedBatch(ctx context.Context, activities []*domain.PlannedActivity) error

	// ListPlannedBySeason retrieves planned activities for a season
	ListPlannedBySeason(ctx context.Context, seasonID int64) ([]*domain.PlannedActivity, error)

	// GetPlannedByID retrieves a planned activity by ID
	GetPlannedByID(ctx context.Context, id int64) (*domain.PlannedActivity, error)

	// UpdatePlannedStatus updates the stored status of a planned activity
	UpdatePlannedStatus(ctx context.Context, id int64, status string) error

	// CreateActualBatch inserts actual activities and marks the referenced
	// planned activities completed, all in a single transaction
	CreateActualBatch(ctx context.Context, activities []*domain.ActualActivity, completedPlannedIDs []int64) error

	// ListActualBySeason retrieves actual activities for a season
	ListActualBySeason(ctx context.Context, seasonID int64) ([]*domain.ActualActivity, error)

	// ListPlannedDueBefore retrieves planned activities with a target date
	// before cutoff whose status is not yet the given one
	ListPlannedDueBefore(ctx context.Context, cutoff time.Time, excludeStatuses []string) ([]*domain.PlannedActivity, error)
}
