package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Activity status values
const (
	StatusUpcoming  = "UPCOMING"
	StatusOverdue   = "OVERDUE"
	StatusCompleted = "COMPLETED"
)

// PlannedActivity is a scheduled farming task with a target date and a
// budgeted cost. Status is derived from the target date and linkage, and the
// stored value is refreshed on every season read.
type PlannedActivity struct {
	ID               int64           `json:"id" db:"id"`
	SeasonPlanID     int64           `json:"seasonPlanId" db:"season_plan_id"`
	ActivityType     string          `json:"activityType" db:"activity_type"`
	TargetDate       time.Time       `json:"targetDate" db:"target_date"`
	EstimatedCostUgx decimal.Decimal `json:"estimatedCostUgx" db:"estimated_cost_ugx"`
	Status           string          `json:"status" db:"status"`
}

// ActualActivity records a task actually performed. PlannedActivityID is nil
// for ad-hoc work that fulfils no plan.
type ActualActivity struct {
	ID                int64           `json:"id" db:"id"`
	SeasonPlanID      int64           `json:"seasonPlanId" db:"season_plan_id"`
	ActivityType      string          `json:"activityType" db:"activity_type"`
	ActualDate        time.Time       `json:"actualDate" db:"actual_date"`
	ActualCostUgx     decimal.Decimal `json:"actualCostUgx" db:"actual_cost_ugx"`
	Notes             *string         `json:"notes,omitempty" db:"notes"`
	PlannedActivityID *int64          `json:"plannedActivityId,omitempty" db:"planned_activity_id"`
}

// Batch item DTOs; dates arrive as civil dates, not instants.

type PlannedActivityCreate struct {
	ActivityType     string          `json:"activityType" validate:"required"`
	TargetDate       string          `json:"targetDate" validate:"required,datetime=2006-01-02"`
	EstimatedCostUgx decimal.Decimal `json:"estimatedCostUgx" validate:"dgte=0"`
}

type ActualActivityCreate struct {
	ActivityType      string          `json:"activityType" validate:"required"`
	ActualDate        string          `json:"actualDate" validate:"required,datetime=2006-01-02"`
	ActualCostUgx     decimal.Decimal `json:"actualCostUgx" validate:"dgte=0"`
	Notes             *string         `json:"notes"`
	PlannedActivityID *int64          `json:"plannedActivityId"`
}

// DeriveStatus is the pure status rule: completion wins outright, otherwise
// a target date on an earlier calendar day than today means overdue.
func DeriveStatus(targetDate, today time.Time, isLinked bool) string {
	if isLinked {
		return StatusCompleted
	}
	ty, tm, td := targetDate.Date()
	ny, nm, nd := today.Date()
	target := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)
	now := time.Date(ny, nm, nd, 0, 0, 0, 0, time.UTC)
	if target.Before(now) {
		return StatusOverdue
	}
	return StatusUpcoming
}
