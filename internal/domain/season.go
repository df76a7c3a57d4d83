package domain

import "github.com/shopspring/decimal"

// SeasonPlan groups the planned and actual activities of one cropping
// season on a farm, e.g. "Maize / 2024 Long Rains".
type SeasonPlan struct {
	ID         int64  `json:"id" db:"id"`
	FarmID     int64  `json:"farmId" db:"farm_id"`
	CropName   string `json:"cropName" db:"crop_name"`
	SeasonName string `json:"seasonName" db:"season_name"`
}

type CreateSeasonRequest struct {
	FarmID     int64  `json:"farmId" validate:"required"`
	CropName   string `json:"cropName" validate:"required"`
	SeasonName string `json:"seasonName" validate:"required"`
}

// UpdateSeasonRequest applies partial updates; nil fields are left untouched.
type UpdateSeasonRequest struct {
	CropName   *string `json:"cropName"`
	SeasonName *string `json:"seasonName"`
}

type FarmDetails struct {
	FarmID   int64  `json:"farmId"`
	FarmName string `json:"farmName"`
}

type SeasonView struct {
	ID          int64       `json:"id"`
	FarmDetails FarmDetails `json:"farm_details"`
	CropName    string      `json:"cropName"`
	SeasonName  string      `json:"seasonName"`
}

// SeasonDetailsResponse is the full read view of a season. Planned activity
// statuses are recomputed against today before this is built.
type SeasonDetailsResponse struct {
	Season            SeasonView         `json:"season"`
	PlannedActivities []*PlannedActivity `json:"planned_activities"`
	ActualActivities  []*ActualActivity  `json:"actual_activities"`
}

type SeasonSummaryResponse struct {
	SeasonID                 int64           `json:"seasonId"`
	TotalEstimatedCostUgx    decimal.Decimal `json:"totalEstimatedCostUgx"`
	TotalActualCostUgx       decimal.Decimal `json:"totalActualCostUgx"`
	ActivitiesUpcomingCount  int             `json:"activitiesUpcomingCount"`
	ActivitiesCompletedCount int             `json:"activitiesCompletedCount"`
	ActivitiesOverdueCount   int             `json:"activitiesOverdueCount"`
}
