package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/denisMujuzi/ezyagric-backend/internal/auth"
	"github.com/denisMujuzi/ezyagric-backend/internal/domain"
	"github.com/denisMujuzi/ezyagric-backend/pkg/response"

	"github.com/go-playground/validator/v10"
)

// SeasonEngine is the slice of the season lifecycle engine the HTTP surface
// needs.
type SeasonEngine interface {
	CreateSeason(ctx context.Context, request *domain.CreateSeasonRequest, callerFarmerID int64) (*domain.SeasonPlan, error)
	UpdateSeason(ctx context.Context, seasonID int64, request *domain.UpdateSeasonRequest, callerFarmerID int64) (*domain.SeasonPlan, error)
	AddPlannedActivities(ctx context.Context, seasonID int64, items []domain.PlannedActivityCreate, callerFarmerID int64) error
	AddActualActivities(ctx context.Context, seasonID int64, items []domain.ActualActivityCreate, callerFarmerID int64) error
	GetSeasonDetails(ctx context.Context, seasonID int64, callerFarmerID int64) (*domain.SeasonDetailsResponse, error)
	GetSeasonSummary(ctx context.Context, seasonID int64, callerFarmerID int64) (*domain.SeasonSummaryResponse, error)
}

type SeasonHandler struct {
	engine    SeasonEngine
	validator *validator.Validate
}

func NewSeasonHandler(engine SeasonEngine) *SeasonHandler {
	return &SeasonHandler{
		engine:    engine,
		validator: newValidator(),
	}
}

// CreateSeason handles POST /seasons
func (h *SeasonHandler) CreateSeason(w http.ResponseWriter, r *http.Request) {
	farmerID, ok := auth.FarmerID(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized: Invalid Authorization token")
		return
	}

	var request domain.CreateSeasonRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		response.BadRequest(w, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if err := h.validator.Struct(&request); err != nil {
		response.BadRequest(w, "VALIDATION_ERROR", err.Error())
		return
	}

	season, err := h.engine.CreateSeason(r.Context(), &request, farmerID)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Created(w, season)
}

// UpdateSeason handles PUT /seasons/{seasonId}
func (h *SeasonHandler) UpdateSeason(w http.ResponseWriter, r *http.Request) {
	farmerID, ok := auth.FarmerID(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized: Invalid Authorization token")
		return
	}

	seasonID, err := pathID(r, "seasonId")
	if err != nil {
		response.BadRequest(w, "VALIDATION_ERROR", "Invalid season id")
		return
	}

	var request domain.UpdateSeasonRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		response.BadRequest(w, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	season, err := h.engine.UpdateSeason(r.Context(), seasonID, &request, farmerID)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, season)
}

// AddPlannedActivities handles POST /seasons/{seasonId}/planned-activities
func (h *SeasonHandler) AddPlannedActivities(w http.ResponseWriter, r *http.Request) {
	farmerID, ok := auth.FarmerID(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized: Invalid Authorization token")
		return
	}

	seasonID, err := pathID(r, "seasonId")
	if err != nil {
		response.BadRequest(w, "VALIDATION_ERROR", "Invalid season id")
		return
	}

	var items []domain.PlannedActivityCreate
	if err := json.NewDecoder(r.Body).Decode(&items); err != nil {
		response.BadRequest(w, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	for _, item := range items {
		if err := h.validator.Struct(&item); err != nil {
			response.BadRequest(w, "VALIDATION_ERROR", err.Error())
			return
		}
	}

	if err := h.engine.AddPlannedActivities(r.Context(), seasonID, items, farmerID); err != nil {
		writeError(w, err)
		return
	}

	response.Created(w, map[string]string{"message": "Planned activities added successfully"})
}

// AddActualActivities handles POST /seasons/{seasonId}/actual-activities
func (h *SeasonHandler) AddActualActivities(w http.ResponseWriter, r *http.Request) {
	farmerID, ok := auth.FarmerID(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized: Invalid Authorization token")
		return
	}

	seasonID, err := pathID(r, "seasonId")
	if err != nil {
		response.BadRequest(w, "VALIDATION_ERROR", "Invalid season id")
		return
	}

	var items []domain.ActualActivityCreate
	if err := json.NewDecoder(r.Body).Decode(&items); err != nil {
		response.BadRequest(w, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	for _, item := range items {
		if err := h.validator.Struct(&item); err != nil {
			response.BadRequest(w, "VALIDATION_ERROR", err.Error())
			return
		}
	}

	if err := h.engine.AddActualActivities(r.Context(), seasonID, items, farmerID); err != nil {
		writeError(w, err)
		return
	}

	response.Created(w, map[string]string{"message": "Actual activities added successfully"})
}

// GetSeasonDetails handles GET /seasons/{seasonId}
func (h *SeasonHandler) GetSeasonDetails(w http.ResponseWriter, r *http.Request) {
	farmerID, ok := auth.FarmerID(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized: Invalid Authorization token")
		return
	}

	seasonID, err := pathID(r, "seasonId")
	if err != nil {
		response.BadRequest(w, "VALIDATION_ERROR", "Invalid season id")
		return
	}

	details, err := h.engine.GetSeasonDetails(r.Context(), seasonID, farmerID)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, details)
}

// GetSeasonSummary handles GET /seasons/{seasonId}/summary
func (h *SeasonHandler) GetSeasonSummary(w http.ResponseWriter, r *http.Request) {
	farmerID, ok := auth.FarmerID(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized: Invalid Authorization token")
		return
	}

	seasonID, err := pathID(r, "seasonId")
	if err != nil {
		response.BadRequest(w, "VALIDATION_ERROR", "Invalid season id")
		return
	}

	summary, err := h.engine.GetSeasonSummary(r.Context(), seasonID, farmerID)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, summary)
}
