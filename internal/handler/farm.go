package handler

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/denisMujuzi/ezyagric-backend/internal/auth"
	"github.com/denisMujuzi/ezyagric-backend/internal/domain"
	"github.com/denisMujuzi/ezyagric-backend/pkg/response"

	"github.com/go-playground/validator/v10"
)

type FarmRegistry interface {
	Create(ctx context.Context, request *domain.CreateFarmRequest, callerFarmerID int64) (*domain.Farm, error)
	Update(ctx context.Context, farmID int64, request *domain.UpdateFarmRequest, callerFarmerID int64) (*domain.Farm, error)
	ListByFarmer(ctx context.Context, farmerID, callerFarmerID int64, isAdmin bool) ([]*domain.Farm, error)
	Delete(ctx context.Context, farmID, callerFarmerID int64) error
}

type FarmHandler struct {
	service   FarmRegistry
	adminKey  string
	validator *validator.Validate
}

func NewFarmHandler(service FarmRegistry, adminKey string) *FarmHandler {
	return &FarmHandler{
		service:   service,
		adminKey:  adminKey,
		validator: newValidator(),
	}
}

// Create handles POST /farms
func (h *FarmHandler) Create(w http.ResponseWriter, r *http.Request) {
	farmerID, ok := auth.FarmerID(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized: Invalid Authorization token")
		return
	}

	var request domain.CreateFarmRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		response.BadRequest(w, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if err := h.validator.Struct(&request); err != nil {
		response.BadRequest(w, "VALIDATION_ERROR", err.Error())
		return
	}

	farm, err := h.service.Create(r.Context(), &request, farmerID)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Created(w, farm)
}

// List handles GET /farms?farmerId=N. An admin key in the query may list any
// farmer's farms, or every farm when farmerId is omitted.
func (h *FarmHandler) List(w http.ResponseWriter, r *http.Request) {
	var farmerID int64
	if raw := r.URL.Query().Get("farmerId"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			response.BadRequest(w, "VALIDATION_ERROR", "Invalid farmerId")
			return
		}
		farmerID = parsed
	}

	if adminKey := r.URL.Query().Get("admin_key"); adminKey != "" {
		if subtle.ConstantTimeCompare([]byte(adminKey), []byte(h.adminKey)) != 1 {
			response.Unauthorized(w, "Invalid admin key")
			return
		}
		farms, err := h.service.ListByFarmer(r.Context(), farmerID, 0, true)
		if err != nil {
			writeError(w, err)
			return
		}
		response.Success(w, farms)
		return
	}

	callerID, ok := auth.FarmerID(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized: Invalid Authorization token")
		return
	}
	if farmerID == 0 {
		farmerID = callerID
	}

	farms, err := h.service.ListByFarmer(r.Context(), farmerID, callerID, false)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, farms)
}

// Update handles PUT /farms/{farmId}
func (h *FarmHandler) Update(w http.ResponseWriter, r *http.Request) {
	farmerID, ok := auth.FarmerID(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized: Invalid Authorization token")
		return
	}

	farmID, err := pathID(r, "farmId")
	if err != nil {
		response.BadRequest(w, "VALIDATION_ERROR", "Invalid farm id")
		return
	}

	var request domain.UpdateFarmRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		response.BadRequest(w, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	farm, err := h.service.Update(r.Context(), farmID, &request, farmerID)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, farm)
}

// Delete handles DELETE /farms/{farmId}
func (h *FarmHandler) Delete(w http.ResponseWriter, r *http.Request) {
	farmerID, ok := auth.FarmerID(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized: Invalid Authorization token")
		return
	}

	farmID, err := pathID(r, "farmId")
	if err != nil {
		response.BadRequest(w, "VALIDATION_ERROR", "Invalid farm id")
		return
	}

	if err := h.service.Delete(r.Context(), farmID, farmerID); err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, map[string]string{"message": "Farm deleted successfully"})
}
