package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/denisMujuzi/ezyagric-backend/internal/domain"
	"github.com/denisMujuzi/ezyagric-backend/pkg/response"

	"github.com/go-playground/validator/v10"
)

type FarmerDirectory interface {
	Register(ctx context.Context, request *domain.RegisterFarmerRequest) (*domain.Farmer, error)
	Login(ctx context.Context, request *domain.LoginRequest) (*domain.LoginResponse, error)
	List(ctx context.Context) ([]*domain.FarmerResponse, error)
	Delete(ctx context.Context, farmerID int64) error
}

type FarmerHandler struct {
	service   FarmerDirectory
	validator *validator.Validate
}

func NewFarmerHandler(service FarmerDirectory) *FarmerHandler {
	return &FarmerHandler{
		service:   service,
		validator: newValidator(),
	}
}

// Register handles POST /farmers (admin only)
func (h *FarmerHandler) Register(w http.ResponseWriter, r *http.Request) {
	var request domain.RegisterFarmerRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		response.BadRequest(w, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if err := h.validator.Struct(&request); err != nil {
		response.BadRequest(w, "VALIDATION_ERROR", err.Error())
		return
	}

	farmer, err := h.service.Register(r.Context(), &request)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Created(w, farmer.ToResponse())
}

// Login handles POST /farmers/login
func (h *FarmerHandler) Login(w http.ResponseWriter, r *http.Request) {
	var request domain.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		response.BadRequest(w, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if err := h.validator.Struct(&request); err != nil {
		response.BadRequest(w, "VALIDATION_ERROR", err.Error())
		return
	}

	result, err := h.service.Login(r.Context(), &request)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, result)
}

// List handles GET /farmers (admin only)
func (h *FarmerHandler) List(w http.ResponseWriter, r *http.Request) {
	farmers, err := h.service.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, farmers)
}

// Delete handles DELETE /farmers/{farmerId} (admin only)
func (h *FarmerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	farmerID, err := pathID(r, "farmerId")
	if err != nil {
		response.BadRequest(w, "VALIDATION_ERROR", "Invalid farmer id")
		return
	}

	if err := h.service.Delete(r.Context(), farmerID); err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, map[string]string{"message": "Farmer deleted successfully"})
}
