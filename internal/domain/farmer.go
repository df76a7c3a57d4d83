package domain

import "time"

// Farmer represents a registered farmer account
type Farmer struct {
	ID             int64     `json:"id" db:"id"`
	Name           string    `json:"name" db:"name"`
	PhoneNumber    string    `json:"phoneNumber" db:"phone_number"`
	Email          *string   `json:"email,omitempty" db:"email"`
	Gender         string    `json:"gender,omitempty" db:"gender"`
	HashedPassword string    `json:"-" db:"hashed_password"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
}

// DTOs for requests and responses

type RegisterFarmerRequest struct {
	Name        string  `json:"name" validate:"required"`
	PhoneNumber string  `json:"phoneNumber" validate:"required"`
	Email       *string `json:"email" validate:"omitempty,email"`
	Gender      string  `json:"gender"`
	Password    string  `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	PhoneNumber string `json:"phoneNumber" validate:"required"`
	Password    string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Message     string `json:"message"`
	FarmerID    int64  `json:"farmerId"`
	AccessToken string `json:"jwt_access_token"`
}

// FarmerResponse is the public view of a farmer; the password hash never
// leaves the service layer.
type FarmerResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	PhoneNumber string  `json:"phoneNumber"`
	Email       *string `json:"email,omitempty"`
}

func (f *Farmer) ToResponse() *FarmerResponse {
	return &FarmerResponse{
		ID:          f.ID,
		Name:        f.Name,
		PhoneNumber: f.PhoneNumber,
		Email:       f.Email,
	}
}
