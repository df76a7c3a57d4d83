package domain

import "github.com/shopspring/decimal"

// Farm represents a farm owned by a farmer
type Farm struct {
	ID        int64           `json:"id" db:"id"`
	FarmerID  int64           `json:"farmerId" db:"farmer_id"`
	Name      string          `json:"name" db:"name"`
	SizeAcres decimal.Decimal `json:"sizeAcres" db:"size_acres"`
}

type CreateFarmRequest struct {
	FarmerID  int64           `json:"farmerId" validate:"required"`
	Name      string          `json:"name" validate:"required"`
	SizeAcres decimal.Decimal `json:"sizeAcres" validate:"dgt=0"`
}

// UpdateFarmRequest applies partial updates; nil fields are left untouched.
type UpdateFarmRequest struct {
	Name      *string          `json:"name"`
	SizeAcres *decimal.Decimal `json:"sizeAcres" validate:"omitempty,dgt=0"`
}
