package handler

import (
	"net/http"
	"reflect"
	"strconv"

	"github.com/denisMujuzi/ezyagric-backend/pkg/apperrors"
	"github.com/denisMujuzi/ezyagric-backend/pkg/response"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
)

// newValidator builds the request validator with the decimal comparison
// tags (dgt, dgte) used by the DTOs. Decimals are surfaced to the validator
// as their string form so the struct type doesn't short-circuit validation.
func newValidator() *validator.Validate {
	v := validator.New()

	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.String()
		}
		return nil
	}, decimal.Decimal{})

	compare := func(fl validator.FieldLevel) (decimal.Decimal, decimal.Decimal, bool) {
		raw, ok := fl.Field().Interface().(string)
		if !ok {
			return decimal.Zero, decimal.Zero, false
		}
		d, err := decimal.NewFromString(raw)
		if err != nil {
			return decimal.Zero, decimal.Zero, false
		}
		bound, err := decimal.NewFromString(fl.Param())
		if err != nil {
			return decimal.Zero, decimal.Zero, false
		}
		return d, bound, true
	}

	_ = v.RegisterValidation("dgt", func(fl validator.FieldLevel) bool {
		d, bound, ok := compare(fl)
		return ok && d.GreaterThan(bound)
	})

	_ = v.RegisterValidation("dgte", func(fl validator.FieldLevel) bool {
		d, bound, ok := compare(fl)
		return ok && d.GreaterThanOrEqual(bound)
	})

	return v
}

// pathID extracts a numeric path variable.
func pathID(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)[name], 10, 64)
}

// writeError maps the domain error taxonomy onto HTTP status codes. Causes
// never reach the wire, only the coded message does.
func writeError(w http.ResponseWriter, err error) {
	code := apperrors.CodeOf(err)
	message := apperrors.MessageOf(err)

	switch code {
	case apperrors.ErrCodeUnauthorized:
		response.Error(w, http.StatusUnauthorized, code, message)
	case apperrors.ErrCodeForbidden:
		response.Error(w, http.StatusForbidden, code, message)
	case apperrors.ErrCodeNotFound:
		response.Error(w, http.StatusNotFound, code, message)
	case apperrors.ErrCodeInvalidReference, apperrors.ErrCodeValidation:
		response.Error(w, http.StatusBadRequest, code, message)
	case apperrors.ErrCodeConflict:
		response.Error(w, http.StatusConflict, code, message)
	default:
		response.InternalServerError(w, "internal error")
	}
}
