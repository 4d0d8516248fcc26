package errs

import (
	"errors"
	"net/http"
)

var (
	ErrInternalServer      = errors.New("Internal server error")
	ErrClient              = errors.New("Bad request")
	ErrInvalidID           = errors.New("Valid ID is required")
	ErrNameRequired        = errors.New("Name is required")
	ErrInvalidPrice        = errors.New("Price must be a non-negative number")
	ErrContentRequired     = errors.New("Content is required")
	ErrNotFound            = errors.New("Resource not found")
	ErrCityNotFound        = errors.New("City not found")
	ErrProductNotFound     = errors.New("Product not found")
	ErrProductsNotFound    = errors.New("One or more products not found")
	ErrAssociationNotFound = errors.New("Association not found")
	ErrDuplicateName       = errors.New("Duplicate name found")
)

// Duplicate names map to 400 rather than 409 because the browser UI treats
// every 4xx body message as a user-facing validation notice.
var errorMap = map[error]int{
	ErrInternalServer:      http.StatusInternalServerError,
	ErrClient:              http.StatusBadRequest,
	ErrInvalidID:           http.StatusBadRequest,
	ErrNameRequired:        http.StatusBadRequest,
	ErrInvalidPrice:        http.StatusBadRequest,
	ErrContentRequired:     http.StatusBadRequest,
	ErrNotFound:            http.StatusNotFound,
	ErrCityNotFound:        http.StatusNotFound,
	ErrProductNotFound:     http.StatusNotFound,
	ErrProductsNotFound:    http.StatusNotFound,
	ErrAssociationNotFound: http.StatusNotFound,
	ErrDuplicateName:       http.StatusBadRequest,
}

// GetErrorStatusCode resolves wrapped errors too, so a NotFound error that
// carries the missing ids in its message still maps to 404.
func GetErrorStatusCode(err error) int {
	if statusCode, ok := errorMap[err]; ok {
		return statusCode
	}

	for target, statusCode := range errorMap {
		if errors.Is(err, target) {
			return statusCode
		}
	}

	return http.StatusInternalServerError
}
