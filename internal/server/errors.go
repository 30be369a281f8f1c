package server

import (
	"errors"
	"net/http"

	"github.com/spark-portfolio/spark/internal/compose"
	"github.com/spark-portfolio/spark/internal/export"
	"github.com/spark-portfolio/spark/internal/store"
)

// ErrInvalidCredentials indicates invalid login credentials.
type ErrInvalidCredentials struct{}

func (e *ErrInvalidCredentials) Error() string {
	return "invalid username or password"
}

// HTTPStatus returns the appropriate HTTP status code for an error.
func HTTPStatus(err error) int {
	var (
		validationErr *compose.ValidationError
		notFoundErr   *store.ErrDocumentNotFound
		exportErr     *export.ErrExportUnavailable
		credsErr      *ErrInvalidCredentials
	)
	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.As(err, &notFoundErr):
		return http.StatusNotFound
	case errors.As(err, &exportErr):
		return http.StatusConflict
	case errors.As(err, &credsErr):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
