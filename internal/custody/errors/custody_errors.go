package custodyerrors

import (
	"net/http"

	"github.com/seyf-eddine19/HRM/internal/shared/apperror"
)

var (
	ErrEmptyBatch = apperror.New(
		apperror.CodeInvalidInput,
		"At least one passport must be selected",
		http.StatusBadRequest,
	)
	ErrPassportsNotFound = apperror.New(
		apperror.CodeNotFound,
		"None of the selected passports exist",
		http.StatusNotFound,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid date range, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
)
