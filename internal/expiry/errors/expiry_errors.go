package expiryerrors

import (
	"net/http"

	"github.com/seyf-eddine19/HRM/internal/shared/apperror"
)

var ErrInvalidWindow = apperror.New(
	apperror.CodeInvalidInput,
	"Window must be one of 0, 15, 30, 45, 60, 90 or 180 days",
	http.StatusBadRequest,
)
