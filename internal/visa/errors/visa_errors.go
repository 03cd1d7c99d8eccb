package visaerrors

import (
	"net/http"

	"github.com/seyf-eddine19/HRM/internal/shared/apperror"
)

var (
	ErrVisaNotFound = apperror.New(
		apperror.CodeNotFound,
		"Visa not found",
		http.StatusNotFound,
	)
	ErrVisaNumberAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Visa with the same number already exists",
		http.StatusConflict,
	)
	ErrPassportNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"Owning passport does not exist",
		http.StatusBadRequest,
	)
	ErrVisaTypeNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"Visa type does not exist",
		http.StatusBadRequest,
	)
	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
)
