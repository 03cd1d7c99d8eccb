package passporterrors

import (
	"net/http"

	"github.com/seyf-eddine19/HRM/internal/shared/apperror"
)

var (
	ErrPassportNotFound = apperror.New(
		apperror.CodeNotFound,
		"Passport not found",
		http.StatusNotFound,
	)
	ErrPassportNumberAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Passport with the same number already exists",
		http.StatusConflict,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"Owning employee does not exist",
		http.StatusBadRequest,
	)
	ErrPassportTypeNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"Passport type does not exist",
		http.StatusBadRequest,
	)
	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
)
