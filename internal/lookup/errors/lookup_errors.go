package lookuperrors

import (
	"net/http"

	"github.com/seyf-eddine19/HRM/internal/shared/apperror"
)

var (
	ErrUnknownKind = apperror.New(
		apperror.CodeInvalidInput,
		"unknown lookup table",
		http.StatusBadRequest,
	)
	ErrValueNotFound = apperror.New(
		apperror.CodeNotFound,
		"lookup value not found",
		http.StatusNotFound,
	)
	ErrDuplicateName = apperror.New(
		apperror.CodeConflict,
		"lookup value already exists",
		http.StatusConflict,
	)
	ErrValueInUse = apperror.New(
		apperror.CodeConflict,
		"lookup value is referenced by existing records",
		http.StatusConflict,
	)
)
