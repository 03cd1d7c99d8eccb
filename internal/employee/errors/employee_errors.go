package employeeerrors

import (
	"net/http"

	"github.com/seyf-eddine19/HRM/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrGeneralNumberAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Employee with the same general number already exists",
		http.StatusConflict,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrDepartmentNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"Department does not exist",
		http.StatusBadRequest,
	)
	ErrJobTitleNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"Job title does not exist",
		http.StatusBadRequest,
	)
	ErrLookupReferenceMissing = apperror.New(
		apperror.CodeInvalidInput,
		"Referenced department or job title does not exist",
		http.StatusBadRequest,
	)
)
