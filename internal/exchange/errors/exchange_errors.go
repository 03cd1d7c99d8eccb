package exchangeerrors

import (
	"net/http"

	"github.com/seyf-eddine19/HRM/internal/shared/apperror"
)

var (
	ErrInvalidWorkbook = apperror.New(
		apperror.CodeInvalidInput,
		"The uploaded file is not a readable XLSX workbook",
		http.StatusBadRequest,
	)
	ErrEmptyWorkbook = apperror.New(
		apperror.CodeInvalidInput,
		"The workbook has no data rows",
		http.StatusBadRequest,
	)
	ErrMissingColumns = apperror.New(
		apperror.CodeInvalidInput,
		"The workbook is missing the general number or Arabic name column",
		http.StatusBadRequest,
	)
)
