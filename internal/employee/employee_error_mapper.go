package employee

import (
	"errors"
	"strings"

	employeeerrors "github.com/seyf-eddine19/HRM/internal/employee/errors"

	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}

	errMsg := err.Error()
	if strings.Contains(errMsg, "UNIQUE constraint failed") && strings.Contains(errMsg, "general_number") {
		return employeeerrors.ErrGeneralNumberAlreadyExists
	}
	if strings.Contains(errMsg, "FOREIGN KEY constraint failed") {
		return employeeerrors.ErrLookupReferenceMissing
	}

	return err
}
