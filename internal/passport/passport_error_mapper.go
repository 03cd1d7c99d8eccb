package passport

import (
	"errors"
	"strings"

	passporterrors "github.com/seyf-eddine19/HRM/internal/passport/errors"

	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return passporterrors.ErrPassportNotFound
	}

	errMsg := err.Error()
	if strings.Contains(errMsg, "UNIQUE constraint failed") && strings.Contains(errMsg, "passport_number") {
		return passporterrors.ErrPassportNumberAlreadyExists
	}
	if strings.Contains(errMsg, "FOREIGN KEY constraint failed") {
		return passporterrors.ErrEmployeeNotFound
	}

	return err
}
