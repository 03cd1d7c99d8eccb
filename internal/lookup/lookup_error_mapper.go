package lookup

import (
	"errors"
	"strings"

	lookuperrors "github.com/seyf-eddine19/HRM/internal/lookup/errors"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return lookuperrors.ErrValueNotFound
	}
	msg := err.Error()
	if strings.Contains(msg, "UNIQUE constraint failed") {
		return lookuperrors.ErrDuplicateName
	}
	if strings.Contains(msg, "FOREIGN KEY constraint failed") {
		return lookuperrors.ErrValueInUse
	}
	return err
}
