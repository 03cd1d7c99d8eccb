package custody_test

import (
	"context"
	"testing"

	"github.com/seyf-eddine19/HRM/internal/custody"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCustodyRepository_GetStates(t *testing.T) {
	ctx := context.Background()

	t.Run("scans rows into passport states", func(t *testing.T) {
		db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
		assert.NoError(t, err)
		defer db.Close()

		id, emplID := uuid.New(), uuid.New()
		mock.ExpectQuery(`SELECT id, passport_number, employee_id, custodian`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "passport_number", "employee_id", "custodian"}).
				AddRow(id.String(), "P-100", emplID.String(), "organization"))

		states, err := custody.NewRepository(db).GetStates(ctx, []string{id.String()})
		assert.NoError(t, err)
		assert.Len(t, states, 1)
		assert.Equal(t, id, states[0].ID)
		assert.Equal(t, emplID, states[0].EmployeeID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("malformed stored id returns an error", func(t *testing.T) {
		db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
		assert.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT id, passport_number, employee_id, custodian`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "passport_number", "employee_id", "custodian"}).
				AddRow("not-a-uuid", "P-100", uuid.NewString(), "organization"))

		assert.NotPanics(t, func() {
			_, err = custody.NewRepository(db).GetStates(ctx, []string{"not-a-uuid"})
			assert.Error(t, err)
		})
	})
}
