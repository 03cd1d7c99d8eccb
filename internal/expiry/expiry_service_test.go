package expiry_test

import (
	"context"
	"testing"
	"time"

	"github.com/seyf-eddine19/HRM/internal/expiry"
	expiryerrors "github.com/seyf-eddine19/HRM/internal/expiry/errors"
	"github.com/seyf-eddine19/HRM/internal/passport"
	"github.com/seyf-eddine19/HRM/internal/visa"

	passportMock "github.com/seyf-eddine19/HRM/internal/passport/mock"
	visaMock "github.com/seyf-eddine19/HRM/internal/visa/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func inDays(n int) string {
	return time.Now().UTC().AddDate(0, 0, n).Format("2006-01-02")
}

func passportRow(number, expiryDate string) passport.Row {
	return passport.Row{
		Passport: passport.Passport{
			ID:             uuid.New(),
			EmployeeID:     uuid.New(),
			PassportNumber: number,
			ExpiryDate:     expiryDate,
		},
		EmployeeNameAr: "أحمد علي",
		GeneralNumber:  "EMP-1",
	}
}

func TestExpiryService_ExpiringPassports(t *testing.T) {
	ctx := context.Background()

	t.Run("keeps only passports inside the window, soonest first", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		passports := passportMock.NewMockRepository(ctrl)
		visas := visaMock.NewMockRepository(ctrl)
		svc := expiry.NewService(passports, visas)

		passports.EXPECT().FindAll(ctx).Return([]passport.Row{
			passportRow("P-SOON", inDays(10)),
			passportRow("P-SOONER", inDays(3)),
			passportRow("P-FAR", inDays(200)),
			passportRow("P-EXPIRED", inDays(-5)),
			passportRow("P-BLANK", ""),
		}, nil)

		resp, err := svc.ExpiringPassports(ctx, 30)

		assert.NoError(t, err)
		assert.Len(t, resp, 2)
		assert.Equal(t, "P-SOONER", resp[0].PassportNumber)
		assert.Equal(t, "P-SOON", resp[1].PassportNumber)
		assert.Equal(t, 3, resp[0].DaysRemaining)
	})

	t.Run("window zero returns only the expired", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		passports := passportMock.NewMockRepository(ctrl)
		visas := visaMock.NewMockRepository(ctrl)
		svc := expiry.NewService(passports, visas)

		passports.EXPECT().FindAll(ctx).Return([]passport.Row{
			passportRow("P-SOON", inDays(10)),
			passportRow("P-EXPIRED", inDays(-5)),
		}, nil)

		resp, err := svc.ExpiringPassports(ctx, 0)

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, "P-EXPIRED", resp[0].PassportNumber)
	})

	t.Run("rejects a window outside the offered set", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := expiry.NewService(
			passportMock.NewMockRepository(ctrl),
			visaMock.NewMockRepository(ctrl),
		)

		_, err := svc.ExpiringPassports(ctx, 7)

		assert.ErrorIs(t, err, expiryerrors.ErrInvalidWindow)
	})

	t.Run("empty scan returns an empty slice not nil", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		passports := passportMock.NewMockRepository(ctrl)
		svc := expiry.NewService(passports, visaMock.NewMockRepository(ctrl))

		passports.EXPECT().FindAll(ctx).Return([]passport.Row{}, nil)

		resp, err := svc.ExpiringPassports(ctx, 15)

		assert.NoError(t, err)
		assert.NotNil(t, resp)
		assert.Empty(t, resp)
	})
}

func TestExpiryService_ExpiringVisas(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	passports := passportMock.NewMockRepository(ctrl)
	visas := visaMock.NewMockRepository(ctrl)
	svc := expiry.NewService(passports, visas)

	visas.EXPECT().FindAll(ctx).Return([]visa.Row{
		{
			Visa: visa.Visa{
				ID:         uuid.New(),
				PassportID: uuid.New(),
				VisaNumber: "V-SOON",
				ExpiryDate: inDays(40),
			},
			VisaTypeName:   "عمل",
			PassportNumber: "P-1",
			EmployeeNameAr: "أحمد علي",
		},
		{
			Visa: visa.Visa{
				ID:         uuid.New(),
				PassportID: uuid.New(),
				VisaNumber: "V-FAR",
				ExpiryDate: inDays(120),
			},
		},
	}, nil)

	resp, err := svc.ExpiringVisas(ctx, 45)

	assert.NoError(t, err)
	assert.Len(t, resp, 1)
	assert.Equal(t, "V-SOON", resp[0].VisaNumber)
	assert.Equal(t, "عمل", resp[0].VisaType)
	assert.Equal(t, 40, resp[0].DaysRemaining)
}
