package visa_test

import (
	"context"
	"errors"
	"testing"

	"github.com/seyf-eddine19/HRM/internal/lookup"
	"github.com/seyf-eddine19/HRM/internal/passport"
	"github.com/seyf-eddine19/HRM/internal/visa"
	visaerrors "github.com/seyf-eddine19/HRM/internal/visa/errors"

	lookupMock "github.com/seyf-eddine19/HRM/internal/lookup/mock"
	passportMock "github.com/seyf-eddine19/HRM/internal/passport/mock"
	visaMock "github.com/seyf-eddine19/HRM/internal/visa/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	service   visa.Service
	repo      *visaMock.MockRepository
	passports *passportMock.MockRepository
	lookups   *lookupMock.MockRepository
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	repo := visaMock.NewMockRepository(ctrl)
	passports := passportMock.NewMockRepository(ctrl)
	lookups := lookupMock.NewMockRepository(ctrl)
	svc := visa.NewService(repo, passports, lookups)

	return &serviceDeps{
		service:   svc,
		repo:      repo,
		passports: passports,
		lookups:   lookups,
	}
}

func TestVisaService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		passportID := uuid.New()
		typeID := uuid.New()

		deps.passports.EXPECT().
			FindByID(ctx, passportID.String()).
			Return(&passport.Row{Passport: passport.Passport{ID: passportID}}, nil)
		deps.lookups.EXPECT().
			FindByID(ctx, lookup.KindVisaType, typeID.String()).
			Return(&lookup.Value{ID: typeID, Name: "Work"}, nil)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, v *visa.Visa) error {
				assert.Equal(t, "V-100", v.VisaNumber)
				assert.Equal(t, passportID, v.PassportID)
				return nil
			})

		resp, err := deps.service.Create(ctx, visa.CreateVisaRequest{
			PassportID: passportID.String(),
			VisaNumber: "V-100",
			VisaTypeID: typeID.String(),
			IssueDate:  "2025-01-01",
			ExpiryDate: "2026-01-01",
		})
		assert.NoError(t, err)
		assert.Equal(t, "V-100", resp.VisaNumber)
	})

	t.Run("unknown passport", func(t *testing.T) {
		deps := setupServiceTest(t)
		passportID := uuid.NewString()

		deps.passports.EXPECT().
			FindByID(ctx, passportID).
			Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Create(ctx, visa.CreateVisaRequest{
			PassportID: passportID,
			VisaNumber: "V-1",
		})
		assert.ErrorIs(t, err, visaerrors.ErrPassportNotFound)
	})

	t.Run("duplicate visa number", func(t *testing.T) {
		deps := setupServiceTest(t)
		passportID := uuid.New()

		deps.passports.EXPECT().
			FindByID(ctx, passportID.String()).
			Return(&passport.Row{Passport: passport.Passport{ID: passportID}}, nil)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			Return(errors.New("UNIQUE constraint failed: visas.visa_number"))

		_, err := deps.service.Create(ctx, visa.CreateVisaRequest{
			PassportID: passportID.String(),
			VisaNumber: "V-1",
		})
		assert.ErrorIs(t, err, visaerrors.ErrVisaNumberAlreadyExists)
	})
}

func TestVisaService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("missing visa", func(t *testing.T) {
		deps := setupServiceTest(t)
		id := uuid.NewString()

		deps.repo.EXPECT().
			Delete(ctx, id).
			Return(gorm.ErrRecordNotFound)

		err := deps.service.Delete(ctx, id)
		assert.ErrorIs(t, err, visaerrors.ErrVisaNotFound)
	})
}
