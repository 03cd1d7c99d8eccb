package exchange_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/seyf-eddine19/HRM/internal/employee"
	"github.com/seyf-eddine19/HRM/internal/exchange"
	exchangeerrors "github.com/seyf-eddine19/HRM/internal/exchange/errors"
	"github.com/seyf-eddine19/HRM/internal/lookup"
	"github.com/seyf-eddine19/HRM/internal/passport"
	"github.com/seyf-eddine19/HRM/internal/visa"

	employeeMock "github.com/seyf-eddine19/HRM/internal/employee/mock"
	exchangeMock "github.com/seyf-eddine19/HRM/internal/exchange/mock"
	passportMock "github.com/seyf-eddine19/HRM/internal/passport/mock"
	visaMock "github.com/seyf-eddine19/HRM/internal/visa/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type fakeLookupService struct {
	GetOrCreateFn func(ctx context.Context, kind lookup.Kind, name string) (lookup.ValueResponse, error)
}

func (f *fakeLookupService) Create(ctx context.Context, kind lookup.Kind, req lookup.CreateValueRequest) (lookup.ValueResponse, error) {
	return lookup.ValueResponse{}, nil
}
func (f *fakeLookupService) GetAll(ctx context.Context, kind lookup.Kind) ([]lookup.ValueResponse, error) {
	return nil, nil
}
func (f *fakeLookupService) GetByID(ctx context.Context, kind lookup.Kind, id string) (lookup.ValueResponse, error) {
	return lookup.ValueResponse{}, nil
}
func (f *fakeLookupService) GetOrCreate(ctx context.Context, kind lookup.Kind, name string) (lookup.ValueResponse, error) {
	return f.GetOrCreateFn(ctx, kind, name)
}
func (f *fakeLookupService) Update(ctx context.Context, kind lookup.Kind, id string, req lookup.UpdateValueRequest) (lookup.ValueResponse, error) {
	return lookup.ValueResponse{}, nil
}
func (f *fakeLookupService) Delete(ctx context.Context, kind lookup.Kind, id string) error {
	return nil
}

type exchangeDeps struct {
	service   exchange.Service
	repo      *exchangeMock.MockRepository
	employees *employeeMock.MockRepository
	passports *passportMock.MockRepository
	visas     *visaMock.MockRepository
	lookups   *fakeLookupService
}

func setupExchangeTest(t *testing.T) *exchangeDeps {
	ctrl := gomock.NewController(t)

	deps := &exchangeDeps{
		repo:      exchangeMock.NewMockRepository(ctrl),
		employees: employeeMock.NewMockRepository(ctrl),
		passports: passportMock.NewMockRepository(ctrl),
		visas:     visaMock.NewMockRepository(ctrl),
		lookups: &fakeLookupService{
			GetOrCreateFn: func(ctx context.Context, kind lookup.Kind, name string) (lookup.ValueResponse, error) {
				return lookup.ValueResponse{ID: uuid.NewString(), Name: name}, nil
			},
		},
	}
	deps.service = exchange.NewService(deps.repo, deps.employees, deps.passports, deps.visas, deps.lookups)
	return deps
}

func workbook(t *testing.T, header []string, dataRows ...[]string) *bytes.Reader {
	t.Helper()

	f := excelize.NewFile()
	assert.NoError(t, f.SetSheetRow("Sheet1", "A1", &header))
	for i, row := range dataRows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		assert.NoError(t, err)
		assert.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}

	buf, err := f.WriteToBuffer()
	assert.NoError(t, err)
	return bytes.NewReader(buf.Bytes())
}

func fullHeader() []string {
	return []string{
		exchange.ColGeneralNumber,
		exchange.ColNameAr,
		exchange.ColDepartment,
		exchange.ColJobTitle,
		exchange.ColPassportNumber,
		exchange.ColPassportType,
		exchange.ColPassportExpiry,
		exchange.ColVisaNumber,
		exchange.ColVisaType,
	}
}

func TestExchangeService_Import(t *testing.T) {
	ctx := context.Background()

	t.Run("fresh row creates employee passport and visa", func(t *testing.T) {
		deps := setupExchangeTest(t)

		deps.employees.EXPECT().FindByGeneralNumber(ctx, "EMP-1").
			Return(nil, gorm.ErrRecordNotFound)
		deps.employees.EXPECT().Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, empl *employee.Employee) error {
				assert.Equal(t, "EMP-1", empl.GeneralNumber)
				assert.Equal(t, "أحمد علي", empl.NameAr)
				assert.Equal(t, "regular", empl.Role)
				assert.NotNil(t, empl.DepartmentID)
				assert.NotNil(t, empl.JobTitleID)
				return nil
			})

		deps.passports.EXPECT().FindByNumber(ctx, "P-100").
			Return(nil, gorm.ErrRecordNotFound)
		deps.passports.EXPECT().Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, p *passport.Passport) error {
				assert.Equal(t, "P-100", p.PassportNumber)
				assert.Equal(t, passport.CustodianOrganization, p.Custodian)
				assert.Equal(t, "2027-01-01", p.ExpiryDate)
				return nil
			})

		deps.visas.EXPECT().FindByNumber(ctx, "V-100").
			Return(nil, gorm.ErrRecordNotFound)
		deps.visas.EXPECT().Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, v *visa.Visa) error {
				assert.Equal(t, "V-100", v.VisaNumber)
				assert.NotEqual(t, uuid.Nil, v.PassportID)
				return nil
			})

		report, err := deps.service.Import(ctx, workbook(t, fullHeader(),
			[]string{"EMP-1", "أحمد علي", "الموارد البشرية", "محاسب", "P-100", "عادي", "2027-01-01", "V-100", "عمل"},
		))

		assert.NoError(t, err)
		assert.Equal(t, 1, report.EmployeesCreated)
		assert.Equal(t, 1, report.PassportsCreated)
		assert.Equal(t, 1, report.VisasCreated)
		assert.Zero(t, report.Skipped)
		assert.Empty(t, report.Errors)
	})

	t.Run("second run reports every row as a duplicate and rewrites nothing", func(t *testing.T) {
		deps := setupExchangeTest(t)

		existing := &employee.Employee{ID: uuid.New(), GeneralNumber: "EMP-1"}
		deps.employees.EXPECT().FindByGeneralNumber(ctx, "EMP-1").Return(existing, nil)
		deps.passports.EXPECT().FindByNumber(ctx, "P-100").
			Return(&passport.Passport{ID: uuid.New(), PassportNumber: "P-100"}, nil)
		deps.visas.EXPECT().FindByNumber(ctx, "V-100").
			Return(&visa.Visa{ID: uuid.New(), VisaNumber: "V-100"}, nil)

		report, err := deps.service.Import(ctx, workbook(t, fullHeader(),
			[]string{"EMP-1", "أحمد علي", "الموارد البشرية", "محاسب", "P-100", "", "", "V-100", ""},
		))

		assert.NoError(t, err)
		assert.Zero(t, report.EmployeesCreated)
		assert.Zero(t, report.PassportsCreated)
		assert.Zero(t, report.VisasCreated)
		assert.Zero(t, report.Skipped)
		assert.Equal(t, []exchange.NotCreatedRow{
			{GeneralNumber: "EMP-1", NameAr: "أحمد علي"},
		}, report.NotCreated)
	})

	t.Run("row without a department or job title is not created", func(t *testing.T) {
		deps := setupExchangeTest(t)

		report, err := deps.service.Import(ctx, workbook(t, fullHeader(),
			[]string{"EMP-4", "منى الزهراني", "", "محاسب", "P-400"},
		))

		assert.NoError(t, err)
		assert.Zero(t, report.EmployeesCreated)
		assert.Zero(t, report.PassportsCreated)
		assert.Equal(t, []exchange.NotCreatedRow{
			{GeneralNumber: "EMP-4", NameAr: "منى الزهراني"},
		}, report.NotCreated)
	})

	t.Run("bad rows are reported and the rest still import", func(t *testing.T) {
		deps := setupExchangeTest(t)

		deps.employees.EXPECT().FindByGeneralNumber(ctx, "EMP-2").
			Return(nil, gorm.ErrRecordNotFound)
		deps.employees.EXPECT().Create(ctx, gomock.Any()).Return(nil)

		report, err := deps.service.Import(ctx, workbook(t, fullHeader(),
			[]string{"", "بلا رقم"},
			[]string{"EMP-2", "خالد المنصور", "المالية", "محاسب"},
		))

		assert.NoError(t, err)
		assert.Equal(t, 1, report.EmployeesCreated)
		assert.Equal(t, 1, report.Skipped)
		assert.Len(t, report.Errors, 1)
		assert.True(t, strings.HasPrefix(report.Errors[0], "row 2:"))
	})

	t.Run("visa with no passport on the row is rejected", func(t *testing.T) {
		deps := setupExchangeTest(t)

		deps.employees.EXPECT().FindByGeneralNumber(ctx, "EMP-3").
			Return(&employee.Employee{ID: uuid.New(), GeneralNumber: "EMP-3"}, nil)

		report, err := deps.service.Import(ctx, workbook(t, fullHeader(),
			[]string{"EMP-3", "سعاد الحربي", "المالية", "محاسب", "", "", "", "V-900", ""},
		))

		assert.NoError(t, err)
		assert.Equal(t, 1, report.Skipped)
		assert.Contains(t, report.Errors[0], "passport")
	})

	t.Run("workbook without the key columns is rejected", func(t *testing.T) {
		deps := setupExchangeTest(t)

		_, err := deps.service.Import(ctx, workbook(t,
			[]string{"colA", "colB"},
			[]string{"1", "2"},
		))

		assert.ErrorIs(t, err, exchangeerrors.ErrMissingColumns)
	})

	t.Run("garbage bytes are rejected", func(t *testing.T) {
		deps := setupExchangeTest(t)

		_, err := deps.service.Import(ctx, strings.NewReader("not an xlsx file"))

		assert.ErrorIs(t, err, exchangeerrors.ErrInvalidWorkbook)
	})

	t.Run("workbook with only a header is rejected", func(t *testing.T) {
		deps := setupExchangeTest(t)

		_, err := deps.service.Import(ctx, workbook(t, fullHeader()))

		assert.ErrorIs(t, err, exchangeerrors.ErrEmptyWorkbook)
	})
}

func TestExchangeService_Export(t *testing.T) {
	ctx := context.Background()

	deps := setupExchangeTest(t)

	ids := []string{uuid.NewString()}
	deps.repo.EXPECT().ExportRows(ctx, ids).Return([]exchange.ExportRow{
		{
			GeneralNumber:  "EMP-1",
			NameAr:         "أحمد علي",
			Department:     "الموارد البشرية",
			PassportNumber: "P-100",
			VisaNumber:     "V-100",
		},
		{
			GeneralNumber: "EMP-2",
			NameAr:        "خالد المنصور",
		},
	}, nil)

	f, err := deps.service.Export(ctx, ids)
	assert.NoError(t, err)
	defer f.Close()

	header, err := f.GetCellValue("Sheet1", "A1")
	assert.NoError(t, err)
	assert.Equal(t, exchange.ColGeneralNumber, header)

	name, err := f.GetCellValue("Sheet1", "B2")
	assert.NoError(t, err)
	assert.Equal(t, "أحمد علي", name)

	second, err := f.GetCellValue("Sheet1", "A3")
	assert.NoError(t, err)
	assert.Equal(t, "EMP-2", second)
}
