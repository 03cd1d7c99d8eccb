package exchange

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/seyf-eddine19/HRM/internal/employee"
	exchangeerrors "github.com/seyf-eddine19/HRM/internal/exchange/errors"
	"github.com/seyf-eddine19/HRM/internal/lookup"
	"github.com/seyf-eddine19/HRM/internal/passport"
	"github.com/seyf-eddine19/HRM/internal/visa"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const sheetName = "Sheet1"

type Service interface {
	Import(ctx context.Context, r io.Reader) (ImportReport, error)
	Export(ctx context.Context, employeeIDs []string) (*excelize.File, error)
}

type service struct {
	repo      Repository
	employees employee.Repository
	passports passport.Repository
	visas     visa.Repository
	lookups   lookup.Service
	logger    *zap.Logger
}

func NewService(
	repo Repository,
	employees employee.Repository,
	passports passport.Repository,
	visas visa.Repository,
	lookups lookup.Service,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("exchange.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("exchange.service")
	}
	return &service{
		repo:      repo,
		employees: employees,
		passports: passports,
		visas:     visas,
		lookups:   lookups,
		logger:    l,
	}
}

// Import walks the workbook row by row. Rows are independent: a bad row is
// reported and skipped, the rest of the workbook still lands. Employees,
// passports and visas already present are matched by their natural keys
// and never duplicated.
func (s *service) Import(ctx context.Context, r io.Reader) (ImportReport, error) {
	report := ImportReport{NotCreated: []NotCreatedRow{}, Errors: []string{}}

	f, err := excelize.OpenReader(r)
	if err != nil {
		return report, exchangeerrors.ErrInvalidWorkbook
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return report, exchangeerrors.ErrInvalidWorkbook
	}
	if len(rows) < 2 {
		return report, exchangeerrors.ErrEmptyWorkbook
	}

	header := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		header[strings.TrimSpace(name)] = i
	}
	if _, ok := header[ColGeneralNumber]; !ok {
		return report, exchangeerrors.ErrMissingColumns
	}
	if _, ok := header[ColNameAr]; !ok {
		return report, exchangeerrors.ErrMissingColumns
	}

	cell := func(row []string, col string) string {
		i, ok := header[col]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	for i, row := range rows[1:] {
		// Sheet rows are 1-based and the header occupies row 1.
		rowNum := i + 2

		if err := s.importRow(ctx, cell, row, &report); err != nil {
			report.Skipped++
			report.Errors = append(report.Errors, fmt.Sprintf("row %d: %v", rowNum, err))
		}
	}

	s.logger.Info("workbook import finished",
		zap.Int("employees_created", report.EmployeesCreated),
		zap.Int("passports_created", report.PassportsCreated),
		zap.Int("visas_created", report.VisasCreated),
		zap.Int("skipped", report.Skipped),
		zap.Int("not_created", len(report.NotCreated)),
	)
	return report, nil
}

func (s *service) importRow(ctx context.Context, cell func([]string, string) string, row []string, report *ImportReport) error {
	generalNumber := cell(row, ColGeneralNumber)
	if generalNumber == "" {
		return errors.New("general number is missing")
	}
	nameAr := cell(row, ColNameAr)

	departmentID, err := s.resolveLookup(ctx, lookup.KindDepartment, cell(row, ColDepartment))
	if err != nil {
		return fmt.Errorf("department: %w", err)
	}
	jobTitleID, err := s.resolveLookup(ctx, lookup.KindJobTitle, cell(row, ColJobTitle))
	if err != nil {
		return fmt.Errorf("job title: %w", err)
	}

	// A row needs both lookups to land; without them the whole row goes
	// into the not-created list untouched.
	if departmentID == nil || jobTitleID == nil {
		report.NotCreated = append(report.NotCreated, NotCreatedRow{GeneralNumber: generalNumber, NameAr: nameAr})
		return nil
	}

	empl, err := s.employees.FindByGeneralNumber(ctx, generalNumber)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		empl, err = s.createEmployee(ctx, cell, row, generalNumber, nameAr, departmentID, jobTitleID)
		if err != nil {
			return err
		}
		report.EmployeesCreated++
	} else if err != nil {
		return err
	} else {
		// Already registered: report as a duplicate, never overwrite. New
		// passports and visas on the row still attach to the existing row.
		report.NotCreated = append(report.NotCreated, NotCreatedRow{GeneralNumber: generalNumber, NameAr: nameAr})
	}

	passportNumber := cell(row, ColPassportNumber)
	var pass *passport.Passport
	if passportNumber != "" {
		pass, err = s.passports.FindByNumber(ctx, passportNumber)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			pass, err = s.createPassport(ctx, cell, row, empl.ID, passportNumber)
			if err != nil {
				return err
			}
			report.PassportsCreated++
		} else if err != nil {
			return err
		}
	}

	visaNumber := cell(row, ColVisaNumber)
	if visaNumber != "" {
		if pass == nil {
			return errors.New("visa has no passport number to attach to")
		}
		_, err = s.visas.FindByNumber(ctx, visaNumber)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if err := s.createVisa(ctx, cell, row, pass.ID, visaNumber); err != nil {
				return err
			}
			report.VisasCreated++
		} else if err != nil {
			return err
		}
	}

	return nil
}

func (s *service) createEmployee(
	ctx context.Context,
	cell func([]string, string) string,
	row []string,
	generalNumber, nameAr string,
	departmentID, jobTitleID *uuid.UUID,
) (*employee.Employee, error) {
	if nameAr == "" {
		return nil, errors.New("arabic name is missing")
	}

	empl := &employee.Employee{
		ID:            uuid.New(),
		GeneralNumber: generalNumber,
		NameAr:        nameAr,
		NameEn:        cell(row, ColNameEn),
		BirthDate:     cell(row, ColBirthDate),
		NationalID:    cell(row, ColNationalID),
		IDIssueDate:   cell(row, ColIDIssueDate),
		IDExpiryDate:  cell(row, ColIDExpiryDate),
		DepartmentID:  departmentID,
		JobTitleID:    jobTitleID,
		Phone:         cell(row, ColPhone),
		IBANNumber:    cell(row, ColIBAN),
		Role:          "regular",
	}
	if err := s.employees.Create(ctx, empl); err != nil {
		return nil, err
	}
	return empl, nil
}

func (s *service) createPassport(ctx context.Context, cell func([]string, string) string, row []string, employeeID uuid.UUID, passportNumber string) (*passport.Passport, error) {
	typeID, err := s.resolveLookup(ctx, lookup.KindPassportType, cell(row, ColPassportType))
	if err != nil {
		return nil, fmt.Errorf("passport type: %w", err)
	}

	pass := &passport.Passport{
		ID:             uuid.New(),
		EmployeeID:     employeeID,
		PassportNumber: passportNumber,
		PassportTypeID: typeID,
		IssueDate:      cell(row, ColPassportIssue),
		ExpiryDate:     cell(row, ColPassportExpiry),
		Custodian:      passport.CustodianOrganization,
	}
	if err := s.passports.Create(ctx, pass); err != nil {
		return nil, err
	}
	return pass, nil
}

func (s *service) createVisa(ctx context.Context, cell func([]string, string) string, row []string, passportID uuid.UUID, visaNumber string) error {
	typeID, err := s.resolveLookup(ctx, lookup.KindVisaType, cell(row, ColVisaType))
	if err != nil {
		return fmt.Errorf("visa type: %w", err)
	}

	return s.visas.Create(ctx, &visa.Visa{
		ID:         uuid.New(),
		PassportID: passportID,
		VisaNumber: visaNumber,
		VisaTypeID: typeID,
		IssueDate:  cell(row, ColVisaIssue),
		ExpiryDate: cell(row, ColVisaExpiry),
	})
}

// resolveLookup inserts the named value on first sight so workbooks can
// introduce new departments or types without pre-registering them. A blank
// cell resolves to no reference at all.
func (s *service) resolveLookup(ctx context.Context, kind lookup.Kind, name string) (*uuid.UUID, error) {
	if name == "" {
		return nil, nil
	}
	value, err := s.lookups.GetOrCreate(ctx, kind, name)
	if err != nil {
		return nil, err
	}
	id, err := uuid.Parse(value.ID)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// Export flattens the selected employees into one sheet, one row per
// employee, passport and visa combination. An empty id list exports
// everyone.
func (s *service) Export(ctx context.Context, employeeIDs []string) (*excelize.File, error) {
	rows, err := s.repo.ExportRows(ctx, employeeIDs)
	if err != nil {
		s.logger.Error("export query failed", zap.Error(err))
		return nil, err
	}

	f := excelize.NewFile()
	if err := f.SetSheetRow(sheetName, "A1", &Columns); err != nil {
		return nil, err
	}
	for i, row := range rows {
		cellRef, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		values := row.values()
		if err := f.SetSheetRow(sheetName, cellRef, &values); err != nil {
			return nil, err
		}
	}

	s.logger.Debug("export workbook built", zap.Int("rows", len(rows)))
	return f, nil
}
