package passport

import (
	"context"
	"time"

	"github.com/seyf-eddine19/HRM/internal/employee"
	"github.com/seyf-eddine19/HRM/internal/lookup"
	passporterrors "github.com/seyf-eddine19/HRM/internal/passport/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=passport_service.go -destination=mock/passport_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreatePassportRequest) (PassportResponse, error)
	GetAll(ctx context.Context) ([]PassportResponse, error)
	GetAllByEmployee(ctx context.Context, employeeID string) ([]PassportResponse, error)
	GetByID(ctx context.Context, id string) (PassportResponse, error)
	Update(ctx context.Context, id string, req UpdatePassportRequest) (PassportResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo      Repository
	employees employee.Repository
	lookups   lookup.Repository
	logger    *zap.Logger
}

func NewService(
	repo Repository,
	employees employee.Repository,
	lookups lookup.Repository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("passport.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("passport.service")
	}
	return &service{
		repo:      repo,
		employees: employees,
		lookups:   lookups,
		logger:    l,
	}
}

func (s *service) Create(ctx context.Context, req CreatePassportRequest) (PassportResponse, error) {
	s.logger.Debug("create passport requested",
		zap.String("employee_id", req.EmployeeID),
		zap.String("passport_number", req.PassportNumber),
	)

	if err := validateDates(req.IssueDate, req.ExpiryDate); err != nil {
		return PassportResponse{}, err
	}

	if _, err := s.employees.FindByID(ctx, req.EmployeeID); err != nil {
		return PassportResponse{}, passporterrors.ErrEmployeeNotFound
	}
	typeID, err := s.resolveType(ctx, req.PassportTypeID)
	if err != nil {
		return PassportResponse{}, err
	}

	p := &Passport{
		ID:             uuid.New(),
		EmployeeID:     uuid.MustParse(req.EmployeeID),
		PassportNumber: req.PassportNumber,
		PassportTypeID: typeID,
		IssueDate:      req.IssueDate,
		ExpiryDate:     req.ExpiryDate,
		IssueAuthority: req.IssueAuthority,
		Custodian:      CustodianOrganization,
		DocPath:        req.DocPath,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		s.logger.Error("create passport persist failed", zap.Error(err))
		return PassportResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("create passport success", zap.String("passport_id", p.ID.String()))
	return mapEntityToResponse(*p), nil
}

func (s *service) GetAll(ctx context.Context) ([]PassportResponse, error) {
	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all passports failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(rows), nil
}

func (s *service) GetAllByEmployee(ctx context.Context, employeeID string) ([]PassportResponse, error) {
	rows, err := s.repo.FindAllByEmployee(ctx, employeeID)
	if err != nil {
		s.logger.Error("get passports by employee failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(rows), nil
}

func (s *service) GetByID(ctx context.Context, id string) (PassportResponse, error) {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("get passport by id failed", zap.Error(err))
		return PassportResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*row), nil
}

// Update never touches custody fields; those move only through the custody
// tracker so every transition leaves a handover row.
func (s *service) Update(ctx context.Context, id string, req UpdatePassportRequest) (PassportResponse, error) {
	s.logger.Debug("update passport requested", zap.String("passport_id", id))

	if err := validateDates(req.IssueDate, req.ExpiryDate); err != nil {
		return PassportResponse{}, err
	}
	typeID, err := s.resolveType(ctx, req.PassportTypeID)
	if err != nil {
		return PassportResponse{}, err
	}

	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return PassportResponse{}, mapRepositoryError(err)
	}

	p := row.Passport
	p.PassportNumber = req.PassportNumber
	p.PassportTypeID = typeID
	p.IssueDate = req.IssueDate
	p.ExpiryDate = req.ExpiryDate
	p.IssueAuthority = req.IssueAuthority
	p.DocPath = req.DocPath

	if err := s.repo.Update(ctx, &p); err != nil {
		s.logger.Error("update passport persist failed", zap.Error(err))
		return PassportResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("update passport success", zap.String("passport_id", id))
	return mapEntityToResponse(p), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	s.logger.Debug("delete passport requested", zap.String("passport_id", id))

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("delete passport failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	s.logger.Info("delete passport success", zap.String("passport_id", id))
	return nil
}

func (s *service) resolveType(ctx context.Context, typeID string) (*uuid.UUID, error) {
	if typeID == "" {
		return nil, nil
	}
	if _, err := s.lookups.FindByID(ctx, lookup.KindPassportType, typeID); err != nil {
		return nil, passporterrors.ErrPassportTypeNotFound
	}
	id := uuid.MustParse(typeID)
	return &id, nil
}

func validateDates(dates ...string) error {
	for _, d := range dates {
		if d == "" {
			continue
		}
		if _, err := time.Parse("2006-01-02", d); err != nil {
			return passporterrors.ErrInvalidDate
		}
	}
	return nil
}

func mapToResponse(row Row) PassportResponse {
	resp := mapEntityToResponse(row.Passport)
	resp.PassportTypeName = row.PassportTypeName
	resp.EmployeeNameAr = row.EmployeeNameAr
	resp.GeneralNumber = row.GeneralNumber
	return resp
}

func mapEntityToResponse(p Passport) PassportResponse {
	resp := PassportResponse{
		ID:             p.ID.String(),
		EmployeeID:     p.EmployeeID.String(),
		PassportNumber: p.PassportNumber,
		IssueDate:      p.IssueDate,
		ExpiryDate:     p.ExpiryDate,
		IssueAuthority: p.IssueAuthority,
		DeliveredBy:    p.DeliveredBy,
		ReceivedBy:     p.ReceivedBy,
		ReceivedAt:     p.ReceivedAt,
		Custodian:      p.Custodian,
		DocPath:        p.DocPath,
	}
	if p.PassportTypeID != nil {
		resp.PassportTypeID = p.PassportTypeID.String()
	}
	return resp
}

func mapToListResponse(rows []Row) []PassportResponse {
	res := make([]PassportResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res
}
