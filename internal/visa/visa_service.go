package visa

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/seyf-eddine19/HRM/internal/lookup"
	"github.com/seyf-eddine19/HRM/internal/passport"
	visaerrors "github.com/seyf-eddine19/HRM/internal/visa/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=visa_service.go -destination=mock/visa_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateVisaRequest) (VisaResponse, error)
	GetAll(ctx context.Context) ([]VisaResponse, error)
	GetAllByPassport(ctx context.Context, passportID string) ([]VisaResponse, error)
	GetByID(ctx context.Context, id string) (VisaResponse, error)
	Update(ctx context.Context, id string, req UpdateVisaRequest) (VisaResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo      Repository
	passports passport.Repository
	lookups   lookup.Repository
	logger    *zap.Logger
}

func NewService(
	repo Repository,
	passports passport.Repository,
	lookups lookup.Repository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("visa.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("visa.service")
	}
	return &service{
		repo:      repo,
		passports: passports,
		lookups:   lookups,
		logger:    l,
	}
}

func (s *service) Create(ctx context.Context, req CreateVisaRequest) (VisaResponse, error) {
	s.logger.Debug("create visa requested",
		zap.String("passport_id", req.PassportID),
		zap.String("visa_number", req.VisaNumber),
	)

	if err := validateDates(req.IssueDate, req.ExpiryDate); err != nil {
		return VisaResponse{}, err
	}

	if _, err := s.passports.FindByID(ctx, req.PassportID); err != nil {
		return VisaResponse{}, visaerrors.ErrPassportNotFound
	}
	typeID, err := s.resolveType(ctx, req.VisaTypeID)
	if err != nil {
		return VisaResponse{}, err
	}

	v := &Visa{
		ID:         uuid.New(),
		PassportID: uuid.MustParse(req.PassportID),
		VisaNumber: req.VisaNumber,
		VisaTypeID: typeID,
		IssueDate:  req.IssueDate,
		ExpiryDate: req.ExpiryDate,
		DocPath:    req.DocPath,
	}

	if err := s.repo.Create(ctx, v); err != nil {
		s.logger.Error("create visa persist failed", zap.Error(err))
		return VisaResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("create visa success", zap.String("visa_id", v.ID.String()))
	return mapEntityToResponse(*v), nil
}

func (s *service) GetAll(ctx context.Context) ([]VisaResponse, error) {
	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all visas failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(rows), nil
}

func (s *service) GetAllByPassport(ctx context.Context, passportID string) ([]VisaResponse, error) {
	rows, err := s.repo.FindAllByPassport(ctx, passportID)
	if err != nil {
		s.logger.Error("get visas by passport failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(rows), nil
}

func (s *service) GetByID(ctx context.Context, id string) (VisaResponse, error) {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("get visa by id failed", zap.Error(err))
		return VisaResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*row), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateVisaRequest) (VisaResponse, error) {
	s.logger.Debug("update visa requested", zap.String("visa_id", id))

	if err := validateDates(req.IssueDate, req.ExpiryDate); err != nil {
		return VisaResponse{}, err
	}
	typeID, err := s.resolveType(ctx, req.VisaTypeID)
	if err != nil {
		return VisaResponse{}, err
	}

	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return VisaResponse{}, mapRepositoryError(err)
	}

	v := row.Visa
	v.VisaNumber = req.VisaNumber
	v.VisaTypeID = typeID
	v.IssueDate = req.IssueDate
	v.ExpiryDate = req.ExpiryDate
	v.DocPath = req.DocPath

	if err := s.repo.Update(ctx, &v); err != nil {
		s.logger.Error("update visa persist failed", zap.Error(err))
		return VisaResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("update visa success", zap.String("visa_id", id))
	return mapEntityToResponse(v), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	s.logger.Debug("delete visa requested", zap.String("visa_id", id))

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("delete visa failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	s.logger.Info("delete visa success", zap.String("visa_id", id))
	return nil
}

func (s *service) resolveType(ctx context.Context, typeID string) (*uuid.UUID, error) {
	if typeID == "" {
		return nil, nil
	}
	if _, err := s.lookups.FindByID(ctx, lookup.KindVisaType, typeID); err != nil {
		return nil, visaerrors.ErrVisaTypeNotFound
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
			return visaerrors.ErrInvalidDate
		}
	}
	return nil
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return visaerrors.ErrVisaNotFound
	}
	errMsg := err.Error()
	if strings.Contains(errMsg, "UNIQUE constraint failed") && strings.Contains(errMsg, "visa_number") {
		return visaerrors.ErrVisaNumberAlreadyExists
	}
	if strings.Contains(errMsg, "FOREIGN KEY constraint failed") {
		return visaerrors.ErrPassportNotFound
	}
	return err
}

func mapToResponse(row Row) VisaResponse {
	resp := mapEntityToResponse(row.Visa)
	resp.VisaTypeName = row.VisaTypeName
	resp.PassportNumber = row.PassportNumber
	resp.EmployeeNameAr = row.EmployeeNameAr
	return resp
}

func mapEntityToResponse(v Visa) VisaResponse {
	resp := VisaResponse{
		ID:         v.ID.String(),
		PassportID: v.PassportID.String(),
		VisaNumber: v.VisaNumber,
		IssueDate:  v.IssueDate,
		ExpiryDate: v.ExpiryDate,
		DocPath:    v.DocPath,
	}
	if v.VisaTypeID != nil {
		resp.VisaTypeID = v.VisaTypeID.String()
	}
	return resp
}

func mapToListResponse(rows []Row) []VisaResponse {
	res := make([]VisaResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res
}
