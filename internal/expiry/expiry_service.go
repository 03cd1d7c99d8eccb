package expiry

import (
	"context"
	"sort"
	"time"

	expiryerrors "github.com/seyf-eddine19/HRM/internal/expiry/errors"
	"github.com/seyf-eddine19/HRM/internal/passport"
	"github.com/seyf-eddine19/HRM/internal/visa"

	"go.uber.org/zap"
)

type Service interface {
	ExpiringPassports(ctx context.Context, window int) ([]ExpiringPassportResponse, error)
	ExpiringVisas(ctx context.Context, window int) ([]ExpiringVisaResponse, error)
}

type service struct {
	passports passport.Repository
	visas     visa.Repository
	logger    *zap.Logger
	now       func() time.Time
}

func NewService(
	passports passport.Repository,
	visas visa.Repository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("expiry.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("expiry.service")
	}
	return &service{
		passports: passports,
		visas:     visas,
		logger:    l,
		now:       time.Now,
	}
}

func (s *service) ExpiringPassports(ctx context.Context, window int) ([]ExpiringPassportResponse, error) {
	if !ValidWindow(window) {
		return nil, expiryerrors.ErrInvalidWindow
	}

	rows, err := s.passports.FindAll(ctx)
	if err != nil {
		s.logger.Error("expiry passport scan failed", zap.Error(err))
		return nil, err
	}

	today := s.now()
	resp := []ExpiringPassportResponse{}
	for _, r := range rows {
		if !InWindow(r.ExpiryDate, window, today) {
			continue
		}
		days, _ := DaysUntil(r.ExpiryDate, today)
		resp = append(resp, ExpiringPassportResponse{
			PassportID:     r.ID.String(),
			PassportNumber: r.PassportNumber,
			PassportType:   r.PassportTypeName,
			EmployeeID:     r.EmployeeID.String(),
			EmployeeNameAr: r.EmployeeNameAr,
			GeneralNumber:  r.GeneralNumber,
			ExpiryDate:     r.ExpiryDate,
			DaysRemaining:  days,
		})
	}
	sort.Slice(resp, func(i, j int) bool { return resp[i].DaysRemaining < resp[j].DaysRemaining })

	s.logger.Debug("expiry passport scan",
		zap.Int("window_days", window),
		zap.Int("matched", len(resp)),
	)
	return resp, nil
}

func (s *service) ExpiringVisas(ctx context.Context, window int) ([]ExpiringVisaResponse, error) {
	if !ValidWindow(window) {
		return nil, expiryerrors.ErrInvalidWindow
	}

	rows, err := s.visas.FindAll(ctx)
	if err != nil {
		s.logger.Error("expiry visa scan failed", zap.Error(err))
		return nil, err
	}

	today := s.now()
	resp := []ExpiringVisaResponse{}
	for _, r := range rows {
		if !InWindow(r.ExpiryDate, window, today) {
			continue
		}
		days, _ := DaysUntil(r.ExpiryDate, today)
		resp = append(resp, ExpiringVisaResponse{
			VisaID:         r.ID.String(),
			VisaNumber:     r.VisaNumber,
			VisaType:       r.VisaTypeName,
			PassportNumber: r.PassportNumber,
			EmployeeNameAr: r.EmployeeNameAr,
			ExpiryDate:     r.ExpiryDate,
			DaysRemaining:  days,
		})
	}
	sort.Slice(resp, func(i, j int) bool { return resp[i].DaysRemaining < resp[j].DaysRemaining })

	s.logger.Debug("expiry visa scan",
		zap.Int("window_days", window),
		zap.Int("matched", len(resp)),
	)
	return resp, nil
}
