package custody

import (
	"context"
	"database/sql"
	"encoding/json"
	"sort"
	"time"

	custodyerrors "github.com/seyf-eddine19/HRM/internal/custody/errors"
	"github.com/seyf-eddine19/HRM/internal/events"
	"github.com/seyf-eddine19/HRM/internal/messaging/kafka"
	"github.com/seyf-eddine19/HRM/internal/passport"
	"github.com/seyf-eddine19/HRM/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=custody_service.go -destination=mock/custody_service_mock.go -package=mock
type Service interface {
	Deliver(ctx context.Context, req DeliverRequest) (BatchReport, error)
	Receive(ctx context.Context, req ReceiveRequest) (BatchReport, error)
	Holdings(ctx context.Context, q HoldingsQuery) ([]HoldingResponse, error)
	Handovers(ctx context.Context, passportID string) ([]HandoverResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	outbox kafka.OutboxRepository
	logger *zap.Logger
	now    func() time.Time
}

func NewService(
	db *sql.DB,
	repo Repository,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("custody.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("custody.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		outbox: outboxRepo,
		logger: l,
		now:    time.Now,
	}
}

// Deliver hands the selected passports from the organization to their
// employees. Passports the employee already holds come back in the report
// untouched.
func (s *service) Deliver(ctx context.Context, req DeliverRequest) (BatchReport, error) {
	return s.transition(ctx, req.PassportIDs, ActionDelivery, req.DeliveredBy)
}

// Receive takes the selected passports back from the employees.
func (s *service) Receive(ctx context.Context, req ReceiveRequest) (BatchReport, error) {
	return s.transition(ctx, req.PassportIDs, ActionReceipt, req.ReceivedBy)
}

// transition performs one custody batch. The state read, the passport
// update, the handover append and the outbox insert all run in a single
// transaction: either the whole batch lands or none of it does.
func (s *service) transition(ctx context.Context, passportIDs []string, action, actor string) (BatchReport, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("custody transition requested",
		zap.String("request_id", rid),
		zap.String("action", action),
		zap.Int("batch_size", len(passportIDs)),
	)

	if len(passportIDs) == 0 {
		return BatchReport{}, custodyerrors.ErrEmptyBatch
	}

	targetCustodian := passport.CustodianEmployee
	if action == ActionReceipt {
		targetCustodian = passport.CustodianOrganization
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("custody begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return BatchReport{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	states, err := qtx.GetStates(ctx, passportIDs)
	if err != nil {
		s.logger.Error("custody load states failed", zap.Error(err))
		return BatchReport{}, err
	}
	if len(states) == 0 {
		return BatchReport{}, custodyerrors.ErrPassportsNotFound
	}

	report := BatchReport{
		Updated:        []string{},
		AlreadyInState: []string{},
	}
	found := make(map[string]bool, len(states))
	var eligible []PassportState
	for _, st := range states {
		found[st.ID.String()] = true
		if st.Custodian == targetCustodian {
			report.AlreadyInState = append(report.AlreadyInState, st.PassportNumber)
			continue
		}
		eligible = append(eligible, st)
	}
	for _, id := range passportIDs {
		if !found[id] {
			report.Missing = append(report.Missing, id)
		}
	}

	if len(eligible) > 0 {
		now := s.now().UTC()
		receivedAt := now.Format(time.RFC3339)

		ids := make([]string, len(eligible))
		handovers := make([]Handover, len(eligible))
		for i, st := range eligible {
			ids[i] = st.ID.String()
			handovers[i] = Handover{
				ID:         uuid.New(),
				PassportID: st.ID,
				EmployeeID: st.EmployeeID,
				ActionType: action,
				ActionAt:   now,
			}
			report.Updated = append(report.Updated, st.PassportNumber)
		}

		if action == ActionDelivery {
			err = qtx.MarkDelivered(ctx, ids, actor, receivedAt)
		} else {
			err = qtx.MarkReceived(ctx, ids, actor, receivedAt)
		}
		if err != nil {
			s.logger.Error("custody update failed", zap.Error(err))
			return BatchReport{}, err
		}

		if err := qtx.AppendHandovers(ctx, handovers); err != nil {
			s.logger.Error("custody append handovers failed", zap.Error(err))
			return BatchReport{}, err
		}

		if s.outbox != nil {
			event := events.PassportHandoverEvent{
				EventType:   "passport_handover",
				RequestID:   rid,
				PassportIDs: ids,
				Action:      action,
				Operator:    contextutil.GetOperator(ctx),
				OccurredAt:  now,
			}
			payload, err := json.Marshal(event)
			if err != nil {
				return BatchReport{}, err
			}
			if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
				ID:            uuid.NewString(),
				RequestID:     rid,
				AggregateType: "passport",
				AggregateID:   ids[0],
				EventType:     event.EventType,
				Topic:         events.PassportHandoverTopic,
				Payload:       payload,
				Status:        kafka.OutboxStatusPending,
			}); err != nil {
				s.logger.Error("custody outbox persist failed", zap.Error(err))
				return BatchReport{}, err
			}
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("custody commit failed", zap.String("request_id", rid), zap.Error(err))
		return BatchReport{}, err
	}

	sort.Strings(report.Updated)
	sort.Strings(report.AlreadyInState)

	s.logger.Info("custody transition success",
		zap.String("request_id", rid),
		zap.String("action", action),
		zap.Int("updated", len(report.Updated)),
		zap.Int("already_in_state", len(report.AlreadyInState)),
	)
	return report, nil
}

func (s *service) Holdings(ctx context.Context, q HoldingsQuery) ([]HoldingResponse, error) {
	if err := validateRange(q.From, q.To); err != nil {
		return nil, err
	}

	rows, err := s.repo.ListHoldings(ctx, HoldingsFilter{
		Custodian: q.Custodian,
		From:      q.From,
		To:        q.To,
		Search:    q.Search,
	})
	if err != nil {
		s.logger.Error("custody holdings query failed", zap.Error(err))
		return nil, err
	}

	resp := make([]HoldingResponse, len(rows))
	for i, r := range rows {
		resp[i] = HoldingResponse{
			PassportID:     r.PassportID.String(),
			PassportNumber: r.PassportNumber,
			EmployeeID:     r.EmployeeID.String(),
			EmployeeNameAr: r.EmployeeNameAr,
			GeneralNumber:  r.GeneralNumber,
			Custodian:      r.Custodian,
			DeliveredBy:    r.DeliveredBy,
			ReceivedBy:     r.ReceivedBy,
			ReceivedAt:     r.ReceivedAt,
		}
	}
	return resp, nil
}

func (s *service) Handovers(ctx context.Context, passportID string) ([]HandoverResponse, error) {
	rows, err := s.repo.ListHandovers(ctx, passportID)
	if err != nil {
		s.logger.Error("custody handovers query failed", zap.Error(err))
		return nil, err
	}

	resp := make([]HandoverResponse, len(rows))
	for i, r := range rows {
		resp[i] = HandoverResponse{
			ID:             r.ID.String(),
			PassportID:     r.PassportID.String(),
			PassportNumber: r.PassportNumber,
			EmployeeID:     r.EmployeeID.String(),
			EmployeeNameAr: r.EmployeeNameAr,
			ActionType:     r.ActionType,
			ActionAt:       r.ActionAt.UTC().Format(time.RFC3339),
		}
	}
	return resp, nil
}

func validateRange(dates ...string) error {
	for _, d := range dates {
		if d == "" {
			continue
		}
		if _, err := time.Parse("2006-01-02", d); err != nil {
			return custodyerrors.ErrInvalidDateRange
		}
	}
	return nil
}
