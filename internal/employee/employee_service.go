package employee

import (
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"time"

	"github.com/seyf-eddine19/HRM/internal/document"
	employeeerrors "github.com/seyf-eddine19/HRM/internal/employee/errors"
	"github.com/seyf-eddine19/HRM/internal/events"
	"github.com/seyf-eddine19/HRM/internal/lookup"
	"github.com/seyf-eddine19/HRM/internal/messaging/kafka"
	"github.com/seyf-eddine19/HRM/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	GetVisaTypeLinks(ctx context.Context) (map[string][]string, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
	ListDocuments(ctx context.Context, id string) ([]string, error)
	UploadDocument(ctx context.Context, id, filename string, src io.Reader) (string, error)
	DeleteDocument(ctx context.Context, id, filename string) error
}

type service struct {
	db      *sql.DB
	repo    Repository
	lookups lookup.Repository
	outbox  kafka.OutboxRepository
	docs    document.Store
	logger  *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	lookups lookup.Repository,
	outboxRepo kafka.OutboxRepository,
	docs document.Store,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:      db,
		repo:    repo,
		lookups: lookups,
		outbox:  outboxRepo,
		docs:    docs,
		logger:  l,
	}
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("general_number", req.GeneralNumber),
	)

	if err := validateDates(req.BirthDate, req.IDIssueDate, req.IDExpiryDate); err != nil {
		return EmployeeResponse{}, err
	}

	departmentID, jobTitleID, err := s.resolveLookups(ctx, req.DepartmentID, req.JobTitleID)
	if err != nil {
		return EmployeeResponse{}, err
	}

	empl := &Employee{
		ID:            uuid.New(),
		GeneralNumber: req.GeneralNumber,
		NameAr:        req.NameAr,
		NameEn:        req.NameEn,
		BirthDate:     req.BirthDate,
		NationalID:    req.NationalID,
		IDIssueDate:   req.IDIssueDate,
		IDExpiryDate:  req.IDExpiryDate,
		DepartmentID:  departmentID,
		JobTitleID:    jobTitleID,
		Phone:         req.Phone,
		IBANNumber:    req.IBANNumber,
		Role:          defaultRole(req.Role),
		PhotoPath:     req.PhotoPath,
		DocsPath:      req.DocsPath,
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create employee begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.Create(ctx, empl); err != nil {
		s.logger.Error("create employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if s.outbox != nil {
		event := events.EmployeeCreatedEvent{
			EventType:     "employee_created",
			RequestID:     rid,
			EmployeeID:    empl.ID.String(),
			GeneralNumber: empl.GeneralNumber,
			OccurredAt:    time.Now().UTC(),
		}
		payload, err := json.Marshal(event)
		if err != nil {
			s.logger.Error("marshal event failed", zap.String("request_id", rid), zap.Error(err))
			return EmployeeResponse{}, err
		}

		outboxRepo := s.outbox.WithTx(tx)
		if err := outboxRepo.Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "employee",
			AggregateID:   empl.ID.String(),
			EventType:     event.EventType,
			Topic:         events.EmployeeCreatedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			s.logger.Error("create employee outbox persist failed",
				zap.String("employee_id", empl.ID.String()),
				zap.Error(err),
			)
			return EmployeeResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("commit failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", empl.ID.String()),
	)

	return mapEntityToResponse(*empl), nil
}

func (s *service) GetAll(ctx context.Context) ([]EmployeeResponse, error) {
	s.logger.Debug("get all employees requested")
	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all employees failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(rows), nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	s.logger.Debug("get employee by id requested", zap.String("employee_id", id))
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("get employee by id failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*row), nil
}

// GetVisaTypeLinks maps employee IDs to the visa type names they hold.
// Feeds the visa-type list filter in the handler.
func (s *service) GetVisaTypeLinks(ctx context.Context) (map[string][]string, error) {
	links, err := s.repo.FindVisaTypeLinks(ctx)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	byEmployee := make(map[string][]string, len(links))
	for _, l := range links {
		byEmployee[l.EmployeeID.String()] = append(byEmployee[l.EmployeeID.String()], l.VisaTypeName)
	}
	return byEmployee, nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	s.logger.Debug("update employee requested", zap.String("employee_id", id))

	if err := validateDates(req.BirthDate, req.IDIssueDate, req.IDExpiryDate); err != nil {
		return EmployeeResponse{}, err
	}

	departmentID, jobTitleID, err := s.resolveLookups(ctx, req.DepartmentID, req.JobTitleID)
	if err != nil {
		return EmployeeResponse{}, err
	}

	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("update employee fetch existing failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	empl := row.Employee
	empl.GeneralNumber = req.GeneralNumber
	empl.NameAr = req.NameAr
	empl.NameEn = req.NameEn
	empl.BirthDate = req.BirthDate
	empl.NationalID = req.NationalID
	empl.IDIssueDate = req.IDIssueDate
	empl.IDExpiryDate = req.IDExpiryDate
	empl.DepartmentID = departmentID
	empl.JobTitleID = jobTitleID
	empl.Phone = req.Phone
	empl.IBANNumber = req.IBANNumber
	empl.Role = defaultRole(req.Role)
	empl.PhotoPath = req.PhotoPath
	empl.DocsPath = req.DocsPath

	if err := s.repo.Update(ctx, &empl); err != nil {
		s.logger.Error("update employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("update employee success", zap.String("employee_id", id))
	return mapEntityToResponse(empl), nil
}

// Delete removes the employee and every passport and visa hanging off it in
// one transaction, then makes a best-effort pass at the docs folder.
func (s *service) Delete(ctx context.Context, id string) error {
	s.logger.Debug("delete employee requested", zap.String("employee_id", id))

	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return mapRepositoryError(err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("delete employee begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.DeleteCascade(ctx, id); err != nil {
		s.logger.Error("delete employee failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("delete employee commit failed", zap.Error(err))
		return err
	}

	if s.docs != nil && row.DocsPath != "" {
		_ = s.docs.RemoveFolder(row.NameAr)
	}

	s.logger.Info("delete employee success", zap.String("employee_id", id))
	return nil
}

// ListDocuments returns the filenames in the employee's folder. A folder
// that does not exist yet reads as empty.
func (s *service) ListDocuments(ctx context.Context, id string) ([]string, error) {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return s.docs.List(row.NameAr)
}

// UploadDocument stores one file in the employee's folder and records the
// folder path on the row the first time anything lands in it.
func (s *service) UploadDocument(ctx context.Context, id, filename string, src io.Reader) (string, error) {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return "", mapRepositoryError(err)
	}

	stored, err := s.docs.Write(row.NameAr, filename, src)
	if err != nil {
		s.logger.Error("document write failed",
			zap.String("employee_id", id),
			zap.String("filename", filename),
			zap.Error(err),
		)
		return "", err
	}

	if row.DocsPath == "" {
		empl := row.Employee
		empl.DocsPath = s.docs.FolderPath(row.NameAr)
		if err := s.repo.Update(ctx, &empl); err != nil {
			s.logger.Warn("docs path update failed", zap.String("employee_id", id), zap.Error(err))
		}
	}

	s.logger.Info("document stored",
		zap.String("employee_id", id),
		zap.String("filename", stored),
	)
	return stored, nil
}

func (s *service) DeleteDocument(ctx context.Context, id, filename string) error {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return mapRepositoryError(err)
	}
	return s.docs.Remove(row.NameAr, filename)
}

func (s *service) resolveLookups(ctx context.Context, departmentID, jobTitleID string) (*uuid.UUID, *uuid.UUID, error) {
	var deptID, jobID *uuid.UUID

	if departmentID != "" {
		if _, err := s.lookups.FindByID(ctx, lookup.KindDepartment, departmentID); err != nil {
			return nil, nil, employeeerrors.ErrDepartmentNotFound
		}
		deptID = uuidPtr(departmentID)
	}
	if jobTitleID != "" {
		if _, err := s.lookups.FindByID(ctx, lookup.KindJobTitle, jobTitleID); err != nil {
			return nil, nil, employeeerrors.ErrJobTitleNotFound
		}
		jobID = uuidPtr(jobTitleID)
	}
	return deptID, jobID, nil
}

func validateDates(dates ...string) error {
	for _, d := range dates {
		if d == "" {
			continue
		}
		if _, err := time.Parse("2006-01-02", d); err != nil {
			return employeeerrors.ErrInvalidDate
		}
	}
	return nil
}

func defaultRole(role string) string {
	if role == "" {
		return "regular"
	}
	return role
}

func mapToResponse(row Row) EmployeeResponse {
	resp := mapEntityToResponse(row.Employee)
	resp.DepartmentName = row.DepartmentName
	resp.JobTitleName = row.JobTitleName
	return resp
}

func mapEntityToResponse(empl Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:            empl.ID.String(),
		GeneralNumber: empl.GeneralNumber,
		NameAr:        empl.NameAr,
		NameEn:        empl.NameEn,
		BirthDate:     empl.BirthDate,
		NationalID:    empl.NationalID,
		IDIssueDate:   empl.IDIssueDate,
		IDExpiryDate:  empl.IDExpiryDate,
		DepartmentID:  uuidToString(empl.DepartmentID),
		JobTitleID:    uuidToString(empl.JobTitleID),
		Phone:         empl.Phone,
		IBANNumber:    empl.IBANNumber,
		Role:          empl.Role,
		PhotoPath:     empl.PhotoPath,
		DocsPath:      empl.DocsPath,
	}
}

func mapToListResponse(rows []Row) []EmployeeResponse {
	res := make([]EmployeeResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res
}

func uuidPtr(v string) *uuid.UUID {
	id, err := uuid.Parse(v)
	if err != nil {
		return nil
	}
	return &id
}

func uuidToString(v *uuid.UUID) string {
	if v == nil {
		return ""
	}
	return v.String()
}
