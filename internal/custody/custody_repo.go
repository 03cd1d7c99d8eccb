package custody

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"
)

// HoldingsFilter narrows the custody report. Search applies SQL LIKE over
// the employee's Arabic name, deliverer and receiver. From/To bound
// received_at for employee-held passports.
type HoldingsFilter struct {
	Custodian string
	From      string
	To        string
	Search    string
}

type HoldingRow struct {
	PassportID     uuid.UUID
	PassportNumber string
	EmployeeID     uuid.UUID
	EmployeeNameAr string
	GeneralNumber  string
	Custodian      string
	DeliveredBy    string
	ReceivedBy     string
	ReceivedAt     string
}

type HandoverRow struct {
	Handover
	PassportNumber string
	EmployeeNameAr string
}

//go:generate mockgen -source=custody_repo.go -destination=mock/custody_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	GetStates(ctx context.Context, passportIDs []string) ([]PassportState, error)
	MarkDelivered(ctx context.Context, passportIDs []string, deliveredBy, receivedAt string) error
	MarkReceived(ctx context.Context, passportIDs []string, receivedBy, receivedAt string) error
	AppendHandovers(ctx context.Context, rows []Handover) error
	ListHoldings(ctx context.Context, f HoldingsFilter) ([]HoldingRow, error)
	ListHandovers(ctx context.Context, passportID string) ([]HandoverRow, error)
}

type repository struct {
	db *sql.DB
	tx *sql.Tx
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) GetStates(ctx context.Context, passportIDs []string) ([]PassportState, error) {
	if len(passportIDs) == 0 {
		return nil, nil
	}

	query := `
SELECT id, passport_number, employee_id, custodian
FROM passports
WHERE id IN (` + placeholders(len(passportIDs)) + `)
`
	rows, err := r.querier().QueryContext(ctx, query, args(passportIDs)...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	states := make([]PassportState, 0, len(passportIDs))
	for rows.Next() {
		var (
			s          PassportState
			id, emplID string
		)
		if err := rows.Scan(&id, &s.PassportNumber, &emplID, &s.Custodian); err != nil {
			return nil, err
		}
		if s.ID, err = uuid.Parse(id); err != nil {
			return nil, err
		}
		if s.EmployeeID, err = uuid.Parse(emplID); err != nil {
			return nil, err
		}
		states = append(states, s)
	}
	return states, rows.Err()
}

func (r *repository) MarkDelivered(ctx context.Context, passportIDs []string, deliveredBy, receivedAt string) error {
	if len(passportIDs) == 0 {
		return nil
	}

	query := `
UPDATE passports
SET custodian = 'employee',
	delivered_by = ?,
	received_at = ?,
	updated_at = datetime('now')
WHERE id IN (` + placeholders(len(passportIDs)) + `)
`
	_, err := r.execer().ExecContext(ctx, query,
		append([]any{deliveredBy, receivedAt}, args(passportIDs)...)...)
	return err
}

func (r *repository) MarkReceived(ctx context.Context, passportIDs []string, receivedBy, receivedAt string) error {
	if len(passportIDs) == 0 {
		return nil
	}

	query := `
UPDATE passports
SET custodian = 'organization',
	received_by = ?,
	received_at = ?,
	updated_at = datetime('now')
WHERE id IN (` + placeholders(len(passportIDs)) + `)
`
	_, err := r.execer().ExecContext(ctx, query,
		append([]any{receivedBy, receivedAt}, args(passportIDs)...)...)
	return err
}

func (r *repository) AppendHandovers(ctx context.Context, handovers []Handover) error {
	if len(handovers) == 0 {
		return nil
	}

	query := `
INSERT INTO handovers (id, passport_id, employee_id, action_type, action_at)
VALUES (?, ?, ?, ?, ?)
`
	for _, h := range handovers {
		if _, err := r.execer().ExecContext(ctx, query,
			h.ID.String(), h.PassportID.String(), h.EmployeeID.String(),
			h.ActionType, h.ActionAt.UTC().Format(time.RFC3339),
		); err != nil {
			return err
		}
	}
	return nil
}

func (r *repository) ListHoldings(ctx context.Context, f HoldingsFilter) ([]HoldingRow, error) {
	query := `
SELECT
	p.id, p.passport_number, p.employee_id,
	COALESCE(e.name_ar, ''), COALESCE(e.general_number, ''),
	p.custodian,
	COALESCE(p.delivered_by, ''), COALESCE(p.received_by, ''), COALESCE(p.received_at, '')
FROM passports p
LEFT JOIN employees e ON e.id = p.employee_id
WHERE 1=1
`
	var params []any
	if f.Custodian != "" {
		query += " AND p.custodian = ?"
		params = append(params, f.Custodian)
	}
	if f.From != "" {
		query += " AND p.received_at >= ?"
		params = append(params, f.From)
	}
	if f.To != "" {
		query += " AND p.received_at <= ?"
		params = append(params, f.To+"T23:59:59Z")
	}
	if f.Search != "" {
		query += " AND (e.name_ar LIKE ? OR p.delivered_by LIKE ? OR p.received_by LIKE ?)"
		like := "%" + f.Search + "%"
		params = append(params, like, like, like)
	}
	query += " ORDER BY p.passport_number ASC"

	rows, err := r.querier().QueryContext(ctx, query, params...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var holdings []HoldingRow
	for rows.Next() {
		var (
			h          HoldingRow
			id, emplID string
		)
		if err := rows.Scan(&id, &h.PassportNumber, &emplID,
			&h.EmployeeNameAr, &h.GeneralNumber, &h.Custodian,
			&h.DeliveredBy, &h.ReceivedBy, &h.ReceivedAt,
		); err != nil {
			return nil, err
		}
		if h.PassportID, err = uuid.Parse(id); err != nil {
			return nil, err
		}
		if h.EmployeeID, err = uuid.Parse(emplID); err != nil {
			return nil, err
		}
		holdings = append(holdings, h)
	}
	return holdings, rows.Err()
}

func (r *repository) ListHandovers(ctx context.Context, passportID string) ([]HandoverRow, error) {
	query := `
SELECT
	h.id, h.passport_id, h.employee_id, h.action_type, h.action_at,
	COALESCE(p.passport_number, ''), COALESCE(e.name_ar, '')
FROM handovers h
LEFT JOIN passports p ON p.id = h.passport_id
LEFT JOIN employees e ON e.id = h.employee_id
WHERE 1=1
`
	var params []any
	if passportID != "" {
		query += " AND h.passport_id = ?"
		params = append(params, passportID)
	}
	query += " ORDER BY h.action_at DESC"

	rows, err := r.querier().QueryContext(ctx, query, params...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var handovers []HandoverRow
	for rows.Next() {
		var (
			h                  HandoverRow
			id, pID, eID, atAt string
		)
		if err := rows.Scan(&id, &pID, &eID, &h.ActionType, &atAt,
			&h.PassportNumber, &h.EmployeeNameAr,
		); err != nil {
			return nil, err
		}
		if h.ID, err = uuid.Parse(id); err != nil {
			return nil, err
		}
		if h.PassportID, err = uuid.Parse(pID); err != nil {
			return nil, err
		}
		if h.EmployeeID, err = uuid.Parse(eID); err != nil {
			return nil, err
		}
		if t, err := time.Parse(time.RFC3339, atAt); err == nil {
			h.ActionAt = t
		}
		handovers = append(handovers, h)
	}
	return handovers, rows.Err()
}

func (r *repository) execer() interface {
	ExecContext(context.Context, string, ...any) (sql.Result, error)
} {
	if r.tx != nil {
		return r.tx
	}
	return r.db
}

func (r *repository) querier() interface {
	QueryContext(context.Context, string, ...any) (*sql.Rows, error)
} {
	if r.tx != nil {
		return r.tx
	}
	return r.db
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}

func args(ids []string) []any {
	out := make([]any, len(ids))
	for i, id := range ids {
		out[i] = id
	}
	return out
}
