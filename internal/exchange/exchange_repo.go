package exchange

import (
	"context"
	"database/sql"
	"strings"
)

// ExportRow is one flattened employee/passport/visa combination. An
// employee with no passport still exports as a single row with the
// passport and visa columns blank.
type ExportRow struct {
	GeneralNumber  string
	NameAr         string
	NameEn         string
	JobTitle       string
	Department     string
	IBAN           string
	Phone          string
	BirthDate      string
	NationalID     string
	IDIssueDate    string
	IDExpiryDate   string
	PassportNumber string
	PassportIssue  string
	PassportExpiry string
	PassportType   string
	VisaNumber     string
	VisaType       string
	VisaIssue      string
	VisaExpiry     string
}

//go:generate mockgen -source=exchange_repo.go -destination=mock/exchange_repo_mock.go -package=mock
type Repository interface {
	ExportRows(ctx context.Context, employeeIDs []string) ([]ExportRow, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const exportSelect = `
	SELECT
		e.general_number,
		e.name_ar,
		COALESCE(e.name_en, ''),
		COALESCE(j.name, ''),
		COALESCE(d.name, ''),
		COALESCE(e.iban_number, ''),
		COALESCE(e.phone, ''),
		COALESCE(e.birth_date, ''),
		COALESCE(e.national_id, ''),
		COALESCE(e.id_issue_date, ''),
		COALESCE(e.id_expiry_date, ''),
		COALESCE(p.passport_number, ''),
		COALESCE(p.issue_date, ''),
		COALESCE(p.expiry_date, ''),
		COALESCE(pt.name, ''),
		COALESCE(v.visa_number, ''),
		COALESCE(vt.name, ''),
		COALESCE(v.issue_date, ''),
		COALESCE(v.expiry_date, '')
	FROM employees e
	LEFT JOIN job_titles j ON j.id = e.job_title_id
	LEFT JOIN department_types d ON d.id = e.department_id
	LEFT JOIN passports p ON p.employee_id = e.id
	LEFT JOIN passport_types pt ON pt.id = p.passport_type_id
	LEFT JOIN visas v ON v.passport_id = p.id
	LEFT JOIN visa_types vt ON vt.id = v.visa_type_id
`

func (r *repository) ExportRows(ctx context.Context, employeeIDs []string) ([]ExportRow, error) {
	query := exportSelect
	var queryArgs []any
	if len(employeeIDs) > 0 {
		query += " WHERE e.id IN (" + placeholders(len(employeeIDs)) + ")"
		for _, id := range employeeIDs {
			queryArgs = append(queryArgs, id)
		}
	}
	query += " ORDER BY e.general_number, p.passport_number, v.visa_number"

	rows, err := r.db.QueryContext(ctx, query, queryArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []ExportRow
	for rows.Next() {
		var row ExportRow
		if err := rows.Scan(
			&row.GeneralNumber,
			&row.NameAr,
			&row.NameEn,
			&row.JobTitle,
			&row.Department,
			&row.IBAN,
			&row.Phone,
			&row.BirthDate,
			&row.NationalID,
			&row.IDIssueDate,
			&row.IDExpiryDate,
			&row.PassportNumber,
			&row.PassportIssue,
			&row.PassportExpiry,
			&row.PassportType,
			&row.VisaNumber,
			&row.VisaType,
			&row.VisaIssue,
			&row.VisaExpiry,
		); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}

func (row ExportRow) values() []any {
	return []any{
		row.GeneralNumber,
		row.NameAr,
		row.NameEn,
		row.JobTitle,
		row.Department,
		row.IBAN,
		row.Phone,
		row.BirthDate,
		row.NationalID,
		row.IDIssueDate,
		row.IDExpiryDate,
		row.PassportNumber,
		row.PassportIssue,
		row.PassportExpiry,
		row.PassportType,
		row.VisaNumber,
		row.VisaType,
		row.VisaIssue,
		row.VisaExpiry,
	}
}
