package employee

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, empl *Employee) error
	FindAll(ctx context.Context) ([]Row, error)
	FindByID(ctx context.Context, id string) (*Row, error)
	FindByGeneralNumber(ctx context.Context, generalNumber string) (*Employee, error)
	FindVisaTypeLinks(ctx context.Context) ([]VisaTypeLink, error)
	Update(ctx context.Context, empl *Employee) error
	DeleteCascade(ctx context.Context, id string) error
}

type repository struct {
	db    *gorm.DB
	sqlDB *sql.DB
	tx    *sql.Tx
}

func NewRepository(db *gorm.DB, sqlDB *sql.DB) Repository {
	return &repository{db: db, sqlDB: sqlDB}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{
		db:    r.db,
		sqlDB: r.sqlDB,
		tx:    tx,
	}
}

const rowSelect = `
	employees.*,
	COALESCE(d.name, '') AS department_name,
	COALESCE(j.name, '') AS job_title_name
`

func (r *repository) rowQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("employees").
		Select(rowSelect).
		Joins("LEFT JOIN department_types d ON d.id = employees.department_id").
		Joins("LEFT JOIN job_titles j ON j.id = employees.job_title_id")
}

// Create inserts through the bound *sql.Tx when one is set. The pool runs
// with a single connection, so an open transaction must carry every write
// that belongs to it or the insert deadlocks waiting for the connection
// the transaction already holds.
func (r *repository) Create(ctx context.Context, empl *Employee) error {
	if r.tx == nil {
		return r.db.WithContext(ctx).Create(empl).Error
	}

	now := time.Now().UTC()
	empl.CreatedAt = now
	empl.UpdatedAt = now

	_, err := r.tx.ExecContext(ctx, `
		INSERT INTO employees (
			id, general_number, name_ar, name_en, birth_date, national_id,
			id_issue_date, id_expiry_date, department_id, job_title_id,
			phone, iban_number, role, photo_path, docs_path, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		empl.ID.String(), empl.GeneralNumber, empl.NameAr, empl.NameEn,
		empl.BirthDate, empl.NationalID, empl.IDIssueDate, empl.IDExpiryDate,
		uuidArg(empl.DepartmentID), uuidArg(empl.JobTitleID),
		empl.Phone, empl.IBANNumber, empl.Role, empl.PhotoPath, empl.DocsPath,
		now, now,
	)
	return err
}

func uuidArg(id *uuid.UUID) any {
	if id == nil {
		return nil
	}
	return id.String()
}

func (r *repository) FindAll(ctx context.Context) ([]Row, error) {
	var rows []Row
	err := r.rowQuery(ctx).
		Order("employees.general_number ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Row, error) {
	var row Row
	res := r.rowQuery(ctx).
		Where("employees.id = ?", id).
		Limit(1).
		Scan(&row)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &row, nil
}

func (r *repository) FindByGeneralNumber(ctx context.Context, generalNumber string) (*Employee, error) {
	var empl Employee
	err := r.db.WithContext(ctx).
		First(&empl, "general_number = ?", generalNumber).Error
	return &empl, err
}

func (r *repository) FindVisaTypeLinks(ctx context.Context) ([]VisaTypeLink, error) {
	var links []VisaTypeLink
	err := r.db.WithContext(ctx).
		Table("visas").
		Select("passports.employee_id AS employee_id, vt.name AS visa_type_name").
		Joins("JOIN passports ON passports.id = visas.passport_id").
		Joins("JOIN visa_types vt ON vt.id = visas.visa_type_id").
		Scan(&links).Error
	return links, err
}

func (r *repository) Update(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).Save(empl).Error
}

// DeleteCascade removes an employee together with its passports and their
// visas. Runs on the bound *sql.Tx so all three deletes commit or roll back
// as one unit.
func (r *repository) DeleteCascade(ctx context.Context, id string) error {
	exec := r.execer()

	if _, err := exec.ExecContext(ctx, `
		DELETE FROM visas
		WHERE passport_id IN (SELECT id FROM passports WHERE employee_id = ?)
	`, id); err != nil {
		return err
	}
	if _, err := exec.ExecContext(ctx, `DELETE FROM passports WHERE employee_id = ?`, id); err != nil {
		return err
	}
	res, err := exec.ExecContext(ctx, `DELETE FROM employees WHERE id = ?`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) execer() interface {
	ExecContext(context.Context, string, ...any) (sql.Result, error)
} {
	if r.tx != nil {
		return r.tx
	}
	return r.sqlDB
}
