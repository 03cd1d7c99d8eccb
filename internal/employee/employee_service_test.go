package employee_test

import (
	"context"
	"database/sql"
	"io"
	"strings"
	"testing"

	"github.com/seyf-eddine19/HRM/internal/employee"
	employeeerrors "github.com/seyf-eddine19/HRM/internal/employee/errors"
	"github.com/seyf-eddine19/HRM/internal/lookup"

	employeeMock "github.com/seyf-eddine19/HRM/internal/employee/mock"
	lookupMock "github.com/seyf-eddine19/HRM/internal/lookup/mock"
	kafkaMock "github.com/seyf-eddine19/HRM/internal/messaging/kafka/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type fakeDocStore struct {
	removedFolders []string
	writtenFolders []string
	removedFiles   []string
	files          []string
}

func (f *fakeDocStore) FolderPath(folder string) string { return "docs/" + folder }
func (f *fakeDocStore) CopyIn(folder, srcPath string) (string, error) {
	return "", nil
}
func (f *fakeDocStore) Write(folder, filename string, src io.Reader) (string, error) {
	f.writtenFolders = append(f.writtenFolders, folder)
	return filename, nil
}
func (f *fakeDocStore) List(folder string) ([]string, error) { return f.files, nil }
func (f *fakeDocStore) Remove(folder, filename string) error {
	f.removedFiles = append(f.removedFiles, folder+"/"+filename)
	return nil
}
func (f *fakeDocStore) RemoveFolder(folder string) error {
	f.removedFolders = append(f.removedFolders, folder)
	return nil
}

type serviceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	service employee.Service
	repo    *employeeMock.MockRepository
	lookups *lookupMock.MockRepository
	outbox  *kafkaMock.MockOutboxRepository
	docs    *fakeDocStore
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, _ := sqlmock.New()
	repo := employeeMock.NewMockRepository(ctrl)
	lookups := lookupMock.NewMockRepository(ctrl)
	outbox := kafkaMock.NewMockOutboxRepository(ctrl)
	docs := &fakeDocStore{}

	svc := employee.NewService(db, repo, lookups, outbox, docs)

	return &serviceDeps{
		db:      db,
		sqlMock: sqlMock,
		service: svc,
		repo:    repo,
		lookups: lookups,
		outbox:  outbox,
		docs:    docs,
	}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func TestEmployeeService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success queues outbox event", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deptID := uuid.NewString()
		req := employee.CreateEmployeeRequest{
			GeneralNumber: "GN-001",
			NameAr:        "أحمد علي",
			NameEn:        "Ahmed Ali",
			BirthDate:     "1990-05-01",
			DepartmentID:  deptID,
		}

		deps.lookups.EXPECT().
			FindByID(ctx, lookup.KindDepartment, deptID).
			Return(&lookup.Value{ID: uuid.MustParse(deptID), Name: "Finance"}, nil)

		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().
			WithTx(gomock.Any()).
			Return(deps.repo)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, e *employee.Employee) error {
				assert.Equal(t, "GN-001", e.GeneralNumber)
				assert.Equal(t, "أحمد علي", e.NameAr)
				assert.Equal(t, "regular", e.Role)
				assert.NotNil(t, e.DepartmentID)
				return nil
			})

		deps.outbox.EXPECT().
			WithTx(gomock.Any()).
			Return(deps.outbox)
		deps.outbox.EXPECT().
			Create(ctx, gomock.Any()).
			Return(nil)

		resp, err := deps.service.Create(ctx, req)
		assert.NoError(t, err)
		assert.Equal(t, "GN-001", resp.GeneralNumber)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("invalid birth date", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.Create(ctx, employee.CreateEmployeeRequest{
			GeneralNumber: "GN-002",
			NameAr:        "سارة",
			BirthDate:     "01/05/1990",
		})
		assert.ErrorIs(t, err, employeeerrors.ErrInvalidDate)
	})

	t.Run("unknown department", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deptID := uuid.NewString()
		deps.lookups.EXPECT().
			FindByID(ctx, lookup.KindDepartment, deptID).
			Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Create(ctx, employee.CreateEmployeeRequest{
			GeneralNumber: "GN-003",
			NameAr:        "سارة",
			DepartmentID:  deptID,
		})
		assert.ErrorIs(t, err, employeeerrors.ErrDepartmentNotFound)
	})

	t.Run("duplicate general number maps to conflict", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()

		deps.repo.EXPECT().
			WithTx(gomock.Any()).
			Return(deps.repo)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			Return(assertableUniqueErr{})

		_, err := deps.service.Create(ctx, employee.CreateEmployeeRequest{
			GeneralNumber: "GN-001",
			NameAr:        "أحمد",
		})
		assert.ErrorIs(t, err, employeeerrors.ErrGeneralNumberAlreadyExists)
	})
}

type assertableUniqueErr struct{}

func (assertableUniqueErr) Error() string {
	return "UNIQUE constraint failed: employees.general_number"
}

func TestEmployeeService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("cascades in one tx and removes docs folder", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		id := uuid.New()
		deps.repo.EXPECT().
			FindByID(ctx, id.String()).
			Return(&employee.Row{Employee: employee.Employee{
				ID:       id,
				NameAr:   "أحمد علي",
				DocsPath: "/docs/أحمد علي",
			}}, nil)

		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().
			WithTx(gomock.Any()).
			Return(deps.repo)
		deps.repo.EXPECT().
			DeleteCascade(ctx, id.String()).
			Return(nil)

		assert.NoError(t, deps.service.Delete(ctx, id.String()))
		assert.Equal(t, []string{"أحمد علي"}, deps.docs.removedFolders)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("missing employee", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		id := uuid.NewString()
		deps.repo.EXPECT().
			FindByID(ctx, id).
			Return(nil, gorm.ErrRecordNotFound)

		err := deps.service.Delete(ctx, id)
		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
		assert.Empty(t, deps.docs.removedFolders)
	})
}

func TestEmployeeService_GetVisaTypeLinks(t *testing.T) {
	deps := setupServiceTest(t)
	defer deps.db.Close()

	ctx := context.Background()
	e1, e2 := uuid.New(), uuid.New()

	deps.repo.EXPECT().
		FindVisaTypeLinks(ctx).
		Return([]employee.VisaTypeLink{
			{EmployeeID: e1, VisaTypeName: "Work"},
			{EmployeeID: e1, VisaTypeName: "Visit"},
			{EmployeeID: e2, VisaTypeName: "Work"},
		}, nil)

	links, err := deps.service.GetVisaTypeLinks(ctx)
	assert.NoError(t, err)
	assert.ElementsMatch(t, []string{"Work", "Visit"}, links[e1.String()])
	assert.Equal(t, []string{"Work"}, links[e2.String()])
}

func TestEmployeeService_Documents(t *testing.T) {
	ctx := context.Background()

	t.Run("upload stores into the name folder and records the path", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		id := uuid.New()
		row := &employee.Row{Employee: employee.Employee{ID: id, NameAr: "أحمد علي"}}
		deps.repo.EXPECT().FindByID(ctx, id.String()).Return(row, nil)
		deps.repo.EXPECT().Update(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, empl *employee.Employee) error {
				assert.Equal(t, "docs/أحمد علي", empl.DocsPath)
				return nil
			})

		stored, err := deps.service.UploadDocument(ctx, id.String(), "passport.pdf", strings.NewReader("pdf"))

		assert.NoError(t, err)
		assert.Equal(t, "passport.pdf", stored)
		assert.Equal(t, []string{"أحمد علي"}, deps.docs.writtenFolders)
	})

	t.Run("upload keeps an already recorded docs path", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		id := uuid.New()
		row := &employee.Row{Employee: employee.Employee{ID: id, NameAr: "أحمد علي", DocsPath: "docs/أحمد علي"}}
		deps.repo.EXPECT().FindByID(ctx, id.String()).Return(row, nil)

		_, err := deps.service.UploadDocument(ctx, id.String(), "visa.pdf", strings.NewReader("pdf"))

		assert.NoError(t, err)
	})

	t.Run("list and delete resolve the employee first", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		id := uuid.New()
		row := &employee.Row{Employee: employee.Employee{ID: id, NameAr: "أحمد علي"}}
		deps.docs.files = []string{"passport.pdf", "iban.pdf"}
		deps.repo.EXPECT().FindByID(ctx, id.String()).Return(row, nil).Times(2)

		files, err := deps.service.ListDocuments(ctx, id.String())
		assert.NoError(t, err)
		assert.Equal(t, []string{"passport.pdf", "iban.pdf"}, files)

		assert.NoError(t, deps.service.DeleteDocument(ctx, id.String(), "iban.pdf"))
		assert.Equal(t, []string{"أحمد علي/iban.pdf"}, deps.docs.removedFiles)
	})

	t.Run("unknown employee surfaces not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.repo.EXPECT().FindByID(ctx, "missing").Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.ListDocuments(ctx, "missing")
		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})
}
