package lookup_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/seyf-eddine19/HRM/internal/lookup"
	lookuperrors "github.com/seyf-eddine19/HRM/internal/lookup/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeLookupService struct {
	CreateFn      func(ctx context.Context, kind lookup.Kind, req lookup.CreateValueRequest) (lookup.ValueResponse, error)
	GetAllFn      func(ctx context.Context, kind lookup.Kind) ([]lookup.ValueResponse, error)
	GetByIDFn     func(ctx context.Context, kind lookup.Kind, id string) (lookup.ValueResponse, error)
	GetOrCreateFn func(ctx context.Context, kind lookup.Kind, name string) (lookup.ValueResponse, error)
	UpdateFn      func(ctx context.Context, kind lookup.Kind, id string, req lookup.UpdateValueRequest) (lookup.ValueResponse, error)
	DeleteFn      func(ctx context.Context, kind lookup.Kind, id string) error
}

func (f *fakeLookupService) Create(ctx context.Context, kind lookup.Kind, req lookup.CreateValueRequest) (lookup.ValueResponse, error) {
	return f.CreateFn(ctx, kind, req)
}
func (f *fakeLookupService) GetAll(ctx context.Context, kind lookup.Kind) ([]lookup.ValueResponse, error) {
	return f.GetAllFn(ctx, kind)
}
func (f *fakeLookupService) GetByID(ctx context.Context, kind lookup.Kind, id string) (lookup.ValueResponse, error) {
	return f.GetByIDFn(ctx, kind, id)
}
func (f *fakeLookupService) GetOrCreate(ctx context.Context, kind lookup.Kind, name string) (lookup.ValueResponse, error) {
	return f.GetOrCreateFn(ctx, kind, name)
}
func (f *fakeLookupService) Update(ctx context.Context, kind lookup.Kind, id string, req lookup.UpdateValueRequest) (lookup.ValueResponse, error) {
	return f.UpdateFn(ctx, kind, id, req)
}
func (f *fakeLookupService) Delete(ctx context.Context, kind lookup.Kind, id string) error {
	return f.DeleteFn(ctx, kind, id)
}

func TestLookupHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		svc := &fakeLookupService{
			CreateFn: func(ctx context.Context, kind lookup.Kind, req lookup.CreateValueRequest) (lookup.ValueResponse, error) {
				assert.Equal(t, lookup.KindDepartment, kind)
				assert.Equal(t, "Finance", req.Name)
				return lookup.ValueResponse{ID: uuid.NewString(), Name: req.Name}, nil
			},
		}

		h := lookup.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/lookups/department_types", strings.NewReader(`{"name":"Finance"}`))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req
		c.Params = gin.Params{{Key: "kind", Value: "department_types"}}

		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "Finance")
	})

	t.Run("unknown kind is rejected", func(t *testing.T) {
		h := lookup.NewHandler(&fakeLookupService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/lookups/secrets", strings.NewReader(`{"name":"x"}`))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req
		c.Params = gin.Params{{Key: "kind", Value: "secrets"}}

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "unknown lookup table")
	})

	t.Run("missing name fails validation", func(t *testing.T) {
		h := lookup.NewHandler(&fakeLookupService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/lookups/job_titles", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req
		c.Params = gin.Params{{Key: "kind", Value: "job_titles"}}

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestLookupHandler_GetAll(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeLookupService{
		GetAllFn: func(ctx context.Context, kind lookup.Kind) ([]lookup.ValueResponse, error) {
			assert.Equal(t, lookup.KindVisaType, kind)
			return []lookup.ValueResponse{
				{ID: uuid.NewString(), Name: "Work"},
				{ID: uuid.NewString(), Name: "Visit"},
			}, nil
		},
	}

	h := lookup.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/lookups/visa_types", nil)
	c.Params = gin.Params{{Key: "kind", Value: "visa_types"}}

	h.GetAll(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Work")
	assert.Contains(t, w.Body.String(), "Visit")
}

func TestLookupHandler_Delete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("value in use maps to conflict", func(t *testing.T) {
		id := uuid.NewString()
		svc := &fakeLookupService{
			DeleteFn: func(ctx context.Context, kind lookup.Kind, got string) error {
				assert.Equal(t, id, got)
				return lookuperrors.ErrValueInUse
			},
		}

		h := lookup.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodDelete, "/api/v1/lookups/department_types/"+id, nil)
		c.Params = gin.Params{
			{Key: "kind", Value: "department_types"},
			{Key: "id", Value: id},
		}

		h.Delete(c)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}
