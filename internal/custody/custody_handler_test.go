package custody_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/seyf-eddine19/HRM/internal/custody"
	custodyerrors "github.com/seyf-eddine19/HRM/internal/custody/errors"
	"github.com/seyf-eddine19/HRM/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeCustodyService struct {
	DeliverFn   func(ctx context.Context, req custody.DeliverRequest) (custody.BatchReport, error)
	ReceiveFn   func(ctx context.Context, req custody.ReceiveRequest) (custody.BatchReport, error)
	HoldingsFn  func(ctx context.Context, q custody.HoldingsQuery) ([]custody.HoldingResponse, error)
	HandoversFn func(ctx context.Context, passportID string) ([]custody.HandoverResponse, error)
}

func (f *fakeCustodyService) Deliver(ctx context.Context, req custody.DeliverRequest) (custody.BatchReport, error) {
	return f.DeliverFn(ctx, req)
}
func (f *fakeCustodyService) Receive(ctx context.Context, req custody.ReceiveRequest) (custody.BatchReport, error) {
	return f.ReceiveFn(ctx, req)
}
func (f *fakeCustodyService) Holdings(ctx context.Context, q custody.HoldingsQuery) ([]custody.HoldingResponse, error) {
	return f.HoldingsFn(ctx, q)
}
func (f *fakeCustodyService) Handovers(ctx context.Context, passportID string) ([]custody.HandoverResponse, error) {
	return f.HandoversFn(ctx, passportID)
}

func TestCustodyHandler_Deliver(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		id := uuid.NewString()
		svc := &fakeCustodyService{
			DeliverFn: func(ctx context.Context, req custody.DeliverRequest) (custody.BatchReport, error) {
				assert.Equal(t, []string{id}, req.PassportIDs)
				assert.Equal(t, "Omar Saleh", req.DeliveredBy)
				return custody.BatchReport{Updated: []string{"A100"}, AlreadyInState: []string{}}, nil
			},
		}

		h := custody.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"passport_ids":["` + id + `"],"delivered_by":"Omar Saleh"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/custody/deliver", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req

		h.Deliver(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var env response.ApiEnvelope
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.True(t, env.Ok)

		var report custody.BatchReport
		raw, _ := json.Marshal(env.Data)
		assert.NoError(t, json.Unmarshal(raw, &report))
		assert.Equal(t, []string{"A100"}, report.Updated)
	})

	t.Run("missing delivered_by rejected", func(t *testing.T) {
		h := custody.NewHandler(&fakeCustodyService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"passport_ids":["` + uuid.NewString() + `"]}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/custody/deliver", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req

		h.Deliver(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("service error mapped to status", func(t *testing.T) {
		svc := &fakeCustodyService{
			DeliverFn: func(ctx context.Context, req custody.DeliverRequest) (custody.BatchReport, error) {
				return custody.BatchReport{}, custodyerrors.ErrPassportsNotFound
			},
		}

		h := custody.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"passport_ids":["` + uuid.NewString() + `"],"delivered_by":"Omar Saleh"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/custody/deliver", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req

		h.Deliver(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestCustodyHandler_Receive(t *testing.T) {
	gin.SetMode(gin.TestMode)

	id := uuid.NewString()
	svc := &fakeCustodyService{
		ReceiveFn: func(ctx context.Context, req custody.ReceiveRequest) (custody.BatchReport, error) {
			assert.Equal(t, "Huda Nasser", req.ReceivedBy)
			return custody.BatchReport{Updated: []string{"B100"}, AlreadyInState: []string{}}, nil
		},
	}

	h := custody.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body := `{"passport_ids":["` + id + `"],"received_by":"Huda Nasser"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/custody/receive", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	h.Receive(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCustodyHandler_Holdings(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("query params bound into the filter", func(t *testing.T) {
		svc := &fakeCustodyService{
			HoldingsFn: func(ctx context.Context, q custody.HoldingsQuery) ([]custody.HoldingResponse, error) {
				assert.Equal(t, "employee", q.Custodian)
				assert.Equal(t, "2026-08-01", q.From)
				assert.Equal(t, "سعاد", q.Search)
				return []custody.HoldingResponse{{PassportNumber: "F100"}}, nil
			},
		}

		h := custody.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodGet,
			"/api/v1/custody/holdings?custodian=employee&from=2026-08-01&search="+
				"%D8%B3%D8%B9%D8%A7%D8%AF", nil)

		h.Holdings(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("unknown custodian rejected", func(t *testing.T) {
		h := custody.NewHandler(&fakeCustodyService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/custody/holdings?custodian=vault", nil)

		h.Holdings(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCustodyHandler_Handovers(t *testing.T) {
	gin.SetMode(gin.TestMode)

	id := uuid.NewString()
	svc := &fakeCustodyService{
		HandoversFn: func(ctx context.Context, passportID string) ([]custody.HandoverResponse, error) {
			assert.Equal(t, id, passportID)
			return []custody.HandoverResponse{{PassportNumber: "G100", ActionType: custody.ActionDelivery}}, nil
		},
	}

	h := custody.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/custody/handovers?passport_id="+id, nil)

	h.Handovers(c)

	assert.Equal(t, http.StatusOK, w.Code)
}
