package expiry

import (
	"net/http"
	"strconv"

	expiryerrors "github.com/seyf-eddine19/HRM/internal/expiry/errors"
	"github.com/seyf-eddine19/HRM/internal/shared/apperror"
	"github.com/seyf-eddine19/HRM/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("expiry.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("expiry.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("expiry request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// windowParam parses ?window=N. A missing value means 30 days, the default
// screen in the notifications view.
func (h *Handler) windowParam(c *gin.Context) (int, bool) {
	raw := c.DefaultQuery("window", "30")
	window, err := strconv.Atoi(raw)
	if err != nil {
		h.writeServiceError(c, expiryerrors.ErrInvalidWindow)
		return 0, false
	}
	return window, true
}

func (h *Handler) Passports(c *gin.Context) {
	window, ok := h.windowParam(c)
	if !ok {
		return
	}

	resp, err := h.service.ExpiringPassports(c.Request.Context(), window)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Visas(c *gin.Context) {
	window, ok := h.windowParam(c)
	if !ok {
		return
	}

	resp, err := h.service.ExpiringVisas(c.Request.Context(), window)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}
