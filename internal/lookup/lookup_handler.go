package lookup

import (
	"net/http"

	lookuperrors "github.com/seyf-eddine19/HRM/internal/lookup/errors"
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
	l := zap.L().Named("lookup.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("lookup.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("lookup request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) kindParam(c *gin.Context) (Kind, bool) {
	kind, ok := ParseKind(c.Param("kind"))
	if !ok {
		h.writeServiceError(c, lookuperrors.ErrUnknownKind)
		return "", false
	}
	return kind, true
}

func (h *Handler) Create(c *gin.Context) {
	kind, ok := h.kindParam(c)
	if !ok {
		return
	}
	var req CreateValueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http create lookup value validation failed", zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Create(c.Request.Context(), kind, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) GetAll(c *gin.Context) {
	kind, ok := h.kindParam(c)
	if !ok {
		return
	}

	resp, err := h.service.GetAll(c.Request.Context(), kind)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetById(c *gin.Context) {
	kind, ok := h.kindParam(c)
	if !ok {
		return
	}

	resp, err := h.service.GetByID(c.Request.Context(), kind, c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Update(c *gin.Context) {
	kind, ok := h.kindParam(c)
	if !ok {
		return
	}
	var req UpdateValueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http update lookup value validation failed", zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Update(c.Request.Context(), kind, c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	kind, ok := h.kindParam(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), kind, c.Param("id")); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true}, nil)
}
