package exchange

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	exchangeerrors "github.com/seyf-eddine19/HRM/internal/exchange/errors"
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
	l := zap.L().Named("exchange.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("exchange.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("exchange request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Import(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		h.writeServiceError(c, exchangeerrors.ErrInvalidWorkbook)
		return
	}

	src, err := file.Open()
	if err != nil {
		h.writeServiceError(c, exchangeerrors.ErrInvalidWorkbook)
		return
	}
	defer src.Close()

	report, err := h.service.Import(c.Request.Context(), src)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, report, nil)
}

func (h *Handler) Export(c *gin.Context) {
	var employeeIDs []string
	if raw := c.Query("employee_ids"); raw != "" {
		for _, id := range strings.Split(raw, ",") {
			if id = strings.TrimSpace(id); id != "" {
				employeeIDs = append(employeeIDs, id)
			}
		}
	}

	f, err := h.service.Export(c.Request.Context(), employeeIDs)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	defer f.Close()

	filename := fmt.Sprintf("hr-export-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	if err := f.Write(c.Writer); err != nil {
		h.logger.Error("export stream failed", zap.Error(err))
	}
}
