package employee

import (
	"net/http"
	"sort"
	"strconv"
	"strings"

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
	l := zap.L().Named("employee.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("employee request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http create employee validation failed", zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) GetAll(c *gin.Context) {
	ctx := c.Request.Context()

	resp, err := h.service.GetAll(ctx)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	q := strings.TrimSpace(strings.ToLower(c.Query("q")))
	if q != "" {
		filtered := make([]EmployeeResponse, 0, len(resp))
		for _, e := range resp {
			if matchesFreeText(e, q) {
				filtered = append(filtered, e)
			}
		}
		resp = filtered
	}

	if dept := strings.TrimSpace(c.Query("department")); dept != "" {
		resp = filterBy(resp, func(e EmployeeResponse) bool {
			return strings.EqualFold(e.DepartmentName, dept)
		})
	}
	if job := strings.TrimSpace(c.Query("job_title")); job != "" {
		resp = filterBy(resp, func(e EmployeeResponse) bool {
			return strings.EqualFold(e.JobTitleName, job)
		})
	}
	if role := strings.TrimSpace(c.Query("role")); role != "" {
		resp = filterBy(resp, func(e EmployeeResponse) bool {
			return strings.EqualFold(e.Role, role)
		})
	}

	if visaType := strings.TrimSpace(c.Query("visa_type")); visaType != "" {
		links, err := h.service.GetVisaTypeLinks(ctx)
		if err != nil {
			h.writeServiceError(c, err)
			return
		}
		resp = filterBy(resp, func(e EmployeeResponse) bool {
			for _, name := range links[e.ID] {
				if strings.EqualFold(name, visaType) {
					return true
				}
			}
			return false
		})
	}

	sortBy := strings.ToLower(strings.TrimSpace(c.DefaultQuery("sort_by", "general_number")))
	sortDir := strings.ToLower(strings.TrimSpace(c.DefaultQuery("sort_dir", "asc")))
	if sortDir != "desc" {
		sortDir = "asc"
	}
	sort.Slice(resp, func(i, j int) bool {
		var less bool
		switch sortBy {
		case "name_ar":
			less = resp[i].NameAr < resp[j].NameAr
		case "name_en":
			less = strings.ToLower(resp[i].NameEn) < strings.ToLower(resp[j].NameEn)
		case "birth_date":
			less = resp[i].BirthDate < resp[j].BirthDate
		default:
			less = resp[i].GeneralNumber < resp[j].GeneralNumber
		}
		if sortDir == "desc" {
			return !less
		}
		return less
	})

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	if pageSize < 1 {
		pageSize = 10
	}

	total := int64(len(resp))
	start := (page - 1) * pageSize
	end := start + pageSize
	if start > len(resp) {
		start = len(resp)
	}
	if end > len(resp) {
		end = len(resp)
	}

	meta := response.NewPaginationMeta(total, page, pageSize)
	response.Success(c, http.StatusOK, resp[start:end], &meta)
}

func (h *Handler) GetById(c *gin.Context) {
	resp, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http update employee validation failed", zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true}, nil)
}

func (h *Handler) Documents(c *gin.Context) {
	files, err := h.service.ListDocuments(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, files, nil)
}

func (h *Handler) UploadDocument(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		h.logger.Warn("http upload document validation failed", zap.Error(err))
		h.writeServiceError(c, apperror.ErrInvalidInput)
		return
	}

	src, err := file.Open()
	if err != nil {
		h.writeServiceError(c, apperror.ErrInvalidInput)
		return
	}
	defer src.Close()

	stored, err := h.service.UploadDocument(c.Request.Context(), c.Param("id"), file.Filename, src)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"filename": stored}, nil)
}

func (h *Handler) DeleteDocument(c *gin.Context) {
	err := h.service.DeleteDocument(c.Request.Context(), c.Param("id"), c.Param("filename"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true}, nil)
}

func matchesFreeText(e EmployeeResponse, q string) bool {
	for _, field := range []string{e.GeneralNumber, e.NameAr, e.NameEn, e.NationalID, e.Phone} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

func filterBy(in []EmployeeResponse, keep func(EmployeeResponse) bool) []EmployeeResponse {
	out := make([]EmployeeResponse, 0, len(in))
	for _, e := range in {
		if keep(e) {
			out = append(out, e)
		}
	}
	return out
}
