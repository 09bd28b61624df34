package salary

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
	"go-payroll/internal/shared/query"
	"go-payroll/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("salary.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("salary.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("salary request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// CalculateAndCreate: POST /salaries/calculate_and_create/ dengan employee_id
// berupa business key.
func (h *Handler) CalculateAndCreate(c *gin.Context) {
	var req CalculateAndCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http calculate salary validation failed", zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.CalculateByEmployeeNumber(c.Request.Context(), req.EmployeeID, req.Input())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp)
}

// Calculate: POST /salaries/calculate/:id/ dengan id internal employee.
func (h *Handler) Calculate(c *gin.Context) {
	var req CalculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http calculate salary validation failed", zap.String("id", c.Param("id")), zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.CalculateByEmployeeID(c.Request.Context(), c.Param("id"), req.Input())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp)
}

func (h *Handler) Generate(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http generate salaries validation failed", zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	result, err := h.service.GenerateForAll(c.Request.Context(), req.Input())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, result)
}

func (h *Handler) List(c *gin.Context) {
	q := ParseListQuery(c.Request.URL.Query())
	h.logger.Debug("http list salaries",
		zap.String("search", q.Search),
		zap.Int("page", q.Pagination.Page),
	)

	page, err := h.service.List(c.Request.Context(), q)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, page)
}

func (h *Handler) GetByID(c *gin.Context) {
	resp, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) MarkPaid(c *gin.Context) {
	var req MarkPaidRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.writeServiceError(c, apperror.MapValidationError(err))
			return
		}
	}

	resp, err := h.service.MarkPaid(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) History(c *gin.Context) {
	p := query.ParsePagination(c.Request.URL.Query())
	resp, err := h.service.History(c.Request.Context(), c.Param("id"), p)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) Stats(c *gin.Context) {
	resp, err := h.service.Stats(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) PrintView(c *gin.Context) {
	resp, err := h.service.PrintView(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) Payslip(c *gin.Context) {
	body, filename, err := h.service.RenderPayslip(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Attachment(c, "application/pdf", filename, body)
}

func (h *Handler) Export(c *gin.Context) {
	q := ParseExportQuery(c.Request.URL.Query())
	file, err := h.service.Export(c.Request.Context(), q)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	h.logger.Info("salary export generated",
		zap.String("format", q.Format),
		zap.String("filename", file.Filename),
		zap.Int("bytes", len(file.Body)),
	)
	response.Attachment(c, file.ContentType, file.Filename, file.Body)
}
