package rbac

import (
	"net/http"
	"strings"

	"go-payroll/internal/domain"
	"go-payroll/internal/shared/apperror"
	"go-payroll/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("rbac.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.handler")
	}
	return &Handler{service: service, logger: l}
}

// Enforce checks a single operation for the caller's own role.
func (h *Handler) Enforce(c *gin.Context) {
	var req domain.EnforceRequest
	req.Role = c.GetString("role")

	var body struct {
		Resource string `json:"resource" binding:"required"`
		Action   string `json:"action" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}
	req.Resource = strings.TrimSpace(body.Resource)
	req.Action = strings.TrimSpace(body.Action)

	allowed, err := h.service.Enforce(req)
	if err != nil {
		h.logger.Error("http enforce failed", zap.Error(err))
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, domain.EnforceResponse{Allowed: allowed})
}

func (h *Handler) Permissions(c *gin.Context) {
	role := c.GetString("role")

	perms, err := h.service.PermissionsForRole(role)
	if err != nil {
		h.logger.Error("http list permissions failed", zap.String("role", role), zap.Error(err))
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"role":        role,
		"permissions": perms,
	})
}
