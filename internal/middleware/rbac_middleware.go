package middleware

import (
	"net/http"

	"go-payroll/internal/domain"
	"go-payroll/internal/shared/apperror"
	"go-payroll/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// RBACService adalah interface lokal.
// Apapun package yang punya method Enforce(domain.EnforceRequest) bisa masuk ke sini.
type RBACService interface {
	Enforce(req domain.EnforceRequest) (bool, error)
}

// RBACAuthorize runs the authorization policy before the handler.
func RBACAuthorize(service RBACService, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := c.Get("role")
		if !ok {
			response.AbortWithError(c, apperror.ErrUnauthorized)
			return
		}

		roleStr, _ := role.(string)
		allowed, err := service.Enforce(domain.EnforceRequest{
			Role:     roleStr,
			Resource: resource,
			Action:   action,
		})
		if err != nil {
			response.AbortWithError(c, apperror.Wrap(err, apperror.CodeInternalError, "Authorization check failed", http.StatusInternalServerError))
			return
		}

		if !allowed {
			response.AbortWithError(c, apperror.ErrForbidden.WithDetails(gin.H{
				"required": resource + ":" + action,
			}))
			return
		}
		c.Next()
	}
}
