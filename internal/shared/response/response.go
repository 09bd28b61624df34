package response

import (
	"fmt"
	"net/http"

	"go-payroll/internal/shared/apperror"

	"github.com/gin-gonic/gin"
)

type ApiEnvelope struct {
	Ok    bool `json:"ok"`
	Data  any  `json:"data,omitempty"`
	Error any  `json:"error,omitempty"`
}

type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details"`
}

func Success(c *gin.Context, status int, data any) {
	c.JSON(status, ApiEnvelope{
		Ok:   true,
		Data: data,
	})
}

func Error(c *gin.Context, status int, errorCode string, message string, details any) {
	c.JSON(status, ApiEnvelope{
		Ok: false,
		Error: ErrorBody{
			Code:    errorCode,
			Message: message,
			Details: details,
		},
	})
}

// AbortWithError writes err through apperror.ToHTTP and stops the chain.
func AbortWithError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
	c.Abort()
}

// Attachment streams a downloadable body.
func Attachment(c *gin.Context, contentType, filename string, body []byte) {
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, contentType, body)
}
