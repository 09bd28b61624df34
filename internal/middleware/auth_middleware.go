package middleware

import (
	"errors"
	"net/http"
	"strings"

	"go-payroll/internal/domain"
	"go-payroll/internal/shared/apperror"
	"go-payroll/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenNotFound = apperror.New(apperror.CodeUnauthorized, "Token not found", http.StatusUnauthorized)
	ErrInvalidToken  = apperror.New(apperror.CodeInvalidToken, "Invalid token", http.StatusUnauthorized)
	ErrTokenExpired  = apperror.New(apperror.CodeTokenExpired, "Token has expired", http.StatusUnauthorized)
)

// AuthMiddleware verifies an HS256 token issued by the identity provider
// and exposes user_id and role to later handlers.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !found {
			tokenString = ""
		}

		if tokenString == "" {
			if cookie, err := c.Cookie("access_token"); err == nil {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			response.AbortWithError(c, ErrTokenNotFound)
			return
		}

		claims := jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			return []byte(secret), nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

		if err != nil || !token.Valid {
			errObj := ErrInvalidToken
			if errors.Is(err, jwt.ErrTokenExpired) {
				errObj = ErrTokenExpired
			}
			response.AbortWithError(c, errObj)
			return
		}

		userID, ok := claims["user_id"].(string)
		if !ok || userID == "" {
			response.AbortWithError(c, apperror.New(apperror.CodeInvalidToken, "User ID not found in token", http.StatusUnauthorized))
			return
		}

		role, _ := claims["role"].(string)
		if role == "" {
			role = domain.RoleStaff
		}

		c.Set("user_id", userID)
		c.Set("role", role)

		c.Next()
	}
}

func RoleMiddleware(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole := c.GetString("role")

		for _, role := range allowedRoles {
			if userRole == role {
				c.Next()
				return
			}
		}

		response.AbortWithError(c, apperror.ErrForbidden)
	}
}
