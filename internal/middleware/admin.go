package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"catalog-service/internal/auth"
	"catalog-service/internal/models"
)

// AdminAuth guards the admin endpoints. The token comes from the
// x-admin-token header or the adminToken query parameter; a missing, invalid
// or expired token rejects the request before any upload processing runs.
func AdminAuth(tokenSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("x-admin-token")
		if token == "" {
			token = c.Query("adminToken")
		}

		if err := auth.VerifyAdminToken(tokenSecret, token); err != nil {
			status := http.StatusUnauthorized
			code := "UNAUTHORIZED"
			if errors.Is(err, auth.ErrNotConfigured) {
				status = http.StatusServiceUnavailable
				code = "ADMIN_NOT_CONFIGURED"
			}
			c.JSON(status, models.ErrorResponse{
				Success: false,
				Error: models.Error{
					Code:    code,
					Message: "Unauthorized",
				},
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
