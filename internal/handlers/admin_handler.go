package handlers

import (
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"catalog-service/internal/auth"
	"catalog-service/internal/models"
)

type AdminHandler struct {
	password    string
	tokenSecret string
	tokenTTL    time.Duration
	logger      *logrus.Entry
}

func NewAdminHandler(password, tokenSecret string, tokenTTL time.Duration, logger *logrus.Logger) *AdminHandler {
	return &AdminHandler{
		password:    password,
		tokenSecret: tokenSecret,
		tokenTTL:    tokenTTL,
		logger:      logger.WithField("component", "admin"),
	}
}

type loginRequest struct {
	Password string `json:"password" binding:"required"`
}

// Login exchanges the admin password for a short-lived signed token
// POST /api/admin/login
func (h *AdminHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Error: models.Error{
				Code:    "VALIDATION_ERROR",
				Message: "Password is required",
			},
		})
		return
	}

	// Fail closed: without a configured password there is no admin access.
	if h.password == "" || h.tokenSecret == "" {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{
			Success: false,
			Error: models.Error{
				Code:    "ADMIN_NOT_CONFIGURED",
				Message: "Admin access is not configured",
			},
		})
		return
	}

	if subtle.ConstantTimeCompare([]byte(req.Password), []byte(h.password)) != 1 {
		h.logger.WithField("remote", c.ClientIP()).Warn("Failed admin login attempt")
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Success: false,
			Error: models.Error{
				Code:    "UNAUTHORIZED",
				Message: "Invalid password",
			},
		})
		return
	}

	token, err := auth.IssueAdminToken(h.tokenSecret, h.tokenTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Error: models.Error{
				Code:    "TOKEN_ERROR",
				Message: "Failed to issue admin token",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
	})
}
