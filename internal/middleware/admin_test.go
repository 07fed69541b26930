package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"catalog-service/internal/auth"
)

const testSecret = "middleware-test-secret"

func newGuardedRouter(secret string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/guarded", AdminAuth(secret), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func TestAdminAuthAcceptsHeaderToken(t *testing.T) {
	router := newGuardedRouter(testSecret)

	token, err := auth.IssueAdminToken(testSecret, time.Hour)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/guarded", nil)
	req.Header.Set("x-admin-token", token)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", recorder.Code)
	}
}

func TestAdminAuthAcceptsQueryToken(t *testing.T) {
	router := newGuardedRouter(testSecret)

	token, err := auth.IssueAdminToken(testSecret, time.Hour)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/guarded?adminToken="+token, nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", recorder.Code)
	}
}

func TestAdminAuthRejectsMissingToken(t *testing.T) {
	router := newGuardedRouter(testSecret)

	req := httptest.NewRequest(http.MethodPost, "/guarded", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", recorder.Code)
	}
}

func TestAdminAuthRejectsExpiredToken(t *testing.T) {
	router := newGuardedRouter(testSecret)

	token, err := auth.IssueAdminToken(testSecret, -time.Minute)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/guarded", nil)
	req.Header.Set("x-admin-token", token)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for expired token, got %d", recorder.Code)
	}
}

func TestAdminAuthFailsClosedWhenUnconfigured(t *testing.T) {
	router := newGuardedRouter("")

	req := httptest.NewRequest(http.MethodPost, "/guarded", nil)
	req.Header.Set("x-admin-token", "anything")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 when unconfigured, got %d", recorder.Code)
	}
}
