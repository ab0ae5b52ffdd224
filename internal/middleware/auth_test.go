package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	identityMocks "tcgurt/internal/identity/mocks"
	"tcgurt/internal/middleware"
	apperrors "tcgurt/pkg/app_errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupAuthRouter(verifier *identityMocks.MockTokenVerifier) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/me", middleware.RequireAuth(verifier), func(c *gin.Context) {
		id, ok := middleware.CallerID(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.String(http.StatusOK, id)
	})
	return router
}

func TestRequireAuth(t *testing.T) {
	t.Run("Success - bearer header", func(t *testing.T) {
		verifier := identityMocks.NewMockTokenVerifier(t)
		router := setupAuthRouter(verifier)

		verifier.EXPECT().Verify(mock.Anything, "tok-123").Return("user_a", nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer tok-123")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "user_a", w.Body.String())
	})

	t.Run("Success - session cookie", func(t *testing.T) {
		verifier := identityMocks.NewMockTokenVerifier(t)
		router := setupAuthRouter(verifier)

		verifier.EXPECT().Verify(mock.Anything, "cookie-tok").Return("user_b", nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.AddCookie(&http.Cookie{Name: "__session", Value: "cookie-tok"})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "user_b", w.Body.String())
	})

	t.Run("Failed - no token", func(t *testing.T) {
		verifier := identityMocks.NewMockTokenVerifier(t)
		router := setupAuthRouter(verifier)

		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		verifier.AssertNotCalled(t, "Verify")
	})

	t.Run("Failed - token rejected", func(t *testing.T) {
		verifier := identityMocks.NewMockTokenVerifier(t)
		router := setupAuthRouter(verifier)

		verifier.EXPECT().Verify(mock.Anything, "expired").Return("", apperrors.ErrUnauthenticated).Once()

		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer expired")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"error":"Invalid or expired token"}`, w.Body.String())
	})
}
