package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"tcgurt/internal/handler"
	"tcgurt/internal/model"
	"tcgurt/internal/service/mocks"
	apperrors "tcgurt/pkg/app_errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupCardTestRouter(mockService *mocks.MockCardService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	cardHandler := handler.NewCardHandler(mockService)
	cardHandler.RegisterRoutes(router.Group("/api/v1"), nil)
	return router
}

func TestGetCards(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := mocks.NewMockCardService(t)
		router := setupCardTestRouter(mockService)

		mockService.EXPECT().
			GetCards(mock.Anything, model.CardSearchParams{Name: "pikachu", OnlyStandard: true}).
			Return([]model.CatalogCard{{ID: "sv4pt5-131", Name: "Pikachu"}}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/v1/cards?name=pikachu&onlyStandard=true", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[{"id":"sv4pt5-131","name":"Pikachu","images":{"small":"","large":""}}]`, w.Body.String())
	})

	t.Run("Failed - missing name", func(t *testing.T) {
		mockService := mocks.NewMockCardService(t)
		router := setupCardTestRouter(mockService)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/cards", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "GetCards")
	})

	t.Run("Failed - catalog unavailable", func(t *testing.T) {
		mockService := mocks.NewMockCardService(t)
		router := setupCardTestRouter(mockService)

		mockService.EXPECT().GetCards(mock.Anything, mock.Anything).Return(nil, apperrors.ErrCatalogUpstream).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/v1/cards?name=mew", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadGateway, w.Code)
	})
}
