package handler

import (
	"net/http"

	"tcgurt/internal/model"
	"tcgurt/internal/service"

	"github.com/gin-gonic/gin"
)

type CardHandler struct {
	service service.CardService
}

func NewCardHandler(service service.CardService) *CardHandler {
	return &CardHandler{service: service}
}

// RegisterRoutes limit 套用在對外部目錄的查詢上，可為 nil
func (h *CardHandler) RegisterRoutes(r *gin.RouterGroup, limit gin.HandlerFunc) {
	handlers := []gin.HandlerFunc{h.GetCards}
	if limit != nil {
		handlers = append([]gin.HandlerFunc{limit}, handlers...)
	}
	r.GET("cards", handlers...)
}

type CardSearchQuery struct {
	Name         string `form:"name" binding:"required,max=100"`
	OnlyStandard bool   `form:"onlyStandard"`
}

func (h *CardHandler) GetCards(c *gin.Context) {
	var query CardSearchQuery
	if err := BindQuery(c, &query); err != nil {
		return
	}
	cards, err := h.service.GetCards(c, model.CardSearchParams{
		Name:         query.Name,
		OnlyStandard: query.OnlyStandard,
	})
	if err != nil {
		handleError(c, err, "GetCards")
		return
	}
	if cards == nil {
		cards = []model.CatalogCard{}
	}
	c.JSON(http.StatusOK, cards)
}
