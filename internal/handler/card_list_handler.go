package handler

import (
	"net/http"

	"tcgurt/internal/model"
	"tcgurt/internal/service"

	"github.com/gin-gonic/gin"
)

type CardListHandler struct {
	service service.CardListService
}

func NewCardListHandler(service service.CardListService) *CardListHandler {
	return &CardListHandler{service: service}
}

func (h *CardListHandler) RegisterRoutes(r *gin.RouterGroup, auth gin.HandlerFunc) {
	r.GET("card-lists/:id", h.FindByID)
	r.POST("card-lists", auth, h.Create)
	r.POST("card-lists/:id/cards", auth, h.AddCard)
}

type CardListURI struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}

type CreateCardListRequest struct {
	Name   *string `json:"name" binding:"omitempty,max=100"`
	Public bool    `json:"public"`
}

// AddCardRequest cardId 為外部卡片目錄的 id
type AddCardRequest struct {
	APIID    string `json:"cardId" binding:"required,max=50"`
	Name     string `json:"name" binding:"max=100"`
	ImageURL string `json:"imageUrl" binding:"omitempty,url,max=256"`
}

func (h *CardListHandler) FindByID(c *gin.Context) {
	var uri CardListURI
	if err := BindUri(c, &uri); err != nil {
		return
	}
	list, err := h.service.FindByID(c, uri.ID)
	if err != nil {
		handleError(c, err, "FindByID")
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *CardListHandler) Create(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	var req CreateCardListRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	created, err := h.service.Create(c, userID, model.CreateCardListParams{
		Name:   req.Name,
		Public: req.Public,
	})
	if err != nil {
		handleError(c, err, "CreateCardList")
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *CardListHandler) AddCard(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	var uri CardListURI
	if err := BindUri(c, &uri); err != nil {
		return
	}
	var req AddCardRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	result, err := h.service.AddCard(c, userID, model.AddCardParams{
		CardListID: uri.ID,
		APIID:      req.APIID,
		Name:       req.Name,
		ImageURL:   req.ImageURL,
	})
	if err != nil {
		handleError(c, err, "AddCard")
		return
	}

	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
	}
	c.JSON(status, result)
}
