package handler

import (
	"net/http"

	"tcgurt/internal/model"
	"tcgurt/internal/service"

	"github.com/gin-gonic/gin"
)

type EventHandler struct {
	service service.EventService
}

func NewEventHandler(service service.EventService) *EventHandler {
	return &EventHandler{service: service}
}

func (h *EventHandler) RegisterRoutes(r *gin.RouterGroup, auth gin.HandlerFunc) {
	r.GET("events/future", h.GetFutureEvents)
	r.POST("events", auth, h.Create)
}

// FutureEventsQuery month 為 0-11
type FutureEventsQuery struct {
	Month *int `form:"month" binding:"omitempty,min=0,max=11"`
}

// CreateEventRequest 建立活動請求，organizer/location/fbLink 可省略
type CreateEventRequest struct {
	Name        string       `json:"name" binding:"required,max=100"`
	Description *string      `json:"description" binding:"omitempty,max=256"`
	StartDate   string       `json:"startDate" binding:"required"`
	StartTime   string       `json:"startTime"`
	Price       *model.Price `json:"price" binding:"required"`
	Organizer   string       `json:"organizer" binding:"omitempty,max=50"`
	Location    string       `json:"location" binding:"omitempty,url,max=256"`
	FbLink      string       `json:"fbLink" binding:"omitempty,url,max=256"`
}

func (h *EventHandler) GetFutureEvents(c *gin.Context) {
	var query FutureEventsQuery
	if err := BindQuery(c, &query); err != nil {
		return
	}
	events, err := h.service.GetFutureEvents(c, model.ListEventsFilter{Month: query.Month})
	if err != nil {
		handleError(c, err, "GetFutureEvents")
		return
	}
	if events == nil {
		events = []*model.Event{}
	}
	c.JSON(http.StatusOK, events)
}

func (h *EventHandler) Create(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	var req CreateEventRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	startDate, err := model.ParseStartDate(req.StartDate, req.StartTime)
	if err != nil {
		handleError(c, err, "Create")
		return
	}

	params := model.CreateEventParams{
		Name:        req.Name,
		Description: req.Description,
		StartDate:   startDate,
		Price:       int(*req.Price),
		Organizer:   optionalString(req.Organizer),
		Location:    optionalString(req.Location),
		FbLink:      optionalString(req.FbLink),
	}
	created, err := h.service.Create(c, userID, params)
	if err != nil {
		handleError(c, err, "Create")
		return
	}
	c.JSON(http.StatusCreated, created)
}
