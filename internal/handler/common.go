package handler

import (
	"errors"
	"net/http"

	"tcgurt/internal/middleware"
	apperrors "tcgurt/pkg/app_errors"
	"tcgurt/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func BindJson(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindJSON(obj); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return err
	}
	return nil
}

func BindQuery(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindQuery(obj); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return err
	}
	return nil
}

func BindUri(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindUri(obj); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return err
	}
	return nil
}

// callerID RequireAuth 之後一定有值，沒有時視為未登入
func callerID(c *gin.Context) (string, bool) {
	id, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
	}
	return id, ok
}

func optionalString(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

func handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case errors.Is(err, apperrors.ErrInvalidInput):
		log.Warn("Invalid input")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
	case errors.Is(err, apperrors.ErrInvalidStartDate):
		log.Warn("Invalid start date")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid start date"})
	case errors.Is(err, apperrors.ErrStartDateInPast):
		log.Warn("Start date in past")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Start date must be in the future"})
	case errors.Is(err, apperrors.ErrInvalidPrice):
		log.Warn("Invalid price")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
	case errors.Is(err, apperrors.ErrOrganizerRequired):
		log.Warn("Organizer required")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Organizer is required"})
	case errors.Is(err, apperrors.ErrUnauthenticated):
		log.Info("Unauthenticated")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
	case errors.Is(err, apperrors.ErrNotOrganizer):
		log.Warn("Caller is not an organizer")
		c.JSON(http.StatusForbidden, gin.H{"error": "Only organizers can create events"})
	case errors.Is(err, apperrors.ErrNotCardListOwner):
		log.Warn("Caller does not own card list")
		c.JSON(http.StatusForbidden, gin.H{"error": "Card list belongs to another user"})
	case errors.Is(err, apperrors.ErrCardListNotFound):
		log.Warn("Card list not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Card list not found"})
	case errors.Is(err, apperrors.ErrIdentityUpstream), errors.Is(err, apperrors.ErrInvalidProfile):
		log.Error("Identity provider failure")
		c.JSON(http.StatusBadGateway, gin.H{"error": "Identity provider unavailable"})
	case errors.Is(err, apperrors.ErrCatalogUpstream):
		log.Error("Card catalog failure")
		c.JSON(http.StatusBadGateway, gin.H{"error": "Card catalog unavailable"})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
