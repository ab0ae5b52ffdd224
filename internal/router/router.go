package router

import (
	"net/http"
	"time"

	"tcgurt/internal/handler"
	"tcgurt/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Options struct {
	AllowedOrigins []string
	Auth           gin.HandlerFunc
	SearchLimit    gin.HandlerFunc
}

type Handlers struct {
	Events    *handler.EventHandler
	CardLists *handler.CardListHandler
	Cards     *handler.CardHandler
}

func New(h Handlers, opts Options) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.AccessLog())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     opts.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID", "Retry-After"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	api := r.Group("/api/v1")
	h.Events.RegisterRoutes(api, opts.Auth)
	h.CardLists.RegisterRoutes(api, opts.Auth)
	h.Cards.RegisterRoutes(api, opts.SearchLimit)
	return r
}
