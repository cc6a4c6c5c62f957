package payrate

import (
	"go-timekeep/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rdb *redis.Client) {
	rates := r.Group("/pay-rates")
	rates.Use(middleware.AuthMiddleware(), middleware.ExtractUserID())
	{
		rates.POST("", middleware.Idempotency(rdb), h.Set)
		rates.GET("/current", h.Current)
		rates.GET("/history", h.History)
	}
}
