package timesheet

import (
	"go-timekeep/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	timesheets := r.Group("/timesheets")
	timesheets.Use(middleware.AuthMiddleware())
	{
		timesheets.POST("/clock", h.Clock)
		timesheets.GET("/summary", h.Summary)
	}
}
