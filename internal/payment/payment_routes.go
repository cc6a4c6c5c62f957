package payment

import (
	"go-timekeep/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService middleware.RBACService) {
	payments := r.Group("/payments")
	payments.Use(middleware.AuthMiddleware())
	{
		payments.POST("/payout", h.Payout)
		payments.POST("/mark-paid",
			middleware.RBACAuthorize(rbacService, "payment", "pay"),
			h.MarkPaid,
		)
	}
}
