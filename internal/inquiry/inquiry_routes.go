package inquiry

import (
	"go-timekeep/internal/middleware"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService middleware.RBACService) {
	// Public contact form, throttled per source IP
	r.POST("/inquiries", middleware.RateLimitByIP(rate.Limit(1), 5), h.Create)

	admin := r.Group("/inquiries")
	admin.Use(middleware.AuthMiddleware())
	{
		admin.GET("", middleware.RBACAuthorize(rbacService, "inquiry", "read"), h.List)
		admin.GET("/reference/:transactionNo", middleware.RBACAuthorize(rbacService, "inquiry", "read"), h.GetByTransactionNo)
		admin.GET("/:id", middleware.RBACAuthorize(rbacService, "inquiry", "read"), h.GetByID)
		admin.PATCH("/:id/status", middleware.RBACAuthorize(rbacService, "inquiry", "update"), h.UpdateStatus)
		admin.DELETE("/:id", middleware.RBACAuthorize(rbacService, "inquiry", "delete"), h.Delete)
	}
}
