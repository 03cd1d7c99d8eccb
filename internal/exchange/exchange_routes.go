package exchange

import (
	"github.com/seyf-eddine19/HRM/internal/authz"
	"github.com/seyf-eddine19/HRM/internal/middleware"

	"github.com/casbin/casbin/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	h *Handler,
	enforcer *casbin.Enforcer,
	rdb *redis.Client,
) {
	exchange := r.Group("/exchange")

	exchange.Use(middleware.AuthMiddleware())

	{
		exchange.POST("/import",
			authz.Authorize(enforcer, "exchange", "create"),
			middleware.Idempotency(rdb),
			h.Import,
		)
		exchange.GET("/export", authz.Authorize(enforcer, "exchange", "read"), h.Export)
	}
}
