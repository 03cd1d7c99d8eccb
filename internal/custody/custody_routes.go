package custody

import (
	"github.com/seyf-eddine19/HRM/internal/authz"
	"github.com/seyf-eddine19/HRM/internal/middleware"

	"github.com/casbin/casbin/v2"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	h *Handler,
	enforcer *casbin.Enforcer,
) {
	custody := r.Group("/custody")

	custody.Use(middleware.AuthMiddleware())

	{
		custody.POST("/deliver", authz.Authorize(enforcer, "custody", "update"), h.Deliver)
		custody.POST("/receive", authz.Authorize(enforcer, "custody", "update"), h.Receive)
		custody.GET("/holdings", authz.Authorize(enforcer, "custody", "read"), h.Holdings)
		custody.GET("/handovers", authz.Authorize(enforcer, "custody", "read"), h.Handovers)
	}
}
