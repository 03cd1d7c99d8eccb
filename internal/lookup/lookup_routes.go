package lookup

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
	lookups := r.Group("/lookups/:kind")

	lookups.Use(middleware.AuthMiddleware())

	{
		lookups.GET("", authz.Authorize(enforcer, "lookup", "read"), h.GetAll)
		lookups.POST("", authz.Authorize(enforcer, "lookup", "create"), h.Create)
		lookups.GET("/:id", authz.Authorize(enforcer, "lookup", "read"), h.GetById)
		lookups.PUT("/:id", authz.Authorize(enforcer, "lookup", "update"), h.Update)
		lookups.DELETE("/:id", authz.Authorize(enforcer, "lookup", "delete"), h.Delete)
	}
}
