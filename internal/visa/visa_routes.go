package visa

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
	visas := r.Group("/visas")

	visas.Use(middleware.AuthMiddleware())

	{
		visas.GET("", authz.Authorize(enforcer, "visa", "read"), h.GetAll)
		visas.POST("", authz.Authorize(enforcer, "visa", "create"), h.Create)
		visas.GET("/:id", authz.Authorize(enforcer, "visa", "read"), h.GetById)
		visas.PUT("/:id", authz.Authorize(enforcer, "visa", "update"), h.Update)
		visas.DELETE("/:id", authz.Authorize(enforcer, "visa", "delete"), h.Delete)
	}
}
