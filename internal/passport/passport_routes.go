package passport

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
	passports := r.Group("/passports")

	passports.Use(middleware.AuthMiddleware())

	{
		passports.GET("", authz.Authorize(enforcer, "passport", "read"), h.GetAll)
		passports.POST("", authz.Authorize(enforcer, "passport", "create"), h.Create)
		passports.GET("/:id", authz.Authorize(enforcer, "passport", "read"), h.GetById)
		passports.PUT("/:id", authz.Authorize(enforcer, "passport", "update"), h.Update)
		passports.DELETE("/:id", authz.Authorize(enforcer, "passport", "delete"), h.Delete)
	}
}
