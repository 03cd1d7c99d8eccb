package expiry

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
	expiry := r.Group("/expiry")

	expiry.Use(middleware.AuthMiddleware())

	{
		expiry.GET("/passports", authz.Authorize(enforcer, "expiry", "read"), h.Passports)
		expiry.GET("/visas", authz.Authorize(enforcer, "expiry", "read"), h.Visas)
	}
}
