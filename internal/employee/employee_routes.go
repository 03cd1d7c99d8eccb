package employee

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
	employees := r.Group("/employees")

	employees.Use(middleware.AuthMiddleware())

	{
		employees.GET("", authz.Authorize(enforcer, "employee", "read"), h.GetAll)
		employees.POST("", authz.Authorize(enforcer, "employee", "create"), h.Create)
		employees.GET("/:id", authz.Authorize(enforcer, "employee", "read"), h.GetById)
		employees.PUT("/:id", authz.Authorize(enforcer, "employee", "update"), h.Update)
		employees.DELETE("/:id", authz.Authorize(enforcer, "employee", "delete"), h.Delete)

		employees.GET("/:id/documents", authz.Authorize(enforcer, "employee", "read"), h.Documents)
		employees.POST("/:id/documents", authz.Authorize(enforcer, "employee", "update"), h.UploadDocument)
		employees.DELETE("/:id/documents/:filename", authz.Authorize(enforcer, "employee", "update"), h.DeleteDocument)
	}
}
