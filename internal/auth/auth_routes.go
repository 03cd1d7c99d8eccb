package auth

import (
	"github.com/seyf-eddine19/HRM/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	auth := r.Group("/auth")
	{
		auth.POST("/login", middleware.RateLimitByIP(0.08, 5), handler.Login)
		auth.POST("/refresh", handler.RefreshToken)
		auth.POST("/logout", handler.Logout)
		auth.GET("/me", middleware.AuthMiddleware(), middleware.RateLimitByOperator(2, 5), handler.Me)
		auth.PUT("/credentials", middleware.AuthMiddleware(), middleware.RateLimitByOperator(0.2, 2), handler.ChangeCredentials)
	}
}
