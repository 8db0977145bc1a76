package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/umar710/Inventory-Management-Backend/controller"
)

// UserRoutes wires the public auth endpoints behind the rate limiter.
func UserRoutes(router *gin.Engine, uc *controller.UserController, limiter gin.HandlerFunc) {
	auth := router.Group("/api/auth")
	{
		auth.POST("/register", limiter, uc.Register)
		auth.POST("/login", limiter, uc.Login)
		auth.POST("/forgot-password", limiter, uc.ForgotPassword)
		auth.POST("/reset-password", limiter, uc.ResetPassword)
	}
}
