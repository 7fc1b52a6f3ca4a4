package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/bmkabile/fixmyward/controllers"
	"github.com/bmkabile/fixmyward/middlewares"
)

// AuthRoutes sets up the authentication routes
func AuthRoutes(r *gin.Engine, ctrl *controllers.AuthController) {
	auth := r.Group("/api/auth")
	{
		auth.POST("/register", ctrl.Register)
		auth.POST("/login", ctrl.Login)
		auth.POST("/logout", middlewares.AuthMiddleware(), ctrl.Logout)
		auth.GET("/me", middlewares.AuthMiddleware(), ctrl.Me)
	}
}
