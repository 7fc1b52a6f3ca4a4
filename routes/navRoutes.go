package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/bmkabile/fixmyward/controllers"
	"github.com/bmkabile/fixmyward/middlewares"
)

// NavRoutes sets up the navigation state routes
func NavRoutes(r *gin.Engine, ctrl *controllers.NavController) {
	nav := r.Group("/api/nav")
	{
		nav.GET("", middlewares.AuthMiddleware(), ctrl.State)
		nav.POST("", middlewares.AuthMiddleware(), ctrl.Navigate)
	}
}
