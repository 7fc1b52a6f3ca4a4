package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/bmkabile/fixmyward/controllers"
	"github.com/bmkabile/fixmyward/middlewares"
)

// DashboardRoutes sets up the councillor dashboard route
func DashboardRoutes(r *gin.Engine, ctrl *controllers.DashboardController) {
	r.GET("/api/dashboard", middlewares.AuthMiddleware(), ctrl.Overview)
}
