package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/bmkabile/fixmyward/controllers"
	"github.com/bmkabile/fixmyward/middlewares"
)

// UserRoutes sets up the profile routes
func UserRoutes(r *gin.Engine, ctrl *controllers.UserController) {
	user := r.Group("/api/user")
	{
		user.GET("/profile", middlewares.AuthMiddleware(), ctrl.Profile)
	}
}
