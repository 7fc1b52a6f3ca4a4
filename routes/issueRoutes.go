package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/bmkabile/fixmyward/controllers"
	"github.com/bmkabile/fixmyward/middlewares"
)

// IssueRoutes sets up the issue routes. quota < 1 disables the Redis-backed
// daily report quota.
func IssueRoutes(r *gin.Engine, ctrl *controllers.IssueController, quota int) {
	issue := r.Group("/api/issue")
	{
		create := []gin.HandlerFunc{middlewares.AuthMiddleware()}
		if quota > 0 {
			create = append(create, middlewares.ReportQuota(quota))
		}
		create = append(create, ctrl.Create)
		issue.POST("/create", create...)

		issue.GET("/", middlewares.OptionalAuthMiddleware(), ctrl.List)
		issue.GET("/mine", middlewares.AuthMiddleware(), ctrl.Mine)
		issue.GET("/:id", middlewares.OptionalAuthMiddleware(), ctrl.Get)
		issue.PATCH("/:id/status", middlewares.AuthMiddleware(), ctrl.UpdateStatus)
		issue.POST("/:id/like", middlewares.AuthMiddleware(), ctrl.ToggleLike)
		issue.POST("/:id/comments", middlewares.AuthMiddleware(), ctrl.AddComment)
	}
}
