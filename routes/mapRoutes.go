package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/bmkabile/fixmyward/controllers"
)

// MapRoutes sets up the hotspot map drill-down routes. All public: the map
// shows aggregates, never who reported what.
func MapRoutes(r *gin.Engine, ctrl *controllers.MapController) {
	m := r.Group("/api/map")
	{
		m.GET("/geometry", ctrl.Geometry)
		m.GET("/provinces", ctrl.Provinces)
		m.GET("/provinces/:province/wards", ctrl.ProvinceWards)
		m.GET("/wards/:ward", ctrl.Ward)
	}
}
