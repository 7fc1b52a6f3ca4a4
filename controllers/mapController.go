package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bmkabile/fixmyward/models"
	"github.com/bmkabile/fixmyward/store"
)

// MapController serves the province → ward drill-down: choropleth counts,
// ward overviews, and ward detail with demographics.
type MapController struct {
	Store *store.Store
}

func NewMapController(s *store.Store) *MapController {
	return &MapController{Store: s}
}

// Provinces returns the national overview: per-province issue counts and
// their severity bucket for coloring.
func (mc *MapController) Provinces(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"provinces": mc.Store.ProvinceCounts(),
	})
}

// ProvinceWards is the first drill-down level: wards with issues in the
// province, each with count and demographics.
func (mc *MapController) ProvinceWards(c *gin.Context) {
	province := c.Param("province")
	if !models.IsValidProvince(province) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Province not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"province": province,
		"wards":    mc.Store.WardsInProvince(province),
	})
}

// Ward is the deepest drill-down level: the ward's issues plus demographic
// figures. Province can be supplied as a query filter.
func (mc *MapController) Ward(c *gin.Context) {
	ward := c.Param("ward")
	if !models.IsValidWard(ward) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Ward not found"})
		return
	}

	detail := mc.Store.WardIssues(c.Query("province"), ward)
	c.JSON(http.StatusOK, detail)
}

// Geometry serves the province outline paths the client renders the
// national map from. Placeholder shapes standing in for a real geospatial
// boundary dataset.
func (mc *MapController) Geometry(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"viewBox":   provinceViewBox,
		"provinces": provincePaths,
	})
}

const provinceViewBox = "0 0 1024 890"

var provincePaths = map[string]string{
	"Western Cape":  "M412 888l-60-44-44-44-68-26-44-40-20-48 24-44 52-24 24-20-32-60-24-44 28-40 40-16 44 4 24 32 60 40 40 20 60z",
	"Northern Cape": "M472 488l-60-40-40-20-24-32-4-44 16-40 40-28 44-24 32 20 44 40 20 32-20 44-32 40-20 32z",
	"Eastern Cape":  "M412 888l40-20 64-60 40-40 60-12 80-60 44-60-20-80-60-60-40-20-60 40-40 20-32 60 20 44 32 40 20-32 20-44 32-40-52 24-24 44 20 48 44 40 68 26 44 44 60 44z",
	"Free State":    "M552 428l-44-40-32-20-44-24-40-28-16-40 20-40 44-20 60-4 40 4 60 20 40 20 24 20 20 40-20 40-40 20-40 20z",
	"KwaZulu-Natal": "M756 608l-44-60-80-60-60-12-40 40-64 60-40 20-40 80 20 60 60 40 80 20 88 12 40-40 40-60z",
	"Gauteng":       "M692 288l-40-20-60-20-40-4-60 4-44 20-20 40 20 40 40 20 40 20 20-40 24-20 40-20 60-20 40 4 20-40z",
	"Mpumalanga":    "M692 288l-20 40-40 4 20 40 40 20-24 20 20 40-20 40-40-20-60 20 40 60 40 60 44 60-20 40 20 20 40-20 40-40 60 20-40 40-20 20-40 20-20 40-20 20-40-20-40-20-40-40-20-40-20-20-40-20z",
	"North West":    "M552 428l20-40 20-40 40-20 60-20 40-4 40-4 20-40-20-40-40-20-60-20-40-20-40-20-20-40 20-40-20-40 4-44 4-20 20-40 40-20z",
	"Limpopo":       "M732 88l-20 40-40 20-40 20-40 20-60 20-40 20-40 20 20 40 20 40 40 4 60-4 40 4 40 20 60 20 40 20 20 40-20-20-20-40-20-60-20z",
}
