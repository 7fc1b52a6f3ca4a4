package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bmkabile/fixmyward/models"
	"github.com/bmkabile/fixmyward/store"
)

// DashboardController serves the councillor's ward dashboard.
type DashboardController struct {
	Store *store.Store
}

func NewDashboardController(s *store.Store) *DashboardController {
	return &DashboardController{Store: s}
}

// Overview returns status counters and the top engaged issues for the
// councillor's own ward. Citizens are refused.
func (dc *DashboardController) Overview(c *gin.Context) {
	user, err := dc.Store.GetUserByID(actorID(c))
	if err != nil {
		respondStoreError(c, err)
		return
	}
	if user.Role != models.Councillor {
		c.JSON(http.StatusForbidden, gin.H{"error": "Dashboard is councillor-only"})
		return
	}

	stats := dc.Store.StatsForWard(user.Ward)

	viral := make([]issueSummary, 0, len(stats.Viral))
	ic := IssueController{Store: dc.Store}
	for _, issue := range stats.Viral {
		viral = append(viral, ic.summarize(issue, user.ID))
	}

	c.JSON(http.StatusOK, gin.H{
		"ward":       stats.Ward,
		"total":      stats.Total,
		"fixed":      stats.Fixed,
		"inProgress": stats.InProgress,
		"reported":   stats.Reported,
		"viral":      viral,
	})
}
