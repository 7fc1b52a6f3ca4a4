package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bmkabile/fixmyward/store"
)

// UserController serves the profile screen: the user's identity plus their
// own reports.
type UserController struct {
	Store *store.Store
}

func NewUserController(s *store.Store) *UserController {
	return &UserController{Store: s}
}

// Profile returns the caller's profile and reported issues, newest first.
func (uc *UserController) Profile(c *gin.Context) {
	user, err := uc.Store.GetUserByID(actorID(c))
	if err != nil {
		respondStoreError(c, err)
		return
	}

	issues := uc.Store.IssuesByReporter(user.ID)
	ic := IssueController{Store: uc.Store}
	summaries := make([]issueSummary, 0, len(issues))
	for _, issue := range issues {
		summaries = append(summaries, ic.summarize(issue, user.ID))
	}

	c.JSON(http.StatusOK, gin.H{
		"user":   userPayload(user),
		"issues": summaries,
	})
}
