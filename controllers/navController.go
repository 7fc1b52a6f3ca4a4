package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bmkabile/fixmyward/store"
)

// NavController exposes the session's navigation state: which screen is
// displayed and which issue, if any, is selected for the detail view.
type NavController struct {
	Navigator *store.Navigator
}

func NewNavController(n *store.Navigator) *NavController {
	return &NavController{Navigator: n}
}

// State returns the current screen and selection.
func (nc *NavController) State(c *gin.Context) {
	sess, err := nc.Navigator.State(actorID(c))
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, sess)
}

// Navigate moves the session to a screen; guard violations are rejected
// here, not left to the client.
func (nc *NavController) Navigate(c *gin.Context) {
	var input struct {
		Screen  string `json:"screen" binding:"required"`
		IssueID string `json:"issueId"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	screen, err := store.ParseScreen(input.Screen)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	sess, err := nc.Navigator.Navigate(actorID(c), screen, input.IssueID)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, sess)
}
