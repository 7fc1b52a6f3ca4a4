package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bmkabile/fixmyward/models"
	"github.com/bmkabile/fixmyward/store"
)

// IssueController handles reporting, the filtered feed, the detail view,
// status updates, likes, and comments.
type IssueController struct {
	Store *store.Store
}

func NewIssueController(s *store.Store) *IssueController {
	return &IssueController{Store: s}
}

// issueSummary decorates an issue with engagement counts, the viewer's own
// like state, and the reporter's identity.
type issueSummary struct {
	*models.Issue
	LikeCount    int                    `json:"likeCount"`
	CommentCount int                    `json:"commentCount"`
	UserHasLiked bool                   `json:"userHasLiked"`
	Reporter     map[string]interface{} `json:"reporter"`
}

func (ic *IssueController) summarize(issue *models.Issue, viewerID string) issueSummary {
	reporter := map[string]interface{}{
		"id": issue.ReporterID,
	}
	if user, err := ic.Store.GetUserByID(issue.ReporterID); err == nil {
		reporter["fullName"] = user.FullName
		reporter["ward"] = user.Ward
	}

	return issueSummary{
		Issue:        issue,
		LikeCount:    len(issue.Likes),
		CommentCount: len(issue.Comments),
		UserHasLiked: viewerID != "" && issue.LikedBy(viewerID),
		Reporter:     reporter,
	}
}

// Create handles a new report. Requires an active session; the store stamps
// id, reporter, timestamp, and the Reported status.
func (ic *IssueController) Create(c *gin.Context) {
	var input struct {
		Title       string  `json:"title" binding:"required,max=200"`
		Description string  `json:"description" binding:"required,max=1000"`
		Category    string  `json:"category" binding:"required,category"`
		Province    string  `json:"province" binding:"required,province"`
		Ward        string  `json:"ward" binding:"required,ward"`
		ImageURL    string  `json:"imageUrl" binding:"required,url"`
		Latitude    float64 `json:"latitude" binding:"required"`
		Longitude   float64 `json:"longitude" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	issue, err := ic.Store.AddIssue(actorID(c), store.IssueInput{
		Title:       input.Title,
		Description: input.Description,
		Category:    models.IssueCategory(input.Category),
		Province:    input.Province,
		Ward:        input.Ward,
		ImageURL:    input.ImageURL,
		Location:    models.GeoPoint{Lat: input.Latitude, Lng: input.Longitude},
	})
	if err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ic.summarize(issue, actorID(c)))
}

// List serves the home feed: conjunctive optional filters, newest first.
func (ic *IssueController) List(c *gin.Context) {
	filter := store.FeedFilter{
		Category: normalizeFilter(c.Query("category")),
		Ward:     normalizeFilter(c.Query("ward")),
		Status:   normalizeFilter(c.Query("status")),
	}

	viewerID := actorID(c)
	issues := ic.Store.FilterIssues(filter)

	summaries := make([]issueSummary, 0, len(issues))
	for _, issue := range issues {
		summaries = append(summaries, ic.summarize(issue, viewerID))
	}

	c.JSON(http.StatusOK, gin.H{
		"issues":      summaries,
		"totalIssues": len(summaries),
	})
}

// Get retrieves one issue with its full like set and comment thread.
func (ic *IssueController) Get(c *gin.Context) {
	issue, err := ic.Store.GetIssueByID(c.Param("id"))
	if err != nil {
		respondStoreError(c, err)
		return
	}

	summary := ic.summarize(issue, actorID(c))

	comments := make([]gin.H, 0, len(issue.Comments))
	for _, comment := range issue.Comments {
		author := map[string]interface{}{"id": comment.AuthorID}
		if user, err := ic.Store.GetUserByID(comment.AuthorID); err == nil {
			author["fullName"] = user.FullName
		}
		comments = append(comments, gin.H{
			"id":        comment.ID,
			"author":    author,
			"text":      comment.Text,
			"timestamp": comment.Timestamp,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"issue":    summary,
		"comments": comments,
	})
}

// UpdateStatus replaces an issue's status. The store rejects anyone but the
// ward's councillor.
func (ic *IssueController) UpdateStatus(c *gin.Context) {
	var input struct {
		Status string `json:"status" binding:"required,issuestatus"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	issue, err := ic.Store.UpdateIssueStatus(actorID(c), c.Param("id"), models.IssueStatus(input.Status))
	if err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Status updated successfully",
		"issue":   ic.summarize(issue, actorID(c)),
	})
}

// ToggleLike flips the caller's like on an issue.
func (ic *IssueController) ToggleLike(c *gin.Context) {
	liked, likes, err := ic.Store.ToggleLike(actorID(c), c.Param("id"))
	if err != nil {
		respondStoreError(c, err)
		return
	}

	message := "Like removed successfully"
	if liked {
		message = "Like added successfully"
	}
	c.JSON(http.StatusOK, gin.H{
		"message":      message,
		"liked":        liked,
		"likes":        likes,
		"userHasLiked": liked,
	})
}

// AddComment appends a comment to an issue's thread.
func (ic *IssueController) AddComment(c *gin.Context) {
	var input struct {
		Text string `json:"text" binding:"required,max=500"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := ic.Store.AddComment(actorID(c), c.Param("id"), input.Text)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusCreated, comment)
}

// Mine lists the caller's own reports, newest first.
func (ic *IssueController) Mine(c *gin.Context) {
	viewerID := actorID(c)
	issues := ic.Store.IssuesByReporter(viewerID)

	summaries := make([]issueSummary, 0, len(issues))
	for _, issue := range issues {
		summaries = append(summaries, ic.summarize(issue, viewerID))
	}
	c.JSON(http.StatusOK, summaries)
}

// normalizeFilter treats "all" as no constraint, matching the client's
// filter selects.
func normalizeFilter(v string) string {
	if v == "all" {
		return ""
	}
	return v
}
