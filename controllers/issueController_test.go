package controllers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCreatePayload() gin.H {
	return gin.H{
		"title":       "Burst water main",
		"description": "Water running down the street since Monday",
		"category":    "Water & Sanitation",
		"province":    "Western Cape",
		"ward":        "Ward 2",
		"imageUrl":    "https://example.com/burst.jpg",
		"latitude":    -33.9,
		"longitude":   18.4,
	}
}

func TestCreateIssue_RequiresAuth(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/api/issue/create", validCreatePayload(), nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateIssue_Success(t *testing.T) {
	r, _ := newTestServer(t)
	cookie := loginCookie(t, r, "john@ward.co.za")

	w := doJSON(t, r, http.MethodPost, "/api/issue/create", validCreatePayload(), cookie)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	body := decodeBody(t, w)
	assert.Equal(t, "Reported", body["status"])
	assert.Equal(t, float64(0), body["likeCount"])
	reporter, ok := body["reporter"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "1", reporter["id"])
	assert.Equal(t, "John Citizen", reporter["fullName"])
}

func TestCreateIssue_RejectsBadEnum(t *testing.T) {
	r, _ := newTestServer(t)
	cookie := loginCookie(t, r, "john@ward.co.za")

	payload := validCreatePayload()
	payload["category"] = "Graffiti"
	w := doJSON(t, r, http.MethodPost, "/api/issue/create", payload, cookie)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	payload = validCreatePayload()
	payload["province"] = "Atlantis"
	w = doJSON(t, r, http.MethodPost, "/api/issue/create", payload, cookie)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListIssues_PublicAndFiltered(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodGet, "/api/issue/", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, float64(3), body["totalIssues"])

	w = doJSON(t, r, http.MethodGet, "/api/issue/?category=Infrastructure", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body = decodeBody(t, w)
	assert.Equal(t, float64(1), body["totalIssues"])

	// "all" means no constraint, matching the client's filter selects.
	w = doJSON(t, r, http.MethodGet, "/api/issue/?category=all&status=all", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body = decodeBody(t, w)
	assert.Equal(t, float64(3), body["totalIssues"])

	w = doJSON(t, r, http.MethodGet, "/api/issue/?ward=Ward+5&status=Fixed", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body = decodeBody(t, w)
	assert.Equal(t, float64(1), body["totalIssues"])
}

func TestListIssues_MarksViewerLikes(t *testing.T) {
	r, _ := newTestServer(t)
	cookie := loginCookie(t, r, "john@ward.co.za")

	w := doJSON(t, r, http.MethodGet, "/api/issue/?category=Infrastructure", nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	issues, ok := body["issues"].([]interface{})
	require.True(t, ok)
	require.Len(t, issues, 1)
	issue := issues[0].(map[string]interface{})
	assert.Equal(t, true, issue["userHasLiked"], "seed issue 1 is liked by John")
}

func TestGetIssue(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodGet, "/api/issue/1", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	issue, ok := body["issue"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Pothole on Main Road", issue["title"])

	w = doJSON(t, r, http.MethodGet, "/api/issue/missing", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateStatus_CouncillorScope(t *testing.T) {
	r, _ := newTestServer(t)
	john := loginCookie(t, r, "john@ward.co.za")
	maria := loginCookie(t, r, "maria@council.co.za")

	// Citizens are refused even though the route itself is authenticated.
	w := doJSON(t, r, http.MethodPatch, "/api/issue/1/status", gin.H{"status": "Fixed"}, john)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Maria is Ward 5's councillor; issue 2 is in Ward 3.
	w = doJSON(t, r, http.MethodPatch, "/api/issue/2/status", gin.H{"status": "Fixed"}, maria)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, r, http.MethodPatch, "/api/issue/1/status", gin.H{"status": "In Progress"}, maria)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodPatch, "/api/issue/1/status", gin.H{"status": "Teleported"}, maria)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPatch, "/api/issue/missing/status", gin.H{"status": "Fixed"}, maria)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestToggleLike_RoundTrip(t *testing.T) {
	r, _ := newTestServer(t)
	maria := loginCookie(t, r, "maria@council.co.za")

	w := doJSON(t, r, http.MethodPost, "/api/issue/1/like", nil, maria)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["liked"])
	assert.Equal(t, float64(2), body["likes"])

	w = doJSON(t, r, http.MethodPost, "/api/issue/1/like", nil, maria)
	require.Equal(t, http.StatusOK, w.Code)
	body = decodeBody(t, w)
	assert.Equal(t, false, body["liked"])
	assert.Equal(t, float64(1), body["likes"])
}

func TestAddComment_Flow(t *testing.T) {
	r, _ := newTestServer(t)
	john := loginCookie(t, r, "john@ward.co.za")

	w := doJSON(t, r, http.MethodPost, "/api/issue/1/comments", gin.H{"text": "Still not fixed"}, john)
	require.Equal(t, http.StatusCreated, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Still not fixed", body["text"])
	assert.Equal(t, "1", body["authorId"])

	w = doJSON(t, r, http.MethodGet, "/api/issue/1", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	detail := decodeBody(t, w)
	comments, ok := detail["comments"].([]interface{})
	require.True(t, ok)
	require.Len(t, comments, 1)
	comment := comments[0].(map[string]interface{})
	author := comment["author"].(map[string]interface{})
	assert.Equal(t, "John Citizen", author["fullName"])

	w = doJSON(t, r, http.MethodPost, "/api/issue/missing/comments", gin.H{"text": "hi"}, john)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/issue/1/comments", gin.H{"text": "hi"}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMine(t *testing.T) {
	r, _ := newTestServer(t)
	john := loginCookie(t, r, "john@ward.co.za")

	w := doJSON(t, r, http.MethodGet, "/api/issue/mine", nil, john)
	require.Equal(t, http.StatusOK, w.Code)

	var issues []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &issues))
	assert.Len(t, issues, 2, "seed gives John issues 1 and 2")
}
