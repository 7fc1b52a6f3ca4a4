package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/bmkabile/fixmyward/controllers"
	"github.com/bmkabile/fixmyward/routes"
	"github.com/bmkabile/fixmyward/store"
	authUtils "github.com/bmkabile/fixmyward/utils"
)

// newTestServer wires the full route table against a seeded store, with the
// report quota disabled (no Redis in tests).
func newTestServer(t *testing.T) (*gin.Engine, *store.Store) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret-key-for-unit-tests")
	gin.SetMode(gin.TestMode)
	authUtils.RegisterValidators()

	s := store.NewStore(store.DefaultMapThresholds)
	require.NoError(t, store.SeedDemo(s))

	r := gin.New()
	routes.AuthRoutes(r, controllers.NewAuthController(s))
	routes.IssueRoutes(r, controllers.NewIssueController(s), 0)
	routes.MapRoutes(r, controllers.NewMapController(s))
	routes.DashboardRoutes(r, controllers.NewDashboardController(s))
	routes.NavRoutes(r, controllers.NewNavController(store.NewNavigator(s)))
	routes.UserRoutes(r, controllers.NewUserController(s))
	return r, s
}

// doJSON issues a request with an optional JSON body and auth cookie.
func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// loginCookie authenticates one of the seeded demo users and returns the
// auth_token cookie.
func loginCookie(t *testing.T, r *gin.Engine, email string) *http.Cookie {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", gin.H{
		"email":    email,
		"password": "123",
	}, nil)
	require.Equal(t, http.StatusOK, w.Code, "login failed: %s", w.Body.String())

	for _, c := range w.Result().Cookies() {
		if c.Name == "auth_token" {
			return c
		}
	}
	t.Fatal("auth_token cookie not set on login")
	return nil
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}
