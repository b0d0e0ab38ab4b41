package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/joshbuilds/portfolio-api/auth"
	"github.com/joshbuilds/portfolio-api/config"
	"github.com/joshbuilds/portfolio-api/database"
	"github.com/joshbuilds/portfolio-api/middleware"
	"github.com/joshbuilds/portfolio-api/store"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testServer struct {
	router *gin.Engine
	files  *database.FilesClient
	gate   *auth.SessionGate
}

// newTestServer wires the same route table as main against a temp data dir.
func newTestServer(t *testing.T) *testServer {
	t.Helper()

	files, err := database.NewFilesClient(t.TempDir())
	require.NoError(t, err)

	analyticsStore, err := store.NewAnalyticsStore(files)
	require.NoError(t, err)
	projectStore, err := store.NewProjectStore(files)
	require.NoError(t, err)
	siteStore, err := store.NewSiteStore(files)
	require.NoError(t, err)

	cfg := &config.Config{AdminPassword: "test-secret"}
	gate := auth.NewSessionGate()

	analyticsHandlers := NewAnalyticsHandlers(analyticsStore)
	authHandlers := NewAuthHandlers(gate, cfg)
	projectHandlers := NewProjectHandlers(projectStore)
	siteHandlers := NewSiteHandlers(siteStore)
	uploadHandlers := NewUploadHandlers(files)

	r := gin.New()
	api := r.Group("/api")
	{
		api.GET("/health", HealthCheck)
		api.POST("/analytics/track", analyticsHandlers.Track)
		api.POST("/auth/login", authHandlers.Login)
		api.GET("/auth/verify", authHandlers.Verify)
		api.POST("/auth/logout", authHandlers.Logout)
		api.GET("/projects", projectHandlers.List)
		api.GET("/projects/:id", projectHandlers.Get)
		api.GET("/site-settings", siteHandlers.Get)

		protected := api.Group("/")
		protected.Use(middleware.RequireAuth(gate))
		{
			protected.GET("/analytics/data", analyticsHandlers.GetData)
			protected.POST("/projects", projectHandlers.Create)
			protected.PUT("/projects/reorder", projectHandlers.Reorder)
			protected.PUT("/projects/:id", projectHandlers.Update)
			protected.DELETE("/projects/:id", projectHandlers.Delete)
			protected.POST("/projects/upload", uploadHandlers.UploadImage)
			protected.PUT("/site-settings", siteHandlers.Update)
			protected.POST("/site-settings/upload", uploadHandlers.UploadImage)
		}
	}

	return &testServer{router: r, files: files, gate: gate}
}

// do performs a JSON request; a non-empty token is attached as the session
// cookie.
func (ts *testServer) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: token})
	}

	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)
	return w
}

// login authenticates with the test password and returns the minted token.
func (ts *testServer) login(t *testing.T) string {
	t.Helper()

	w := ts.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{"password": "test-secret"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success   bool   `json:"success"`
		SessionID string `json:"sessionId"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	require.NotEmpty(t, resp.SessionID)
	return resp.SessionID
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v))
}
