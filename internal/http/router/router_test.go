package router

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/ignatzorin/disaster-backend/internal/config"
	"github.com/ignatzorin/disaster-backend/internal/http/handlers"
	"github.com/ignatzorin/disaster-backend/internal/infrastructure/memory"
	"github.com/ignatzorin/disaster-backend/internal/service"
	"github.com/ignatzorin/disaster-backend/internal/usecase/dispatch"
	"github.com/ignatzorin/disaster-backend/internal/validation"
	"github.com/ignatzorin/disaster-backend/internal/ws"
)

func setup(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Env:             "test",
		AllowedOrigins:  []string{"http://localhost:3000"},
		RateLimitLimit:  100,
		RateLimitPeriod: time.Minute,
	}

	registry, err := memory.DefaultRoster(101, 2)
	require.NoError(t, err)
	dispatcher := dispatch.NewDispatcher(registry, memory.NewReportStore())

	tokens := service.NewTokenManager("router-test-secret", time.Hour)
	auth := service.NewAuthService(tokens, bcrypt.MinCost)
	require.NoError(t, auth.Seed(service.SeedInput{
		AdminPassword:    "admin123",
		DefaultPassword:  "1234",
		ReporterAccounts: 1,
		VolunteerIDs:     []string{"v101", "v102"},
	}))

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	hub := ws.NewHub(ctx)
	go hub.Run()

	notifications := service.NewNotificationService(hub, auth, nil)

	return SetupRouter(cfg,
		handlers.NewAuthHandler(auth),
		handlers.NewDisasterHandler(dispatcher, notifications, validation.NewPhotoValidator(1)),
		handlers.NewVolunteerHandler(dispatcher, service.NewLocationService(), notifications),
		handlers.NewWSHandler(hub, tokens),
		handlers.NewHealthHandler(dispatcher),
		tokens,
	)
}

func call(t *testing.T, r http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func login(t *testing.T, r http.Handler, username, password string) string {
	t.Helper()
	w := call(t, r, http.MethodPost, "/api/auth/login", "", map[string]string{"username": username, "password": password})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var res struct {
		Data service.LoginResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	return res.Data.Token.Token
}

func TestRouter_Health(t *testing.T) {
	r := setup(t)
	w := call(t, r, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRouter_LoginFailure(t *testing.T) {
	r := setup(t)
	w := call(t, r, http.MethodPost, "/api/auth/login", "", map[string]string{"username": "admin", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRouter_RolesAreEnforced(t *testing.T) {
	r := setup(t)
	userTok := login(t, r, "user1", "1234")
	adminTok := login(t, r, "admin", "admin123")
	volTok := login(t, r, "v101", "1234")

	assert.Equal(t, http.StatusUnauthorized, call(t, r, http.MethodGet, "/api/disasters", "", nil).Code)

	w := call(t, r, http.MethodPost, "/api/disasters", userTok, map[string]any{"type": "Flood", "report_photo": "p.jpg"})
	require.Equal(t, http.StatusCreated, w.Code)

	assert.Equal(t, http.StatusForbidden,
		call(t, r, http.MethodPost, "/api/disasters/1/assign", userTok, map[string]any{"volunteer_id": "v101"}).Code)
	assert.Equal(t, http.StatusOK,
		call(t, r, http.MethodPost, "/api/disasters/1/assign", adminTok, map[string]any{"volunteer_id": "v101"}).Code)

	assert.Equal(t, http.StatusForbidden,
		call(t, r, http.MethodPost, "/api/disasters/1/updates", userTok, map[string]any{"priority": "Low", "description": "x"}).Code)
	assert.Equal(t, http.StatusCreated,
		call(t, r, http.MethodPost, "/api/disasters/1/updates", volTok, map[string]any{"priority": "Low", "description": "x"}).Code)

	assert.Equal(t, http.StatusBadRequest, call(t, r, http.MethodGet, "/api/disasters/0", userTok, nil).Code)
	assert.Equal(t, http.StatusOK,
		call(t, r, http.MethodPost, "/api/volunteers/me/location", volTok, map[string]any{"lat": 1, "lon": 2, "timestamp": "now"}).Code)
	assert.Equal(t, http.StatusForbidden,
		call(t, r, http.MethodPut, "/api/volunteers/v101/message", volTok, map[string]any{"message": "hi"}).Code)
}

func TestRouter_WSRequiresToken(t *testing.T) {
	r := setup(t)
	assert.Equal(t, http.StatusUnauthorized, call(t, r, http.MethodGet, "/api/ws", "", nil).Code)
	assert.Equal(t, http.StatusUnauthorized, call(t, r, http.MethodGet, "/api/ws?token=bad", "", nil).Code)
}
