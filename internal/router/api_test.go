package router

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"civicportal/internal/auth"
	"civicportal/internal/config"
	"civicportal/internal/handler"
	"civicportal/internal/model"
	"civicportal/internal/repository"
	"civicportal/internal/service"
)

type testServer struct {
	echo *echo.Echo
	news repository.NewsRepository
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	cfg := &config.Config{
		SessionSecret: "test-secret",
		SessionTTL:    time.Hour,
	}

	userRepo := repository.NewMemoryUserRepository()
	newsRepo := repository.NewMemoryNewsRepository()
	projectRepo := repository.NewMemoryProjectRepository()
	leaderRepo := repository.NewMemoryLeaderRepository()
	eventRepo := repository.NewMemoryEventRepository()
	feedbackRepo := repository.NewMemoryFeedbackRepository()

	tokenService := auth.NewTokenService(cfg.SessionSecret)
	sessionStore := auth.NewMemorySessionStore()
	authService := service.NewAuthService(userRepo, tokenService, sessionStore, cfg.SessionTTL)

	e := echo.New()
	Register(
		e,
		cfg,
		authService,
		handler.NewAuthHandler(authService),
		handler.NewNewsHandler(newsRepo),
		handler.NewProjectHandler(projectRepo),
		handler.NewLeaderHandler(leaderRepo),
		handler.NewEventHandler(eventRepo),
		handler.NewFeedbackHandler(feedbackRepo),
	)

	return &testServer{echo: e, news: newsRepo}
}

func (s *testServer) request(method, path, body, token string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)
	return rec
}

// registerAndLogin creates an account and returns a live session token.
func (s *testServer) registerAndLogin(t *testing.T, username string) string {
	t.Helper()

	body := fmt.Sprintf(`{"username":%q,"password":"secret123"}`, username)
	rec := s.request(http.MethodPost, "/api/auth/register", body, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = s.request(http.MethodPost, "/api/auth/login", body, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestHealthz(t *testing.T) {
	s := newTestServer(t)

	rec := s.request(http.MethodGet, "/healthz", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthRegisterValidation(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"missing username", `{"password":"secret123"}`, "username"},
		{"short password", `{"username":"wanjiku","password":"abc"}`, "password"},
		{"bad email", `{"username":"wanjiku","password":"secret123","email":"not-an-email"}`, "email"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := s.request(http.MethodPost, "/api/auth/register", tt.body, "")
			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var resp struct {
				Fields []struct {
					Field string `json:"field"`
				} `json:"fields"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			require.NotEmpty(t, resp.Fields)
			assert.Equal(t, tt.field, resp.Fields[0].Field)
		})
	}
}

func TestAuthRegisterConflict(t *testing.T) {
	s := newTestServer(t)

	body := `{"username":"wanjiku","password":"secret123"}`
	rec := s.request(http.MethodPost, "/api/auth/register", body, "")
	require.Equal(t, http.StatusCreated, rec.Code)

	// Password hash must never leak in the response.
	assert.NotContains(t, rec.Body.String(), "password")

	// Same username, different case, still conflicts.
	rec = s.request(http.MethodPost, "/api/auth/register", `{"username":"Wanjiku","password":"secret123"}`, "")
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestAuthLoginInvalidCredentials(t *testing.T) {
	s := newTestServer(t)
	s.registerAndLogin(t, "wanjiku")

	tests := []struct {
		name string
		body string
	}{
		{"wrong password", `{"username":"wanjiku","password":"wrong-pass"}`},
		{"unknown user", `{"username":"nobody","password":"secret123"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := s.request(http.MethodPost, "/api/auth/login", tt.body, "")
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestAuthMeAndLogout(t *testing.T) {
	s := newTestServer(t)
	token := s.registerAndLogin(t, "wanjiku")

	rec := s.request(http.MethodGet, "/api/auth/me", "", token)
	require.Equal(t, http.StatusOK, rec.Code)

	var me model.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &me))
	assert.Equal(t, "wanjiku", me.Username)

	rec = s.request(http.MethodPost, "/api/auth/logout", "", token)
	assert.Equal(t, http.StatusOK, rec.Code)

	// The token is revoked the moment the session record is gone, even
	// though its signature and expiry are still valid.
	rec = s.request(http.MethodGet, "/api/auth/me", "", token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestNewsRequiresSessionForWrites(t *testing.T) {
	s := newTestServer(t)

	body := `{"title":"T","content":"C","summary":"S","category":"General"}`

	rec := s.request(http.MethodPost, "/api/news", body, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = s.request(http.MethodPost, "/api/news", body, "not-a-token")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Nothing was created by the rejected requests.
	items, err := s.news.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestNewsCRUD(t *testing.T) {
	s := newTestServer(t)
	token := s.registerAndLogin(t, "editor")

	// Create
	body := `{"title":"Bursary Open","content":"Details here.","summary":"Apply now.","category":"Education"}`
	rec := s.request(http.MethodPost, "/api/news", body, token)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created model.News
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, 1, created.ID)
	assert.Equal(t, "Bursary Open", created.Title)
	assert.NotZero(t, created.CreatedBy)

	// Public read
	rec = s.request(http.MethodGet, fmt.Sprintf("/api/news/%d", created.ID), "", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	// Partial update leaves the other fields alone
	rec = s.request(http.MethodPut, fmt.Sprintf("/api/news/%d", created.ID), `{"title":"Bursary Extended"}`, token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var updated model.News
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, "Bursary Extended", updated.Title)
	assert.Equal(t, created.Content, updated.Content)
	assert.Equal(t, created.ID, updated.ID)

	// Delete
	rec = s.request(http.MethodDelete, fmt.Sprintf("/api/news/%d", created.ID), "", token)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = s.request(http.MethodDelete, fmt.Sprintf("/api/news/%d", created.ID), "", token)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = s.request(http.MethodGet, fmt.Sprintf("/api/news/%d", created.ID), "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestNewsListNewestFirst(t *testing.T) {
	s := newTestServer(t)
	token := s.registerAndLogin(t, "editor")

	for _, title := range []string{"Oldest", "Newest"} {
		body := fmt.Sprintf(`{"title":%q,"content":"C","summary":"S","category":"General"}`, title)
		rec := s.request(http.MethodPost, "/api/news", body, token)
		require.Equal(t, http.StatusCreated, rec.Code)
		time.Sleep(2 * time.Millisecond)
	}

	rec := s.request(http.MethodGet, "/api/news", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var items []model.News
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.Len(t, items, 2)
	assert.Equal(t, "Newest", items[0].Title)
	assert.Equal(t, "Oldest", items[1].Title)
}

func TestInvalidIDParam(t *testing.T) {
	s := newTestServer(t)

	rec := s.request(http.MethodGet, "/api/news/abc", "", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEventValidation(t *testing.T) {
	s := newTestServer(t)
	token := s.registerAndLogin(t, "editor")

	// Missing eventDate and location
	rec := s.request(http.MethodPost, "/api/events", `{"title":"Forum","description":"D","startTime":"10:00","category":"Meeting"}`, token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.request(http.MethodPost, "/api/events",
		`{"title":"Forum","description":"D","eventDate":"2026-09-10T00:00:00Z","startTime":"10:00","location":"Hall","category":"Meeting"}`,
		token)
	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}

func TestEventsOrderedByDate(t *testing.T) {
	s := newTestServer(t)
	token := s.registerAndLogin(t, "editor")

	// Created out of chronological order.
	for _, e := range []struct {
		title string
		date  string
	}{
		{"Later", "2026-10-01T00:00:00Z"},
		{"Sooner", "2026-09-01T00:00:00Z"},
	} {
		body := fmt.Sprintf(`{"title":%q,"description":"D","eventDate":%q,"startTime":"10:00","location":"Hall","category":"Meeting"}`, e.title, e.date)
		rec := s.request(http.MethodPost, "/api/events", body, token)
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := s.request(http.MethodGet, "/api/events", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var items []model.Event
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.Len(t, items, 2)
	assert.Equal(t, "Sooner", items[0].Title)
	assert.Equal(t, "Later", items[1].Title)
}

func TestFeedbackFlow(t *testing.T) {
	s := newTestServer(t)

	// Submission is public.
	body := `{"fullName":"John Citizen","email":"john@example.com","topic":"Roads","message":"Potholes on Main Street."}`
	rec := s.request(http.MethodPost, "/api/feedback", body, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created model.Feedback
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.False(t, created.IsResolved)

	// Reading requires a session.
	rec = s.request(http.MethodGet, "/api/feedback", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	token := s.registerAndLogin(t, "staff")

	rec = s.request(http.MethodGet, "/api/feedback", "", token)
	require.Equal(t, http.StatusOK, rec.Code)

	var items []model.Feedback
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.Len(t, items, 1)

	// Resolving flips the flag and sticks.
	rec = s.request(http.MethodPut, fmt.Sprintf("/api/feedback/%d/resolve", created.ID), "", token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resolved model.Feedback
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resolved))
	assert.True(t, resolved.IsResolved)

	rec = s.request(http.MethodDelete, fmt.Sprintf("/api/feedback/%d", created.ID), "", token)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestFeedbackValidation(t *testing.T) {
	s := newTestServer(t)

	rec := s.request(http.MethodPost, "/api/feedback", `{"fullName":"John","email":"not-an-email","topic":"T","message":"M"}`, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLeaderCRUD(t *testing.T) {
	s := newTestServer(t)
	token := s.registerAndLogin(t, "editor")

	rec := s.request(http.MethodPost, "/api/leaders", `{"fullName":"Hon. Sarah Mwangi","position":"Member of Parliament"}`, token)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created model.Leader
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	rec = s.request(http.MethodGet, "/api/leaders", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = s.request(http.MethodPut, fmt.Sprintf("/api/leaders/%d", created.ID), `{"position":"Senator"}`, token)
	require.Equal(t, http.StatusOK, rec.Code)

	var updated model.Leader
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, "Senator", updated.Position)
	assert.Equal(t, "Hon. Sarah Mwangi", updated.FullName)

	rec = s.request(http.MethodDelete, fmt.Sprintf("/api/leaders/%d", created.ID), "", token)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestProjectCRUD(t *testing.T) {
	s := newTestServer(t)
	token := s.registerAndLogin(t, "editor")

	rec := s.request(http.MethodPost, "/api/projects",
		`{"title":"Water Supply","description":"Borehole and piping.","status":"In Progress","startDate":"2026-01-15T00:00:00Z","completionPercentage":40}`,
		token)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created model.Project
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, 40, created.CompletionPercentage)

	pct := `{"completionPercentage":65}`
	rec = s.request(http.MethodPut, fmt.Sprintf("/api/projects/%d", created.ID), pct, token)
	require.Equal(t, http.StatusOK, rec.Code)

	var updated model.Project
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, 65, updated.CompletionPercentage)
	assert.Equal(t, "In Progress", updated.Status)

	rec = s.request(http.MethodGet, fmt.Sprintf("/api/projects/%d", created.ID), "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}
