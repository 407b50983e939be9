package auth

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/garantico/feedsite/internal/db/models"
	websess "github.com/garantico/feedsite/internal/web/session"
)

// testStorage is a minimal in-memory implementation of storage.Storage for tests.
type testStorage struct {
	mu   sync.RWMutex
	data map[string][]byte
}

var _ storage.Storage = (*testStorage)(nil)

func (s *testStorage) Get(key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v := s.data[key]
	out := make([]byte, len(v))
	copy(out, v)

	return out, nil
}

func (s *testStorage) Set(key string, val []byte, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	buf := make([]byte, len(val))
	copy(buf, val)
	s.data[key] = buf

	return nil
}

func (s *testStorage) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.data, key)

	return nil
}

func (s *testStorage) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data = make(map[string][]byte)

	return nil
}

func (s *testStorage) Close() error { return nil }

func loginSession(t *testing.T) string {
	t.Helper()

	sessionID, err := websess.GenerateSessionID()
	require.NoError(t, err)

	data := &websess.Data{User: models.User{ID: 1, Username: "admin"}}
	require.NoError(t, data.Write(sessionID, time.Minute))

	return sessionID
}

func newProtectedApp() *fiber.App {
	app := fiber.New()
	app.Use("/admin", Page)
	app.Get("/admin", func(c *fiber.Ctx) error {
		u, ok := CurrentUser(c)
		if !ok {
			return c.SendStatus(fiber.StatusInternalServerError)
		}
		return c.SendString(u.Username)
	})
	app.Get(LoginPath, func(c *fiber.Ctx) error { return c.SendString("login page") })
	app.Get("/admin/logout", func(c *fiber.Ctx) error { return c.SendString("logged out") })

	app.Use("/api/admin", API)
	app.Get("/api/admin/ping", func(c *fiber.Ctx) error { return c.SendString("pong") })

	return app
}

func request(t *testing.T, app *fiber.App, target, sessionID string) *http.Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, target, nil)
	if sessionID != "" {
		req.AddCookie(&http.Cookie{Name: websess.CookieName, Value: sessionID})
	}

	resp, err := app.Test(req)
	require.NoError(t, err)

	return resp
}

func TestPage(t *testing.T) {
	websess.Init(&testStorage{data: make(map[string][]byte)})
	app := newProtectedApp()
	sessionID := loginSession(t)

	testCases := []struct {
		name         string
		target       string
		sessionID    string
		wantStatus   int
		wantLocation string
	}{
		{name: "no session redirects to login", target: "/admin", wantStatus: http.StatusFound, wantLocation: LoginPath},
		{name: "bogus session redirects to login", target: "/admin", sessionID: "nope", wantStatus: http.StatusFound, wantLocation: LoginPath},
		{name: "valid session passes", target: "/admin", sessionID: sessionID, wantStatus: http.StatusOK},
		{name: "login page reachable without session", target: LoginPath, wantStatus: http.StatusOK},
		{name: "logged in user skips login page", target: LoginPath, sessionID: sessionID, wantStatus: http.StatusFound, wantLocation: "/admin"},
		{name: "logout works without session", target: "/admin/logout", wantStatus: http.StatusOK},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			resp := request(t, app, tc.target, tc.sessionID)
			defer resp.Body.Close()

			assert.Equal(t, tc.wantStatus, resp.StatusCode)
			if tc.wantLocation != "" {
				assert.Equal(t, tc.wantLocation, resp.Header.Get("Location"))
			}
		})
	}
}

func TestAPI(t *testing.T) {
	websess.Init(&testStorage{data: make(map[string][]byte)})
	app := newProtectedApp()
	sessionID := loginSession(t)

	resp := request(t, app, "/api/admin/ping", "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = request(t, app, "/api/admin/ping", "invalid")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = request(t, app, "/api/admin/ping", sessionID)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
