package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/garantico/feedsite/internal/config"
	"github.com/garantico/feedsite/internal/db/controller/user"
	"github.com/garantico/feedsite/internal/db/models"
	"github.com/garantico/feedsite/internal/web/handler"
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

func setupTest(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}))

	websess.Init(&testStorage{data: make(map[string][]byte)})

	app := fiber.New()
	cfg := &config.Config{
		Webserver: config.Webserver{Session: config.Session{ExpiryTime: time.Minute}},
	}

	var s Service
	require.NoError(t, s.Init(app, cfg, db))

	return app, db
}

func postJSON(t *testing.T, app *fiber.App, target, body string, cookies ...*http.Cookie) (*http.Response, handler.Envelope) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)

	var envelope handler.Envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))

	return resp, envelope
}

func sessionCookie(resp *http.Response) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == websess.CookieName {
			return c
		}
	}

	return nil
}

func TestLogin(t *testing.T) {
	app, db := setupTest(t)
	require.NoError(t, user.Upsert(db, "admin", models.HashPassword("secret")))

	testCases := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{name: "success", body: `{"username":"admin","password":"secret"}`, wantStatus: http.StatusOK},
		{name: "wrong password", body: `{"username":"admin","password":"nope"}`, wantStatus: http.StatusUnauthorized},
		{name: "unknown user", body: `{"username":"ghost","password":"secret"}`, wantStatus: http.StatusUnauthorized},
		{name: "empty body", body: `{}`, wantStatus: http.StatusUnauthorized},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			resp, envelope := postJSON(t, app, "/api/auth/login", tc.body)
			defer resp.Body.Close()

			assert.Equal(t, tc.wantStatus, resp.StatusCode)
			if tc.wantStatus != http.StatusOK {
				assert.False(t, envelope.Success)
				// Unknown user and wrong password get the same answer.
				assert.Equal(t, "Invalid username or password", envelope.Message)
				assert.Nil(t, sessionCookie(resp))
				return
			}

			assert.True(t, envelope.Success)
			cookie := sessionCookie(resp)
			require.NotNil(t, cookie)
			assert.NotEmpty(t, cookie.Value)
			assert.True(t, cookie.HttpOnly)
		})
	}
}

func TestMeAndLogout(t *testing.T) {
	app, db := setupTest(t)
	require.NoError(t, user.Upsert(db, "admin", models.HashPassword("secret")))

	resp, _ := postJSON(t, app, "/api/auth/login", `{"username":"admin","password":"secret"}`)
	resp.Body.Close()
	cookie := sessionCookie(resp)
	require.NotNil(t, cookie)

	// me with a valid session
	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.AddCookie(cookie)
	meResp, err := app.Test(req)
	require.NoError(t, err)
	defer meResp.Body.Close()

	var envelope handler.Envelope
	require.NoError(t, json.NewDecoder(meResp.Body).Decode(&envelope))
	assert.Equal(t, http.StatusOK, meResp.StatusCode)

	data, ok := envelope.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "admin", data["username"])

	// logout invalidates the session
	logoutResp, _ := postJSON(t, app, "/api/auth/logout", `{}`, cookie)
	logoutResp.Body.Close()
	assert.Equal(t, http.StatusOK, logoutResp.StatusCode)

	req = httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.AddCookie(cookie)
	meResp, err = app.Test(req)
	require.NoError(t, err)
	defer meResp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, meResp.StatusCode)
}

func TestMeWithoutSession(t *testing.T) {
	app, _ := setupTest(t)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
