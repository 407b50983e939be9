package site

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/garantico/feedsite/internal/config"
	"github.com/garantico/feedsite/internal/db/models"
)

// noOpViews is a minimal Fiber Views engine used for tests. It writes the
// template name so tests can assert which page was rendered.
type noOpViews struct{}

func (noOpViews) Load() error { return nil }

func (noOpViews) Render(w io.Writer, name string, _ interface{}, _ ...string) error {
	_, _ = io.WriteString(w, name)

	return nil
}

func setupTest(t *testing.T) *fiber.App {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Setting{}, &models.Category{}, &models.Product{},
		&models.NavigationItem{}, &models.PageContent{},
	))

	app := fiber.New(fiber.Config{Views: noOpViews{}})

	var s Service
	require.NoError(t, s.Init(app, &config.Config{}, db))

	return app
}

func get(t *testing.T, app *fiber.App, target, acceptLanguage string) *http.Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, target, nil)
	if acceptLanguage != "" {
		req.Header.Set(fiber.HeaderAcceptLanguage, acceptLanguage)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)

	return resp
}

func TestLocaleRedirects(t *testing.T) {
	app := setupTest(t)

	testCases := []struct {
		name           string
		target         string
		acceptLanguage string
		wantLocation   string
	}{
		{name: "root without header goes to default", target: "/", wantLocation: "/tr"},
		{name: "root honors accept-language", target: "/", acceptLanguage: "ru-RU,ru;q=0.9", wantLocation: "/ru"},
		{name: "root with unsupported language goes to default", target: "/", acceptLanguage: "de-DE", wantLocation: "/tr"},
		{name: "path without locale prefix", target: "/about", wantLocation: "/tr/about"},
		{name: "path without locale prefix honors header", target: "/contact", acceptLanguage: "fa", wantLocation: "/fa/contact"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			resp := get(t, app, tc.target, tc.acceptLanguage)
			defer resp.Body.Close()

			require.Equal(t, http.StatusFound, resp.StatusCode)
			assert.Equal(t, tc.wantLocation, resp.Header.Get("Location"))
		})
	}
}

func TestPagesRender(t *testing.T) {
	app := setupTest(t)

	testCases := []struct {
		name     string
		target   string
		wantBody string
	}{
		{name: "home", target: "/tr", wantBody: "home"},
		{name: "about", target: "/en/about", wantBody: "about"},
		{name: "products", target: "/ru/products", wantBody: "products"},
		{name: "contact", target: "/ar/contact", wantBody: "contact"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			resp := get(t, app, tc.target, "")
			defer resp.Body.Close()

			require.Equal(t, http.StatusOK, resp.StatusCode)
			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			assert.Equal(t, tc.wantBody, string(body))
		})
	}
}

func TestUnknownProductSlugIs404(t *testing.T) {
	app := setupTest(t)

	resp := get(t, app, "/tr/products/no-such-product", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
