package public

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/garantico/feedsite/internal/config"
	"github.com/garantico/feedsite/internal/db/models"
	"github.com/garantico/feedsite/internal/web/handler"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Category{}, &models.Product{}, &models.ProductInquiry{}))

	return db
}

func setupTestApp(t *testing.T, db *gorm.DB) *fiber.App {
	t.Helper()

	app := fiber.New()

	var s Service
	require.NoError(t, s.Init(app, &config.Config{}, db))

	return app
}

func jsonRequest(t *testing.T, app *fiber.App, method, target, body string) (*http.Response, handler.Envelope) {
	t.Helper()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)

	var envelope handler.Envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))

	return resp, envelope
}

func TestProducts_LocalizedListing(t *testing.T) {
	db := setupTestDB(t)
	app := setupTestApp(t, db)

	cat := models.Category{Slug: "fish-meals", NameTr: "Balık Unları", NameEn: "Fish Meals"}
	require.NoError(t, db.Create(&cat).Error)
	require.NoError(t, db.Create(&models.Product{
		Slug: "fish-meal", NameTr: "Balık Unu", NameEn: "Fish Meal",
		CategoryID: &cat.ID, Active: true,
	}).Error)
	require.NoError(t, db.Create(&models.Product{
		Slug: "hidden", NameTr: "Gizli", NameEn: "Hidden", Active: false,
	}).Error)

	testCases := []struct {
		name     string
		target   string
		wantName string
	}{
		{name: "default locale is turkish", target: "/api/products", wantName: "Balık Unu"},
		{name: "english", target: "/api/products?locale=en", wantName: "Fish Meal"},
		{name: "russian falls back to english", target: "/api/products?locale=ru", wantName: "Fish Meal"},
		{name: "unknown locale falls back to turkish", target: "/api/products?locale=xx", wantName: "Balık Unu"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			resp, envelope := jsonRequest(t, app, http.MethodGet, tc.target, "")
			defer resp.Body.Close()

			require.Equal(t, http.StatusOK, resp.StatusCode)
			require.True(t, envelope.Success)

			items, ok := envelope.Data.([]any)
			require.True(t, ok)
			require.Len(t, items, 1)

			item, ok := items[0].(map[string]any)
			require.True(t, ok)
			assert.Equal(t, tc.wantName, item["name"])
		})
	}
}

func TestCategories(t *testing.T) {
	db := setupTestDB(t)
	app := setupTestApp(t, db)

	require.NoError(t, db.Create(&models.Category{Slug: "oils", NameTr: "Yağlar", NameEn: "Oils"}).Error)

	resp, envelope := jsonRequest(t, app, http.MethodGet, "/api/categories?locale=en", "")
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	items, ok := envelope.Data.([]any)
	require.True(t, ok)
	require.Len(t, items, 1)

	item, ok := items[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Oils", item["name"])
}

func TestCreateInquiry(t *testing.T) {
	db := setupTestDB(t)
	app := setupTestApp(t, db)

	body := `{"customerName":"Ali Veli","email":"ali@example.com","phone":"+90 555","quantity":"20 tons","language":"en","status":"completed"}`
	resp, envelope := jsonRequest(t, app, http.MethodPost, "/api/inquiries", body)
	defer resp.Body.Close()

	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.True(t, envelope.Success)

	var stored models.ProductInquiry
	require.NoError(t, db.First(&stored).Error)
	assert.Equal(t, "Ali Veli", stored.CustomerName)
	assert.Equal(t, "en", stored.Language)
	// Client-supplied status is ignored, every inquiry starts as pending.
	assert.Equal(t, models.InquiryStatusPending, stored.Status)
	require.NotNil(t, stored.Phone)
	assert.Equal(t, "+90 555", *stored.Phone)
}

func TestCreateInquiry_Validation(t *testing.T) {
	db := setupTestDB(t)
	app := setupTestApp(t, db)

	testCases := []struct {
		name string
		body string
	}{
		{name: "missing name", body: `{"email":"ali@example.com"}`},
		{name: "missing email", body: `{"customerName":"Ali"}`},
		{name: "bad email", body: `{"customerName":"Ali","email":"not-an-email"}`},
		{name: "malformed json", body: `{"customerName":`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			resp, envelope := jsonRequest(t, app, http.MethodPost, "/api/inquiries", tc.body)
			defer resp.Body.Close()

			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.False(t, envelope.Success)

			var count int64
			require.NoError(t, db.Model(&models.ProductInquiry{}).Count(&count).Error)
			assert.Equal(t, int64(0), count)
		})
	}
}
