package config

import (
	"time"

	"github.com/garantico/feedsite/internal/logger"
)

// DefaultSessionExpiry is used when no session expiry is configured.
// Mirrors the admin_session cookie lifetime of seven days.
const DefaultSessionExpiry = 7 * 24 * time.Hour

// Session settings.
type Session struct {
	ExpiryTime time.Duration
}

// Config overall data structure.
type Config struct {
	DevMode   bool // enable dev mode for development
	DB        DB
	Log       logger.Log
	Site      Site
	Webserver Webserver
}

// Webserver implement webserver settings.
type Webserver struct {
	Domain       string  // domain name for the webserver
	Port         int     // listening port for the webserver
	ShutDownTime int     // wait time for shutdown
	URL          string  // base url for the webserver
	Session      Session // session settings
}

// Site holds site-wide settings that are not editable through the admin panel.
type Site struct {
	WhatsAppNumber   string // number behind the floating WhatsApp contact button
	UploadDir        string // directory for uploaded hero/logo/product images
	DefaultHeroImage string // served when no hero image has been uploaded yet
}
