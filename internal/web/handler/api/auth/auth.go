// Package auth serves the JSON authentication endpoints for the admin panel.
package auth

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/garantico/feedsite/internal/config"
	"github.com/garantico/feedsite/internal/db/controller/user"
	"github.com/garantico/feedsite/internal/web/handler"
	"github.com/garantico/feedsite/internal/web/session"
)

// Service is the auth API handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the auth API handler.
var Handler = Service{}

// Init initializes the auth API handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New("app, cfg or db is nil")
	}

	s.db = db
	s.cfg = cfg

	app.Route("/api/auth", func(router fiber.Router) {
		router.Post("/login", s.Login)
		router.Post("/logout", s.Logout)
		router.Get("/me", s.Me)
	})

	return nil
}

// loginRequest is the login body.
type loginRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

// Login checks credentials and issues a session cookie. Unknown users and
// wrong passwords get the same answer.
func (s *Service) Login(c *fiber.Ctx) error {
	req := new(loginRequest)
	if err := c.BodyParser(req); err != nil {
		return handler.JSONError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	dbUser, err := user.GetByUsername(s.db, req.Username)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) || errors.Is(err, user.ErrUsernameEmpty) {
			return handler.JSONError(c, fiber.StatusUnauthorized, "Invalid username or password")
		}

		log.Error().Err(err).Msg("login lookup failed")
		return handler.JSONError(c, fiber.StatusInternalServerError, "Internal server error")
	}

	if !dbUser.VerifyPassword(req.Password) {
		return handler.JSONError(c, fiber.StatusUnauthorized, "Invalid username or password")
	}

	sessionID, err := session.GenerateSessionID()
	if err != nil {
		log.Error().Err(err).Msg("failed to generate session ID")
		return handler.JSONError(c, fiber.StatusInternalServerError, "Internal server error")
	}

	userSession := &session.Data{User: *dbUser}
	if err = userSession.Write(sessionID, s.cfg.Webserver.Session.ExpiryTime); err != nil {
		log.Error().Err(err).Msg("failed to write session")
		return handler.JSONError(c, fiber.StatusInternalServerError, "Internal server error")
	}

	if err = user.TouchLastLogin(s.db, dbUser.ID); err != nil {
		log.Warn().Err(err).Msg("failed to record last login")
	}

	cookieSettings := &fiber.Cookie{
		Name:     session.CookieName,
		Value:    sessionID,
		MaxAge:   int(s.cfg.Webserver.Session.ExpiryTime.Seconds()),
		Secure:   true,
		HTTPOnly: true,
		SameSite: "Lax",
	}
	if s.cfg.DevMode {
		cookieSettings.Secure = false
	}
	c.Cookie(cookieSettings)

	log.Info().Str("username", dbUser.Username).Msg("admin login")

	return handler.JSONData(c, fiber.Map{"username": dbUser.Username})
}

// Logout deletes the session and clears the cookie.
func (s *Service) Logout(c *fiber.Ctx) error {
	sessionID := c.Cookies(session.CookieName)
	if sessionID != "" {
		if err := session.Store.Storage.Delete(sessionID); err != nil {
			log.Error().Err(err).Msg("failed to delete session")
		}
	}

	c.Cookie(&fiber.Cookie{
		Name:     session.CookieName,
		Value:    "",
		MaxAge:   -1,
		Secure:   true,
		HTTPOnly: true,
		SameSite: "Lax",
	})

	return handler.JSONMessage(c, "Logged out")
}

// Me returns the logged-in user, 401 without a valid session.
func (s *Service) Me(c *fiber.Ctx) error {
	sessionID := c.Cookies(session.CookieName)
	if sessionID == "" {
		return handler.JSONError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	sessData := new(session.Data)
	if err := sessData.Read(sessionID); err != nil || sessData.User.ID == 0 {
		return handler.JSONError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	return handler.JSONData(c, fiber.Map{"username": sessData.User.Username})
}
