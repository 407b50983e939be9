package login

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

const (
	// Path is the path to the admin login page.
	Path = "/admin/login"
)

// Service is the login handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the login handler.
var Handler = Service{}

// Init initializes the login handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New("app, cfg or db is nil")
	}

	s.db = db
	s.cfg = cfg

	// register routes
	app.Route(Path, func(router fiber.Router) {
		router.Get(handler.RootPath, s.Get)
		router.Post(handler.RootPath, s.Post)
	})

	return nil
}

// Get handles the login page rendering.
func (s *Service) Get(c *fiber.Ctx) error {
	return c.Render("admin/login", fiber.Map{})
}

// Post handles the login form submission.
func (s *Service) Post(c *fiber.Ctx) error {
	form := struct {
		Username string `form:"username"`
		Password string `form:"password"`
	}{}

	if err := c.BodyParser(&form); err != nil {
		return err
	}

	dbUser, err := user.GetByUsername(s.db, form.Username)
	if err != nil {
		if !errors.Is(err, user.ErrUserNotFound) && !errors.Is(err, user.ErrUsernameEmpty) {
			log.Error().Err(err).Msg("login lookup failed")
		}

		return c.Render("admin/login", fiber.Map{
			"Error": "Invalid username or password",
		})
	}

	// check if password matches
	if !dbUser.VerifyPassword(form.Password) {
		return c.Render("admin/login", fiber.Map{
			"Error": "Invalid username or password",
		})
	}

	sessionID, err := session.GenerateSessionID()
	if err != nil {
		log.Error().Err(err).Msg("failed to generate session ID")
		return c.Render("admin/login", fiber.Map{
			"Error": "Internal server error",
		})
	}

	userSession := &session.Data{User: *dbUser}
	if err = userSession.Write(sessionID, s.cfg.Webserver.Session.ExpiryTime); err != nil {
		log.Error().Err(err).Msg("failed to write session")
		return c.Render("admin/login", fiber.Map{
			"Error": "Internal server error",
		})
	}

	if err = user.TouchLastLogin(s.db, dbUser.ID); err != nil {
		log.Warn().Err(err).Msg("failed to record last login")
	}

	// set login cookie
	cookieSettings := &fiber.Cookie{
		Name:     session.CookieName,
		Value:    sessionID,
		MaxAge:   int(s.cfg.Webserver.Session.ExpiryTime.Seconds()),
		Secure:   true,
		HTTPOnly: true,
		SameSite: "Lax", // TODO: make this configurable
	}

	if s.cfg.DevMode {
		cookieSettings.Secure = false
	}

	c.Cookie(cookieSettings)

	return c.Redirect("/admin")
}
