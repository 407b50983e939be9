package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/garantico/feedsite/internal/db/models"
	"github.com/garantico/feedsite/internal/web/handler"
	"github.com/garantico/feedsite/internal/web/session"
)

// LoginPath is where unauthenticated panel requests are redirected.
const LoginPath = "/admin/login"

// localsKey holds the authenticated user in fiber locals.
const localsKey = "CurrentUser"

// current reads the session cookie and returns the logged-in user, nil when
// the request carries no valid session.
func current(c *fiber.Ctx) *models.User {
	sessionID := c.Cookies(session.CookieName)
	if sessionID == "" {
		return nil
	}

	sessData := new(session.Data)
	if err := sessData.Read(sessionID); err != nil {
		return nil
	}

	if sessData.User.ID == 0 {
		return nil
	}

	return &sessData.User
}

// Page protects the server-rendered admin pages. Unauthenticated requests are
// redirected to the login page, a logged-in user hitting the login page is
// sent to the dashboard.
func Page(c *fiber.Ctx) error {
	originalURL := strings.ToLower(c.OriginalURL())

	// logout works without a valid session
	if strings.HasPrefix(originalURL, "/admin/logout") {
		return c.Next()
	}

	isLoginPage := strings.HasPrefix(originalURL, LoginPath)

	user := current(c)
	if user == nil {
		if isLoginPage {
			return c.Next()
		}

		return c.Redirect(LoginPath)
	}

	c.Locals(localsKey, *user)

	if isLoginPage {
		return c.Redirect("/admin")
	}

	return c.Next()
}

// API protects the admin JSON endpoints. Unauthenticated requests get 401.
func API(c *fiber.Ctx) error {
	user := current(c)
	if user == nil {
		return handler.JSONError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	c.Locals(localsKey, *user)

	return c.Next()
}

// CurrentUser returns the authenticated user stored by the middleware.
func CurrentUser(c *fiber.Ctx) (models.User, bool) {
	user, ok := c.Locals(localsKey).(models.User)

	return user, ok
}
