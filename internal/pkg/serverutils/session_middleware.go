package serverutils

import (
	"net/url"
	"strings"

	"brandscope-be/internal/session"

	"github.com/gofiber/fiber/v2"
)

const (
	loginPath           = "/login"
	signupPath          = "/signup"
	dashboardPath       = "/dashboard"
	protectedPathPrefix = "/dashboard"
)

// NavigationGate is the request-level auth gate. It reads the session
// from the cookie mirror only, so it runs before any view renders and
// without touching the primary store.
//
// Rules: protected paths redirect unauthenticated visitors to the
// login flow, carrying the original path as the return target; the
// login/landing paths redirect authenticated visitors into the
// dashboard. A login request carrying an external SSO token parameter
// always passes through, even over a live session, so the portal can
// overwrite the current credential.
func NavigationGate(cookieName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		path := c.Path()
		s := session.DecodeCookie(c.Cookies(cookieName))

		if strings.HasPrefix(path, protectedPathPrefix) {
			if !s.IsAuthenticated {
				target := loginPath + "?next=" + url.QueryEscape(c.OriginalURL())
				return c.Redirect(target, fiber.StatusFound)
			}
			return c.Next()
		}

		if path == loginPath || path == "/" || path == signupPath {
			// SSO override: re-authentication from the external portal
			// must reach the login flow even with a session in place.
			if path == loginPath && c.Query("token") != "" {
				return c.Next()
			}
			if s.IsAuthenticated {
				return c.Redirect(dashboardPath, fiber.StatusFound)
			}
		}

		return c.Next()
	}
}

// RequireSession guards the gateway's own data routes using the live
// session manager rather than the cookie snapshot.
func RequireSession(sessions *session.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !sessions.IsAuthenticated() {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Missing session"})
		}
		return c.Next()
	}
}

// MirrorSessionCookie keeps the cookie snapshot in sync with the
// primary store after every request that may have changed it.
func MirrorSessionCookie(cookieName string, sessions *session.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()
		c.Cookie(&fiber.Cookie{
			Name:     cookieName,
			Value:    sessions.CookieValue(),
			Path:     "/",
			HTTPOnly: false, // the dashboard JS reads it too
			SameSite: "Lax",
		})
		return err
	}
}
