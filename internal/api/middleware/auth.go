package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/taskdeck/todo-api/internal/api/metrics"
	"github.com/taskdeck/todo-api/internal/core/domain"
)

// CookieName is the cookie page clients carry their bearer token in.
const CookieName = "access_token"

// IdentityResolver turns a raw bearer token into the caller's identity.
// (nil, nil) means anonymous; an error means the token failed verification.
type IdentityResolver interface {
	Resolve(raw string) (*domain.Identity, error)
}

// Auth resolves the bearer token (Authorization header or access_token
// cookie) and injects the resulting Identity into the context. Anonymous and
// invalid callers are both rejected with 401; the message differs so clients
// can tell a missing credential from a bad one.
func Auth(resolver IdentityResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ident, err := resolver.Resolve(rawToken(c))
			if err != nil {
				metrics.TokenResolutionsTotal.WithLabelValues("invalid").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}
			if ident == nil {
				metrics.TokenResolutionsTotal.WithLabelValues("anonymous").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}

			metrics.TokenResolutionsTotal.WithLabelValues("identity").Inc()
			c.Set("identity", ident)
			return next(c)
		}
	}
}

// PageAuth is the page-rendering variant of Auth: any resolution failure —
// anonymous or invalid — degrades to a redirect to the login page with the
// stale cookie cleared, never a raw error in the browser.
func PageAuth(resolver IdentityResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ident, err := resolver.Resolve(rawToken(c))
			if err != nil || ident == nil {
				return RedirectToLogin(c)
			}

			c.Set("identity", ident)
			return next(c)
		}
	}
}

// RedirectToLogin sends the browser to the login page and expires the
// access_token cookie.
func RedirectToLogin(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:   CookieName,
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	})
	return c.Redirect(http.StatusFound, "/login-page")
}

// rawToken extracts the bearer token from the Authorization header (API
// clients) or the access_token cookie (page clients). Absence is "", which
// the resolver treats as anonymous.
func rawToken(c echo.Context) string {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			return parts[1]
		}
		return authHeader
	}

	cookie, err := c.Cookie(CookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}
