package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/exalt/teamboard/internal/core/domain"
	"github.com/exalt/teamboard/internal/core/ports"
)

const principalKey = "auth_principal"

const bearerPrefix = "Bearer "

// Principal is the authenticated identity bound to a request: the resolved
// account plus its role-derived authority.
type Principal struct {
	User      *domain.User
	Authority string
}

// Gate resolves a bearer token into a request-scoped Principal. It never
// rejects a request itself: a missing header, a garbage token, or a subject
// that no longer resolves to a user all fall through unauthenticated, and
// the role gate downstream decides whether that matters for the route.
func Gate(tokens ports.TokenService, users ports.PrincipalLookup) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if !strings.HasPrefix(header, bearerPrefix) {
				return next(c)
			}

			raw := strings.TrimSpace(header[len(bearerPrefix):])
			subject, err := tokens.ExtractSubject(raw)
			if err != nil || subject == "" {
				return next(c)
			}

			if _, bound := PrincipalFrom(c); bound {
				return next(c)
			}

			user, err := users.FindByEmail(c.Request().Context(), subject)
			if err != nil {
				return next(c)
			}

			if tokens.IsValid(raw, user.Email) {
				c.Set(principalKey, &Principal{User: user, Authority: user.Authority()})
			}
			return next(c)
		}
	}
}

// PrincipalFrom retrieves the Principal bound by Gate, if any.
func PrincipalFrom(c echo.Context) (*Principal, bool) {
	p, ok := c.Get(principalKey).(*Principal)
	return p, ok && p != nil
}
