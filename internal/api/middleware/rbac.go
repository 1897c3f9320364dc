package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/exalt/teamboard/internal/api/metrics"
	"github.com/exalt/teamboard/internal/core/domain"
)

// RequireRole enforces role-based access control against the Principal
// bound by Gate. Without a principal the request is unauthenticated (401);
// with one whose role is outside the allow-set it is forbidden (403).
// An empty allow-set admits any authenticated principal.
func RequireRole(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, ok := PrincipalFrom(c)
			if !ok {
				metrics.AccessDeniedTotal.WithLabelValues("unauthenticated").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			if len(allowed) == 0 {
				return next(c)
			}
			if _, ok := allowed[principal.User.Role]; !ok {
				metrics.AccessDeniedTotal.WithLabelValues("forbidden").Inc()
				return echo.NewHTTPError(http.StatusForbidden, "insufficient authority")
			}
			return next(c)
		}
	}
}

// RequireAuthenticated admits any request with a bound principal.
func RequireAuthenticated() echo.MiddlewareFunc {
	return RequireRole()
}
