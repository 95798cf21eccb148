package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shoplane/storefront-system/internal/core/domain"
)

// RequireRole enforces role-based access control. The response shape is the
// same whether the role is missing or merely wrong, so a probing client
// learns nothing about which check failed.
func RequireRole(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if _, ok := allowed[domain.Role(role)]; !ok {
				return echo.NewHTTPError(http.StatusForbidden, "forbidden")
			}
			return next(c)
		}
	}
}
