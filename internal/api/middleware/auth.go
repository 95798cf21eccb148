package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/shoplane/storefront-system/internal/core/ports"
)

// SessionCookie is the name of the cookie carrying the signed session token.
const SessionCookie = "auth_token"

// Auth extracts the session token, verifies it, and injects the claim into
// context. The cookie is the primary transport; an Authorization bearer
// header is accepted for non-browser clients. Any verification failure,
// including expiry, is reported as the same 401.
func Auth(verifier ports.TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := tokenFromRequest(c)
			if token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}

			claims := verifier.VerifyToken(token)
			if claims == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired session")
			}

			c.Set("user_id", claims.UserID)
			c.Set("role", string(claims.Role))

			return next(c)
		}
	}
}

func tokenFromRequest(c echo.Context) string {
	if cookie, err := c.Cookie(SessionCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authHeader := c.Request().Header.Get("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
		return parts[1]
	}
	return ""
}
