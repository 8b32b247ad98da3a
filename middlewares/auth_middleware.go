package middlewares

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/radipleven/school-gradebook-project/models"
)

// CallerKey is the context key under which the resolved caller is stored.
const CallerKey = "caller"

func extractBearer(c echo.Context) (string, error) {
	h := c.Request().Header.Get("Authorization")
	if h == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, map[string]any{"error": "MISSING_AUTH_HEADER"})
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", echo.NewHTTPError(http.StatusUnauthorized, map[string]any{"error": "INVALID_AUTH_HEADER"})
	}
	return parts[1], nil
}

// RequireAuth verifies the bearer JWT (HS256 only) and resolves the
// subject to a full user row. The signed token replaces the legacy
// client-asserted identity header; a subject that no longer exists in the
// users table is Unauthorized.
func RequireAuth(secret string, db *gorm.DB) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tok, err := extractBearer(c)
			if err != nil {
				return err
			}
			token, err := jwt.Parse(tok, func(t *jwt.Token) (any, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, echo.NewHTTPError(http.StatusUnauthorized, map[string]any{"error": "INVALID_TOKEN_METHOD"})
				}
				return []byte(secret), nil
			})
			if err != nil || !token.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, map[string]any{"error": "INVALID_TOKEN"})
			}
			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, map[string]any{"error": "INVALID_CLAIMS"})
			}
			sub, ok := claims["sub"].(float64)
			if !ok || sub <= 0 {
				return echo.NewHTTPError(http.StatusUnauthorized, map[string]any{"error": "INVALID_CLAIMS"})
			}

			var caller models.User
			if err := db.WithContext(c.Request().Context()).First(&caller, "id = ?", uint(sub)).Error; err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, map[string]any{"error": "UNKNOWN_USER"})
			}
			c.Set(CallerKey, &caller)
			return next(c)
		}
	}
}

// Caller returns the resolved user set by RequireAuth.
func Caller(c echo.Context) *models.User {
	u, _ := c.Get(CallerKey).(*models.User)
	return u
}
