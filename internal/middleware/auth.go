package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const (
	// OwnerIDKey is the context key for the authenticated owner's ID
	OwnerIDKey contextKey = "owner_id"
)

// TokenParser validates a bearer token and returns the owner it belongs to
type TokenParser interface {
	ParseToken(token string) (ownerID int32, err error)
}

// AuthMiddleware provides bearer token validation middleware
type AuthMiddleware struct {
	parser TokenParser
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(parser TokenParser) *AuthMiddleware {
	return &AuthMiddleware{parser: parser}
}

// Authenticate returns an Echo middleware that validates bearer tokens
func (m *AuthMiddleware) Authenticate() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			// Check Bearer prefix
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header format")
			}

			ownerID, err := m.parser.ParseToken(parts[1])
			if err != nil {
				log.Debug().Err(err).Msg("Token validation failed")
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			ctx := context.WithValue(c.Request().Context(), OwnerIDKey, ownerID)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

// GetOwnerID extracts the authenticated owner's ID from the context
func GetOwnerID(c echo.Context) int32 {
	if id, ok := c.Request().Context().Value(OwnerIDKey).(int32); ok {
		return id
	}
	return 0
}
