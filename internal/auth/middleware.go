package auth

import (
	"net/http"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	apperrors "redcross/internal/errors"
)

// ClaimsContextKey is where the bearer middleware stores *Claims.
const ClaimsContextKey = "user"

// Middleware verifies the bearer token of every request it guards. Missing,
// malformed or expired tokens are rejected with 401.
func Middleware(jwtService *JWTService) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey:  ClaimsContextKey,
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			return jwtService.ValidateToken(token)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
				Message: "Not authorized, token missing or invalid",
				Code:    "UNAUTHORIZED",
			})
		},
	})
}

// CurrentClaims returns the claims stored by Middleware.
func CurrentClaims(c echo.Context) (*Claims, bool) {
	claims, ok := c.Get(ClaimsContextKey).(*Claims)
	return claims, ok && claims != nil
}

// RequireRole rejects authenticated callers whose role differs with 403.
// It must run after Middleware.
func RequireRole(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := CurrentClaims(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
					Message: "Not authorized, token missing or invalid",
					Code:    "UNAUTHORIZED",
				})
			}
			if claims.Role != role {
				return echo.NewHTTPError(http.StatusForbidden, apperrors.ErrorResponse{
					Message: "Access denied: " + role + " role required",
					Code:    "FORBIDDEN",
				})
			}
			return next(c)
		}
	}
}
