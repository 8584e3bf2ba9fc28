package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"ecogarden-api/internal/domain/apperror"
	"ecogarden-api/internal/domain/model"
	"ecogarden-api/pkg/msg"
)

const principalKey = "principal"

// TokenParser turns a bearer token into the principal it was issued for
type TokenParser interface {
	Parse(token string) (*model.Principal, error)
}

// Authenticate reads an optional bearer token. Requests without one go through anonymous,
// a present but invalid token is rejected with 401.
func Authenticate(parser TokenParser) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return next(c)
			}

			scheme, token, found := strings.Cut(header, " ")
			if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
				return apperror.Unauthorized(msg.GetMessage("error.invalid-token"))
			}

			principal, err := parser.Parse(strings.TrimSpace(token))
			if err != nil {
				return apperror.Unauthorized(msg.GetMessage("error.invalid-token"))
			}

			c.Set(principalKey, principal)
			return next(c)
		}
	}
}

// RequireRole guards a route: 401 without principal, 403 when the role is missing
func RequireRole(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal := GetPrincipal(c)
			if principal == nil {
				return apperror.Unauthorized(msg.GetMessage("error.unauthorized"))
			}
			if !principal.HasRole(role) {
				return apperror.Forbidden(msg.GetMessage("error.forbidden"))
			}
			return next(c)
		}
	}
}

// GetPrincipal returns the authenticated caller, nil for anonymous requests
func GetPrincipal(c echo.Context) *model.Principal {
	principal, _ := c.Get(principalKey).(*model.Principal)
	return principal
}
