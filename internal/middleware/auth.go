package middleware

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"civicportal/internal/auth"
	apperrors "civicportal/internal/errors"
	"civicportal/internal/logger"
	"civicportal/internal/model"
	"civicportal/internal/service"
)

const currentUserKey = "currentUser"

// SessionToken validates the Bearer token's signature and expiry and leaves
// the parsed token under the "user" context key. Session-store validation
// happens in RequireSession; both run on the secured route group.
func SessionToken(secret string) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(secret),
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.SessionClaims)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			logger.FromEcho(c).Warn("rejected session token", zap.Error(err))
			he := apperrors.MapErrorToHTTP(apperrors.ErrUnauthenticated)
			return c.JSON(http.StatusUnauthorized, he.ToErrorResponse())
		},
	})
}

// RequireSession resolves the token's session against the session store and
// stores the bound user in the request context. Runs after SessionToken.
func RequireSession(authService service.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := c.Get("user").(*jwt.Token)
			if !ok {
				he := apperrors.MapErrorToHTTP(apperrors.ErrUnauthenticated)
				return c.JSON(he.StatusCode, he.ToErrorResponse())
			}
			claims, ok := token.Claims.(*auth.SessionClaims)
			if !ok {
				he := apperrors.MapErrorToHTTP(apperrors.ErrUnauthenticated)
				return c.JSON(he.StatusCode, he.ToErrorResponse())
			}

			user, err := authService.ResolveSession(c.Request().Context(), claims.ID)
			if err != nil {
				logger.FromEcho(c).Warn("session rejected",
					zap.String("session_id", claims.ID),
					zap.Error(err))
				he := apperrors.MapErrorToHTTP(err)
				return c.JSON(he.StatusCode, he.ToErrorResponse())
			}

			c.Set(currentUserKey, user)
			c.Set("sessionID", claims.ID)
			return next(c)
		}
	}
}

// CurrentUser returns the authenticated user stored by RequireSession, or
// nil on routes outside the secured group.
func CurrentUser(c echo.Context) *model.User {
	user, ok := c.Get(currentUserKey).(*model.User)
	if !ok {
		return nil
	}
	return user
}

// SessionID returns the session ID stored by RequireSession.
func SessionID(c echo.Context) string {
	id, ok := c.Get("sessionID").(string)
	if !ok {
		return ""
	}
	return id
}
