package middleware // declare the middleware package; contains reusable HTTP middleware functions

import (
	"net/http" // HTTP status codes for responses
	"strings"  // string utilities for prefix checking and trimming

	"github.com/labstack/echo/v4" // Echo framework used for defining middleware and handlers

	"github.com/iliyamo/library-reservation/internal/utils"
)

// Context keys under which JWTAuth stores the decoded token for
// downstream middleware and handlers.
const (
	CtxUserID = "user_id"
	CtxClaims = "claims"
)

// JWTAuth returns an Echo middleware that validates a Bearer access token
// and injects the token's subject into the request context.  The provided
// secret must match the one used when issuing tokens.  Verification is a
// strict guard clause: the wrapped handler is never invoked, and no store
// mutation can occur, unless the token verifies first.  Handlers behind
// this middleware can read the caller's identity via `c.Get("user_id")`.
func JWTAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// Read the Authorization header.  A valid header starts with
			// "Bearer " followed by the JWT.  Absence is its own failure
			// mode and gets its own message, matching the login-side
			// distinction between a missing and a bad token.
			auth := c.Request().Header.Get("Authorization")
			if auth == "" {
				c.Logger().Warnf("missing authorization header (middleware::JWTAuth): %s %s", c.Request().Method, c.Path())
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing authorization token"})
			}
			if !strings.HasPrefix(auth, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing bearer token"})
			}
			raw := strings.TrimPrefix(auth, "Bearer ")

			claims, err := utils.ParseAccessToken(secret, raw)
			if err != nil {
				// Expired and invalid tokens both terminate the request
				// with 401; the log line keeps them distinguishable.
				c.Logger().Warnf("token rejected (middleware::JWTAuth): %v", err)
				if err == utils.ErrTokenExpired {
					return c.JSON(http.StatusUnauthorized, echo.Map{"error": "token expired"})
				}
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token"})
			}

			// Store the subject and full claims in the context for the
			// ownership guard and handlers, then forward the request.
			c.Set(CtxUserID, claims.Subject)
			c.Set(CtxClaims, claims)
			return next(c)
		}
	}
}
