package middleware // middleware provides shared request processing for handlers

import (
	"net/http" // http package defines standard HTTP status codes

	"github.com/labstack/echo/v4" // echo provides middleware chaining and context
)

// RequireSelf returns a middleware that enforces that the authenticated
// caller is the user targeted by the route.  It compares the token
// subject stored in context by JWTAuth against the `:id` path parameter
// using exact string equality (no trimming, no case folding) so the
// canonical string forms must match byte for byte.  A mismatch aborts
// the request with 401 before the handler runs.  It assumes JWTAuth ran
// earlier in the chain; if no subject is present the request is treated
// as unauthenticated.
func RequireSelf() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sub, ok := c.Get(CtxUserID).(string)
			if !ok || sub == "" {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing authorization token"})
			}
			if sub != c.Param("id") {
				c.Logger().Warnf("token subject does not match target user (middleware::RequireSelf): sub=%s id=%s", sub, c.Param("id"))
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid user"})
			}
			return next(c)
		}
	}
}
