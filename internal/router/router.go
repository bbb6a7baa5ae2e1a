package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/library-reservation/internal/config"
	"github.com/iliyamo/library-reservation/internal/handler"    // import the handlers that implement business logic
	"github.com/iliyamo/library-reservation/internal/middleware" // import middleware for JWT authentication and ownership enforcement
)

// RegisterRoutes wires every endpoint of the service onto the provided
// Echo instance.  The layout mirrors the API contract:
//
//	GET  /                      – health check (public)
//	POST /login                 – credential exchange (public, rate limited)
//	/api/...                    – everything else, behind the JWT gate
//
// Middleware composition is explicit and ordered: the token gate runs
// before any protected handler, and the ownership guard runs after the
// gate on the three user-mutation routes only.  rdb may be nil, in which
// case rate limiting and response caching quietly disable themselves.
func RegisterRoutes(e *echo.Echo, cfg config.Config, rdb *redis.Client,
	a *handler.AuthHandler, b *handler.BookHandler, u *handler.UserHandler, r *handler.ReservationHandler) {

	// Public surface.  The health check is used by load balancers; login
	// is the only route that exchanges credentials for a token, so it is
	// the one route worth rate limiting.
	e.GET("/", handler.Health)
	e.POST("/login", a.Login, middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))

	// Everything under /api requires a valid bearer token.  The gate
	// verifies before forwarding; no handler below runs on a bad token.
	api := e.Group("/api")
	api.Use(middleware.JWTAuth(cfg.JWTSecret))

	// Book catalogue.  The list endpoint is the hottest read in the
	// system and gets the Redis response cache.
	books := api.Group("/books")
	books.GET("", b.GetAll, middleware.ResponseCache(config.LoadCacheConfig(), rdb))
	books.GET("/:id", b.GetOne)
	books.POST("", b.Create)
	books.PUT("/:id", b.Update)
	books.DELETE("/:id", b.Delete)

	// Reservations.
	reservations := api.Group("/reservations")
	reservations.GET("", r.GetAll)
	reservations.GET("/:id", r.GetOne)
	reservations.POST("", r.Create)
	reservations.PUT("/:id", r.Update)
	reservations.DELETE("/:id", r.Delete)

	// Users.  Create has no target id and is open to any authenticated
	// caller; the id-scoped routes require the token subject to match
	// the path id.  No list endpoint is exposed.
	users := api.Group("/users")
	users.POST("", u.Create)
	self := middleware.RequireSelf()
	users.GET("/:id", u.GetOne, self)
	users.PUT("/:id", u.Update, self)
	users.DELETE("/:id", u.Delete, self)
}
