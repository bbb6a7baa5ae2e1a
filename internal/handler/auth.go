package handler

import (
	"context"      // provides context with cancellation for DB calls
	"database/sql" // sentinel errors like sql.ErrNoRows
	"net/http"     // HTTP status codes and primitives
	"strings"      // string manipulation utilities
	"time"         // timeouts for DB calls and token issue time

	"github.com/labstack/echo/v4" // Echo framework for HTTP routing

	"github.com/iliyamo/library-reservation/internal/config" // app configuration
	"github.com/iliyamo/library-reservation/internal/model"
	"github.com/iliyamo/library-reservation/internal/utils" // helper functions (hashing, token issuing)
)

// UserStore is the slice of the user repository the auth handler needs:
// a combined lookup by login identifier and password digest.
type UserStore interface {
	FindByCredentials(ctx context.Context, email, digest string) (model.User, error)
}

// AuthHandler bundles dependencies for the login endpoint.  The signing
// secret and token TTL come from the injected Config, established once
// at startup; nothing here reads the environment.
type AuthHandler struct {
	Cfg   config.Config
	Users UserStore
}

func NewAuthHandler(cfg config.Config, u UserStore) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Users: u}
}

// ----- DTOs -----

type loginReq struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

type tokenResp struct {
	Token string `json:"token"`
}

// Login verifies credentials and mints an access token.  The submitted
// password is hashed and the store is queried for a record matching both
// the email and the digest in a single predicate; only an exact match on
// both fields logs in.  A zero-record match and a failed store lookup
// both answer 404; the route deliberately does not reveal which one
// happened.  No session state is created server-side; the token is the
// whole session.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email/password required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.FindByCredentials(ctx, req.Email, utils.HashPassword(req.Password))
	if err != nil {
		if err == sql.ErrNoRows {
			c.Logger().Warnf("unable to login (Auth::Login): user not found")
		} else {
			c.Logger().Warnf("unable to login (Auth::Login): %v", err)
		}
		return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
	}

	token, err := utils.NewAccessToken(h.Cfg.JWTSecret, u.ID, h.Cfg.TokenTTLMin, time.Now())
	if err != nil {
		c.Logger().Errorf("unable to sign token (Auth::Login): %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue token failed"})
	}
	return c.JSON(http.StatusOK, tokenResp{Token: token})
}
