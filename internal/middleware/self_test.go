package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/library-reservation/internal/middleware"
	"github.com/iliyamo/library-reservation/internal/utils"
)

// runGuard exercises RequireSelf in isolation with a prepared context:
// the token subject is placed where JWTAuth would have put it and the
// route id parameter is set directly.
func runGuard(t *testing.T, sub, targetID string) (int, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPut, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(targetID)
	if sub != "" {
		c.Set(middleware.CtxUserID, sub)
	}

	reached := false
	h := middleware.RequireSelf()(func(c echo.Context) error {
		reached = true
		return c.NoContent(http.StatusOK)
	})
	if err := h(c); err != nil {
		t.Fatalf("middleware returned error: %v", err)
	}
	return rec.Code, reached
}

func TestRequireSelf_ExactMatchPasses(t *testing.T) {
	code, reached := runGuard(t, "8f14e45f-ea3f-4cbd-9c35-5d4b2a8c0b01", "8f14e45f-ea3f-4cbd-9c35-5d4b2a8c0b01")
	if code != http.StatusOK || !reached {
		t.Errorf("code = %d reached = %v, want 200/true", code, reached)
	}
}

func TestRequireSelf_Mismatches(t *testing.T) {
	cases := []struct {
		name string
		sub  string
		id   string
	}{
		{"different user", "user-a", "user-b"},
		{"case near miss", "User-1", "user-1"},
		{"leading space near miss", " user-1", "user-1"},
		{"trailing space near miss", "user-1", "user-1 "},
		{"empty subject", "", "user-1"},
		{"empty target", "user-1", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, reached := runGuard(t, tc.sub, tc.id)
			if code != http.StatusUnauthorized {
				t.Errorf("code = %d, want 401", code)
			}
			if reached {
				t.Error("handler was reached despite ownership mismatch")
			}
		})
	}
}

// Full-chain check: gate then guard, as the user routes compose them.
func TestRequireSelf_BehindGate(t *testing.T) {
	e := echo.New()
	reached := 0
	e.PUT("/api/users/:id", func(c echo.Context) error {
		reached++
		return c.NoContent(http.StatusOK)
	}, middleware.JWTAuth(testSecret), middleware.RequireSelf())

	tokA, err := utils.NewAccessToken(testSecret, "user-a", 60, time.Now())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	// user A against user B's record: rejected before the handler.
	req := httptest.NewRequest(http.MethodPut, "/api/users/user-b", nil)
	req.Header.Set("Authorization", "Bearer "+tokA)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized || reached != 0 {
		t.Errorf("cross-user: code = %d reached = %d, want 401/0", rec.Code, reached)
	}

	// user A against their own record: proceeds to the handler.
	req = httptest.NewRequest(http.MethodPut, "/api/users/user-a", nil)
	req.Header.Set("Authorization", "Bearer "+tokA)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK || reached != 1 {
		t.Errorf("self: code = %d reached = %d, want 200/1", rec.Code, reached)
	}
}
