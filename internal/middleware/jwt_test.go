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

const testSecret = "middleware-test-secret-32-chars!!"

// newGateApp wires JWTAuth in front of a handler that counts its
// invocations and echoes the user_id set by the middleware.
func newGateApp(calls *int) *echo.Echo {
	e := echo.New()
	g := e.Group("/api", middleware.JWTAuth(testSecret))
	g.GET("/ping", func(c echo.Context) error {
		*calls++
		uid, _ := c.Get(middleware.CtxUserID).(string)
		return c.String(http.StatusOK, uid)
	})
	return e
}

func doGet(e *echo.Echo, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestJWTAuth_MissingHeader_NeverReachesHandler(t *testing.T) {
	calls := 0
	rec := doGet(newGateApp(&calls), "")
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
	if calls != 0 {
		t.Errorf("handler invoked %d times, want 0", calls)
	}
}

func TestJWTAuth_NonBearerScheme_Returns401(t *testing.T) {
	calls := 0
	rec := doGet(newGateApp(&calls), "Basic dXNlcjpwYXNz")
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
	if calls != 0 {
		t.Errorf("handler invoked %d times, want 0", calls)
	}
}

func TestJWTAuth_InvalidToken_NeverReachesHandler(t *testing.T) {
	calls := 0
	rec := doGet(newGateApp(&calls), "Bearer not.a.jwt")
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
	if calls != 0 {
		t.Errorf("handler invoked %d times, want 0", calls)
	}
}

func TestJWTAuth_WrongSecret_NeverReachesHandler(t *testing.T) {
	tok, err := utils.NewAccessToken("another-secret-of-32-characters!!", "user-1", 60, time.Now())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	calls := 0
	rec := doGet(newGateApp(&calls), "Bearer "+tok)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
	if calls != 0 {
		t.Errorf("handler invoked %d times, want 0", calls)
	}
}

func TestJWTAuth_ExpiredToken_NeverReachesHandler(t *testing.T) {
	tok, err := utils.NewAccessToken(testSecret, "user-1", 60, time.Now().Add(-61*time.Minute))
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	calls := 0
	rec := doGet(newGateApp(&calls), "Bearer "+tok)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
	if calls != 0 {
		t.Errorf("handler invoked %d times, want 0", calls)
	}
}

func TestJWTAuth_ValidToken_ReachesHandlerOnceUnmodified(t *testing.T) {
	tok, err := utils.NewAccessToken(testSecret, "user-1", 60, time.Now())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	calls := 0
	rec := doGet(newGateApp(&calls), "Bearer "+tok)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if calls != 1 {
		t.Errorf("handler invoked %d times, want exactly 1", calls)
	}
	// The gate must forward the handler's response untouched; the body
	// is the subject it injected into context.
	if got := rec.Body.String(); got != "user-1" {
		t.Errorf("body = %q, want %q", got, "user-1")
	}
}
