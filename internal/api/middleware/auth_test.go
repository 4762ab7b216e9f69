package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/electriclarrys/shop-api/internal/token"
)

func testCodec() *token.Codec {
	return token.NewCodec("access-secret", "refresh-secret")
}

func signedToken(t *testing.T, codec *token.Codec, id token.Identity, ttl time.Duration) string {
	t.Helper()
	signed, err := codec.MintAccess(id, ttl)
	if err != nil {
		t.Fatalf("mint access: %v", err)
	}
	return signed
}

func TestAuth_ValidToken(t *testing.T) {
	e := echo.New()
	codec := testCodec()
	signed := signedToken(t, codec, token.Identity{
		UserID: "u1", Username: "larry", IsEmployee: true,
	}, time.Minute)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	mw := Auth(codec, zerolog.Nop())
	handler := mw(func(c echo.Context) error {
		called = true
		if c.Get(CtxUsername) != "larry" {
			t.Fatalf("username not set")
		}
		if c.Get(CtxUserID) != "u1" {
			t.Fatalf("user id not set")
		}
		if isEmployee, _ := c.Get(CtxIsEmployee).(bool); !isEmployee {
			t.Fatalf("employee flag not set")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestAuth_MissingHeader(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Auth(testCodec(), zerolog.Nop())
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuth_MalformedHeader(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Token abc")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Auth(testCodec(), zerolog.Nop())
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

// Cryptographic failures are 403, unlike the 401 for a missing header.
func TestAuth_RejectedToken(t *testing.T) {
	e := echo.New()
	codec := testCodec()

	expired := signedToken(t, codec, token.Identity{Username: "larry"}, -time.Second)
	forged := signedToken(t, token.NewCodec("wrong-secret", "r"), token.Identity{Username: "larry"}, time.Minute)

	for name, tkn := range map[string]string{
		"expired":   expired,
		"forged":    forged,
		"malformed": "not-a-token",
	} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+tkn)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		mw := Auth(codec, zerolog.Nop())
		handler := mw(func(c echo.Context) error {
			t.Fatalf("%s: should not reach next", name)
			return nil
		})

		if err := handler(c); err != nil {
			e.HTTPErrorHandler(err, c)
		}
		if rec.Code != http.StatusForbidden {
			t.Fatalf("%s: expected 403, got %d", name, rec.Code)
		}
	}
}

func TestRequireEmployee(t *testing.T) {
	e := echo.New()

	cases := []struct {
		name       string
		isEmployee bool
		isAdmin    bool
		wantCode   int
	}{
		{"employee", true, false, http.StatusOK},
		{"admin", false, true, http.StatusOK},
		{"customer", false, false, http.StatusUnauthorized},
	}

	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.Set(CtxIsEmployee, tc.isEmployee)
		c.Set(CtxIsAdmin, tc.isAdmin)

		handler := RequireEmployee()(func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		})
		if err := handler(c); err != nil {
			e.HTTPErrorHandler(err, c)
		}
		if rec.Code != tc.wantCode {
			t.Fatalf("%s: expected %d, got %d", tc.name, tc.wantCode, rec.Code)
		}
	}
}

func TestRequireAdmin(t *testing.T) {
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(CtxIsAdmin, false)
	c.Set(CtxIsEmployee, true)

	handler := RequireAdmin()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("employee must not pass admin gate, got %d", rec.Code)
	}
}

func TestRequireSameUserOrAdmin(t *testing.T) {
	e := echo.New()

	cases := []struct {
		name     string
		param    string
		userID   string
		username string
		isAdmin  bool
		wantCode int
	}{
		{"same user by id", "u1", "u1", "larry", false, http.StatusOK},
		{"same user by username", "larry", "u1", "larry", false, http.StatusOK},
		{"admin for anyone", "u2", "u1", "larry", true, http.StatusOK},
		{"other user", "u2", "u1", "larry", false, http.StatusUnauthorized},
	}

	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("id")
		c.SetParamValues(tc.param)
		c.Set(CtxUserID, tc.userID)
		c.Set(CtxUsername, tc.username)
		c.Set(CtxIsAdmin, tc.isAdmin)

		handler := RequireSameUserOrAdmin("id")(func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		})
		if err := handler(c); err != nil {
			e.HTTPErrorHandler(err, c)
		}
		if rec.Code != tc.wantCode {
			t.Fatalf("%s: expected %d, got %d", tc.name, tc.wantCode, rec.Code)
		}
	}
}
