package ctx_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	appctx "github.com/shashiranjanraj/dinein/pkg/ctx"
)

func TestWrapAndJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	appctx.Wrap(func(c *appctx.Context) {
		c.JSON(http.StatusOK, map[string]any{"ok": true})
	})(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("unexpected content type %q", ct)
	}
	if !strings.Contains(rec.Body.String(), `"ok":true`) {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}

func TestMessageAndError(t *testing.T) {
	rec := httptest.NewRecorder()
	appctx.Wrap(func(c *appctx.Context) {
		c.Message(http.StatusNotFound, "Item not found in cart.")
	})(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if got := strings.TrimSpace(rec.Body.String()); got != `{"message":"Item not found in cart."}` {
		t.Errorf("unexpected body: %s", got)
	}

	rec = httptest.NewRecorder()
	appctx.Wrap(func(c *appctx.Context) {
		c.Error(http.StatusUnauthorized, "Invalid email or password.")
	})(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != `{"error":"Invalid email or password."}` {
		t.Errorf("unexpected body: %s", got)
	}
}

func TestString(t *testing.T) {
	rec := httptest.NewRecorder()
	appctx.Wrap(func(c *appctx.Context) {
		c.String(http.StatusOK, "User registered successfully!")
	})(rec, httptest.NewRequest(http.MethodPost, "/", nil))

	if rec.Body.String() != "User registered successfully!" {
		t.Errorf("unexpected body: %q", rec.Body.String())
	}
	if !strings.HasPrefix(rec.Header().Get("Content-Type"), "text/plain") {
		t.Errorf("unexpected content type %q", rec.Header().Get("Content-Type"))
	}
}

func TestParam(t *testing.T) {
	r := chi.NewRouter()
	var got string
	r.Get("/api/cart/{userId}", appctx.Wrap(func(c *appctx.Context) {
		got = c.Param("userId")
		c.JSON(http.StatusOK, nil)
	}))

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/cart/u-42", nil))
	if got != "u-42" {
		t.Errorf("expected u-42, got %q", got)
	}
}

func TestBindForm(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("email=a%40b.co&password=pw"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	appctx.Wrap(func(c *appctx.Context) {
		var in struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := c.Bind(&in); err != nil {
			t.Fatalf("bind: %v", err)
		}
		if in.Email != "a@b.co" || in.Password != "pw" {
			t.Errorf("unexpected input %+v", in)
		}
	})(httptest.NewRecorder(), req)
}

func TestClientIP(t *testing.T) {
	cases := map[string]string{
		"203.0.113.7:52100": "203.0.113.7",
		"[2001:db8::1]:443": "2001:db8::1",
		"203.0.113.9":       "203.0.113.9",
	}
	for remote, want := range cases {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = remote
		appctx.Wrap(func(c *appctx.Context) {
			if ip := c.ClientIP(); ip != want {
				t.Errorf("ClientIP(%q) = %q, want %q", remote, ip, want)
			}
		})(httptest.NewRecorder(), req)
	}
}
