// Package ctx wraps a request/response pair for dinein handlers.
//
//	func (h *CartController) List(c *ctx.Context) {
//	    items, err := h.cart.List(c.Context(), c.Param("userId"))
//	    ...
//	    c.JSON(http.StatusOK, items)
//	}
//
//	r.Get("/api/cart/{userId}", "cart.list", ctx.Wrap(h.List))
package ctx

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/shashiranjanraj/dinein/pkg/bind"
)

// HandlerFunc is the context-aware handler signature.
type HandlerFunc func(c *Context)

// Wrap converts a HandlerFunc to a standard http.HandlerFunc.
func Wrap(h HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := acquire(w, r)
		defer release(c)
		h(c)
	}
}

// Context wraps a request/response pair.
type Context struct {
	W http.ResponseWriter
	R *http.Request
}

var pool = sync.Pool{
	New: func() any { return &Context{} },
}

func acquire(w http.ResponseWriter, r *http.Request) *Context {
	c := pool.Get().(*Context)
	c.W = w
	c.R = r
	return c
}

func release(c *Context) {
	c.W = nil
	c.R = nil
	pool.Put(c)
}

// Param returns a URL path parameter (e.g. "/api/cart/{userId}" → c.Param("userId")).
func (c *Context) Param(key string) string {
	return chi.URLParam(c.R, key)
}

// Context returns the underlying request context.
func (c *Context) Context() context.Context { return c.R.Context() }

// ClientIP returns the caller address without its port. The kernel runs
// chi's RealIP first, so RemoteAddr already reflects X-Forwarded-For.
func (c *Context) ClientIP() string {
	host, _, err := net.SplitHostPort(c.R.RemoteAddr)
	if err != nil {
		return c.R.RemoteAddr
	}
	return host
}

// Bind decodes a JSON or form-encoded body into dest without validating it.
func (c *Context) Bind(dest any) error {
	return bind.Decode(c.R, dest)
}

// JSON writes v as JSON with the given status code.
func (c *Context) JSON(code int, v any) {
	c.W.Header().Set("Content-Type", "application/json")
	c.W.WriteHeader(code)
	json.NewEncoder(c.W).Encode(v) //nolint:errcheck
}

// Message writes {"message": msg}.
func (c *Context) Message(code int, msg string) {
	c.JSON(code, map[string]string{"message": msg})
}

// Error writes {"error": msg}.
func (c *Context) Error(code int, msg string) {
	c.JSON(code, map[string]string{"error": msg})
}

// String writes a plain-text response.
func (c *Context) String(code int, format string, args ...any) {
	c.W.Header().Set("Content-Type", "text/plain; charset=utf-8")
	c.W.WriteHeader(code)
	fmt.Fprintf(c.W, format, args...)
}
