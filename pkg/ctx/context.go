// Package ctx gives handlers a single *Context instead of the
// (http.ResponseWriter, *http.Request) pair:
//
//	func (h *MenuController) Show(c *ctx.Context) {
//	    id, ok := c.UUIDParam("id")
//	    ...
//	    c.Success(menu, "")
//	}
//
//	r.Get("/api/menus/{id}", "menus.show", ctx.Wrap(h.Show))
package ctx

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shashiranjanraj/dinehub/pkg/auth"
	"github.com/shashiranjanraj/dinehub/pkg/bind"
	"github.com/shashiranjanraj/dinehub/pkg/logger"
	"github.com/shashiranjanraj/dinehub/pkg/middleware"
	"github.com/shashiranjanraj/dinehub/pkg/orm"
	"github.com/shashiranjanraj/dinehub/pkg/response"
	"github.com/shashiranjanraj/dinehub/pkg/validate"
)

type HandlerFunc func(c *Context)

// Wrap adapts a HandlerFunc to http.HandlerFunc.
func Wrap(h HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := acquire(w, r)
		defer release(c)
		h(c)
	}
}

type Context struct {
	W     http.ResponseWriter
	R     *http.Request
	mu    sync.RWMutex
	store map[string]any
}

var pool = sync.Pool{
	New: func() any { return &Context{store: make(map[string]any)} },
}

func acquire(w http.ResponseWriter, r *http.Request) *Context {
	c := pool.Get().(*Context)
	c.W = w
	c.R = r
	for k := range c.store {
		delete(c.store, k)
	}
	return c
}

func release(c *Context) {
	c.W = nil
	c.R = nil
	pool.Put(c)
}

// Param returns a chi URL parameter.
func (c *Context) Param(key string) string {
	return chi.URLParam(c.R, key)
}

// UUIDParam parses a path parameter as a UUID. A malformed value means the
// resource cannot exist, so callers answer 404.
func (c *Context) UUIDParam(key string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(key))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

func (c *Context) Query(key string) string {
	return c.R.URL.Query().Get(key)
}

// QueryInt reads an integer query value, returning def when absent or
// malformed.
func (c *Context) QueryInt(key string, def int) int {
	n, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return def
	}
	return n
}

// Page reads ?page and ?pageSize, clamped.
func (c *Context) Page() (page, pageSize int) {
	return orm.ClampPage(c.QueryInt("page", 1), c.QueryInt("pageSize", orm.DefaultPageSize))
}

func (c *Context) Context() context.Context { return c.R.Context() }

// Log returns the request-scoped logger.
func (c *Context) Log() *slog.Logger { return logger.WithCtx(c.R.Context()) }

// Claims returns the bearer token claims, or nil on anonymous routes.
func (c *Context) Claims() *auth.Claims {
	claims, _ := middleware.ClaimsFromCtx(c.R)
	return claims
}

// UserID returns the authenticated account id, or "".
func (c *Context) UserID() string {
	id, _ := middleware.UserIDFromCtx(c.R)
	return id
}

func (c *Context) Set(key string, val any) {
	c.mu.Lock()
	c.store[key] = val
	c.mu.Unlock()
}

func (c *Context) Get(key string) (any, bool) {
	c.mu.RLock()
	v, ok := c.store[key]
	c.mu.RUnlock()
	return v, ok
}

// BindJSON decodes and validates the body into dest. On failure it writes
// a 400 and returns false.
//
//	var in CreateMenuInput
//	if !c.BindJSON(&in) {
//	    return
//	}
func (c *Context) BindJSON(dest any) bool {
	errs, err := bind.JSON(c.R, dest)
	if err != nil {
		c.Error(http.StatusBadRequest, err.Error())
		return false
	}
	if validate.HasErrors(errs) {
		c.ValidationError(errs)
		return false
	}
	return true
}

// JSON writes v unwrapped.
func (c *Context) JSON(code int, v any) {
	response.JSON(c.W, code, v)
}

func (c *Context) Success(data any, message string) {
	response.Success(c.W, data, message)
}

func (c *Context) Created(data any, message string) {
	response.Created(c.W, data, message)
}

func (c *Context) Paginated(items any, p orm.Pagination, message string) {
	response.Paginated(c.W, items, p, message)
}

func (c *Context) NoContent() {
	response.NoContent(c.W)
}

func (c *Context) Error(code int, message string) {
	response.Error(c.W, code, message)
}

func (c *Context) ValidationError(errs map[string]string) {
	response.ValidationError(c.W, errs)
}

func (c *Context) Unauthorized(message ...string) {
	c.Error(http.StatusUnauthorized, first(message, "Unauthorized"))
}

func (c *Context) Forbidden(message ...string) {
	c.Error(http.StatusForbidden, first(message, "Forbidden"))
}

func (c *Context) NotFound(message ...string) {
	c.Error(http.StatusNotFound, first(message, "Not found"))
}

func first(msgs []string, def string) string {
	if len(msgs) > 0 && msgs[0] != "" {
		return msgs[0]
	}
	return def
}
