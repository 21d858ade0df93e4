// Package router wraps chi with named routes, prefix groups that carry
// their own middleware, and a route table for `dinehub route:list`.
//
//	r := router.New()
//	api := r.Group("/api", middleware.Auth)
//	api.Get("/menus/{id}", "menus.show", ctx.Wrap(menus.Show))
package router

import (
	"fmt"
	"net/http"
	"sort"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/shashiranjanraj/dinehub/pkg/response"
)

type Middleware func(http.Handler) http.Handler

// RouteInfo describes one registered route.
type RouteInfo struct {
	Method string
	Path   string
	Name   string
}

type Router struct {
	mux chi.Router

	mu    sync.RWMutex
	infos []RouteInfo
	names map[string]struct{}
}

// Group registers routes under a shared prefix and middleware chain.
type Group struct {
	router      *Router
	prefix      string
	middlewares []Middleware
}

// New returns a router whose unmatched paths and methods answer with the
// JSON failure envelope.
func New() *Router {
	mux := chi.NewRouter()
	mux.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		response.NotFound(w)
	})
	mux.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		response.Error(w, http.StatusMethodNotAllowed, "Method not allowed")
	})
	return &Router{mux: mux, names: make(map[string]struct{})}
}

func (r *Router) Handler() http.Handler { return r.mux }

// Use appends global middleware. chi requires this before any route.
func (r *Router) Use(middlewares ...Middleware) {
	for _, mw := range middlewares {
		r.mux.Use(mw)
	}
}

func (r *Router) root() *Group { return &Group{router: r, prefix: "/"} }

func (r *Router) Group(prefix string, middlewares ...Middleware) *Group {
	return r.root().Group(prefix, middlewares...)
}

func (r *Router) Get(path, name string, h http.HandlerFunc, mw ...Middleware) {
	r.root().Get(path, name, h, mw...)
}

func (r *Router) Post(path, name string, h http.HandlerFunc, mw ...Middleware) {
	r.root().Post(path, name, h, mw...)
}

func (r *Router) Put(path, name string, h http.HandlerFunc, mw ...Middleware) {
	r.root().Put(path, name, h, mw...)
}

func (r *Router) Delete(path, name string, h http.HandlerFunc, mw ...Middleware) {
	r.root().Delete(path, name, h, mw...)
}

// Static serves the files under dir at prefix, e.g. uploaded images at
// /storage/images/<file>.
func (r *Router) Static(prefix, dir string) {
	prefix = joinPath(prefix)
	r.mux.Handle(prefix+"/*", http.StripPrefix(prefix, http.FileServer(http.Dir(dir))))
	r.record(RouteInfo{Method: http.MethodGet, Path: prefix + "/*"})
}

// Routes lists every registered route sorted by path, then method.
func (r *Router) Routes() []RouteInfo {
	r.mu.RLock()
	out := append([]RouteInfo(nil), r.infos...)
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].Path != out[j].Path {
			return out[i].Path < out[j].Path
		}
		return out[i].Method < out[j].Method
	})
	return out
}

// record panics on a reused route name; that is a wiring bug.
func (r *Router) record(info RouteInfo) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if info.Name != "" {
		if _, dup := r.names[info.Name]; dup {
			panic(fmt.Sprintf("router: route name %q registered twice", info.Name))
		}
		r.names[info.Name] = struct{}{}
	}
	r.infos = append(r.infos, info)
}

func (g *Group) Group(prefix string, middlewares ...Middleware) *Group {
	return &Group{
		router:      g.router,
		prefix:      joinPath(g.prefix, prefix),
		middlewares: append(append([]Middleware(nil), g.middlewares...), middlewares...),
	}
}

func (g *Group) Get(path, name string, h http.HandlerFunc, mw ...Middleware) {
	g.handle(http.MethodGet, path, name, h, mw)
}

func (g *Group) Post(path, name string, h http.HandlerFunc, mw ...Middleware) {
	g.handle(http.MethodPost, path, name, h, mw)
}

func (g *Group) Put(path, name string, h http.HandlerFunc, mw ...Middleware) {
	g.handle(http.MethodPut, path, name, h, mw)
}

func (g *Group) Delete(path, name string, h http.HandlerFunc, mw ...Middleware) {
	g.handle(http.MethodDelete, path, name, h, mw)
}

// handle wraps h in the group's middleware, outermost first, then the
// route's own.
func (g *Group) handle(method, path, name string, h http.HandlerFunc, mw []Middleware) {
	full := joinPath(g.prefix, path)
	chain := append(append([]Middleware(nil), g.middlewares...), mw...)

	var wrapped http.Handler = h
	for i := len(chain) - 1; i >= 0; i-- {
		wrapped = chain[i](wrapped)
	}

	g.router.mux.Method(method, full, wrapped)
	g.router.record(RouteInfo{Method: method, Path: full, Name: name})
}

// joinPath joins segments into "/a/b", ignoring stray slashes.
func joinPath(parts ...string) string {
	var segments []string
	for _, part := range parts {
		if s := strings.Trim(part, "/"); s != "" {
			segments = append(segments, s)
		}
	}
	return "/" + strings.Join(segments, "/")
}
