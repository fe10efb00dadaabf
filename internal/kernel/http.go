// Package kernel assembles the HTTP handler: global middleware, API routes,
// the metrics endpoint and static files.
package kernel

import (
	"net/http"

	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/shashiranjanraj/dinein/app/routes"
	"github.com/shashiranjanraj/dinein/config"
	"github.com/shashiranjanraj/dinein/pkg/metrics"
	"github.com/shashiranjanraj/dinein/pkg/middleware"
	"github.com/shashiranjanraj/dinein/pkg/reqid"
	"github.com/shashiranjanraj/dinein/pkg/router"
)

// NewRouter builds the router without serving it. route:list uses it to
// print the route table.
func NewRouter(deps routes.Deps, staticDir string) *router.Router {
	r := router.New()

	// Outermost first: metrics see total latency, Recovery catches panics
	// from everything below it, Logger needs the request id.
	r.Use(metrics.Middleware())
	r.Use(middleware.Recovery)
	r.Use(chimiddleware.RealIP)
	r.Use(reqid.Middleware())
	r.Use(middleware.Logger)
	r.Use(middleware.CORS(config.CORSOrigins()))

	routes.RegisterWeb(r, staticDir)
	routes.RegisterAPI(r, deps)
	return r
}

// NewHTTPKernel returns the application handler.
func NewHTTPKernel(deps routes.Deps, staticDir string) http.Handler {
	return NewRouter(deps, staticDir).Handler()
}
