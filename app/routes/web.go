package routes

import (
	"github.com/shashiranjanraj/dinein/pkg/metrics"
	"github.com/shashiranjanraj/dinein/pkg/router"
)

// RegisterWeb mounts the Prometheus endpoint and serves staticDir for every
// path no API route claims.
func RegisterWeb(r *router.Router, staticDir string) {
	r.Get("/metrics", "metrics", metrics.Handler())
	if staticDir != "" {
		r.Static(staticDir)
	}
}
