package middleware

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// TrimSlashes serves "/extract/" as "/extract". A POST body can't follow a redirect, so the route
// path is rewritten in place instead.
func TrimSlashes(next http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		rctx := chi.RouteContext(r.Context())
		path := r.URL.Path
		if rctx != nil && rctx.RoutePath != "" {
			path = rctx.RoutePath
		}
		if len(path) > 1 && strings.HasSuffix(path, "/") {
			trimmed := strings.TrimRight(path, "/")
			if trimmed == "" {
				trimmed = "/"
			}
			if rctx != nil {
				rctx.RoutePath = trimmed
			}
		}
		next.ServeHTTP(w, r)
	}
	return http.HandlerFunc(fn)
}
