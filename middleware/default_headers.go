package middleware

import "net/http"

func DefaultHeaders(next http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff") // Disable guessing mime types
		w.Header().Set("Cache-Control", "no-store")         // Results depend on the current date
		w.Header().Set("Referrer-Policy", "no-referrer")
		next.ServeHTTP(w, r)
	}
	return http.HandlerFunc(fn)
}
