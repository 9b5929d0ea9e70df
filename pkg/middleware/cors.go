package middleware

import (
	"net/http"
	"strings"
)

var corsAllowedMethods = []string{
	http.MethodGet, http.MethodPost, http.MethodOptions,
}

var corsAllowedHeaders = []string{
	"Accept", "Authorization", "Content-Type",
}

// CORS applies permissive cross-origin headers for browser clients
func CORS() func(http.Handler) http.Handler {
	joinedMethods := strings.Join(corsAllowedMethods, ", ")
	joinedHeaders := strings.Join(corsAllowedHeaders, ", ")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin == "" {
				next.ServeHTTP(w, r)
				return
			}

			header := w.Header()
			header.Set("Vary", "Origin")
			header.Set("Access-Control-Allow-Origin", "*")
			header.Set("Access-Control-Allow-Methods", joinedMethods)
			header.Set("Access-Control-Allow-Headers", joinedHeaders)

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
