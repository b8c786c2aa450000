package middlewares

import (
	"net/http"

	"github.com/igrejamossoro/servicos-lambda/internal/config"
)

// CorsMiddleware mirrors the permissive cors() setup of the original Express
// server; the frontend origin can be pinned via CORS_ORIGIN.
func CorsMiddleware(next http.Handler) http.Handler {
	origin := config.GetEnv("CORS_ORIGIN", "*")

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Accept, Authorization, Content-Type")
		w.Header().Set("Access-Control-Allow-Credentials", "true")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
