package middlewares

import (
	"net/http"
	"os"
	"strings"

	"github.com/go-chi/cors"
)

// CorsMiddleware allows the frontend origins listed in ALLOWED_ORIGINS,
// falling back to localhost for development.
func CorsMiddleware(next http.Handler) http.Handler {
	origins := []string{"http://localhost:3000"}
	if env := os.Getenv("ALLOWED_ORIGINS"); env != "" {
		origins = strings.Split(env, ",")
	}

	return cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	})(next)
}
