package report

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"quizdesk/internal/auth"
	"quizdesk/internal/user"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(auth.RequireRole(string(user.RoleAdmin)))

	r.Get("/quizzes/{quizID}/results", h.QuizResults)
	r.Get("/quizzes/{quizID}/results/export", h.Export)

	return r
}
