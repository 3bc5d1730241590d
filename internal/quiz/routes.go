package quiz

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"quizdesk/internal/auth"
	"quizdesk/internal/user"
)

// Routes covers the admin catalog surface. Student-facing quiz reads live
// with the attempt routes.
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(auth.RequireRole(string(user.RoleAdmin)))

	r.Post("/", h.CreateQuiz)
	r.Get("/", h.ListQuizzes)
	r.Get("/{id}", h.GetQuiz)
	r.Patch("/{id}/status", h.ToggleStatus)
	r.Delete("/{id}", h.DeleteQuiz)
	r.Post("/{id}/questions", h.AddQuestion)
	r.Put("/questions/{questionID}", h.UpdateQuestion)
	r.Delete("/questions/{questionID}", h.DeleteQuestion)

	return r
}
