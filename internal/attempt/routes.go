package attempt

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"quizdesk/internal/auth"
	"quizdesk/internal/user"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(auth.RequireRole(string(user.RoleStudent)))

	r.Get("/quizzes", h.ListAvailable)
	r.Get("/attempts", h.ListAttempted)
	r.Post("/quizzes/{quizID}/attempts", h.StartAttempt)
	r.Post("/attempts/{attemptID}/submit", h.Submit)
	r.Get("/attempts/{attemptID}/result", h.Result)

	return r
}
