package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"quizdesk/internal/attempt"
	"quizdesk/internal/auth"
	"quizdesk/internal/middlewares"
	"quizdesk/internal/quiz"
	"quizdesk/internal/report"
	"quizdesk/internal/user"
)

type RouterConfig struct {
	UserHandler    *user.Handler
	QuizHandler    *quiz.Handler
	AttemptHandler *attempt.Handler
	ReportHandler  *report.Handler
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", cfg.UserHandler.Register)
		r.Post("/login", cfg.UserHandler.Login)
		r.Post("/logout", auth.NewHandler().Logout)
	})

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)

		r.Mount("/users", user.Routes(cfg.UserHandler))
		r.Mount("/quizzes", quiz.Routes(cfg.QuizHandler))
		r.Mount("/student", attempt.Routes(cfg.AttemptHandler))
		r.Mount("/reports", report.Routes(cfg.ReportHandler))
	})

	return r
}
