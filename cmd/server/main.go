package main

import (
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"quizdesk/internal/container"
	"quizdesk/internal/router"
)

func main() {
	_ = godotenv.Load()

	c := container.New()
	handler := router.New(router.RouterConfig{
		UserHandler:    c.UserContainer.Handler,
		QuizHandler:    c.QuizContainer.Handler,
		AttemptHandler: c.AttemptContainer.Handler,
		ReportHandler:  c.ReportContainer.Handler,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	logrus.WithField("port", port).Info("Starting server")
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		logrus.WithError(err).Fatal("Server stopped")
	}
}
