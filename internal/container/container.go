package container

import (
	"context"
	"log"
	"os"

	"quizdesk/internal/attempt"
	"quizdesk/internal/auth"
	"quizdesk/internal/config"
	"quizdesk/internal/quiz"
	"quizdesk/internal/report"
	"quizdesk/internal/user"
)

type Container struct {
	UserContainer    *user.UserContainer
	QuizContainer    *quiz.QuizContainer
	AttemptContainer *attempt.AttemptContainer
	ReportContainer  *report.ReportContainer
}

func New() *Container {
	config.Init()
	auth.Init()

	dsn := os.Getenv("DATABASE_DSN")
	if err := config.Connect(context.Background(), dsn); err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}

	if err := config.DB.AutoMigrate(
		&user.User{},
		&quiz.Quiz{},
		&quiz.Question{},
		&attempt.Attempt{},
		&attempt.Answer{},
	); err != nil {
		log.Fatalf("failed to migrate schema: %v", err)
	}

	userContainer := user.NewUserContainer(config.DB)

	if adminUsername := os.Getenv("ADMIN_USERNAME"); adminUsername != "" {
		err := userContainer.Service.EnsureAdmin(context.Background(), adminUsername, os.Getenv("ADMIN_PASSWORD"))
		if err != nil {
			log.Fatalf("failed to seed admin user: %v", err)
		}
	}

	// The catalog and the attempt store each need a narrow view of the
	// other, so the repositories are wired before the services.
	quizRepo := quiz.NewRepository(config.DB)
	attemptContainer := attempt.NewAttemptContainer(config.DB, quizRepo)
	quizContainer := quiz.NewQuizContainer(config.DB, attemptContainer.Repo)
	reportContainer := report.NewReportContainer(config.DB, quizRepo)

	return &Container{
		UserContainer:    userContainer,
		QuizContainer:    quizContainer,
		AttemptContainer: attemptContainer,
		ReportContainer:  reportContainer,
	}
}
