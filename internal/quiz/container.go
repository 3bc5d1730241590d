package quiz

import "gorm.io/gorm"

type QuizContainer struct {
	Handler *Handler
	Service QuizService
	Repo    QuizRepository
}

func NewQuizContainer(db *gorm.DB, attempts AttemptCounter) *QuizContainer {
	repo := NewRepository(db)
	service := NewService(repo, attempts)
	handler := NewHandler(service)

	return &QuizContainer{
		Handler: handler,
		Service: service,
		Repo:    repo,
	}
}
