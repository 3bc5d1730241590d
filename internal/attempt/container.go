package attempt

import "gorm.io/gorm"

type AttemptContainer struct {
	Handler *Handler
	Service AttemptService
	Repo    AttemptRepository
}

func NewAttemptContainer(db *gorm.DB, catalog Catalog) *AttemptContainer {
	repo := NewRepository(db)
	service := NewService(repo, catalog)
	handler := NewHandler(service)

	return &AttemptContainer{
		Handler: handler,
		Service: service,
		Repo:    repo,
	}
}
