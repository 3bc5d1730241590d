package report

import "gorm.io/gorm"

type ReportContainer struct {
	Handler *Handler
	Service ReportService
}

func NewReportContainer(db *gorm.DB, catalog QuizFinder) *ReportContainer {
	repo := NewRepository(db)
	service := NewService(repo, catalog)
	handler := NewHandler(service)

	return &ReportContainer{
		Handler: handler,
		Service: service,
	}
}
