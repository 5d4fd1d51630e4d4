package explanation

import (
	"gorm.io/gorm"

	"github.com/musicjoeyoung/Code-Explainer-Tutor/internal/ai"
	"github.com/musicjoeyoung/Code-Explainer-Tutor/internal/repo"
)

type ExplanationContainer struct {
	Repo    ExplanationRepository
	Service ExplanationService
	Handler *Handler
}

func NewExplanationContainer(db *gorm.DB, repos repo.RepoService, provider ai.Provider) *ExplanationContainer {
	repository := NewRepository(db)
	service := NewService(repository, repos, provider)
	handler := NewHandler(service)

	return &ExplanationContainer{
		Repo:    repository,
		Service: service,
		Handler: handler,
	}
}
