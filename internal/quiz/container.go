package quiz

import (
	"gorm.io/gorm"

	"github.com/musicjoeyoung/Code-Explainer-Tutor/internal/ai"
	"github.com/musicjoeyoung/Code-Explainer-Tutor/internal/explanation"
	"github.com/musicjoeyoung/Code-Explainer-Tutor/internal/repo"
)

type QuizContainer struct {
	Service QuizService
	Handler *Handler
}

func NewQuizContainer(db *gorm.DB, explanations explanation.ExplanationRepository, repos repo.RepoService, provider ai.Provider) *QuizContainer {
	repository := NewRepository(db)
	service := NewService(repository, explanations, repos, provider)
	handler := NewHandler(service)

	return &QuizContainer{
		Service: service,
		Handler: handler,
	}
}
