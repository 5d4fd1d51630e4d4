package repo

import (
	"gorm.io/gorm"

	"github.com/musicjoeyoung/Code-Explainer-Tutor/internal/github"
	"github.com/musicjoeyoung/Code-Explainer-Tutor/internal/storage"
)

type RepoContainer struct {
	Service RepoService
	Handler *Handler
}

func NewRepoContainer(db *gorm.DB, store storage.Provider, gh *github.Client) *RepoContainer {
	repo := NewRepository(db)
	service := NewService(repo, store, gh)
	handler := NewHandler(service)

	return &RepoContainer{
		Service: service,
		Handler: handler,
	}
}
