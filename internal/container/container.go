package container

import (
	"context"
	"log"
	"os"

	"github.com/musicjoeyoung/Code-Explainer-Tutor/internal/ai"
	"github.com/musicjoeyoung/Code-Explainer-Tutor/internal/config"
	"github.com/musicjoeyoung/Code-Explainer-Tutor/internal/explanation"
	"github.com/musicjoeyoung/Code-Explainer-Tutor/internal/github"
	"github.com/musicjoeyoung/Code-Explainer-Tutor/internal/quiz"
	"github.com/musicjoeyoung/Code-Explainer-Tutor/internal/repo"
	"github.com/musicjoeyoung/Code-Explainer-Tutor/internal/session"
	"github.com/musicjoeyoung/Code-Explainer-Tutor/internal/storage"
)

type Container struct {
	RepoContainer        *repo.RepoContainer
	ExplanationContainer *explanation.ExplanationContainer
	QuizContainer        *quiz.QuizContainer
}

func New() *Container {
	config.Init()
	session.Init()

	ctx := context.Background()

	dsn := os.Getenv("DATABASE_DSN")
	if err := config.Connect(ctx, dsn); err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}

	if err := config.DB.AutoMigrate(
		&repo.Repository{},
		&explanation.Explanation{},
		&quiz.Quiz{},
		&quiz.QuizAttempt{},
	); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	store, err := storage.New(ctx)
	if err != nil {
		log.Fatalf("failed to initialize storage: %v", err)
	}

	provider, err := ai.NewGeminiProvider(ctx)
	if err != nil {
		log.Fatalf("failed to initialize AI provider: %v", err)
	}

	repoContainer := repo.NewRepoContainer(config.DB, store, github.NewClient(ctx))
	explanationContainer := explanation.NewExplanationContainer(config.DB, repoContainer.Service, provider)
	quizContainer := quiz.NewQuizContainer(config.DB, explanationContainer.Repo, repoContainer.Service, provider)

	return &Container{
		RepoContainer:        repoContainer,
		ExplanationContainer: explanationContainer,
		QuizContainer:        quizContainer,
	}
}
