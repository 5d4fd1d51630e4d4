package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/musicjoeyoung/Code-Explainer-Tutor/internal/explanation"
	"github.com/musicjoeyoung/Code-Explainer-Tutor/internal/middlewares"
	"github.com/musicjoeyoung/Code-Explainer-Tutor/internal/quiz"
	"github.com/musicjoeyoung/Code-Explainer-Tutor/internal/repo"
	"github.com/musicjoeyoung/Code-Explainer-Tutor/internal/session"
)

type RouterConfig struct {
	RepoHandler        *repo.Handler
	ExplanationHandler *explanation.Handler
	QuizHandler        *quiz.Handler
}

func New(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware)
	r.Use(session.Middleware)

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Mount("/repositories", repo.Routes(cfg.RepoHandler))
	r.Mount("/explanations", explanation.Routes(cfg.ExplanationHandler))
	r.Mount("/quizzes", quiz.Routes(cfg.QuizHandler))

	r.Post("/repositories/{id}/analyze", cfg.ExplanationHandler.Analyze)
	r.Post("/repositories/{id}/diagrams", cfg.ExplanationHandler.CreateDiagram)
	r.Get("/repositories/{id}/explanations", cfg.ExplanationHandler.ListByRepository)
	r.Post("/repositories/{id}/quizzes", cfg.QuizHandler.Generate)
	r.Get("/repositories/{id}/quizzes", cfg.QuizHandler.ListByRepository)

	return r
}
