package quiz

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/musicjoeyoung/Code-Explainer-Tutor/internal/config"
	"github.com/musicjoeyoung/Code-Explainer-Tutor/internal/repo"
	"github.com/musicjoeyoung/Code-Explainer-Tutor/internal/session"
)

type Handler struct {
	service QuizService
}

func NewHandler(service QuizService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var dto GenerateQuizDTO
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
	}

	quiz, err := h.service.GenerateQuiz(r.Context(), chi.URLParam(r, "id"), dto)
	if err != nil {
		h.writeError(w, r, err, "Failed to generate quiz")
		return
	}

	config.JSON(w, http.StatusCreated, quiz)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	quiz, err := h.service.FindByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err, "Failed to fetch quiz")
		return
	}

	config.JSON(w, http.StatusOK, quiz)
}

func (h *Handler) ListByRepository(w http.ResponseWriter, r *http.Request) {
	quizzes, err := h.service.ListByRepository(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err, "Failed to list quizzes")
		return
	}

	config.JSON(w, http.StatusOK, quizzes)
}

func (h *Handler) SubmitAttempt(w http.ResponseWriter, r *http.Request) {
	sessionID, err := session.FromContext(r.Context())
	if err != nil {
		http.Error(w, "session required", http.StatusUnauthorized)
		return
	}

	var dto SubmitAttemptDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	attempt, err := h.service.SubmitAttempt(r.Context(), chi.URLParam(r, "id"), sessionID, dto)
	if err != nil {
		h.writeError(w, r, err, "Failed to submit attempt")
		return
	}

	config.JSON(w, http.StatusCreated, attempt)
}

func (h *Handler) ListAttempts(w http.ResponseWriter, r *http.Request) {
	sessionID, err := session.FromContext(r.Context())
	if err != nil {
		http.Error(w, "session required", http.StatusUnauthorized)
		return
	}

	attempts, err := h.service.ListAttempts(r.Context(), chi.URLParam(r, "id"), sessionID)
	if err != nil {
		h.writeError(w, r, err, "Failed to list attempts")
		return
	}

	config.JSON(w, http.StatusOK, attempts)
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	switch {
	case errors.Is(err, ErrInvalidID), errors.Is(err, repo.ErrInvalidID):
		http.Error(w, "invalid id", http.StatusBadRequest)
	case errors.Is(err, ErrQuizNotFound):
		http.Error(w, "quiz not found", http.StatusNotFound)
	case errors.Is(err, repo.ErrRepoNotFound):
		http.Error(w, "repository not found", http.StatusNotFound)
	case errors.Is(err, ErrNoAnalysis):
		http.Error(w, "analyze the repository before generating a quiz", http.StatusConflict)
	case errors.Is(err, ErrNoQuestions):
		http.Error(w, "generation produced no questions", http.StatusUnprocessableEntity)
	default:
		config.WithContext(r.Context()).WithError(err).Error(msg)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
