package explanation

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/musicjoeyoung/Code-Explainer-Tutor/internal/config"
	"github.com/musicjoeyoung/Code-Explainer-Tutor/internal/repo"
)

type Handler struct {
	service ExplanationService
}

func NewHandler(service ExplanationService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	expl, err := h.service.Analyze(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err, "Failed to analyze repository")
		return
	}

	log.Infof("Analysis complete for repository %s", expl.RepositoryID)
	config.JSON(w, http.StatusCreated, expl)
}

func (h *Handler) CreateDiagram(w http.ResponseWriter, r *http.Request) {
	var dto CreateDiagramDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	expl, err := h.service.CreateDiagram(r.Context(), chi.URLParam(r, "id"), dto)
	if err != nil {
		if errors.Is(err, ErrEmptyDescription) {
			http.Error(w, "description is required", http.StatusBadRequest)
			return
		}
		h.writeError(w, r, err, "Failed to create diagram")
		return
	}

	config.JSON(w, http.StatusCreated, expl)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	expl, err := h.service.FindByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err, "Failed to fetch explanation")
		return
	}

	config.JSON(w, http.StatusOK, expl)
}

func (h *Handler) ListByRepository(w http.ResponseWriter, r *http.Request) {
	recs, err := h.service.ListByRepository(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err, "Failed to list explanations")
		return
	}

	config.JSON(w, http.StatusOK, recs)
}

func (h *Handler) View(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	title, body, err := h.service.RenderView(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err, "Failed to render explanation")
		return
	}

	page, err := RenderPage(title, body)
	if err != nil {
		log.WithError(err).Error("Failed to execute page template")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.HTML(w, http.StatusOK, page)
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	switch {
	case errors.Is(err, ErrInvalidID), errors.Is(err, repo.ErrInvalidID):
		http.Error(w, "invalid id", http.StatusBadRequest)
	case errors.Is(err, ErrExplanationNotFound):
		http.Error(w, "explanation not found", http.StatusNotFound)
	case errors.Is(err, repo.ErrRepoNotFound):
		http.Error(w, "repository not found", http.StatusNotFound)
	default:
		config.WithContext(r.Context()).WithError(err).Error(msg)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
