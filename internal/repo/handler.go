package repo

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/musicjoeyoung/Code-Explainer-Tutor/internal/config"
	"github.com/musicjoeyoung/Code-Explainer-Tutor/internal/github"
)

// Upload size cap for the whole archive.
const maxUploadSize = 32 << 20

type Handler struct {
	service RepoService
}

func NewHandler(service RepoService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) UploadZip(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		log.WithError(err).Warn("Oversized or malformed multipart upload")
		http.Error(w, "invalid multipart upload", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("archive")
	if err != nil {
		http.Error(w, "archive file required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	raw, err := io.ReadAll(file)
	if err != nil {
		log.WithError(err).Error("Failed to read uploaded archive")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	zr, err := zip.NewReader(bytes.NewReader(raw), int64(len(raw)))
	if err != nil {
		http.Error(w, "not a valid zip archive", http.StatusBadRequest)
		return
	}

	name := r.FormValue("name")
	if name == "" {
		name = strings.TrimSuffix(header.Filename, ".zip")
	}

	rec, duplicate, err := h.service.IngestZip(r.Context(), name, zr)
	if err != nil {
		if errors.Is(err, ErrEmptyArchive) {
			http.Error(w, "archive contains no ingestible files", http.StatusBadRequest)
			return
		}
		log.WithError(err).Error("Failed to ingest uploaded archive")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	status := http.StatusCreated
	if duplicate {
		status = http.StatusOK
	}
	config.JSON(w, status, IngestResponse{Repository: rec, Duplicate: duplicate})
}

func (h *Handler) IngestGitHub(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto IngestGitHubDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	rec, duplicate, err := h.service.IngestGitHub(r.Context(), dto.URL)
	if err != nil {
		switch {
		case errors.Is(err, github.ErrNotGitHubURL):
			http.Error(w, "not a github repository url", http.StatusBadRequest)
		case errors.Is(err, ErrEmptyArchive):
			http.Error(w, "repository contains no ingestible files", http.StatusBadRequest)
		default:
			log.WithError(err).Error("Failed to ingest github repository")
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	status := http.StatusCreated
	if duplicate {
		status = http.StatusOK
	}
	config.JSON(w, status, IngestResponse{Repository: rec, Duplicate: duplicate})
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	rec, err := h.service.FindByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidID):
			http.Error(w, "invalid id", http.StatusBadRequest)
		case errors.Is(err, ErrRepoNotFound):
			http.Error(w, "repository not found", http.StatusNotFound)
		default:
			log.WithError(err).Error("Failed to fetch repository")
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	config.JSON(w, http.StatusOK, rec)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	recs, err := h.service.List(r.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list repositories")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, recs)
}
