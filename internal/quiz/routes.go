package quiz

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/{id}", h.Get)
	r.Post("/{id}/attempts", h.SubmitAttempt)
	r.Get("/{id}/attempts", h.ListAttempts)
	return r
}
