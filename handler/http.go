package handler

import (
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
)

const maxBodyBytes = 1 << 20

// Routes mounts the API on a chi router for the standalone server.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Post(chatPath, h.serve)
	r.Post(bookingsPath, h.serve)
	r.Get(bookingsPath+"/{id}", h.serve)
	return r
}

func (h *Handler) serve(w http.ResponseWriter, r *http.Request) {
	correlationID := r.Header.Get(correlationHeader)
	if correlationID == "" {
		correlationID = newUUID()
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set(correlationHeader, correlationID)

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		status, out := encode(http.StatusBadRequest, errorResponse{Error: msgInvalidRequest})
		w.WriteHeader(status)
		_, _ = w.Write(out)
		return
	}

	path := r.URL.Path
	if id := chi.URLParam(r, "id"); id != "" {
		path = bookingsPath + "/" + id
	}
	status, out := h.route(r.Context(), correlationID, r.Method, path, body)
	w.WriteHeader(status)
	_, _ = w.Write(out)
}
