package rest

import (
	"net/http"

	"github.com/Beenod004/Networkfault/internal/models"
)

// ListLinks handles GET /links
func (h *Handler) ListLinks(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.dashboard.ListLinks(r.Context()))
}

// GetLink handles GET /links/{id}
func (h *Handler) GetLink(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	l, err := h.dashboard.GetLink(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, l)
}

// AddLink handles POST /links
func (h *Handler) AddLink(w http.ResponseWriter, r *http.Request) {
	var in models.LinkInput
	if !decode(w, r, &in) {
		return
	}
	l, err := h.dashboard.AddLink(r.Context(), in)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, l)
}

// DeleteLink handles DELETE /links/{id}
func (h *Handler) DeleteLink(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.dashboard.DeleteLink(r.Context(), id); err != nil {
		respondServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// LinkFaults handles GET /links/{id}/faults
func (h *Handler) LinkFaults(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	faults, err := h.dashboard.LinkFaults(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, faults)
}
