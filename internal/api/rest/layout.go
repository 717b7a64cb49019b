package rest

import (
	"net/http"

	"github.com/Beenod004/Networkfault/internal/models"
)

type moveRequest struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type resolveRequest struct {
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	ExcludeID string  `json:"excludeId" validate:"omitempty,entityid"`
}

type pathRequest struct {
	Source models.Position `json:"source"`
	Target models.Position `json:"target"`
}

// ListPositions handles GET /layout/positions
func (h *Handler) ListPositions(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.dashboard.Positions(r.Context()))
}

// GetPosition handles GET /layout/positions/{id}
func (h *Handler) GetPosition(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	p, err := h.dashboard.Position(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, p)
}

// MoveDevice handles PUT /layout/positions/{id}
func (h *Handler) MoveDevice(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req moveRequest
	if !decode(w, r, &req) {
		return
	}
	res, err := h.dashboard.MoveDevice(r.Context(), id, req.X, req.Y)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, res)
}

// ResolvePosition handles POST /layout/resolve. Nothing is moved.
func (h *Handler) ResolvePosition(w http.ResponseWriter, r *http.Request) {
	var req resolveRequest
	if !decode(w, r, &req) {
		return
	}
	respondJSON(w, http.StatusOK, h.dashboard.ResolvePosition(r.Context(), req.X, req.Y, req.ExcludeID))
}

// LinkPath handles POST /layout/path
func (h *Handler) LinkPath(w http.ResponseWriter, r *http.Request) {
	var req pathRequest
	if !decode(w, r, &req) {
		return
	}
	respondJSON(w, http.StatusOK, h.dashboard.LinkPath(r.Context(), req.Source, req.Target))
}
