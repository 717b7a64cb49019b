package rest

import (
	"net/http"

	"github.com/Beenod004/Networkfault/internal/correlate"
	"github.com/Beenod004/Networkfault/internal/models"
	"github.com/Beenod004/Networkfault/internal/pkg/validate"
)

type faultStatusRequest struct {
	Status models.FaultStatus `json:"status" validate:"required,oneof=active investigating resolved"`
}

// ListFaults handles GET /faults?search=&status=&severity=
func (h *Handler) ListFaults(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := correlate.FaultFilter{
		Search:   q.Get("search"),
		Status:   q.Get("status"),
		Severity: q.Get("severity"),
	}
	if err := validate.Struct(filter); err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, h.dashboard.ListFaults(r.Context(), filter))
}

// GetFault handles GET /faults/{id}
func (h *Handler) GetFault(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	f, err := h.dashboard.GetFault(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, f)
}

// AddFault handles POST /faults
func (h *Handler) AddFault(w http.ResponseWriter, r *http.Request) {
	var in models.FaultInput
	if !decode(w, r, &in) {
		return
	}
	f, err := h.dashboard.AddFault(r.Context(), in)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, f)
}

// UpdateFault handles PATCH /faults/{id}
func (h *Handler) UpdateFault(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var patch models.FaultPatch
	if !decode(w, r, &patch) {
		return
	}
	f, err := h.dashboard.UpdateFault(r.Context(), id, patch)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, f)
}

// SetFaultStatus handles PUT /faults/{id}/status
func (h *Handler) SetFaultStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req faultStatusRequest
	if !decode(w, r, &req) {
		return
	}
	f, err := h.dashboard.SetFaultStatus(r.Context(), id, req.Status)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, f)
}
