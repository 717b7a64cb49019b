package rest

import (
	"net/http"

	"github.com/Beenod004/Networkfault/internal/models"
)

type deviceStatusRequest struct {
	Status models.DeviceStatus `json:"status" validate:"required,oneof=online offline maintenance"`
}

// ListDevices handles GET /devices
func (h *Handler) ListDevices(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.dashboard.ListDevices(r.Context()))
}

// GetDevice handles GET /devices/{id}
func (h *Handler) GetDevice(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	d, err := h.dashboard.GetDevice(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, d)
}

// AddDevice handles POST /devices
func (h *Handler) AddDevice(w http.ResponseWriter, r *http.Request) {
	var in models.DeviceInput
	if !decode(w, r, &in) {
		return
	}
	d, err := h.dashboard.AddDevice(r.Context(), in)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, d)
}

// UpdateDevice handles PATCH /devices/{id}
func (h *Handler) UpdateDevice(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var patch models.DevicePatch
	if !decode(w, r, &patch) {
		return
	}
	d, err := h.dashboard.UpdateDevice(r.Context(), id, patch)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, d)
}

// SetDeviceStatus handles PUT /devices/{id}/status
func (h *Handler) SetDeviceStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req deviceStatusRequest
	if !decode(w, r, &req) {
		return
	}
	d, err := h.dashboard.SetDeviceStatus(r.Context(), id, req.Status)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, d)
}

// DeleteDevice handles DELETE /devices/{id}. Links touching the device go with it.
func (h *Handler) DeleteDevice(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	removed, err := h.dashboard.DeleteDevice(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"id":           id,
		"removedLinks": removed,
	})
}

// DeviceFaults handles GET /devices/{id}/faults
func (h *Handler) DeviceFaults(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	faults, err := h.dashboard.DeviceFaults(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, faults)
}

// DeviceLinks handles GET /devices/{id}/links
func (h *Handler) DeviceLinks(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	links, err := h.dashboard.DeviceLinks(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, links)
}
