package rest

import (
	"net/http"
	"strconv"

	"github.com/Beenod004/Networkfault/internal/models"
	"github.com/Beenod004/Networkfault/internal/service"
)

type modeRequest struct {
	Mode models.InteractionMode `json:"mode" validate:"required"`
}

type zoomRequest struct {
	Direction string `json:"direction" validate:"required,oneof=in out"`
}

type overlayRequest struct {
	Enabled bool `json:"enabled"`
}

type selectionRequest struct {
	DeviceID string `json:"deviceId" validate:"omitempty,entityid"`
}

var exportExtensions = map[string]string{
	service.FormatJSON:    "json",
	service.FormatSVG:     "svg",
	service.FormatPNG:     "png",
	service.FormatDrawio:  "drawio",
	service.FormatMermaid: "mmd",
}

// GetDiagram handles GET /diagram
func (h *Handler) GetDiagram(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.dashboard.Diagram(r.Context()))
}

// GetView handles GET /diagram/view
func (h *Handler) GetView(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.dashboard.View(r.Context()))
}

// SetMode handles PUT /diagram/mode
func (h *Handler) SetMode(w http.ResponseWriter, r *http.Request) {
	var req modeRequest
	if !decode(w, r, &req) {
		return
	}
	v, err := h.dashboard.SetMode(r.Context(), req.Mode)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, v)
}

// Zoom handles POST /diagram/zoom
func (h *Handler) Zoom(w http.ResponseWriter, r *http.Request) {
	var req zoomRequest
	if !decode(w, r, &req) {
		return
	}
	respondJSON(w, http.StatusOK, h.dashboard.Zoom(r.Context(), req.Direction == "in"))
}

// ResetView handles POST /diagram/reset
func (h *Handler) ResetView(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.dashboard.ResetView(r.Context()))
}

// SetOverlay handles PUT /diagram/overlay
func (h *Handler) SetOverlay(w http.ResponseWriter, r *http.Request) {
	var req overlayRequest
	if !decode(w, r, &req) {
		return
	}
	respondJSON(w, http.StatusOK, h.dashboard.SetFaultOverlay(r.Context(), req.Enabled))
}

// Select handles PUT /diagram/selection
func (h *Handler) Select(w http.ResponseWriter, r *http.Request) {
	var req selectionRequest
	if !decode(w, r, &req) {
		return
	}
	v, err := h.dashboard.SelectDevice(r.Context(), req.DeviceID)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, v)
}

// Pointer handles POST /diagram/pointer
func (h *Handler) Pointer(w http.ResponseWriter, r *http.Request) {
	var ev models.PointerEvent
	if !decode(w, r, &ev) {
		return
	}
	respondJSON(w, http.StatusOK, h.dashboard.Pointer(r.Context(), ev))
}

// ConfirmLink handles POST /diagram/links with a (possibly edited) link draft.
func (h *Handler) ConfirmLink(w http.ResponseWriter, r *http.Request) {
	var draft models.LinkDraft
	if !decode(w, r, &draft) {
		return
	}
	l, err := h.dashboard.AddLink(r.Context(), draft.Input)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, l)
}

// Export handles GET /diagram/export?format=json|svg|png|drawio|mermaid
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = service.FormatJSON
	}
	e, err := h.dashboard.Export(r.Context(), format)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", e.ContentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(e.Body)))
	w.Header().Set("Content-Disposition", `attachment; filename="network-topology.`+exportExtensions[format]+`"`)
	w.WriteHeader(http.StatusOK)
	w.Write(e.Body)
}

// DrawioURL handles GET /diagram/drawio-url
func (h *Handler) DrawioURL(w http.ResponseWriter, r *http.Request) {
	u, err := h.dashboard.DrawioURL(r.Context())
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"url": u})
}
