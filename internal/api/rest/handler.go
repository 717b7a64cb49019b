package rest

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Beenod004/Networkfault/internal/pkg/validate"
	"github.com/Beenod004/Networkfault/internal/service"
	"github.com/gorilla/mux"
)

// Handler manages HTTP request handlers
type Handler struct {
	dashboard service.DashboardService
}

// NewHandler creates a new HTTP handler
func NewHandler(ds service.DashboardService) *Handler {
	return &Handler{dashboard: ds}
}

// SetupRoutes configures API routes
func SetupRoutes(router *mux.Router, h *Handler) {
	// Devices
	router.HandleFunc("/devices", h.ListDevices).Methods("GET")
	router.HandleFunc("/devices", h.AddDevice).Methods("POST")
	router.HandleFunc("/devices/{id}", h.GetDevice).Methods("GET")
	router.HandleFunc("/devices/{id}", h.UpdateDevice).Methods("PATCH")
	router.HandleFunc("/devices/{id}", h.DeleteDevice).Methods("DELETE")
	router.HandleFunc("/devices/{id}/status", h.SetDeviceStatus).Methods("PUT")
	router.HandleFunc("/devices/{id}/faults", h.DeviceFaults).Methods("GET")
	router.HandleFunc("/devices/{id}/links", h.DeviceLinks).Methods("GET")

	// Links
	router.HandleFunc("/links", h.ListLinks).Methods("GET")
	router.HandleFunc("/links", h.AddLink).Methods("POST")
	router.HandleFunc("/links/{id}", h.GetLink).Methods("GET")
	router.HandleFunc("/links/{id}", h.DeleteLink).Methods("DELETE")
	router.HandleFunc("/links/{id}/faults", h.LinkFaults).Methods("GET")

	// Faults
	router.HandleFunc("/faults", h.ListFaults).Methods("GET")
	router.HandleFunc("/faults", h.AddFault).Methods("POST")
	router.HandleFunc("/faults/{id}", h.GetFault).Methods("GET")
	router.HandleFunc("/faults/{id}", h.UpdateFault).Methods("PATCH")
	router.HandleFunc("/faults/{id}/status", h.SetFaultStatus).Methods("PUT")

	// Layout
	router.HandleFunc("/layout/positions", h.ListPositions).Methods("GET")
	router.HandleFunc("/layout/positions/{id}", h.GetPosition).Methods("GET")
	router.HandleFunc("/layout/positions/{id}", h.MoveDevice).Methods("PUT")
	router.HandleFunc("/layout/resolve", h.ResolvePosition).Methods("POST")
	router.HandleFunc("/layout/path", h.LinkPath).Methods("POST")

	// Diagram
	router.HandleFunc("/diagram", h.GetDiagram).Methods("GET")
	router.HandleFunc("/diagram/view", h.GetView).Methods("GET")
	router.HandleFunc("/diagram/mode", h.SetMode).Methods("PUT")
	router.HandleFunc("/diagram/zoom", h.Zoom).Methods("POST")
	router.HandleFunc("/diagram/reset", h.ResetView).Methods("POST")
	router.HandleFunc("/diagram/overlay", h.SetOverlay).Methods("PUT")
	router.HandleFunc("/diagram/selection", h.Select).Methods("PUT")
	router.HandleFunc("/diagram/pointer", h.Pointer).Methods("POST")
	router.HandleFunc("/diagram/links", h.ConfirmLink).Methods("POST")
	router.HandleFunc("/diagram/export", h.Export).Methods("GET")
	router.HandleFunc("/diagram/drawio-url", h.DrawioURL).Methods("GET")

	router.HandleFunc("/overview", h.Overview).Methods("GET")
}

// Health handles GET /health
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":   "healthy",
		"revision": h.dashboard.Revision(r.Context()),
	})
}

// Overview handles GET /overview
func (h *Handler) Overview(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.dashboard.Overview(r.Context()))
}

// pathID reads and checks the {id} route variable.
func pathID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := mux.Vars(r)["id"]
	if !validate.EntityID(id) {
		respondErrorWithCode(w, r, http.StatusBadRequest, ErrCodeInvalidRequest, fmt.Sprintf("invalid id %q", id))
		return "", false
	}
	return id, true
}

// decode reads a JSON body into v and runs struct validation on it.
func decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respondErrorWithCode(w, r, http.StatusBadRequest, ErrCodeInvalidRequest, "Invalid request body: "+err.Error())
		return false
	}
	if err := validate.Struct(v); err != nil {
		respondServiceError(w, r, err)
		return false
	}
	return true
}

// Helper functions
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
