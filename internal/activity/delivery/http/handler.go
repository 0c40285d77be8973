package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/AY-10/inventryy/internal/activity/usecase/query"
	"github.com/AY-10/inventryy/pkg/auth"
	"github.com/AY-10/inventryy/pkg/logger"
)

// ActivityHandler exposes the audit trail
type ActivityHandler struct {
	listHandler *query.ListActivitiesHandler
}

// NewActivityHandler creates a new activity handler
func NewActivityHandler(listHandler *query.ListActivitiesHandler) *ActivityHandler {
	return &ActivityHandler{listHandler: listHandler}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ListActivities handles GET /api/activities
func (h *ActivityHandler) ListActivities(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	userID, _ := strconv.ParseUint(r.URL.Query().Get("user_id"), 10, 32)
	entityID, _ := strconv.ParseUint(r.URL.Query().Get("entity_id"), 10, 32)

	activities, err := h.listHandler.Handle(r.Context(), query.ListActivitiesQuery{
		UserID:     uint(userID),
		EntityType: r.URL.Query().Get("entity_type"),
		EntityID:   uint(entityID),
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to list activities")
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "Failed to list activities"})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: activities})
}

// RegisterRoutes registers all activity routes
func (h *ActivityHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/activities", auth.SuperAdminMiddleware(h.ListActivities)).Methods("GET")
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
