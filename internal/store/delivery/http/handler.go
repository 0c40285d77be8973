package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/AY-10/inventryy/internal/activity"
	activitydomain "github.com/AY-10/inventryy/internal/activity/domain"
	"github.com/AY-10/inventryy/internal/store/domain"
	"github.com/AY-10/inventryy/pkg/auth"
	"github.com/AY-10/inventryy/pkg/logger"
)

// StoreHandler handles HTTP requests for stores. Store CRUD is simple
// enough that the handler talks to the repository directly.
type StoreHandler struct {
	stores   domain.StoreRepository
	recorder *activity.Recorder
}

// NewStoreHandler creates a new store handler
func NewStoreHandler(stores domain.StoreRepository, recorder *activity.Recorder) *StoreHandler {
	return &StoreHandler{stores: stores, recorder: recorder}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

type storeRequest struct {
	Name     string `json:"name"`
	Address  string `json:"address"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	IsActive *bool  `json:"is_active,omitempty"`
}

// CreateStore handles POST /api/stores
func (h *StoreHandler) CreateStore(w http.ResponseWriter, r *http.Request) {
	var req storeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}
	if req.Name == "" {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Store name is required"})
		return
	}

	store := &domain.Store{
		Name:     req.Name,
		Address:  req.Address,
		Phone:    req.Phone,
		Email:    req.Email,
		IsActive: true,
	}

	if err := h.stores.Create(r.Context(), store); err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to create store")
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "Failed to create store"})
		return
	}

	h.recorder.Record(r.Context(), auth.UserIDFromContext(r.Context()), activitydomain.ActionCreate, "Store", store.ID, map[string]interface{}{
		"name": store.Name,
	})

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Store created successfully",
		Data:    store,
	})
}

// GetStore handles GET /api/stores/{id}
func (h *StoreHandler) GetStore(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid store ID"})
		return
	}

	store, err := h.stores.FindByID(r.Context(), id)
	if err != nil {
		h.respondStoreError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: store})
}

// ListStores handles GET /api/stores
func (h *StoreHandler) ListStores(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	if limit == 0 {
		limit = 50
	}

	stores, err := h.stores.FindAll(r.Context(), limit, offset)
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to list stores")
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "Failed to list stores"})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: stores})
}

// UpdateStore handles PUT /api/stores/{id}
func (h *StoreHandler) UpdateStore(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid store ID"})
		return
	}

	var req storeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	store, err := h.stores.FindByID(r.Context(), id)
	if err != nil {
		h.respondStoreError(w, r, err)
		return
	}

	if req.Name != "" {
		store.Name = req.Name
	}
	if req.Address != "" {
		store.Address = req.Address
	}
	if req.Phone != "" {
		store.Phone = req.Phone
	}
	if req.Email != "" {
		store.Email = req.Email
	}
	if req.IsActive != nil {
		store.IsActive = *req.IsActive
	}

	if err := h.stores.Update(r.Context(), store); err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to update store")
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "Failed to update store"})
		return
	}

	h.recorder.Record(r.Context(), auth.UserIDFromContext(r.Context()), activitydomain.ActionUpdate, "Store", store.ID, map[string]interface{}{
		"name": store.Name,
	})

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Store updated successfully",
		Data:    store,
	})
}

// DeleteStore handles DELETE /api/stores/{id}
func (h *StoreHandler) DeleteStore(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid store ID"})
		return
	}

	if err := h.stores.Delete(r.Context(), id); err != nil {
		h.respondStoreError(w, r, err)
		return
	}

	h.recorder.Record(r.Context(), auth.UserIDFromContext(r.Context()), activitydomain.ActionDelete, "Store", id, nil)

	respondJSON(w, http.StatusOK, Response{Success: true, Message: "Store deleted successfully"})
}

func (h *StoreHandler) respondStoreError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, domain.ErrStoreNotFound) {
		respondJSON(w, http.StatusNotFound, Response{Success: false, Error: err.Error()})
		return
	}
	logger.Error(r.Context()).Err(err).Msg("Store operation failed")
	respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "Internal server error"})
}

// RegisterRoutes registers all store routes
func (h *StoreHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/stores", auth.Middleware(h.CreateStore)).Methods("POST")
	router.HandleFunc("/api/stores", auth.Middleware(h.ListStores)).Methods("GET")
	router.HandleFunc("/api/stores/{id}", auth.Middleware(h.GetStore)).Methods("GET")
	router.HandleFunc("/api/stores/{id}", auth.Middleware(h.UpdateStore)).Methods("PUT")
	router.HandleFunc("/api/stores/{id}", auth.SuperAdminMiddleware(h.DeleteStore)).Methods("DELETE")
}

func pathID(r *http.Request, key string) (uint, error) {
	raw := mux.Vars(r)[key]
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
