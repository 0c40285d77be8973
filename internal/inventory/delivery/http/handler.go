package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/AY-10/inventryy/internal/inventory/domain"
	"github.com/AY-10/inventryy/internal/inventory/usecase/command"
	"github.com/AY-10/inventryy/internal/inventory/usecase/query"
	"github.com/AY-10/inventryy/pkg/auth"
	"github.com/AY-10/inventryy/pkg/logger"
)

// InventoryHandler handles HTTP requests for store inventory
type InventoryHandler struct {
	upsertHandler   *command.UpsertInventoryHandler
	getHandler      *query.GetInventoryHandler
	listHandler     *query.ListInventoryHandler
	lowStockHandler *query.LowStockHandler
}

// NewInventoryHandler creates a new inventory handler
func NewInventoryHandler(
	upsertHandler *command.UpsertInventoryHandler,
	getHandler *query.GetInventoryHandler,
	listHandler *query.ListInventoryHandler,
	lowStockHandler *query.LowStockHandler,
) *InventoryHandler {
	return &InventoryHandler{
		upsertHandler:   upsertHandler,
		getHandler:      getHandler,
		listHandler:     listHandler,
		lowStockHandler: lowStockHandler,
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

type upsertInventoryRequest struct {
	StoreID         uint `json:"store_id"`
	ProductID       uint `json:"product_id"`
	Quantity        int  `json:"quantity"`
	ReorderLevel    int  `json:"reorder_level"`
	ReorderQuantity int  `json:"reorder_quantity"`
}

// UpsertInventory handles PUT /api/inventory
func (h *InventoryHandler) UpsertInventory(w http.ResponseWriter, r *http.Request) {
	var req upsertInventoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}
	if req.StoreID == 0 || req.ProductID == 0 {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Store ID and product ID are required"})
		return
	}

	inv, err := h.upsertHandler.Handle(r.Context(), command.UpsertInventoryCommand{
		StoreID:         req.StoreID,
		ProductID:       req.ProductID,
		Quantity:        req.Quantity,
		ReorderLevel:    req.ReorderLevel,
		ReorderQuantity: req.ReorderQuantity,
		ActorID:         auth.UserIDFromContext(r.Context()),
	})
	if err != nil {
		h.respondInventoryError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Inventory record saved",
		Data:    inv,
	})
}

// GetInventory handles GET /api/inventory/{storeId}/{productId}
func (h *InventoryHandler) GetInventory(w http.ResponseWriter, r *http.Request) {
	storeID, err := pathID(r, "storeId")
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid store ID"})
		return
	}
	productID, err := pathID(r, "productId")
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid product ID"})
		return
	}

	inv, err := h.getHandler.Handle(r.Context(), query.GetInventoryQuery{
		StoreID:   storeID,
		ProductID: productID,
	})
	if err != nil {
		h.respondInventoryError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: inv})
}

// ListInventory handles GET /api/inventory
func (h *InventoryHandler) ListInventory(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	storeID, _ := strconv.ParseUint(r.URL.Query().Get("store_id"), 10, 32)

	records, err := h.listHandler.Handle(r.Context(), query.ListInventoryQuery{
		StoreID: uint(storeID),
		Limit:   limit,
		Offset:  offset,
	})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to list inventory")
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "Failed to list inventory"})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: records})
}

// LowStock handles GET /api/inventory/low-stock
func (h *InventoryHandler) LowStock(w http.ResponseWriter, r *http.Request) {
	storeID, _ := strconv.ParseUint(r.URL.Query().Get("store_id"), 10, 32)

	records, err := h.lowStockHandler.Handle(r.Context(), query.LowStockQuery{StoreID: uint(storeID)})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to build low stock report")
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "Failed to build low stock report"})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: records})
}

func (h *InventoryHandler) respondInventoryError(w http.ResponseWriter, r *http.Request, err error) {
	var stockErr *domain.InsufficientStockError

	switch {
	case errors.As(err, &stockErr):
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Quantity cannot be negative"})
	case errors.Is(err, domain.ErrInventoryNotFound):
		respondJSON(w, http.StatusNotFound, Response{Success: false, Error: err.Error()})
	default:
		logger.Error(r.Context()).Err(err).Msg("Inventory operation failed")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Internal server error",
		})
	}
}

// RegisterRoutes registers all inventory routes
func (h *InventoryHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/inventory", auth.Middleware(h.UpsertInventory)).Methods("PUT")
	router.HandleFunc("/api/inventory", auth.Middleware(h.ListInventory)).Methods("GET")
	router.HandleFunc("/api/inventory/low-stock", auth.Middleware(h.LowStock)).Methods("GET")
	router.HandleFunc("/api/inventory/{storeId}/{productId}", auth.Middleware(h.GetInventory)).Methods("GET")
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
