package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	inventorydomain "github.com/AY-10/inventryy/internal/inventory/domain"
	"github.com/AY-10/inventryy/internal/sales/domain"
	"github.com/AY-10/inventryy/internal/sales/usecase/command"
	"github.com/AY-10/inventryy/internal/sales/usecase/query"
	"github.com/AY-10/inventryy/pkg/auth"
	"github.com/AY-10/inventryy/pkg/logger"
)

// SalesHandler handles HTTP requests for sales
type SalesHandler struct {
	createHandler     *command.CreateSaleHandler
	deleteHandler     *command.DeleteSaleHandler
	deleteItemHandler *command.DeleteSaleItemHandler
	getHandler        *query.GetSaleHandler
	listHandler       *query.ListSalesHandler
}

// NewSalesHandler creates a new sales handler
func NewSalesHandler(
	createHandler *command.CreateSaleHandler,
	deleteHandler *command.DeleteSaleHandler,
	deleteItemHandler *command.DeleteSaleItemHandler,
	getHandler *query.GetSaleHandler,
	listHandler *query.ListSalesHandler,
) *SalesHandler {
	return &SalesHandler{
		createHandler:     createHandler,
		deleteHandler:     deleteHandler,
		deleteItemHandler: deleteItemHandler,
		getHandler:        getHandler,
		listHandler:       listHandler,
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

type saleLineRequest struct {
	ProductID uint             `json:"product_id"`
	Quantity  int              `json:"quantity"`
	UnitPrice *decimal.Decimal `json:"unit_price,omitempty"`
}

type createSaleRequest struct {
	StoreID       uint              `json:"store_id"`
	Date          *time.Time        `json:"date,omitempty"`
	PaymentMethod string            `json:"payment_method"`
	Items         []saleLineRequest `json:"items"`
}

// CreateSale handles POST /api/sales
func (h *SalesHandler) CreateSale(w http.ResponseWriter, r *http.Request) {
	var req createSaleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	lines := make([]domain.LineInput, 0, len(req.Items))
	for _, item := range req.Items {
		lines = append(lines, domain.LineInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	cmd := command.CreateSaleCommand{
		StoreID:       req.StoreID,
		PaymentMethod: req.PaymentMethod,
		Lines:         lines,
		ActorID:       auth.UserIDFromContext(r.Context()),
	}
	if req.Date != nil {
		cmd.Date = *req.Date
	}

	sale, err := h.createHandler.Handle(r.Context(), cmd)
	if err != nil {
		h.respondSaleError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Sale created successfully",
		Data:    sale,
	})
}

// GetSale handles GET /api/sales/{id}
func (h *SalesHandler) GetSale(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid sale ID"})
		return
	}

	sale, err := h.getHandler.Handle(r.Context(), query.GetSaleQuery{SaleID: id})
	if err != nil {
		h.respondSaleError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: sale})
}

// ListSales handles GET /api/sales
func (h *SalesHandler) ListSales(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	storeID, _ := strconv.ParseUint(r.URL.Query().Get("store_id"), 10, 32)

	sales, err := h.listHandler.Handle(r.Context(), query.ListSalesQuery{
		StoreID: uint(storeID),
		Limit:   limit,
		Offset:  offset,
	})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to list sales")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to list sales",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: sales})
}

// DeleteSale handles DELETE /api/sales/{id}
func (h *SalesHandler) DeleteSale(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid sale ID"})
		return
	}

	err = h.deleteHandler.Handle(r.Context(), command.DeleteSaleCommand{
		SaleID:  id,
		ActorID: auth.UserIDFromContext(r.Context()),
	})
	if err != nil {
		h.respondSaleError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Sale deleted and inventory restored",
	})
}

// DeleteSaleItem handles DELETE /api/sales/items/{id}
func (h *SalesHandler) DeleteSaleItem(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid sale item ID"})
		return
	}

	sale, err := h.deleteItemHandler.Handle(r.Context(), command.DeleteSaleItemCommand{
		SaleItemID: id,
		ActorID:    auth.UserIDFromContext(r.Context()),
	})
	if err != nil {
		h.respondSaleError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Sale item deleted and quantity restored",
		Data:    sale,
	})
}

// respondSaleError maps domain errors to HTTP statuses. Every rejection
// reaching this point has already been fully compensated: persisted state
// is unchanged from before the call.
func (h *SalesHandler) respondSaleError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		stockErr *inventorydomain.InsufficientStockError
		lineErr  *domain.InvalidLineError
	)

	switch {
	case errors.As(err, &stockErr):
		respondJSON(w, http.StatusConflict, Response{
			Success: false,
			Error:   stockErr.Error(),
			Data: map[string]interface{}{
				"store_id":   stockErr.StoreID,
				"product_id": stockErr.ProductID,
				"requested":  stockErr.Requested,
				"available":  stockErr.Available,
			},
		})
	case errors.As(err, &lineErr), errors.Is(err, domain.ErrEmptySale), errors.Is(err, domain.ErrMissingStore):
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: err.Error()})
	case errors.Is(err, domain.ErrSaleNotFound), errors.Is(err, domain.ErrSaleItemNotFound):
		respondJSON(w, http.StatusNotFound, Response{Success: false, Error: err.Error()})
	default:
		logger.Error(r.Context()).Err(err).Msg("Sale operation failed")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Internal server error",
		})
	}
}

// RegisterRoutes registers all sales routes
func (h *SalesHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/sales", auth.Middleware(h.CreateSale)).Methods("POST")
	router.HandleFunc("/api/sales", auth.Middleware(h.ListSales)).Methods("GET")
	router.HandleFunc("/api/sales/items/{id}", auth.SuperAdminMiddleware(h.DeleteSaleItem)).Methods("DELETE")
	router.HandleFunc("/api/sales/{id}", auth.Middleware(h.GetSale)).Methods("GET")
	router.HandleFunc("/api/sales/{id}", auth.SuperAdminMiddleware(h.DeleteSale)).Methods("DELETE")
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
