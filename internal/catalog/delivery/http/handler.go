package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	"github.com/AY-10/inventryy/internal/catalog/domain"
	"github.com/AY-10/inventryy/internal/catalog/usecase/command"
	"github.com/AY-10/inventryy/internal/catalog/usecase/query"
	"github.com/AY-10/inventryy/pkg/auth"
	"github.com/AY-10/inventryy/pkg/logger"
)

// CatalogHandler handles HTTP requests for products and categories
type CatalogHandler struct {
	createCategoryHandler *command.CreateCategoryHandler
	deleteCategoryHandler *command.DeleteCategoryHandler
	createProductHandler  *command.CreateProductHandler
	updateProductHandler  *command.UpdateProductHandler
	deleteProductHandler  *command.DeleteProductHandler
	updatePriceHandler    *command.UpdatePriceHandler
	getProductHandler     *query.GetProductHandler
	listProductsHandler   *query.ListProductsHandler
	listCategoriesHandler *query.ListCategoriesHandler
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(
	createCategoryHandler *command.CreateCategoryHandler,
	deleteCategoryHandler *command.DeleteCategoryHandler,
	createProductHandler *command.CreateProductHandler,
	updateProductHandler *command.UpdateProductHandler,
	deleteProductHandler *command.DeleteProductHandler,
	updatePriceHandler *command.UpdatePriceHandler,
	getProductHandler *query.GetProductHandler,
	listProductsHandler *query.ListProductsHandler,
	listCategoriesHandler *query.ListCategoriesHandler,
) *CatalogHandler {
	return &CatalogHandler{
		createCategoryHandler: createCategoryHandler,
		deleteCategoryHandler: deleteCategoryHandler,
		createProductHandler:  createProductHandler,
		updateProductHandler:  updateProductHandler,
		deleteProductHandler:  deleteProductHandler,
		updatePriceHandler:    updatePriceHandler,
		getProductHandler:     getProductHandler,
		listProductsHandler:   listProductsHandler,
		listCategoriesHandler: listCategoriesHandler,
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

type categoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type productRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	CategoryID  uint            `json:"category_id"`
	SKU         string          `json:"sku"`
	Barcode     *string         `json:"barcode,omitempty"`
	Price       decimal.Decimal `json:"price"`
}

type updatePriceRequest struct {
	ProductID uint            `json:"product_id"`
	NewPrice  decimal.Decimal `json:"new_price"`
}

// CreateCategory handles POST /api/categories
func (h *CatalogHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}
	if req.Name == "" {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Category name is required"})
		return
	}

	category, err := h.createCategoryHandler.Handle(r.Context(), command.CreateCategoryCommand{
		Name:        req.Name,
		Description: req.Description,
		ActorID:     auth.UserIDFromContext(r.Context()),
	})
	if err != nil {
		h.respondCatalogError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Category created successfully",
		Data:    category,
	})
}

// ListCategories handles GET /api/categories
func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	categories, err := h.listCategoriesHandler.Handle(r.Context(), query.ListCategoriesQuery{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to list categories")
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "Failed to list categories"})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: categories})
}

// DeleteCategory handles DELETE /api/categories/{id}
func (h *CatalogHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid category ID"})
		return
	}

	err = h.deleteCategoryHandler.Handle(r.Context(), command.DeleteCategoryCommand{
		CategoryID: id,
		ActorID:    auth.UserIDFromContext(r.Context()),
	})
	if err != nil {
		h.respondCatalogError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Message: "Category deleted successfully"})
}

// CreateProduct handles POST /api/products
func (h *CatalogHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}
	if req.Name == "" || req.SKU == "" {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Product name and SKU are required"})
		return
	}

	product, err := h.createProductHandler.Handle(r.Context(), command.CreateProductCommand{
		Name:        req.Name,
		Description: req.Description,
		CategoryID:  req.CategoryID,
		SKU:         req.SKU,
		Barcode:     req.Barcode,
		Price:       req.Price,
		ActorID:     auth.UserIDFromContext(r.Context()),
	})
	if err != nil {
		h.respondCatalogError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Product created successfully",
		Data:    product,
	})
}

// GetProduct handles GET /api/products/{id}
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid product ID"})
		return
	}

	product, err := h.getProductHandler.Handle(r.Context(), query.GetProductQuery{ProductID: id})
	if err != nil {
		h.respondCatalogError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: product})
}

// ListProducts handles GET /api/products
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	categoryID, _ := strconv.ParseUint(r.URL.Query().Get("category_id"), 10, 32)

	products, err := h.listProductsHandler.Handle(r.Context(), query.ListProductsQuery{
		CategoryID: uint(categoryID),
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to list products")
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "Failed to list products"})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: products})
}

// UpdateProduct handles PUT /api/products/{id}
func (h *CatalogHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid product ID"})
		return
	}

	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	product, err := h.updateProductHandler.Handle(r.Context(), command.UpdateProductCommand{
		ProductID:   id,
		Name:        req.Name,
		Description: req.Description,
		CategoryID:  req.CategoryID,
		Barcode:     req.Barcode,
		ActorID:     auth.UserIDFromContext(r.Context()),
	})
	if err != nil {
		h.respondCatalogError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Product updated successfully",
		Data:    product,
	})
}

// DeleteProduct handles DELETE /api/products/{id}
func (h *CatalogHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid product ID"})
		return
	}

	err = h.deleteProductHandler.Handle(r.Context(), command.DeleteProductCommand{
		ProductID: id,
		ActorID:   auth.UserIDFromContext(r.Context()),
	})
	if err != nil {
		h.respondCatalogError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Message: "Product deleted successfully"})
}

// UpdatePrice handles POST /api/products/price-update
func (h *CatalogHandler) UpdatePrice(w http.ResponseWriter, r *http.Request) {
	var req updatePriceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}
	if req.ProductID == 0 {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Product ID is required"})
		return
	}

	result, err := h.updatePriceHandler.Handle(r.Context(), command.UpdatePriceCommand{
		ProductID: req.ProductID,
		NewPrice:  req.NewPrice,
		ActorID:   auth.UserIDFromContext(r.Context()),
	})
	if err != nil {
		h.respondCatalogError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Price updated successfully",
		Data: map[string]interface{}{
			"product_id": result.ProductID,
			"old_price":  result.OldPrice,
			"new_price":  result.NewPrice,
		},
	})
}

func (h *CatalogHandler) respondCatalogError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidPrice):
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: err.Error()})
	case errors.Is(err, domain.ErrProductNotFound), errors.Is(err, domain.ErrCategoryNotFound):
		respondJSON(w, http.StatusNotFound, Response{Success: false, Error: err.Error()})
	default:
		logger.Error(r.Context()).Err(err).Msg("Catalog operation failed")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Internal server error",
		})
	}
}

// RegisterRoutes registers all catalog routes
func (h *CatalogHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/categories", auth.Middleware(h.CreateCategory)).Methods("POST")
	router.HandleFunc("/api/categories", auth.Middleware(h.ListCategories)).Methods("GET")
	router.HandleFunc("/api/categories/{id}", auth.SuperAdminMiddleware(h.DeleteCategory)).Methods("DELETE")

	router.HandleFunc("/api/products/price-update", auth.SuperAdminMiddleware(h.UpdatePrice)).Methods("POST")
	router.HandleFunc("/api/products", auth.Middleware(h.CreateProduct)).Methods("POST")
	router.HandleFunc("/api/products", auth.Middleware(h.ListProducts)).Methods("GET")
	router.HandleFunc("/api/products/{id}", auth.Middleware(h.GetProduct)).Methods("GET")
	router.HandleFunc("/api/products/{id}", auth.Middleware(h.UpdateProduct)).Methods("PUT")
	router.HandleFunc("/api/products/{id}", auth.SuperAdminMiddleware(h.DeleteProduct)).Methods("DELETE")
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
