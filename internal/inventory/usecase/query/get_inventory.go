package query

import (
	"context"

	"github.com/AY-10/inventryy/internal/inventory/domain"
)

// GetInventoryQuery represents the query for one store/product record
type GetInventoryQuery struct {
	StoreID   uint
	ProductID uint
}

// GetInventoryHandler handles get inventory query
type GetInventoryHandler struct {
	repo domain.InventoryRepository
}

// NewGetInventoryHandler creates a new get inventory handler
func NewGetInventoryHandler(repo domain.InventoryRepository) *GetInventoryHandler {
	return &GetInventoryHandler{repo: repo}
}

// Handle executes the get inventory query
func (h *GetInventoryHandler) Handle(ctx context.Context, query GetInventoryQuery) (*domain.StoreInventory, error) {
	return h.repo.FindByStoreAndProduct(ctx, query.StoreID, query.ProductID)
}
