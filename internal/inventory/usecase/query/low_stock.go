package query

import (
	"context"
	"fmt"

	"github.com/AY-10/inventryy/internal/inventory/domain"
)

// LowStockQuery lists records at or below their reorder level
type LowStockQuery struct {
	StoreID uint // 0 means all stores
}

// LowStockHandler handles the low stock report
type LowStockHandler struct {
	repo domain.InventoryRepository
}

// NewLowStockHandler creates a new low stock handler
func NewLowStockHandler(repo domain.InventoryRepository) *LowStockHandler {
	return &LowStockHandler{repo: repo}
}

// Handle executes the low stock query
func (h *LowStockHandler) Handle(ctx context.Context, query LowStockQuery) ([]domain.StoreInventory, error) {
	records, err := h.repo.FindBelowReorderLevel(ctx, query.StoreID)
	if err != nil {
		return nil, fmt.Errorf("failed to list low stock records: %w", err)
	}
	return records, nil
}
