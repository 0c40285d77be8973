package query

import (
	"context"
	"fmt"

	"github.com/AY-10/inventryy/internal/inventory/domain"
)

// ListInventoryQuery represents the query to list inventory records
type ListInventoryQuery struct {
	StoreID uint // 0 means all stores
	Limit   int
	Offset  int
}

// ListInventoryHandler handles list inventory query
type ListInventoryHandler struct {
	repo domain.InventoryRepository
}

// NewListInventoryHandler creates a new list inventory handler
func NewListInventoryHandler(repo domain.InventoryRepository) *ListInventoryHandler {
	return &ListInventoryHandler{repo: repo}
}

// Handle executes the list inventory query
func (h *ListInventoryHandler) Handle(ctx context.Context, query ListInventoryQuery) ([]domain.StoreInventory, error) {
	if query.Limit == 0 {
		query.Limit = 20
	}
	if query.Limit > 100 {
		query.Limit = 100
	}

	var (
		records []domain.StoreInventory
		err     error
	)
	if query.StoreID != 0 {
		records, err = h.repo.FindByStore(ctx, query.StoreID, query.Limit, query.Offset)
	} else {
		records, err = h.repo.FindAll(ctx, query.Limit, query.Offset)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory: %w", err)
	}
	return records, nil
}
