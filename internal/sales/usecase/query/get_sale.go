package query

import (
	"context"
	"fmt"

	"github.com/AY-10/inventryy/internal/sales/domain"
)

// GetSaleQuery represents the query to fetch a sale with its items
type GetSaleQuery struct {
	SaleID uint
}

// GetSaleHandler handles get sale query
type GetSaleHandler struct {
	repo domain.SaleRepository
}

// NewGetSaleHandler creates a new get sale handler
func NewGetSaleHandler(repo domain.SaleRepository) *GetSaleHandler {
	return &GetSaleHandler{repo: repo}
}

// Handle executes the get sale query
func (h *GetSaleHandler) Handle(ctx context.Context, query GetSaleQuery) (*domain.Sale, error) {
	if query.SaleID == 0 {
		return nil, fmt.Errorf("sale_id is required")
	}
	return h.repo.FindByID(ctx, query.SaleID)
}
