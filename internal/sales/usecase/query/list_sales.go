package query

import (
	"context"
	"fmt"

	"github.com/AY-10/inventryy/internal/sales/domain"
)

// ListSalesQuery represents the query to list sales
type ListSalesQuery struct {
	StoreID uint // 0 means all stores
	Limit   int
	Offset  int
}

// ListSalesHandler handles list sales query
type ListSalesHandler struct {
	repo domain.SaleRepository
}

// NewListSalesHandler creates a new list sales handler
func NewListSalesHandler(repo domain.SaleRepository) *ListSalesHandler {
	return &ListSalesHandler{repo: repo}
}

// Handle executes the list sales query
func (h *ListSalesHandler) Handle(ctx context.Context, query ListSalesQuery) ([]domain.Sale, error) {
	if query.Limit == 0 {
		query.Limit = 10
	}
	if query.Limit > 100 {
		query.Limit = 100
	}

	var (
		sales []domain.Sale
		err   error
	)
	if query.StoreID != 0 {
		sales, err = h.repo.FindByStore(ctx, query.StoreID, query.Limit, query.Offset)
	} else {
		sales, err = h.repo.FindAll(ctx, query.Limit, query.Offset)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}
	return sales, nil
}
