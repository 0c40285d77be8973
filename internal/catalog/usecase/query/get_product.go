package query

import (
	"context"

	"github.com/AY-10/inventryy/internal/catalog/domain"
)

// GetProductQuery represents the query to get a single product
type GetProductQuery struct {
	ProductID uint
	SKU       string
}

// GetProductHandler handles get product query
type GetProductHandler struct {
	repo domain.ProductRepository
}

// NewGetProductHandler creates a new get product handler
func NewGetProductHandler(repo domain.ProductRepository) *GetProductHandler {
	return &GetProductHandler{repo: repo}
}

// Handle executes the get product query. Lookup is by ID unless only a SKU
// is provided.
func (h *GetProductHandler) Handle(ctx context.Context, query GetProductQuery) (*domain.Product, error) {
	if query.ProductID != 0 {
		return h.repo.FindByID(ctx, query.ProductID)
	}
	return h.repo.FindBySKU(ctx, query.SKU)
}
