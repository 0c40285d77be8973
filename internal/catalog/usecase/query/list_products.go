package query

import (
	"context"
	"fmt"

	"github.com/AY-10/inventryy/internal/catalog/domain"
)

// ListProductsQuery represents the query to list products
type ListProductsQuery struct {
	CategoryID uint // 0 means all categories
	Limit      int
	Offset     int
}

// ListProductsHandler handles list products query
type ListProductsHandler struct {
	repo domain.ProductRepository
}

// NewListProductsHandler creates a new list products handler
func NewListProductsHandler(repo domain.ProductRepository) *ListProductsHandler {
	return &ListProductsHandler{repo: repo}
}

// Handle executes the list products query
func (h *ListProductsHandler) Handle(ctx context.Context, query ListProductsQuery) ([]domain.Product, error) {
	if query.Limit == 0 {
		query.Limit = 10
	}
	if query.Limit > 100 {
		query.Limit = 100
	}

	var (
		products []domain.Product
		err      error
	)
	if query.CategoryID != 0 {
		products, err = h.repo.FindByCategory(ctx, query.CategoryID, query.Limit, query.Offset)
	} else {
		products, err = h.repo.FindAll(ctx, query.Limit, query.Offset)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}
