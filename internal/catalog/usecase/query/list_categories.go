package query

import (
	"context"
	"fmt"

	"github.com/AY-10/inventryy/internal/catalog/domain"
)

// ListCategoriesQuery represents the query to list categories
type ListCategoriesQuery struct {
	Limit  int
	Offset int
}

// ListCategoriesHandler handles list categories query
type ListCategoriesHandler struct {
	repo domain.CategoryRepository
}

// NewListCategoriesHandler creates a new list categories handler
func NewListCategoriesHandler(repo domain.CategoryRepository) *ListCategoriesHandler {
	return &ListCategoriesHandler{repo: repo}
}

// Handle executes the list categories query
func (h *ListCategoriesHandler) Handle(ctx context.Context, query ListCategoriesQuery) ([]domain.Category, error) {
	if query.Limit == 0 {
		query.Limit = 50
	}
	categories, err := h.repo.FindAll(ctx, query.Limit, query.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}
