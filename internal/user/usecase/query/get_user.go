package query

import (
	"context"

	"github.com/AY-10/inventryy/internal/user/domain"
)

// GetUserQuery represents the query to get a user
type GetUserQuery struct {
	UserID uint
}

// GetUserHandler handles get user query
type GetUserHandler struct {
	repo domain.UserRepository
}

// NewGetUserHandler creates a new get user handler
func NewGetUserHandler(repo domain.UserRepository) *GetUserHandler {
	return &GetUserHandler{repo: repo}
}

// Handle executes the get user query
func (h *GetUserHandler) Handle(ctx context.Context, query GetUserQuery) (*domain.User, error) {
	return h.repo.FindByID(ctx, query.UserID)
}
