package query

import (
	"context"
	"fmt"

	"github.com/AY-10/inventryy/internal/activity/domain"
)

// ListActivitiesQuery filters the audit trail. UserID filters by actor;
// EntityType plus EntityID filters by target. Filters are exclusive, with
// the user filter taking precedence.
type ListActivitiesQuery struct {
	UserID     uint
	EntityType string
	EntityID   uint
	Limit      int
	Offset     int
}

// ListActivitiesHandler handles list activities query
type ListActivitiesHandler struct {
	repo domain.ActivityRepository
}

// NewListActivitiesHandler creates a new list activities handler
func NewListActivitiesHandler(repo domain.ActivityRepository) *ListActivitiesHandler {
	return &ListActivitiesHandler{repo: repo}
}

// Handle executes the list activities query
func (h *ListActivitiesHandler) Handle(ctx context.Context, query ListActivitiesQuery) ([]domain.Activity, error) {
	if query.Limit == 0 {
		query.Limit = 20
	}
	if query.Limit > 100 {
		query.Limit = 100
	}

	var (
		activities []domain.Activity
		err        error
	)
	switch {
	case query.UserID != 0:
		activities, err = h.repo.FindByUser(ctx, query.UserID, query.Limit, query.Offset)
	case query.EntityType != "":
		activities, err = h.repo.FindByEntity(ctx, query.EntityType, query.EntityID, query.Limit, query.Offset)
	default:
		activities, err = h.repo.FindAll(ctx, query.Limit, query.Offset)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}
	return activities, nil
}
