package command

import (
	"context"

	"github.com/AY-10/inventryy/internal/activity"
	activitydomain "github.com/AY-10/inventryy/internal/activity/domain"
	"github.com/AY-10/inventryy/internal/catalog/domain"
	"github.com/AY-10/inventryy/pkg/logger"
)

// CreateCategoryCommand represents the command to create a category
type CreateCategoryCommand struct {
	Name        string
	Description string
	ActorID     uint
}

// CreateCategoryHandler handles category creation
type CreateCategoryHandler struct {
	categories domain.CategoryRepository
	recorder   *activity.Recorder
}

// NewCreateCategoryHandler creates a new create category handler
func NewCreateCategoryHandler(categories domain.CategoryRepository, recorder *activity.Recorder) *CreateCategoryHandler {
	return &CreateCategoryHandler{categories: categories, recorder: recorder}
}

// Handle executes the create category command
func (h *CreateCategoryHandler) Handle(ctx context.Context, cmd CreateCategoryCommand) (*domain.Category, error) {
	category := &domain.Category{
		Name:        cmd.Name,
		Description: cmd.Description,
	}

	if err := h.categories.Create(ctx, category); err != nil {
		return nil, err
	}

	logger.Info(ctx).Uint("category_id", category.ID).Str("name", category.Name).Msg("Category created")

	h.recorder.Record(ctx, cmd.ActorID, activitydomain.ActionCreate, "Category", category.ID, map[string]interface{}{
		"name": category.Name,
	})

	return category, nil
}
