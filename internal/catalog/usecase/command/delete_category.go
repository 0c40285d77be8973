package command

import (
	"context"

	"github.com/AY-10/inventryy/internal/activity"
	activitydomain "github.com/AY-10/inventryy/internal/activity/domain"
	"github.com/AY-10/inventryy/internal/catalog/domain"
	"github.com/AY-10/inventryy/pkg/logger"
)

// DeleteCategoryCommand represents the command to delete a category
type DeleteCategoryCommand struct {
	CategoryID uint
	ActorID    uint
}

// DeleteCategoryHandler handles category deletion
type DeleteCategoryHandler struct {
	categories domain.CategoryRepository
	recorder   *activity.Recorder
}

// NewDeleteCategoryHandler creates a new delete category handler
func NewDeleteCategoryHandler(categories domain.CategoryRepository, recorder *activity.Recorder) *DeleteCategoryHandler {
	return &DeleteCategoryHandler{categories: categories, recorder: recorder}
}

// Handle executes the delete category command
func (h *DeleteCategoryHandler) Handle(ctx context.Context, cmd DeleteCategoryCommand) error {
	if err := h.categories.Delete(ctx, cmd.CategoryID); err != nil {
		return err
	}

	logger.Info(ctx).Uint("category_id", cmd.CategoryID).Msg("Category deleted")

	h.recorder.Record(ctx, cmd.ActorID, activitydomain.ActionDelete, "Category", cmd.CategoryID, nil)

	return nil
}
