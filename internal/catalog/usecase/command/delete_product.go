package command

import (
	"context"

	"github.com/AY-10/inventryy/internal/activity"
	activitydomain "github.com/AY-10/inventryy/internal/activity/domain"
	"github.com/AY-10/inventryy/internal/catalog/domain"
	"github.com/AY-10/inventryy/pkg/logger"
)

// DeleteProductCommand represents the command to delete a product
type DeleteProductCommand struct {
	ProductID uint
	ActorID   uint
}

// DeleteProductHandler handles product deletion
type DeleteProductHandler struct {
	products domain.ProductRepository
	recorder *activity.Recorder
}

// NewDeleteProductHandler creates a new delete product handler
func NewDeleteProductHandler(products domain.ProductRepository, recorder *activity.Recorder) *DeleteProductHandler {
	return &DeleteProductHandler{products: products, recorder: recorder}
}

// Handle executes the delete product command
func (h *DeleteProductHandler) Handle(ctx context.Context, cmd DeleteProductCommand) error {
	if err := h.products.Delete(ctx, cmd.ProductID); err != nil {
		return err
	}

	logger.Info(ctx).Uint("product_id", cmd.ProductID).Msg("Product deleted")

	h.recorder.Record(ctx, cmd.ActorID, activitydomain.ActionDelete, "Product", cmd.ProductID, nil)

	return nil
}
