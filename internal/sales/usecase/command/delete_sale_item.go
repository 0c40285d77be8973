package command

import (
	"context"

	"github.com/AY-10/inventryy/internal/activity"
	activitydomain "github.com/AY-10/inventryy/internal/activity/domain"
	"github.com/AY-10/inventryy/internal/sales/domain"
	"github.com/AY-10/inventryy/pkg/logger"
)

// DeleteSaleItemCommand represents the command to delete a single sale item
type DeleteSaleItemCommand struct {
	SaleItemID uint
	ActorID    uint
}

// DeleteSaleItemHandler removes one line from a sale: the item's quantity
// goes back to inventory and the parent total is recomputed. The parent
// sale itself is never deleted here.
type DeleteSaleItemHandler struct {
	sales    domain.SaleRepository
	recorder *activity.Recorder
}

// NewDeleteSaleItemHandler creates a new delete sale item handler
func NewDeleteSaleItemHandler(sales domain.SaleRepository, recorder *activity.Recorder) *DeleteSaleItemHandler {
	return &DeleteSaleItemHandler{sales: sales, recorder: recorder}
}

// Handle executes the delete sale item command, returning the updated sale
func (h *DeleteSaleItemHandler) Handle(ctx context.Context, cmd DeleteSaleItemCommand) (*domain.Sale, error) {
	sale, err := h.sales.DeleteSaleItem(ctx, cmd.SaleItemID)
	if err != nil {
		return nil, err
	}

	logger.Info(ctx).
		Uint("sale_item_id", cmd.SaleItemID).
		Uint("sale_id", sale.ID).
		Str("new_total", sale.TotalAmount.String()).
		Msg("Sale item deleted, quantity restored")

	h.recorder.Record(ctx, cmd.ActorID, activitydomain.ActionDelete, "SaleItem", cmd.SaleItemID, map[string]interface{}{
		"sale_id":   sale.ID,
		"new_total": sale.TotalAmount.String(),
	})

	return sale, nil
}
