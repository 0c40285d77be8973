package command

import (
	"context"

	"github.com/AY-10/inventryy/internal/activity"
	activitydomain "github.com/AY-10/inventryy/internal/activity/domain"
	"github.com/AY-10/inventryy/internal/sales/domain"
	"github.com/AY-10/inventryy/pkg/logger"
	"github.com/AY-10/inventryy/pkg/metrics"
)

// DeleteSaleCommand represents the command to delete a sale
type DeleteSaleCommand struct {
	SaleID  uint
	ActorID uint
}

// DeleteSaleHandler removes a sale and its items, restoring every touched
// inventory quantity, as one atomic unit.
type DeleteSaleHandler struct {
	sales    domain.SaleRepository
	recorder *activity.Recorder
}

// NewDeleteSaleHandler creates a new delete sale handler
func NewDeleteSaleHandler(sales domain.SaleRepository, recorder *activity.Recorder) *DeleteSaleHandler {
	return &DeleteSaleHandler{sales: sales, recorder: recorder}
}

// Handle executes the delete sale command
func (h *DeleteSaleHandler) Handle(ctx context.Context, cmd DeleteSaleCommand) error {
	sale, err := h.sales.DeleteSale(ctx, cmd.SaleID)
	if err != nil {
		return err
	}

	metrics.SalesDeleted.Inc()

	logger.Info(ctx).
		Uint("sale_id", sale.ID).
		Uint("store_id", sale.StoreID).
		Int("items_restored", len(sale.Items)).
		Msg("Sale deleted, inventory restored")

	h.recorder.Record(ctx, cmd.ActorID, activitydomain.ActionDelete, "Sale", sale.ID, map[string]interface{}{
		"store_id":     sale.StoreID,
		"total_amount": sale.TotalAmount.String(),
		"item_count":   len(sale.Items),
	})

	return nil
}
