package command

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/AY-10/inventryy/internal/activity"
	activitydomain "github.com/AY-10/inventryy/internal/activity/domain"
	"github.com/AY-10/inventryy/internal/catalog/domain"
	"github.com/AY-10/inventryy/kafka"
	"github.com/AY-10/inventryy/pkg/logger"
)

// UpdatePriceCommand represents the privileged price change
type UpdatePriceCommand struct {
	ProductID uint
	NewPrice  decimal.Decimal
	ActorID   uint
}

// UpdatePriceResult carries both sides of the change for the audit trail
type UpdatePriceResult struct {
	ProductID uint
	OldPrice  decimal.Decimal
	NewPrice  decimal.Decimal
}

// UpdatePriceHandler changes a product's current price. The old price is
// captured atomically with the write; completed sales keep their recorded
// unit prices and totals.
type UpdatePriceHandler struct {
	products domain.ProductRepository
	recorder *activity.Recorder
	events   *kafka.Publisher
}

// NewUpdatePriceHandler creates a new update price handler
func NewUpdatePriceHandler(
	products domain.ProductRepository,
	recorder *activity.Recorder,
	events *kafka.Publisher,
) *UpdatePriceHandler {
	return &UpdatePriceHandler{products: products, recorder: recorder, events: events}
}

// Handle executes the update price command
func (h *UpdatePriceHandler) Handle(ctx context.Context, cmd UpdatePriceCommand) (*UpdatePriceResult, error) {
	if cmd.NewPrice.IsNegative() {
		return nil, domain.ErrInvalidPrice
	}

	newPrice := cmd.NewPrice.Round(2)
	oldPrice, err := h.products.UpdatePrice(ctx, cmd.ProductID, newPrice)
	if err != nil {
		return nil, err
	}

	logger.Info(ctx).
		Uint("product_id", cmd.ProductID).
		Str("old_price", oldPrice.String()).
		Str("new_price", newPrice.String()).
		Uint("actor_id", cmd.ActorID).
		Msg("Product price updated")

	h.recorder.Record(ctx, cmd.ActorID, activitydomain.ActionPriceUpdate, "Product", cmd.ProductID, map[string]interface{}{
		"old_price": oldPrice.String(),
		"new_price": newPrice.String(),
	})

	h.events.PublishPriceUpdated(ctx, kafka.PriceUpdatedEvent{
		ProductID: cmd.ProductID,
		OldPrice:  oldPrice.String(),
		NewPrice:  newPrice.String(),
		UpdatedBy: cmd.ActorID,
	})

	return &UpdatePriceResult{
		ProductID: cmd.ProductID,
		OldPrice:  oldPrice,
		NewPrice:  newPrice,
	}, nil
}
