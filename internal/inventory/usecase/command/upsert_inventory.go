package command

import (
	"context"

	"github.com/AY-10/inventryy/internal/activity"
	activitydomain "github.com/AY-10/inventryy/internal/activity/domain"
	"github.com/AY-10/inventryy/internal/inventory/domain"
	"github.com/AY-10/inventryy/pkg/logger"
)

// UpsertInventoryCommand sets the stock record for a store/product pair.
// This is the administrative path for receiving stock and tuning reorder
// thresholds; sales never go through it.
type UpsertInventoryCommand struct {
	StoreID         uint
	ProductID       uint
	Quantity        int
	ReorderLevel    int
	ReorderQuantity int
	ActorID         uint
}

// UpsertInventoryHandler handles inventory upserts
type UpsertInventoryHandler struct {
	inventory domain.InventoryRepository
	recorder  *activity.Recorder
}

// NewUpsertInventoryHandler creates a new upsert inventory handler
func NewUpsertInventoryHandler(inventory domain.InventoryRepository, recorder *activity.Recorder) *UpsertInventoryHandler {
	return &UpsertInventoryHandler{inventory: inventory, recorder: recorder}
}

// Handle executes the upsert inventory command
func (h *UpsertInventoryHandler) Handle(ctx context.Context, cmd UpsertInventoryCommand) (*domain.StoreInventory, error) {
	if cmd.Quantity < 0 {
		return nil, &domain.InsufficientStockError{
			StoreID:   cmd.StoreID,
			ProductID: cmd.ProductID,
			Requested: cmd.Quantity,
			Available: 0,
		}
	}
	if cmd.Quantity > domain.MaxQuantity {
		return nil, domain.ErrQuantityOverflow
	}

	inv := &domain.StoreInventory{
		StoreID:         cmd.StoreID,
		ProductID:       cmd.ProductID,
		Quantity:        cmd.Quantity,
		ReorderLevel:    cmd.ReorderLevel,
		ReorderQuantity: cmd.ReorderQuantity,
	}

	if err := h.inventory.Upsert(ctx, inv); err != nil {
		return nil, err
	}

	logger.Info(ctx).
		Uint("store_id", inv.StoreID).
		Uint("product_id", inv.ProductID).
		Int("quantity", inv.Quantity).
		Msg("Inventory record upserted")

	h.recorder.Record(ctx, cmd.ActorID, activitydomain.ActionUpdate, "StoreInventory", inv.ID, map[string]interface{}{
		"store_id":   inv.StoreID,
		"product_id": inv.ProductID,
		"quantity":   inv.Quantity,
	})

	return inv, nil
}
