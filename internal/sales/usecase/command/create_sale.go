package command

import (
	"context"
	"errors"
	"time"

	"github.com/AY-10/inventryy/internal/activity"
	activitydomain "github.com/AY-10/inventryy/internal/activity/domain"
	inventorydomain "github.com/AY-10/inventryy/internal/inventory/domain"
	"github.com/AY-10/inventryy/internal/sales/domain"
	"github.com/AY-10/inventryy/kafka"
	"github.com/AY-10/inventryy/pkg/logger"
	"github.com/AY-10/inventryy/pkg/metrics"
)

// CreateSaleCommand represents the command to create a sale
type CreateSaleCommand struct {
	StoreID       uint
	Date          time.Time
	PaymentMethod string
	Lines         []domain.LineInput
	ActorID       uint
}

// CreateSaleHandler validates the proposed sale, reserves inventory, and
// commits the aggregate atomically. Activity recording and events run after
// commit and never undo the sale.
type CreateSaleHandler struct {
	sales     domain.SaleRepository
	inventory inventorydomain.InventoryRepository
	catalog   domain.CatalogLookup
	recorder  *activity.Recorder
	events    *kafka.Publisher
}

// NewCreateSaleHandler creates a new create sale handler
func NewCreateSaleHandler(
	sales domain.SaleRepository,
	inventory inventorydomain.InventoryRepository,
	catalog domain.CatalogLookup,
	recorder *activity.Recorder,
	events *kafka.Publisher,
) *CreateSaleHandler {
	return &CreateSaleHandler{
		sales:     sales,
		inventory: inventory,
		catalog:   catalog,
		recorder:  recorder,
		events:    events,
	}
}

// Handle executes the create sale command
func (h *CreateSaleHandler) Handle(ctx context.Context, cmd CreateSaleCommand) (*domain.Sale, error) {
	sale, err := domain.BuildSale(ctx, cmd.StoreID, cmd.Date, cmd.PaymentMethod, cmd.Lines, h.catalog)
	if err != nil {
		metrics.SalesRejected.WithLabelValues("validation").Inc()
		return nil, err
	}

	if err := h.sales.CreateSale(ctx, sale); err != nil {
		metrics.SalesRejected.WithLabelValues(rejectionReason(err)).Inc()
		return nil, err
	}

	metrics.SalesCreated.Inc()
	for range sale.Items {
		metrics.InventoryReservations.Inc()
	}

	logger.Info(ctx).
		Uint("sale_id", sale.ID).
		Uint("store_id", sale.StoreID).
		Int("items", len(sale.Items)).
		Str("total_amount", sale.TotalAmount.String()).
		Msg("Sale created")

	h.recorder.Record(ctx, cmd.ActorID, activitydomain.ActionCreate, "Sale", sale.ID, map[string]interface{}{
		"store_id":     sale.StoreID,
		"total_amount": sale.TotalAmount.String(),
		"item_count":   len(sale.Items),
	})

	h.events.PublishSaleCompleted(ctx, kafka.SaleCompletedEvent{
		SaleID:        sale.ID,
		StoreID:       sale.StoreID,
		TotalAmount:   sale.TotalAmount.String(),
		PaymentMethod: sale.PaymentMethod,
		ItemCount:     len(sale.Items),
	})

	h.emitLowStockAlerts(ctx, sale)

	return sale, nil
}

// emitLowStockAlerts checks every touched record after commit and publishes
// a low-stock event for any at or below its reorder level. A read failure
// here only costs the alert, never the sale.
func (h *CreateSaleHandler) emitLowStockAlerts(ctx context.Context, sale *domain.Sale) {
	seen := make(map[uint]bool, len(sale.Items))
	for _, item := range sale.Items {
		if seen[item.ProductID] {
			continue
		}
		seen[item.ProductID] = true

		inv, err := h.inventory.FindByStoreAndProduct(ctx, sale.StoreID, item.ProductID)
		if err != nil {
			logger.Warn(ctx).Err(err).
				Uint("store_id", sale.StoreID).
				Uint("product_id", item.ProductID).
				Msg("Failed to check reorder level after sale")
			continue
		}
		if !inv.NeedsReorder() {
			continue
		}

		metrics.LowStockDetected.Inc()
		h.events.PublishLowStock(ctx, kafka.LowStockEvent{
			StoreID:         inv.StoreID,
			ProductID:       inv.ProductID,
			Quantity:        inv.Quantity,
			ReorderLevel:    inv.ReorderLevel,
			ReorderQuantity: inv.ReorderQuantity,
		})
	}
}

func rejectionReason(err error) string {
	var stockErr *inventorydomain.InsufficientStockError
	if errors.As(err, &stockErr) {
		return "insufficient_stock"
	}
	return "storage"
}
