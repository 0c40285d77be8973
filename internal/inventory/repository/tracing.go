package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/AY-10/inventryy/internal/inventory/domain"
)

var tracer = otel.Tracer("inventory-repository")

// TracingInventoryRepository wraps an InventoryRepository with spans around
// the ledger operations, where reservation contention shows up.
type TracingInventoryRepository struct {
	domain.InventoryRepository
}

func NewTracingInventoryRepository(inner domain.InventoryRepository) *TracingInventoryRepository {
	return &TracingInventoryRepository{InventoryRepository: inner}
}

func (r *TracingInventoryRepository) WithTx(tx *gorm.DB) domain.InventoryRepository {
	return &TracingInventoryRepository{InventoryRepository: r.InventoryRepository.WithTx(tx)}
}

func (r *TracingInventoryRepository) Reserve(ctx context.Context, storeID, productID uint, quantity int) error {
	ctx, span := tracer.Start(ctx, "inventory.Reserve",
		trace.WithAttributes(
			attribute.Int("inventory.store_id", int(storeID)),
			attribute.Int("inventory.product_id", int(productID)),
			attribute.Int("inventory.quantity", quantity),
		),
	)
	defer span.End()

	err := r.InventoryRepository.Reserve(ctx, storeID, productID, quantity)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

func (r *TracingInventoryRepository) Restore(ctx context.Context, storeID, productID uint, quantity int) error {
	ctx, span := tracer.Start(ctx, "inventory.Restore",
		trace.WithAttributes(
			attribute.Int("inventory.store_id", int(storeID)),
			attribute.Int("inventory.product_id", int(productID)),
			attribute.Int("inventory.quantity", quantity),
		),
	)
	defer span.End()

	err := r.InventoryRepository.Restore(ctx, storeID, productID, quantity)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}
