package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/AY-10/inventryy/internal/sales/domain"
)

var tracer = otel.Tracer("sales-repository")

// TracingSaleRepository wraps a SaleRepository with spans around the
// transactional operations.
type TracingSaleRepository struct {
	domain.SaleRepository
}

func NewTracingSaleRepository(inner domain.SaleRepository) *TracingSaleRepository {
	return &TracingSaleRepository{SaleRepository: inner}
}

func (r *TracingSaleRepository) CreateSale(ctx context.Context, sale *domain.Sale) error {
	ctx, span := tracer.Start(ctx, "sales.CreateSale",
		trace.WithAttributes(
			attribute.Int("sale.store_id", int(sale.StoreID)),
			attribute.Int("sale.item_count", len(sale.Items)),
			attribute.String("sale.total_amount", sale.TotalAmount.String()),
		),
	)
	defer span.End()

	err := r.SaleRepository.CreateSale(ctx, sale)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	span.SetAttributes(attribute.Int("sale.id", int(sale.ID)))
	return nil
}

func (r *TracingSaleRepository) DeleteSale(ctx context.Context, id uint) (*domain.Sale, error) {
	ctx, span := tracer.Start(ctx, "sales.DeleteSale",
		trace.WithAttributes(attribute.Int("sale.id", int(id))),
	)
	defer span.End()

	sale, err := r.SaleRepository.DeleteSale(ctx, id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("sale.item_count", len(sale.Items)))
	return sale, nil
}

func (r *TracingSaleRepository) DeleteSaleItem(ctx context.Context, itemID uint) (*domain.Sale, error) {
	ctx, span := tracer.Start(ctx, "sales.DeleteSaleItem",
		trace.WithAttributes(attribute.Int("sale_item.id", int(itemID))),
	)
	defer span.End()

	sale, err := r.SaleRepository.DeleteSaleItem(ctx, itemID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return sale, nil
}
