package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/AY-10/inventryy/internal/catalog/domain"
)

var tracer = otel.Tracer("catalog-repository")

// TracingProductRepository wraps a ProductRepository with spans around reads
// and the price update.
type TracingProductRepository struct {
	domain.ProductRepository
}

func NewTracingProductRepository(inner domain.ProductRepository) *TracingProductRepository {
	return &TracingProductRepository{ProductRepository: inner}
}

func (r *TracingProductRepository) FindByID(ctx context.Context, id uint) (*domain.Product, error) {
	ctx, span := tracer.Start(ctx, "product.FindByID",
		trace.WithAttributes(attribute.Int("product.id", int(id))),
	)
	defer span.End()

	product, err := r.ProductRepository.FindByID(ctx, id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return product, err
}

func (r *TracingProductRepository) UpdatePrice(ctx context.Context, id uint, newPrice decimal.Decimal) (decimal.Decimal, error) {
	ctx, span := tracer.Start(ctx, "product.UpdatePrice",
		trace.WithAttributes(
			attribute.Int("product.id", int(id)),
			attribute.String("product.new_price", newPrice.String()),
		),
	)
	defer span.End()

	oldPrice, err := r.ProductRepository.UpdatePrice(ctx, id, newPrice)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return oldPrice, err
}
