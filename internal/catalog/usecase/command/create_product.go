package command

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/AY-10/inventryy/internal/activity"
	activitydomain "github.com/AY-10/inventryy/internal/activity/domain"
	"github.com/AY-10/inventryy/internal/catalog/domain"
	"github.com/AY-10/inventryy/pkg/logger"
)

// CreateProductCommand represents the command to create a product
type CreateProductCommand struct {
	Name        string
	Description string
	CategoryID  uint
	SKU         string
	Barcode     *string
	Price       decimal.Decimal
	ActorID     uint
}

// CreateProductHandler handles product creation
type CreateProductHandler struct {
	products   domain.ProductRepository
	categories domain.CategoryRepository
	recorder   *activity.Recorder
}

// NewCreateProductHandler creates a new create product handler
func NewCreateProductHandler(
	products domain.ProductRepository,
	categories domain.CategoryRepository,
	recorder *activity.Recorder,
) *CreateProductHandler {
	return &CreateProductHandler{products: products, categories: categories, recorder: recorder}
}

// Handle executes the create product command
func (h *CreateProductHandler) Handle(ctx context.Context, cmd CreateProductCommand) (*domain.Product, error) {
	if cmd.Price.IsNegative() {
		return nil, domain.ErrInvalidPrice
	}

	if _, err := h.categories.FindByID(ctx, cmd.CategoryID); err != nil {
		return nil, err
	}

	product := &domain.Product{
		Name:        cmd.Name,
		Description: cmd.Description,
		CategoryID:  cmd.CategoryID,
		SKU:         cmd.SKU,
		Barcode:     cmd.Barcode,
		Price:       cmd.Price.Round(2),
	}

	if err := h.products.Create(ctx, product); err != nil {
		return nil, err
	}

	logger.Info(ctx).
		Uint("product_id", product.ID).
		Str("sku", product.SKU).
		Str("price", product.Price.String()).
		Msg("Product created")

	h.recorder.Record(ctx, cmd.ActorID, activitydomain.ActionCreate, "Product", product.ID, map[string]interface{}{
		"name":  product.Name,
		"sku":   product.SKU,
		"price": product.Price.String(),
	})

	return product, nil
}
