package command

import (
	"context"

	"github.com/AY-10/inventryy/internal/activity"
	activitydomain "github.com/AY-10/inventryy/internal/activity/domain"
	"github.com/AY-10/inventryy/internal/catalog/domain"
	"github.com/AY-10/inventryy/pkg/logger"
)

// UpdateProductCommand updates descriptive product fields. Price changes go
// through UpdatePriceCommand only.
type UpdateProductCommand struct {
	ProductID   uint
	Name        string
	Description string
	CategoryID  uint
	Barcode     *string
	ActorID     uint
}

// UpdateProductHandler handles product updates
type UpdateProductHandler struct {
	products domain.ProductRepository
	recorder *activity.Recorder
}

// NewUpdateProductHandler creates a new update product handler
func NewUpdateProductHandler(products domain.ProductRepository, recorder *activity.Recorder) *UpdateProductHandler {
	return &UpdateProductHandler{products: products, recorder: recorder}
}

// Handle executes the update product command
func (h *UpdateProductHandler) Handle(ctx context.Context, cmd UpdateProductCommand) (*domain.Product, error) {
	product, err := h.products.FindByID(ctx, cmd.ProductID)
	if err != nil {
		return nil, err
	}

	if cmd.Name != "" {
		product.Name = cmd.Name
	}
	if cmd.Description != "" {
		product.Description = cmd.Description
	}
	if cmd.CategoryID != 0 {
		product.CategoryID = cmd.CategoryID
	}
	if cmd.Barcode != nil {
		product.Barcode = cmd.Barcode
	}

	if err := h.products.Update(ctx, product); err != nil {
		return nil, err
	}

	logger.Info(ctx).Uint("product_id", product.ID).Msg("Product updated")

	h.recorder.Record(ctx, cmd.ActorID, activitydomain.ActionUpdate, "Product", product.ID, map[string]interface{}{
		"name": product.Name,
	})

	return product, nil
}
