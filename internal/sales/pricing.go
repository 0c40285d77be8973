package sales

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	catalogdomain "github.com/AY-10/inventryy/internal/catalog/domain"
	"github.com/AY-10/inventryy/internal/sales/domain"
)

// CatalogPriceLookup resolves current unit prices from the product catalog
// for sale lines submitted without an explicit price.
type CatalogPriceLookup struct {
	products catalogdomain.ProductRepository
}

func NewCatalogPriceLookup(products catalogdomain.ProductRepository) *CatalogPriceLookup {
	return &CatalogPriceLookup{products: products}
}

func (l *CatalogPriceLookup) ProductPrice(ctx context.Context, productID uint) (decimal.Decimal, error) {
	product, err := l.products.FindByID(ctx, productID)
	if errors.Is(err, catalogdomain.ErrProductNotFound) {
		return decimal.Zero, domain.ErrProductNotFound
	}
	if err != nil {
		return decimal.Zero, err
	}
	return product.Price, nil
}
