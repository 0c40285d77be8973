package domain

import "context"

// SaleRepository defines the contract for sale data access. The write
// operations are transactional: inventory deltas and sale rows commit as
// one unit or not at all.
type SaleRepository interface {
	// CreateSale reserves stock for every item and persists the aggregate
	// inside a single transaction. On *InsufficientStockError nothing is
	// persisted and no stock is changed.
	CreateSale(ctx context.Context, sale *Sale) error

	// DeleteSale restores every item's stock, then removes the items and
	// the sale, atomically. Returns the removed sale for auditing.
	DeleteSale(ctx context.Context, id uint) (*Sale, error)

	// DeleteSaleItem restores a single item's stock, removes it, and
	// recomputes the parent's total. The parent sale is never removed.
	// Returns the updated parent.
	DeleteSaleItem(ctx context.Context, itemID uint) (*Sale, error)

	FindByID(ctx context.Context, id uint) (*Sale, error)
	FindAll(ctx context.Context, limit, offset int) ([]Sale, error)
	FindByStore(ctx context.Context, storeID uint, limit, offset int) ([]Sale, error)
}
