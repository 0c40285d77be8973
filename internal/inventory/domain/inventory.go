package domain

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// MaxQuantity bounds a single inventory record. Restoring past this limit
// indicates corrupted data and is treated as fatal, never clamped.
const MaxQuantity = 1<<31 - 1

// StoreInventory tracks the stock of one product in one store.
// The (store_id, product_id) pair is unique; quantity is never negative and
// is mutated only through Reserve and Restore.
type StoreInventory struct {
	ID              uint           `json:"id" gorm:"primaryKey"`
	StoreID         uint           `json:"store_id" gorm:"not null;uniqueIndex:idx_store_product"`
	ProductID       uint           `json:"product_id" gorm:"not null;uniqueIndex:idx_store_product"`
	Quantity        int            `json:"quantity" gorm:"not null;default:0"`
	ReorderLevel    int            `json:"reorder_level" gorm:"not null;default:10"`
	ReorderQuantity int            `json:"reorder_quantity" gorm:"not null;default:20"`
	LastUpdated     time.Time      `json:"last_updated"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName specifies the table name
func (StoreInventory) TableName() string {
	return "store_inventories"
}

// NeedsReorder reports whether the record is at or below its reorder level
func (s *StoreInventory) NeedsReorder() bool {
	return s.Quantity <= s.ReorderLevel
}

// RestoredQuantity returns the quantity after restoring delta units, or
// ErrQuantityOverflow if the result would exceed MaxQuantity. The result is
// never clamped.
func RestoredQuantity(current, delta int) (int, error) {
	if current > MaxQuantity-delta {
		return 0, ErrQuantityOverflow
	}
	return current + delta, nil
}

var (
	// ErrInventoryNotFound is returned when no record exists for a store/product pair
	ErrInventoryNotFound = errors.New("inventory record not found")

	// ErrQuantityOverflow is returned when a restore would exceed MaxQuantity.
	// It is fatal: the transaction must roll back rather than clamp.
	ErrQuantityOverflow = errors.New("inventory quantity overflow")
)

// InsufficientStockError is returned when a reservation would drive the
// quantity below zero. No change is applied when it is returned.
type InsufficientStockError struct {
	StoreID   uint
	ProductID uint
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %d in store %d: requested %d, available %d",
		e.ProductID, e.StoreID, e.Requested, e.Available)
}

// Ledger exposes the only two operations allowed to mutate quantities.
// Mutations are deltas, never absolute overwrites, so concurrent
// reservations compose correctly under row locks.
type Ledger interface {
	// Reserve decrements quantity iff the result stays >= 0, otherwise it
	// returns *InsufficientStockError and applies no change.
	Reserve(ctx context.Context, storeID, productID uint, quantity int) error

	// Restore increments quantity. A missing record or an overflow is fatal.
	Restore(ctx context.Context, storeID, productID uint, quantity int) error
}

// InventoryRepository defines the contract for inventory data access
type InventoryRepository interface {
	Ledger

	Upsert(ctx context.Context, inv *StoreInventory) error
	FindByID(ctx context.Context, id uint) (*StoreInventory, error)
	FindByStoreAndProduct(ctx context.Context, storeID, productID uint) (*StoreInventory, error)
	FindByStore(ctx context.Context, storeID uint, limit, offset int) ([]StoreInventory, error)
	FindAll(ctx context.Context, limit, offset int) ([]StoreInventory, error)
	FindBelowReorderLevel(ctx context.Context, storeID uint) ([]StoreInventory, error)
	Delete(ctx context.Context, id uint) error

	// WithTx returns a repository bound to the given transaction so that
	// reservations and sale rows commit as one unit.
	WithTx(tx *gorm.DB) InventoryRepository
}
