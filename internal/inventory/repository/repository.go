package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/AY-10/inventryy/internal/inventory/domain"
)

type GormInventoryRepository struct {
	db *gorm.DB
}

func NewGormInventoryRepository(db *gorm.DB) *GormInventoryRepository {
	return &GormInventoryRepository{db: db}
}

func (r *GormInventoryRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.StoreInventory{})
}

// WithTx binds the repository to an open transaction
func (r *GormInventoryRepository) WithTx(tx *gorm.DB) domain.InventoryRepository {
	return &GormInventoryRepository{db: tx}
}

// Reserve applies a guarded delta decrement. The WHERE clause rejects any
// update that would drive quantity below zero, and the UPDATE itself takes
// the row lock that serializes concurrent sales on the same product.
func (r *GormInventoryRepository) Reserve(ctx context.Context, storeID, productID uint, quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("reserve quantity must be positive, got %d", quantity)
	}

	res := r.db.WithContext(ctx).
		Model(&domain.StoreInventory{}).
		Where("store_id = ? AND product_id = ? AND quantity >= ?", storeID, productID, quantity).
		Updates(map[string]interface{}{
			"quantity":     gorm.Expr("quantity - ?", quantity),
			"last_updated": time.Now(),
		})
	if res.Error != nil {
		return fmt.Errorf("failed to reserve stock: %w", res.Error)
	}
	if res.RowsAffected > 0 {
		return nil
	}

	// Either the record is missing or the stock is short. Lock the row so
	// the reported availability is accurate at the time of failure.
	var inv domain.StoreInventory
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("store_id = ? AND product_id = ?", storeID, productID).
		First(&inv).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &domain.InsufficientStockError{
			StoreID:   storeID,
			ProductID: productID,
			Requested: quantity,
			Available: 0,
		}
	}
	if err != nil {
		return fmt.Errorf("failed to read stock: %w", err)
	}

	return &domain.InsufficientStockError{
		StoreID:   storeID,
		ProductID: productID,
		Requested: quantity,
		Available: inv.Quantity,
	}
}

// Restore applies a delta increment. The record must exist: inventory is
// never deleted while a referencing sale item exists, so a missing row or
// an overflow means corrupted data and escalates as fatal.
func (r *GormInventoryRepository) Restore(ctx context.Context, storeID, productID uint, quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("restore quantity must be positive, got %d", quantity)
	}

	var inv domain.StoreInventory
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("store_id = ? AND product_id = ?", storeID, productID).
		First(&inv).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrInventoryNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to read stock: %w", err)
	}

	if _, err := domain.RestoredQuantity(inv.Quantity, quantity); err != nil {
		return err
	}

	res := r.db.WithContext(ctx).
		Model(&domain.StoreInventory{}).
		Where("store_id = ? AND product_id = ?", storeID, productID).
		Updates(map[string]interface{}{
			"quantity":     gorm.Expr("quantity + ?", quantity),
			"last_updated": time.Now(),
		})
	if res.Error != nil {
		return fmt.Errorf("failed to restore stock: %w", res.Error)
	}
	return nil
}

// Upsert creates the record on first stocking, or overwrites levels and
// quantity for an existing pair. Used by stocking endpoints only, never by
// the sale path.
func (r *GormInventoryRepository) Upsert(ctx context.Context, inv *domain.StoreInventory) error {
	inv.LastUpdated = time.Now()
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "store_id"}, {Name: "product_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"quantity", "reorder_level", "reorder_quantity", "last_updated", "updated_at",
			}),
		}).
		Create(inv).Error
}

func (r *GormInventoryRepository) FindByID(ctx context.Context, id uint) (*domain.StoreInventory, error) {
	var inv domain.StoreInventory
	err := r.db.WithContext(ctx).First(&inv, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrInventoryNotFound
	}
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *GormInventoryRepository) FindByStoreAndProduct(ctx context.Context, storeID, productID uint) (*domain.StoreInventory, error) {
	var inv domain.StoreInventory
	err := r.db.WithContext(ctx).
		Where("store_id = ? AND product_id = ?", storeID, productID).
		First(&inv).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrInventoryNotFound
	}
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *GormInventoryRepository) FindByStore(ctx context.Context, storeID uint, limit, offset int) ([]domain.StoreInventory, error) {
	var invs []domain.StoreInventory
	err := r.db.WithContext(ctx).
		Where("store_id = ?", storeID).
		Limit(limit).Offset(offset).
		Find(&invs).Error
	return invs, err
}

func (r *GormInventoryRepository) FindAll(ctx context.Context, limit, offset int) ([]domain.StoreInventory, error) {
	var invs []domain.StoreInventory
	err := r.db.WithContext(ctx).Limit(limit).Offset(offset).Find(&invs).Error
	return invs, err
}

func (r *GormInventoryRepository) FindBelowReorderLevel(ctx context.Context, storeID uint) ([]domain.StoreInventory, error) {
	q := r.db.WithContext(ctx).Where("quantity <= reorder_level")
	if storeID != 0 {
		q = q.Where("store_id = ?", storeID)
	}
	var invs []domain.StoreInventory
	err := q.Find(&invs).Error
	return invs, err
}

func (r *GormInventoryRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&domain.StoreInventory{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrInventoryNotFound
	}
	return nil
}
