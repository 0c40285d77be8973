package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	inventorydomain "github.com/AY-10/inventryy/internal/inventory/domain"
	"github.com/AY-10/inventryy/internal/sales/domain"
)

// GormSaleRepository persists sales and coordinates inventory reservations.
// Every write runs inside one database transaction: the row locks taken by
// the reservation updates are the only concurrency control, so multiple
// process instances stay correct without in-process locking.
type GormSaleRepository struct {
	db        *gorm.DB
	inventory inventorydomain.InventoryRepository
}

func NewGormSaleRepository(db *gorm.DB, inventory inventorydomain.InventoryRepository) *GormSaleRepository {
	return &GormSaleRepository{db: db, inventory: inventory}
}

func (r *GormSaleRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Sale{}, &domain.SaleItem{})
}

// CreateSale reserves stock for every line and inserts the sale with its
// items as one unit. A failed reservation aborts the transaction, which
// also discards the reservations already applied; ReserveAll additionally
// compensates them explicitly so the failure surfaces with clean state
// whether or not the surrounding transaction is rolled back.
func (r *GormSaleRepository) CreateSale(ctx context.Context, sale *domain.Sale) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ledger := r.inventory.WithTx(tx)

		if err := domain.ReserveAll(ctx, ledger, sale.StoreID, sale.Items); err != nil {
			return err
		}

		if err := tx.Create(sale).Error; err != nil {
			return fmt.Errorf("failed to persist sale: %w", err)
		}
		return nil
	})
}

// DeleteSale restores stock for every item and removes the aggregate.
// The cascade is explicit: items are deleted before the sale row.
func (r *GormSaleRepository) DeleteSale(ctx context.Context, id uint) (*domain.Sale, error) {
	var deleted *domain.Sale

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var sale domain.Sale
		if err := tx.Preload("Items").First(&sale, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrSaleNotFound
			}
			return err
		}

		ledger := r.inventory.WithTx(tx)
		if err := domain.RestoreAll(ctx, ledger, sale.StoreID, sale.Items); err != nil {
			return err
		}

		if err := tx.Where("sale_id = ?", sale.ID).Delete(&domain.SaleItem{}).Error; err != nil {
			return fmt.Errorf("failed to delete sale items: %w", err)
		}
		if err := tx.Delete(&domain.Sale{}, sale.ID).Error; err != nil {
			return fmt.Errorf("failed to delete sale: %w", err)
		}

		deleted = &sale
		return nil
	})
	if err != nil {
		return nil, err
	}
	return deleted, nil
}

// DeleteSaleItem removes one line from a sale, restoring its quantity and
// recomputing the parent total. The parent sale stays, even when emptied.
func (r *GormSaleRepository) DeleteSaleItem(ctx context.Context, itemID uint) (*domain.Sale, error) {
	var updated *domain.Sale

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var item domain.SaleItem
		if err := tx.First(&item, itemID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrSaleItemNotFound
			}
			return err
		}

		var sale domain.Sale
		if err := tx.Preload("Items").First(&sale, item.SaleID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrSaleNotFound
			}
			return err
		}

		ledger := r.inventory.WithTx(tx)
		if err := ledger.Restore(ctx, sale.StoreID, item.ProductID, item.Quantity); err != nil {
			return err
		}

		if err := tx.Delete(&domain.SaleItem{}, item.ID).Error; err != nil {
			return fmt.Errorf("failed to delete sale item: %w", err)
		}

		remaining := sale.Items[:0]
		for _, it := range sale.Items {
			if it.ID != item.ID {
				remaining = append(remaining, it)
			}
		}
		sale.Items = remaining
		sale.RecomputeTotal()

		if err := tx.Model(&domain.Sale{}).Where("id = ?", sale.ID).
			Update("total_amount", sale.TotalAmount).Error; err != nil {
			return fmt.Errorf("failed to update sale total: %w", err)
		}

		updated = &sale
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *GormSaleRepository) FindByID(ctx context.Context, id uint) (*domain.Sale, error) {
	var sale domain.Sale
	err := r.db.WithContext(ctx).Preload("Items").First(&sale, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrSaleNotFound
	}
	if err != nil {
		return nil, err
	}
	return &sale, nil
}

func (r *GormSaleRepository) FindAll(ctx context.Context, limit, offset int) ([]domain.Sale, error) {
	var sales []domain.Sale
	err := r.db.WithContext(ctx).Preload("Items").
		Order("date DESC").
		Limit(limit).Offset(offset).
		Find(&sales).Error
	return sales, err
}

func (r *GormSaleRepository) FindByStore(ctx context.Context, storeID uint, limit, offset int) ([]domain.Sale, error) {
	var sales []domain.Sale
	err := r.db.WithContext(ctx).Preload("Items").
		Where("store_id = ?", storeID).
		Order("date DESC").
		Limit(limit).Offset(offset).
		Find(&sales).Error
	return sales, err
}
