package domain

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Product is a catalog entry. Price is the current unit price used to
// default sale lines; changing it never rewrites historical sale totals.
type Product struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	Name        string          `json:"name" gorm:"not null"`
	Description string          `json:"description"`
	CategoryID  uint            `json:"category_id" gorm:"not null;index"`
	SKU         string          `json:"sku" gorm:"uniqueIndex;not null"`
	Barcode     *string         `json:"barcode,omitempty" gorm:"uniqueIndex"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	DeletedAt   gorm.DeletedAt  `json:"-" gorm:"index"`
}

// TableName specifies the table name
func (Product) TableName() string {
	return "products"
}

var (
	// ErrProductNotFound is returned when the referenced product does not exist
	ErrProductNotFound = errors.New("product not found")

	// ErrInvalidPrice is returned when a price update carries a negative price
	ErrInvalidPrice = errors.New("price cannot be negative")
)

// ProductRepository defines the contract for product data access
type ProductRepository interface {
	Create(ctx context.Context, product *Product) error
	FindByID(ctx context.Context, id uint) (*Product, error)
	FindBySKU(ctx context.Context, sku string) (*Product, error)
	FindByCategory(ctx context.Context, categoryID uint, limit, offset int) ([]Product, error)
	FindAll(ctx context.Context, limit, offset int) ([]Product, error)
	Update(ctx context.Context, product *Product) error
	Delete(ctx context.Context, id uint) error

	// UpdatePrice writes the new price and returns the previous one, as a
	// single atomic read-modify-write.
	UpdatePrice(ctx context.Context, id uint, newPrice decimal.Decimal) (oldPrice decimal.Decimal, err error)
}
