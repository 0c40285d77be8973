package domain

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Sale statuses. The sale path only ever produces "completed"; other values
// are stored as-is for imported data.
const (
	StatusCompleted = "completed"
)

// Sale represents a completed sale at a store together with its line items.
// TotalAmount is derived: it always equals the sum of the items' totals and
// is written only by RecomputeTotal.
type Sale struct {
	ID            uint            `json:"id" gorm:"primaryKey"`
	StoreID       uint            `json:"store_id" gorm:"not null;index"`
	Date          time.Time       `json:"date" gorm:"not null"`
	TotalAmount   decimal.Decimal `json:"total_amount" gorm:"type:decimal(10,2);not null"`
	PaymentMethod string          `json:"payment_method" gorm:"not null"`
	Status        string          `json:"status" gorm:"not null;default:'completed'"`
	Items         []SaleItem      `json:"items" gorm:"foreignKey:SaleID"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// TableName specifies the table name
func (Sale) TableName() string {
	return "sales"
}

// SaleItem is one line of a sale. TotalPrice is always recomputed from
// quantity and unit price, never taken from the caller.
type SaleItem struct {
	ID         uint            `json:"id" gorm:"primaryKey"`
	SaleID     uint            `json:"sale_id" gorm:"not null;index"`
	ProductID  uint            `json:"product_id" gorm:"not null;index"`
	Quantity   int             `json:"quantity" gorm:"not null"`
	UnitPrice  decimal.Decimal `json:"unit_price" gorm:"type:decimal(10,2);not null"`
	TotalPrice decimal.Decimal `json:"total_price" gorm:"type:decimal(10,2);not null"`
}

// TableName specifies the table name
func (SaleItem) TableName() string {
	return "sale_items"
}

var (
	// ErrEmptySale is returned when a sale is submitted without line items
	ErrEmptySale = errors.New("sale must contain at least one item")

	// ErrMissingStore is returned when a sale names no store
	ErrMissingStore = errors.New("store_id is required")

	// ErrSaleNotFound is returned when the referenced sale does not exist
	ErrSaleNotFound = errors.New("sale not found")

	// ErrSaleItemNotFound is returned when the referenced sale item does not exist
	ErrSaleItemNotFound = errors.New("sale item not found")

	// ErrProductNotFound is returned by the catalog lookup for unknown products
	ErrProductNotFound = errors.New("product not found")
)

// InvalidLineError rejects a single malformed line item before any
// inventory is touched.
type InvalidLineError struct {
	Index  int
	Reason string
}

func (e *InvalidLineError) Error() string {
	return fmt.Sprintf("invalid line %d: %s", e.Index, e.Reason)
}

// LineInput is a proposed line item from an untrusted caller. UnitPrice is
// optional; when nil the current catalog price is used.
type LineInput struct {
	ProductID uint
	Quantity  int
	UnitPrice *decimal.Decimal
}

// CatalogLookup resolves a product's current unit price. Point-in-time
// consistent; the sale path does not retry on staleness.
type CatalogLookup interface {
	ProductPrice(ctx context.Context, productID uint) (decimal.Decimal, error)
}

// ComputeTotalPrice derives a line total from quantity and unit price,
// rounded to two decimal places.
func ComputeTotalPrice(quantity int, unitPrice decimal.Decimal) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity))).Round(2)
}

// RecomputeTotal recalculates TotalAmount from the items. It is the only
// writer of TotalAmount.
func (s *Sale) RecomputeTotal() {
	total := decimal.Zero
	for _, item := range s.Items {
		total = total.Add(item.TotalPrice)
	}
	s.TotalAmount = total.Round(2)
}

// BuildSale validates the proposed lines, resolves missing unit prices
// through the catalog, and assembles the aggregate with derived totals.
// It touches no inventory: a validation failure here has no side effects.
func BuildSale(ctx context.Context, storeID uint, date time.Time, paymentMethod string, lines []LineInput, catalog CatalogLookup) (*Sale, error) {
	if storeID == 0 {
		return nil, ErrMissingStore
	}
	if len(lines) == 0 {
		return nil, ErrEmptySale
	}
	if paymentMethod == "" {
		paymentMethod = "cash"
	}
	if date.IsZero() {
		date = time.Now()
	}

	items := make([]SaleItem, 0, len(lines))
	for i, line := range lines {
		if line.ProductID == 0 {
			return nil, &InvalidLineError{Index: i, Reason: "product is required"}
		}
		if line.Quantity < 1 {
			return nil, &InvalidLineError{Index: i, Reason: fmt.Sprintf("quantity must be at least 1, got %d", line.Quantity)}
		}

		var unitPrice decimal.Decimal
		if line.UnitPrice != nil {
			unitPrice = *line.UnitPrice
		} else {
			price, err := catalog.ProductPrice(ctx, line.ProductID)
			if errors.Is(err, ErrProductNotFound) {
				return nil, &InvalidLineError{Index: i, Reason: fmt.Sprintf("product %d not found", line.ProductID)}
			}
			if err != nil {
				return nil, fmt.Errorf("failed to resolve price for product %d: %w", line.ProductID, err)
			}
			unitPrice = price
		}

		if unitPrice.IsNegative() {
			return nil, &InvalidLineError{Index: i, Reason: "unit price cannot be negative"}
		}

		unitPrice = unitPrice.Round(2)
		items = append(items, SaleItem{
			ProductID:  line.ProductID,
			Quantity:   line.Quantity,
			UnitPrice:  unitPrice,
			TotalPrice: ComputeTotalPrice(line.Quantity, unitPrice),
		})
	}

	sale := &Sale{
		StoreID:       storeID,
		Date:          date,
		PaymentMethod: paymentMethod,
		Status:        StatusCompleted,
		Items:         items,
	}
	sale.RecomputeTotal()
	return sale, nil
}
