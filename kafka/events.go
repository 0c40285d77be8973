package kafka

import "time"

// Event types
const (
	EventTypeSaleCompleted = "sale.completed"
	EventTypeLowStock      = "inventory.low_stock"
	EventTypePriceUpdated  = "product.price_updated"
)

// Kafka topics
const (
	TopicSaleCompleted = "sale-completed"
	TopicLowStock      = "inventory-low-stock"
	TopicPriceUpdated  = "product-price-updated"
)

// SaleCompletedEvent is published after a sale commits
type SaleCompletedEvent struct {
	EventID       string    `json:"event_id"`
	EventType     string    `json:"event_type"`
	SaleID        uint      `json:"sale_id"`
	StoreID       uint      `json:"store_id"`
	TotalAmount   string    `json:"total_amount"`
	PaymentMethod string    `json:"payment_method"`
	ItemCount     int       `json:"item_count"`
	Timestamp     time.Time `json:"timestamp"`
}

// LowStockEvent is published when a committed sale leaves a store/product
// pair at or below its reorder level
type LowStockEvent struct {
	EventID         string    `json:"event_id"`
	EventType       string    `json:"event_type"`
	StoreID         uint      `json:"store_id"`
	ProductID       uint      `json:"product_id"`
	Quantity        int       `json:"quantity"`
	ReorderLevel    int       `json:"reorder_level"`
	ReorderQuantity int       `json:"reorder_quantity"`
	Timestamp       time.Time `json:"timestamp"`
}

// PriceUpdatedEvent is published after a privileged price change
type PriceUpdatedEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	ProductID uint      `json:"product_id"`
	OldPrice  string    `json:"old_price"`
	NewPrice  string    `json:"new_price"`
	UpdatedBy uint      `json:"updated_by"`
	Timestamp time.Time `json:"timestamp"`
}
