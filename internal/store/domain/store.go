package domain

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

// Store is a physical retail location. Inventory and sales are always
// scoped to one store.
type Store struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Name      string         `json:"name" gorm:"not null"`
	Address   string         `json:"address"`
	Phone     string         `json:"phone"`
	Email     string         `json:"email"`
	IsActive  bool           `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName specifies the table name
func (Store) TableName() string {
	return "stores"
}

// ErrStoreNotFound is returned when the referenced store does not exist
var ErrStoreNotFound = errors.New("store not found")

// StoreRepository defines the contract for store data access
type StoreRepository interface {
	Create(ctx context.Context, store *Store) error
	FindByID(ctx context.Context, id uint) (*Store, error)
	FindAll(ctx context.Context, limit, offset int) ([]Store, error)
	Update(ctx context.Context, store *Store) error
	Delete(ctx context.Context, id uint) error
}
