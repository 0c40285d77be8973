package domain

import (
	"context"
	"encoding/json"
	"time"
)

// Action types
const (
	ActionCreate      = "CREATE"
	ActionUpdate      = "UPDATE"
	ActionDelete      = "DELETE"
	ActionLogin       = "LOGIN"
	ActionPriceUpdate = "PRICE_UPDATE"
)

// Activity is one audit-trail entry: who did what to which entity.
// Details carries action-specific fields as JSON.
type Activity struct {
	ID         uint            `json:"id" gorm:"primaryKey"`
	UserID     uint            `json:"user_id" gorm:"not null;index"`
	ActionType string          `json:"action_type" gorm:"not null"`
	EntityType string          `json:"entity_type" gorm:"not null;index"`
	EntityID   uint            `json:"entity_id" gorm:"not null"`
	Details    json.RawMessage `json:"details" gorm:"type:jsonb"`
	CreatedAt  time.Time       `json:"created_at" gorm:"index"`
}

// TableName specifies the table name
func (Activity) TableName() string {
	return "user_activities"
}

// ActivityRepository defines the contract for activity data access
type ActivityRepository interface {
	Create(ctx context.Context, activity *Activity) error
	FindAll(ctx context.Context, limit, offset int) ([]Activity, error)
	FindByUser(ctx context.Context, userID uint, limit, offset int) ([]Activity, error)
	FindByEntity(ctx context.Context, entityType string, entityID uint, limit, offset int) ([]Activity, error)
}
