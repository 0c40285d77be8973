//go:build wireinject
// +build wireinject

package inventory

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/AY-10/inventryy/internal/activity"
	"github.com/AY-10/inventryy/internal/inventory/delivery/http"
	"github.com/AY-10/inventryy/internal/inventory/domain"
	"github.com/AY-10/inventryy/internal/inventory/repository"
	"github.com/AY-10/inventryy/internal/inventory/usecase/command"
	"github.com/AY-10/inventryy/internal/inventory/usecase/query"
)

// ProvideInventoryRepository provides the inventory repository with tracing
func ProvideInventoryRepository(db *gorm.DB) domain.InventoryRepository {
	return repository.NewTracingInventoryRepository(repository.NewGormInventoryRepository(db))
}

var HandlerSet = wire.NewSet(
	ProvideInventoryRepository,
	command.NewUpsertInventoryHandler,
	query.NewGetInventoryHandler,
	query.NewListInventoryHandler,
	query.NewLowStockHandler,
)

// InitializeHTTPHandler initializes the inventory HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB, recorder *activity.Recorder) (*http.InventoryHandler, error) {
	wire.Build(
		HandlerSet,
		http.NewInventoryHandler,
	)
	return nil, nil
}
