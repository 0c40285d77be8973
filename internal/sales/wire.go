//go:build wireinject
// +build wireinject

package sales

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/AY-10/inventryy/internal/activity"
	inventorydomain "github.com/AY-10/inventryy/internal/inventory/domain"
	"github.com/AY-10/inventryy/internal/sales/delivery/http"
	"github.com/AY-10/inventryy/internal/sales/domain"
	"github.com/AY-10/inventryy/internal/sales/repository"
	"github.com/AY-10/inventryy/internal/sales/usecase/command"
	"github.com/AY-10/inventryy/internal/sales/usecase/query"
	"github.com/AY-10/inventryy/kafka"
)

// ProvideSaleRepository provides the sale repository with tracing
func ProvideSaleRepository(db *gorm.DB, inventory inventorydomain.InventoryRepository) domain.SaleRepository {
	return repository.NewTracingSaleRepository(repository.NewGormSaleRepository(db, inventory))
}

var HandlerSet = wire.NewSet(
	ProvideSaleRepository,
	command.NewCreateSaleHandler,
	command.NewDeleteSaleHandler,
	command.NewDeleteSaleItemHandler,
	query.NewGetSaleHandler,
	query.NewListSalesHandler,
)

// InitializeHTTPHandler initializes the sales HTTP handler with all dependencies
func InitializeHTTPHandler(
	db *gorm.DB,
	inventory inventorydomain.InventoryRepository,
	catalog domain.CatalogLookup,
	recorder *activity.Recorder,
	events *kafka.Publisher,
) (*http.SalesHandler, error) {
	wire.Build(
		HandlerSet,
		http.NewSalesHandler,
	)
	return nil, nil
}
