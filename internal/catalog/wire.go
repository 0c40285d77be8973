//go:build wireinject
// +build wireinject

package catalog

import (
	"github.com/google/wire"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/AY-10/inventryy/internal/activity"
	"github.com/AY-10/inventryy/internal/catalog/delivery/http"
	"github.com/AY-10/inventryy/internal/catalog/domain"
	"github.com/AY-10/inventryy/internal/catalog/repository"
	"github.com/AY-10/inventryy/internal/catalog/usecase/command"
	"github.com/AY-10/inventryy/internal/catalog/usecase/query"
	"github.com/AY-10/inventryy/kafka"
)

// ProvideProductRepository provides the product repository with caching and tracing
func ProvideProductRepository(db *gorm.DB, redisClient *redis.Client) domain.ProductRepository {
	base := repository.NewGormProductRepository(db)
	cached := repository.NewCachedProductRepository(base, redisClient)
	return repository.NewTracingProductRepository(cached)
}

// ProvideCategoryRepository provides the category repository
func ProvideCategoryRepository(db *gorm.DB) domain.CategoryRepository {
	return repository.NewGormCategoryRepository(db)
}

var HandlerSet = wire.NewSet(
	ProvideProductRepository,
	ProvideCategoryRepository,
	command.NewCreateCategoryHandler,
	command.NewDeleteCategoryHandler,
	command.NewCreateProductHandler,
	command.NewUpdateProductHandler,
	command.NewDeleteProductHandler,
	command.NewUpdatePriceHandler,
	query.NewGetProductHandler,
	query.NewListProductsHandler,
	query.NewListCategoriesHandler,
)

// InitializeHTTPHandler initializes the catalog HTTP handler with all dependencies
func InitializeHTTPHandler(
	db *gorm.DB,
	redisClient *redis.Client,
	recorder *activity.Recorder,
	events *kafka.Publisher,
) (*http.CatalogHandler, error) {
	wire.Build(
		HandlerSet,
		http.NewCatalogHandler,
	)
	return nil, nil
}
