package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/AY-10/inventryy/internal/store/domain"
)

type GormStoreRepository struct {
	db *gorm.DB
}

func NewGormStoreRepository(db *gorm.DB) *GormStoreRepository {
	return &GormStoreRepository{db: db}
}

func (r *GormStoreRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Store{})
}

func (r *GormStoreRepository) Create(ctx context.Context, store *domain.Store) error {
	return r.db.WithContext(ctx).Create(store).Error
}

func (r *GormStoreRepository) FindByID(ctx context.Context, id uint) (*domain.Store, error) {
	var store domain.Store
	err := r.db.WithContext(ctx).First(&store, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrStoreNotFound
	}
	if err != nil {
		return nil, err
	}
	return &store, nil
}

func (r *GormStoreRepository) FindAll(ctx context.Context, limit, offset int) ([]domain.Store, error) {
	var stores []domain.Store
	err := r.db.WithContext(ctx).Limit(limit).Offset(offset).Find(&stores).Error
	return stores, err
}

func (r *GormStoreRepository) Update(ctx context.Context, store *domain.Store) error {
	return r.db.WithContext(ctx).Save(store).Error
}

func (r *GormStoreRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&domain.Store{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrStoreNotFound
	}
	return nil
}
