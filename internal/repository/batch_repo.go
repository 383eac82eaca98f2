package repository

import (
	"context"

	"github.com/ClearStock/clearstock/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BatchRepository interface {
	Create(ctx context.Context, b *model.ProductBatch) error
	FindByID(ctx context.Context, restaurantID, id uuid.UUID) (*model.ProductBatch, error)
	ListByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]model.ProductBatch, error)
	Update(ctx context.Context, b *model.ProductBatch) error
	Delete(ctx context.Context, restaurantID, id uuid.UUID) error
}

type batchRepo struct{ db *gorm.DB }

func NewBatchRepository(db *gorm.DB) BatchRepository { return &batchRepo{db: db} }

func (r *batchRepo) Create(ctx context.Context, b *model.ProductBatch) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *batchRepo) FindByID(ctx context.Context, restaurantID, id uuid.UUID) (*model.ProductBatch, error) {
	var b model.ProductBatch
	err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Location").
		Where("id = ? AND restaurant_id = ?", id, restaurantID).
		First(&b).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *batchRepo) ListByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]model.ProductBatch, error) {
	var list []model.ProductBatch
	err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Location").
		Where("restaurant_id = ?", restaurantID).
		Order("expiry_date asc").Find(&list).Error
	return list, err
}

func (r *batchRepo) Update(ctx context.Context, b *model.ProductBatch) error {
	return r.db.WithContext(ctx).Omit("Category", "Location").Save(b).Error
}

func (r *batchRepo) Delete(ctx context.Context, restaurantID, id uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND restaurant_id = ?", id, restaurantID).
		Delete(&model.ProductBatch{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
