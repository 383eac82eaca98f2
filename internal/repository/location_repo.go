package repository

import (
	"context"

	"github.com/ClearStock/clearstock/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LocationRepository interface {
	Create(ctx context.Context, l *model.Location) error
	ListByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]model.Location, error)
	FindByName(ctx context.Context, restaurantID uuid.UUID, name string) (*model.Location, error)
	Delete(ctx context.Context, restaurantID, id uuid.UUID) error
}

type locationRepo struct{ db *gorm.DB }

func NewLocationRepository(db *gorm.DB) LocationRepository { return &locationRepo{db: db} }

func (r *locationRepo) Create(ctx context.Context, l *model.Location) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *locationRepo) ListByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]model.Location, error) {
	var list []model.Location
	err := r.db.WithContext(ctx).
		Where("restaurant_id = ?", restaurantID).
		Order("name asc").Find(&list).Error
	return list, err
}

func (r *locationRepo) FindByName(ctx context.Context, restaurantID uuid.UUID, name string) (*model.Location, error) {
	var l model.Location
	err := r.db.WithContext(ctx).
		Where("restaurant_id = ? AND name = ?", restaurantID, name).
		First(&l).Error
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *locationRepo) Delete(ctx context.Context, restaurantID, id uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND restaurant_id = ?", id, restaurantID).
		Delete(&model.Location{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
