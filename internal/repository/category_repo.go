package repository

import (
	"context"

	"github.com/ClearStock/clearstock/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CategoryRepository is tenant-scoped: every query is keyed by restaurant id
// so one tenant can never see or mutate another's rows.
type CategoryRepository interface {
	Create(ctx context.Context, c *model.Category) error
	ListByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]model.Category, error)
	FindByID(ctx context.Context, restaurantID, id uuid.UUID) (*model.Category, error)
	FindByNameAndTipo(ctx context.Context, restaurantID uuid.UUID, name, tipo string) (*model.Category, error)
	UpdateAlerts(ctx context.Context, restaurantID, id uuid.UUID, warningDays, alertDays *int) error
	Delete(ctx context.Context, restaurantID, id uuid.UUID) error
}

type categoryRepo struct{ db *gorm.DB }

func NewCategoryRepository(db *gorm.DB) CategoryRepository { return &categoryRepo{db: db} }

func (r *categoryRepo) Create(ctx context.Context, c *model.Category) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *categoryRepo) ListByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]model.Category, error) {
	var list []model.Category
	err := r.db.WithContext(ctx).
		Where("restaurant_id = ?", restaurantID).
		Order("name asc").Find(&list).Error
	return list, err
}

func (r *categoryRepo) FindByID(ctx context.Context, restaurantID, id uuid.UUID) (*model.Category, error) {
	var c model.Category
	err := r.db.WithContext(ctx).
		Where("id = ? AND restaurant_id = ?", id, restaurantID).
		First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *categoryRepo) FindByNameAndTipo(ctx context.Context, restaurantID uuid.UUID, name, tipo string) (*model.Category, error) {
	var c model.Category
	err := r.db.WithContext(ctx).
		Where("restaurant_id = ? AND name = ? AND tipo = ?", restaurantID, name, tipo).
		First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *categoryRepo) UpdateAlerts(ctx context.Context, restaurantID, id uuid.UUID, warningDays, alertDays *int) error {
	res := r.db.WithContext(ctx).Model(&model.Category{}).
		Where("id = ? AND restaurant_id = ?", id, restaurantID).
		Updates(map[string]interface{}{
			"warning_days_before_expiry": warningDays,
			"alert_days_before_expiry":   alertDays,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *categoryRepo) Delete(ctx context.Context, restaurantID, id uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND restaurant_id = ?", id, restaurantID).
		Delete(&model.Category{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
