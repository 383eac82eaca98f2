package repository

import (
	"context"

	"github.com/ClearStock/clearstock/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RestaurantRepository defines the data access contract for tenants.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling clean unit testing via stubs.
type RestaurantRepository interface {
	Create(ctx context.Context, r *model.Restaurant) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Restaurant, error)
	FindByPIN(ctx context.Context, pin string) (*model.Restaurant, error)
	FindByTenantCode(ctx context.Context, code string) (*model.Restaurant, error)
	Update(ctx context.Context, r *model.Restaurant) error
}

type restaurantRepo struct{ db *gorm.DB }

func NewRestaurantRepository(db *gorm.DB) RestaurantRepository { return &restaurantRepo{db: db} }

// Create inserts the restaurant, silently skipping on a pin conflict so that
// concurrent first-access provisioning cannot produce duplicates. Callers
// re-fetch by pin afterwards.
func (r *restaurantRepo) Create(ctx context.Context, rest *model.Restaurant) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "pin"}}, DoNothing: true}).
		Create(rest).Error
}

func (r *restaurantRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Restaurant, error) {
	var rest model.Restaurant
	err := r.db.WithContext(ctx).
		Preload("Categories", func(db *gorm.DB) *gorm.DB { return db.Order("name asc") }).
		Preload("Locations", func(db *gorm.DB) *gorm.DB { return db.Order("name asc") }).
		First(&rest, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *restaurantRepo) FindByPIN(ctx context.Context, pin string) (*model.Restaurant, error) {
	var rest model.Restaurant
	err := r.db.WithContext(ctx).
		Preload("Categories").
		Preload("Locations").
		Where("pin = ?", pin).First(&rest).Error
	if err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *restaurantRepo) FindByTenantCode(ctx context.Context, code string) (*model.Restaurant, error) {
	var rest model.Restaurant
	err := r.db.WithContext(ctx).Where("tenant_code = ?", code).First(&rest).Error
	if err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *restaurantRepo) Update(ctx context.Context, rest *model.Restaurant) error {
	return r.db.WithContext(ctx).Omit("Categories", "Locations").Save(rest).Error
}
