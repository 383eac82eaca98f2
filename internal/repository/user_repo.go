package repository

import (
	"context"

	"github.com/ClearStock/clearstock/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository interface {
	// FirstOrCreate returns the restaurant's user, provisioning the demo
	// user on first access.
	FirstOrCreate(ctx context.Context, restaurantID uuid.UUID) (*model.User, error)
}

type userRepo struct{ db *gorm.DB }

func NewUserRepository(db *gorm.DB) UserRepository { return &userRepo{db: db} }

func (r *userRepo) FirstOrCreate(ctx context.Context, restaurantID uuid.UUID) (*model.User, error) {
	var u model.User
	email := "demo@example.com"
	err := r.db.WithContext(ctx).
		Where(model.User{RestaurantID: restaurantID}).
		Attrs(model.User{Name: "Demo User", Email: &email}).
		FirstOrCreate(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}
