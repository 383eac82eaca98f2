package repository

import (
	"context"
	"time"

	"github.com/ClearStock/clearstock/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StockEventRepository is append-only: there is deliberately no update or
// delete method.
type StockEventRepository interface {
	Create(ctx context.Context, e *model.StockEvent) error
	ListByRange(ctx context.Context, restaurantID uuid.UUID, from, to time.Time) ([]model.StockEvent, error)
}

type stockEventRepo struct{ db *gorm.DB }

func NewStockEventRepository(db *gorm.DB) StockEventRepository { return &stockEventRepo{db: db} }

func (r *stockEventRepo) Create(ctx context.Context, e *model.StockEvent) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *stockEventRepo) ListByRange(ctx context.Context, restaurantID uuid.UUID, from, to time.Time) ([]model.StockEvent, error) {
	var events []model.StockEvent
	err := r.db.WithContext(ctx).
		Where("restaurant_id = ? AND created_at >= ? AND created_at <= ?", restaurantID, from, to).
		Order("created_at asc").
		Find(&events).Error
	return events, err
}
