package repository

import (
	"context"

	"github.com/ClearStock/clearstock/internal/model"

	"gorm.io/gorm"
)

type SupportRepository interface {
	Create(ctx context.Context, m *model.SupportMessage) error
}

type supportRepo struct{ db *gorm.DB }

func NewSupportRepository(db *gorm.DB) SupportRepository { return &supportRepo{db: db} }

func (r *supportRepo) Create(ctx context.Context, m *model.SupportMessage) error {
	return r.db.WithContext(ctx).Create(m).Error
}
