package model

import (
	"time"

	"github.com/google/uuid"
)

// Category tipo values.
const (
	TipoMateriaPrima = "mp"
	TipoTransformado = "transformado"
)

// Category classifies batches within one restaurant.
// AlertDays/WarningDays override the restaurant defaults when set;
// nil means "fall back".
type Category struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RestaurantID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_categories_tenant_name_tipo"`
	Name         string    `gorm:"not null;uniqueIndex:idx_categories_tenant_name_tipo"`
	Tipo         string    `gorm:"type:varchar(20);not null;default:'mp';uniqueIndex:idx_categories_tenant_name_tipo"`
	// Urgent threshold override (days to expiry)
	AlertDaysBeforeExpiry *int
	// Warning threshold override; falls back to the urgent threshold
	WarningDaysBeforeExpiry *int
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

func (Category) TableName() string { return "categories" }
