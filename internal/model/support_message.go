package model

import (
	"time"

	"github.com/google/uuid"
)

// SupportMessage is a ticket submitted through the support form.
// RestaurantName is snapshotted at submission time so tickets stay readable
// even if the restaurant is later renamed.
type SupportMessage struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RestaurantID   uuid.UUID `gorm:"type:uuid;not null;index"`
	RestaurantName *string
	Type           string `gorm:"type:varchar(20);not null"` // bug | suggestion | question | other
	Message        string `gorm:"type:text;not null"`
	Contact        string `gorm:"not null"`
	CreatedAt      time.Time
}

func (SupportMessage) TableName() string { return "support_messages" }
