package dto

import "github.com/google/uuid"

type SupportRequest struct {
	Type    string `json:"type"    validate:"required,oneof=bug suggestion question other"`
	Message string `json:"message" validate:"required"`
	Contact string `json:"contact" validate:"required"`
}

type SupportResponse struct {
	OK bool      `json:"ok"`
	ID uuid.UUID `json:"id"`
}
