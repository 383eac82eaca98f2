package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type StockEventResponse struct {
	ID          uuid.UUID       `json:"id"`
	Type        string          `json:"type"`
	ProductName string          `json:"product_name"`
	Quantity    decimal.Decimal `json:"quantity"`
	Unit        string          `json:"unit"`
	CreatedAt   string          `json:"created_at"` // RFC 3339
}

type HistoryResponse struct {
	OK     bool                 `json:"ok"`
	Events []StockEventResponse `json:"events"`
}
