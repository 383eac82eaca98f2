package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ClearStock/clearstock/internal/dto"
	"github.com/ClearStock/clearstock/internal/repository"
)

var ErrInvalidRange = errors.New("Intervalo de datas inválido. Use o formato AAAA-MM-DD.")

// HistoryService reads the append-only stock event log.
type HistoryService interface {
	ListRange(ctx context.Context, restaurantID uuid.UUID, start, end string) (*dto.HistoryResponse, error)
	ListMonth(ctx context.Context, restaurantID uuid.UUID, year, month int) (*dto.HistoryResponse, error)
}

type historyService struct {
	events repository.StockEventRepository
}

func NewHistoryService(events repository.StockEventRepository) HistoryService {
	return &historyService{events: events}
}

// ListRange returns events between two dates, inclusive on both ends.
func (s *historyService) ListRange(ctx context.Context, restaurantID uuid.UUID, start, end string) (*dto.HistoryResponse, error) {
	from, err := time.Parse(expiryDateLayout, start)
	if err != nil {
		return nil, ErrInvalidRange
	}
	to, err := time.Parse(expiryDateLayout, end)
	if err != nil {
		return nil, ErrInvalidRange
	}
	if to.Before(from) {
		return nil, ErrInvalidRange
	}

	// Extend the end bound to the last instant of that day.
	to = to.Add(24*time.Hour - time.Nanosecond)
	return s.list(ctx, restaurantID, from, to)
}

// ListMonth returns all events in one calendar month.
func (s *historyService) ListMonth(ctx context.Context, restaurantID uuid.UUID, year, month int) (*dto.HistoryResponse, error) {
	if month < 1 || month > 12 || year < 2000 || year > 2100 {
		return nil, ErrInvalidRange
	}
	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return s.list(ctx, restaurantID, from, to)
}

func (s *historyService) list(ctx context.Context, restaurantID uuid.UUID, from, to time.Time) (*dto.HistoryResponse, error) {
	events, err := s.events.ListByRange(ctx, restaurantID, from, to)
	if err != nil {
		return nil, fmt.Errorf("listing stock events: %w", err)
	}

	resp := &dto.HistoryResponse{
		OK:     true,
		Events: make([]dto.StockEventResponse, 0, len(events)),
	}
	for _, e := range events {
		resp.Events = append(resp.Events, dto.StockEventResponse{
			ID:          e.ID,
			Type:        e.Type,
			ProductName: e.ProductName,
			Quantity:    e.Quantity,
			Unit:        e.Unit,
			CreatedAt:   e.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	return resp, nil
}
