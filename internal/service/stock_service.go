package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/ClearStock/clearstock/internal/dto"
	"github.com/ClearStock/clearstock/internal/model"
	"github.com/ClearStock/clearstock/internal/repository"
)

var (
	ErrBatchNotFound    = errors.New("Entrada não encontrada.")
	ErrInvalidExpiry    = errors.New("Data de validade inválida. Use o formato AAAA-MM-DD.")
	ErrInvalidAdjust    = errors.New("Ajuste de quantidade inválido.")
	ErrBatchNameMissing = errors.New("O nome do produto não pode estar vazio.")
)

const expiryDateLayout = "2006-01-02"

// StockService manages product batches and the derived expiry alerting.
type StockService interface {
	List(ctx context.Context, restaurantID uuid.UUID) ([]dto.BatchResponse, error)
	Create(ctx context.Context, restaurantID uuid.UUID, req dto.CreateBatchRequest) (string, error)
	Update(ctx context.Context, restaurantID, batchID uuid.UUID, req dto.UpdateBatchRequest) (string, error)
	AdjustQuantity(ctx context.Context, restaurantID, batchID uuid.UUID, adjustment string) (string, error)
	Delete(ctx context.Context, restaurantID, batchID uuid.UUID) (string, error)
}

type stockService struct {
	restaurants repository.RestaurantRepository
	batches     repository.BatchRepository
	events      repository.StockEventRepository
	users       repository.UserRepository
}

func NewStockService(restaurants repository.RestaurantRepository, batches repository.BatchRepository, events repository.StockEventRepository, users repository.UserRepository) StockService {
	return &stockService{
		restaurants: restaurants,
		batches:     batches,
		events:      events,
		users:       users,
	}
}

// ClassifyExpiry buckets a batch by calendar days until expiry.
// Priority: EXPIRED > URGENT > WARNING > OK.
func ClassifyExpiry(daysToExpiry, urgentDays, warningDays int) string {
	switch {
	case daysToExpiry < 0:
		return dto.StatusExpired
	case daysToExpiry <= urgentDays:
		return dto.StatusUrgent
	case daysToExpiry <= warningDays:
		return dto.StatusWarning
	default:
		return dto.StatusOK
	}
}

// daysUntil counts whole calendar days between now and the expiry date.
// A batch expiring today is 0 days out, regardless of the time of day.
func daysUntil(now, expiry time.Time) int {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	day := time.Date(expiry.Year(), expiry.Month(), expiry.Day(), 0, 0, 0, 0, time.UTC)
	return int(day.Sub(today).Hours() / 24)
}

func (s *stockService) List(ctx context.Context, restaurantID uuid.UUID) ([]dto.BatchResponse, error) {
	restaurant, err := s.restaurants.FindByID(ctx, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("looking up restaurant: %w", err)
	}
	batches, err := s.batches.ListByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("listing batches: %w", err)
	}

	now := time.Now()
	out := make([]dto.BatchResponse, 0, len(batches))
	for _, b := range batches {
		out = append(out, s.toBatchResponse(&b, restaurant, now))
	}
	return out, nil
}

// toBatchResponse resolves the effective thresholds for one batch: the
// category's urgent override falls back to the restaurant default, and the
// warning threshold falls back to the urgent one.
func (s *stockService) toBatchResponse(b *model.ProductBatch, restaurant *model.Restaurant, now time.Time) dto.BatchResponse {
	urgent := restaurant.AlertDaysBeforeExpiry
	warning := urgent
	if b.Category != nil {
		if b.Category.AlertDaysBeforeExpiry != nil {
			urgent = *b.Category.AlertDaysBeforeExpiry
		}
		warning = urgent
		if b.Category.WarningDaysBeforeExpiry != nil {
			warning = *b.Category.WarningDaysBeforeExpiry
		}
	}

	days := daysUntil(now, b.ExpiryDate)
	resp := dto.BatchResponse{
		ID:            b.ID,
		Name:          b.Name,
		Quantity:      b.Quantity,
		Unit:          b.Unit,
		ExpiryDate:    b.ExpiryDate.Format(expiryDateLayout),
		Tipo:          b.Tipo,
		Status:        b.Status,
		CategoryID:    b.CategoryID,
		LocationID:    b.LocationID,
		PackagingType: b.PackagingType,
		Size:          b.Size,
		SizeUnit:      b.SizeUnit,
		DaysToExpiry:  days,
		ExpiryStatus:  ClassifyExpiry(days, urgent, warning),
	}
	if b.Category != nil {
		resp.CategoryName = &b.Category.Name
	}
	if b.Location != nil {
		resp.LocationName = &b.Location.Name
	}
	return resp
}

func (s *stockService) Create(ctx context.Context, restaurantID uuid.UUID, req dto.CreateBatchRequest) (string, error) {
	fields, err := coerceBatchFields(req)
	if err != nil {
		return "", err
	}

	user, err := s.users.FirstOrCreate(ctx, restaurantID)
	if err != nil {
		return "", fmt.Errorf("resolving user: %w", err)
	}

	batch := &model.ProductBatch{
		RestaurantID:  restaurantID,
		UserID:        user.ID,
		Name:          fields.name,
		Quantity:      fields.quantity,
		Unit:          fields.unit,
		ExpiryDate:    fields.expiryDate,
		Tipo:          fields.tipo,
		Status:        model.BatchActive,
		CategoryID:    fields.categoryID,
		LocationID:    fields.locationID,
		PackagingType: fields.packagingType,
		Size:          fields.size,
		SizeUnit:      fields.sizeUnit,
	}
	if err := s.batches.Create(ctx, batch); err != nil {
		return "", fmt.Errorf("creating batch: %w", err)
	}

	s.recordEvent(ctx, restaurantID, model.EventEntry, batch.Name, batch.Quantity, batch.Unit)

	return fmt.Sprintf("Entrada %q adicionada com sucesso ao stock!", batch.Name), nil
}

func (s *stockService) Update(ctx context.Context, restaurantID, batchID uuid.UUID, req dto.UpdateBatchRequest) (string, error) {
	batch, err := s.findBatch(ctx, restaurantID, batchID)
	if err != nil {
		return "", err
	}

	fields, err := coerceBatchFields(req)
	if err != nil {
		return "", err
	}

	batch.Name = fields.name
	batch.Quantity = fields.quantity
	batch.Unit = fields.unit
	batch.ExpiryDate = fields.expiryDate
	batch.Tipo = fields.tipo
	batch.CategoryID = fields.categoryID
	batch.LocationID = fields.locationID
	batch.PackagingType = fields.packagingType
	batch.Size = fields.size
	batch.SizeUnit = fields.sizeUnit
	if batch.Quantity.IsPositive() {
		batch.Status = model.BatchActive
	}

	if err := s.batches.Update(ctx, batch); err != nil {
		return "", fmt.Errorf("updating batch: %w", err)
	}
	return fmt.Sprintf("Entrada %q atualizada com sucesso!", batch.Name), nil
}

// AdjustQuantity applies a signed delta. Quantity is floored at zero; a
// decrease logs the actually consumed amount as WASTE.
func (s *stockService) AdjustQuantity(ctx context.Context, restaurantID, batchID uuid.UUID, adjustment string) (string, error) {
	delta, err := decimal.NewFromString(strings.ReplaceAll(strings.TrimSpace(adjustment), ",", "."))
	if err != nil {
		return "", ErrInvalidAdjust
	}

	batch, err := s.findBatch(ctx, restaurantID, batchID)
	if err != nil {
		return "", err
	}

	prior := batch.Quantity
	next := prior.Add(delta)
	if next.IsNegative() {
		next = decimal.Zero
	}

	if delta.IsNegative() && prior.IsPositive() {
		wasted := decimal.Min(delta.Neg(), prior)
		s.recordEvent(ctx, restaurantID, model.EventWaste, batch.Name, wasted, batch.Unit)
	}

	batch.Quantity = next
	if next.IsZero() {
		batch.Status = model.BatchUsed
	} else if next.IsPositive() {
		batch.Status = model.BatchActive
	}

	if err := s.batches.Update(ctx, batch); err != nil {
		return "", fmt.Errorf("updating batch: %w", err)
	}
	return fmt.Sprintf("Quantidade ajustada para %s %s.", next.String(), batch.Unit), nil
}

// Delete removes a batch. Remaining quantity is logged as WASTE so the
// history stays consistent with what physically left the stock.
func (s *stockService) Delete(ctx context.Context, restaurantID, batchID uuid.UUID) (string, error) {
	batch, err := s.findBatch(ctx, restaurantID, batchID)
	if err != nil {
		return "", err
	}

	if batch.Quantity.IsPositive() {
		s.recordEvent(ctx, restaurantID, model.EventWaste, batch.Name, batch.Quantity, batch.Unit)
	}

	if err := s.batches.Delete(ctx, restaurantID, batchID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrBatchNotFound
		}
		return "", fmt.Errorf("deleting batch: %w", err)
	}
	return fmt.Sprintf("Entrada %q removida do stock.", batch.Name), nil
}

func (s *stockService) findBatch(ctx context.Context, restaurantID, batchID uuid.UUID) (*model.ProductBatch, error) {
	batch, err := s.batches.FindByID(ctx, restaurantID, batchID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrBatchNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("looking up batch: %w", err)
	}
	return batch, nil
}

// recordEvent appends to the audit log. Failures are logged and swallowed:
// the stock operation itself must not fail because the audit insert did.
func (s *stockService) recordEvent(ctx context.Context, restaurantID uuid.UUID, eventType, productName string, quantity decimal.Decimal, unit string) {
	event := &model.StockEvent{
		RestaurantID: restaurantID,
		Type:         eventType,
		ProductName:  productName,
		Quantity:     quantity,
		Unit:         unit,
	}
	if err := s.events.Create(ctx, event); err != nil {
		log.Warn().Err(err).
			Str("event_type", eventType).
			Str("product", productName).
			Msg("failed to record stock event")
	}
}

type batchFields struct {
	name          string
	quantity      decimal.Decimal
	unit          string
	expiryDate    time.Time
	tipo          string
	categoryID    *uuid.UUID
	locationID    *uuid.UUID
	packagingType *string
	size          *decimal.Decimal
	sizeUnit      *string
}

// coerceBatchFields lifts the loosely typed form fields into model values.
// Unparseable or non-positive quantities become 1, the unit defaults to
// "un", and malformed reference IDs degrade to null rather than erroring.
func coerceBatchFields(req dto.CreateBatchRequest) (*batchFields, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrBatchNameMissing
	}

	quantity, err := decimal.NewFromString(strings.ReplaceAll(strings.TrimSpace(req.Quantity), ",", "."))
	if err != nil || !quantity.IsPositive() {
		quantity = decimal.NewFromInt(1)
	}

	unit := strings.TrimSpace(req.Unit)
	if unit == "" {
		unit = "un"
	}

	expiry, err := time.Parse(expiryDateLayout, strings.TrimSpace(req.ExpiryDate))
	if err != nil {
		return nil, ErrInvalidExpiry
	}

	fields := &batchFields{
		name:       name,
		quantity:   quantity,
		unit:       unit,
		expiryDate: expiry,
		tipo:       normalizeTipo(req.Tipo),
		categoryID: parseOptionalUUID(req.CategoryID),
		locationID: parseOptionalUUID(req.LocationID),
	}

	if pt := strings.TrimSpace(req.PackagingType); pt != "" {
		fields.packagingType = &pt
	}
	if size, err := decimal.NewFromString(strings.ReplaceAll(strings.TrimSpace(req.Size), ",", ".")); err == nil && size.IsPositive() {
		fields.size = &size
		if su := strings.TrimSpace(req.SizeUnit); su != "" {
			fields.sizeUnit = &su
		}
	}

	return fields, nil
}

func parseOptionalUUID(s string) *uuid.UUID {
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return nil
	}
	return &id
}
