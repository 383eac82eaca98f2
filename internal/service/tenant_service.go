package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/ClearStock/clearstock/internal/dto"
	"github.com/ClearStock/clearstock/internal/model"
	"github.com/ClearStock/clearstock/internal/repository"
)

const defaultAlertDays = 3

// Starter sets created for a tenant on first login.
var (
	starterCategories = []string{"Frescos", "Congelados", "Secos"}
	starterLocations  = []string{"Frigorífico 1", "Despensa", "Arca"}
)

var (
	ErrCategoryNotFound = errors.New("Categoria não encontrada.")
	ErrLocationNotFound = errors.New("Localização não encontrada.")
)

// TenantService covers restaurant settings and the category/location
// reference data each tenant manages.
type TenantService interface {
	EnsureProvisioned(ctx context.Context, restaurant *model.Restaurant) error
	GetRestaurant(ctx context.Context, restaurantID uuid.UUID) (*model.Restaurant, error)
	GetSettings(ctx context.Context, restaurantID uuid.UUID) (*dto.SettingsResponse, error)
	UpdateAlertDays(ctx context.Context, restaurantID uuid.UUID, alertDays *int) error
	UpdateName(ctx context.Context, restaurantID uuid.UUID, name string) error
	CreateCategory(ctx context.Context, restaurantID uuid.UUID, req dto.CreateCategoryRequest) (*dto.CategoryResponse, error)
	UpdateCategoryAlerts(ctx context.Context, restaurantID, categoryID uuid.UUID, req dto.UpdateCategoryAlertRequest) error
	DeleteCategory(ctx context.Context, restaurantID, categoryID uuid.UUID) error
	CreateLocation(ctx context.Context, restaurantID uuid.UUID, req dto.CreateLocationRequest) (*dto.LocationResponse, error)
	DeleteLocation(ctx context.Context, restaurantID, locationID uuid.UUID) error
}

type tenantService struct {
	restaurants repository.RestaurantRepository
	categories  repository.CategoryRepository
	locations   repository.LocationRepository
}

func NewTenantService(restaurants repository.RestaurantRepository, categories repository.CategoryRepository, locations repository.LocationRepository) TenantService {
	return &tenantService{
		restaurants: restaurants,
		categories:  categories,
		locations:   locations,
	}
}

// EnsureProvisioned creates the starter categories and locations for a
// tenant that has neither. Concurrent first logins may race here; duplicate
// inserts lose on the unique indexes and are logged, not surfaced.
func (s *tenantService) EnsureProvisioned(ctx context.Context, restaurant *model.Restaurant) error {
	if len(restaurant.Categories) > 0 || len(restaurant.Locations) > 0 {
		return nil
	}

	for _, name := range starterCategories {
		category := &model.Category{
			RestaurantID: restaurant.ID,
			Name:         name,
			Tipo:         model.TipoMateriaPrima,
		}
		if err := s.categories.Create(ctx, category); err != nil {
			log.Warn().Err(err).Str("category", name).Msg("starter category insert failed")
		}
	}
	for _, name := range starterLocations {
		location := &model.Location{
			RestaurantID: restaurant.ID,
			Name:         name,
		}
		if err := s.locations.Create(ctx, location); err != nil {
			log.Warn().Err(err).Str("location", name).Msg("starter location insert failed")
		}
	}
	return nil
}

func (s *tenantService) GetRestaurant(ctx context.Context, restaurantID uuid.UUID) (*model.Restaurant, error) {
	restaurant, err := s.restaurants.FindByID(ctx, restaurantID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUnauthenticated
	}
	if err != nil {
		return nil, fmt.Errorf("looking up restaurant: %w", err)
	}
	return restaurant, nil
}

func (s *tenantService) GetSettings(ctx context.Context, restaurantID uuid.UUID) (*dto.SettingsResponse, error) {
	restaurant, err := s.GetRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	resp := &dto.SettingsResponse{
		Restaurant: dto.RestaurantInfo{
			ID:   restaurant.ID.String(),
			Name: restaurant.Name,
			PIN:  restaurant.PIN,
		},
		AlertDays:  restaurant.AlertDaysBeforeExpiry,
		Categories: make([]dto.CategoryResponse, 0, len(restaurant.Categories)),
		Locations:  make([]dto.LocationResponse, 0, len(restaurant.Locations)),
	}
	for _, c := range restaurant.Categories {
		resp.Categories = append(resp.Categories, toCategoryResponse(&c))
	}
	for _, l := range restaurant.Locations {
		resp.Locations = append(resp.Locations, dto.LocationResponse{ID: l.ID, Name: l.Name})
	}
	return resp, nil
}

// UpdateAlertDays sets the tenant-wide expiry alert threshold. Missing or
// non-positive values fall back to the default.
func (s *tenantService) UpdateAlertDays(ctx context.Context, restaurantID uuid.UUID, alertDays *int) error {
	restaurant, err := s.GetRestaurant(ctx, restaurantID)
	if err != nil {
		return err
	}

	days := defaultAlertDays
	if alertDays != nil && *alertDays > 0 {
		days = *alertDays
	}
	restaurant.AlertDaysBeforeExpiry = days

	if err := s.restaurants.Update(ctx, restaurant); err != nil {
		return fmt.Errorf("updating restaurant: %w", err)
	}
	return nil
}

func (s *tenantService) UpdateName(ctx context.Context, restaurantID uuid.UUID, name string) error {
	restaurant, err := s.GetRestaurant(ctx, restaurantID)
	if err != nil {
		return err
	}

	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return errors.New("O nome do restaurante não pode estar vazio.")
	}
	restaurant.Name = &trimmed

	if err := s.restaurants.Update(ctx, restaurant); err != nil {
		return fmt.Errorf("updating restaurant: %w", err)
	}
	return nil
}

func (s *tenantService) CreateCategory(ctx context.Context, restaurantID uuid.UUID, req dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, errors.New("O nome da categoria não pode estar vazio.")
	}
	tipo := normalizeTipo(req.Tipo)

	_, err := s.categories.FindByNameAndTipo(ctx, restaurantID, name, tipo)
	if err == nil {
		return nil, fmt.Errorf("A categoria %q já existe.", name)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("checking category: %w", err)
	}

	category := &model.Category{
		RestaurantID: restaurantID,
		Name:         name,
		Tipo:         tipo,
	}
	if err := s.categories.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("creating category: %w", err)
	}

	resp := toCategoryResponse(category)
	return &resp, nil
}

// UpdateCategoryAlerts sets per-category overrides of the tenant-wide
// thresholds. Negative values clear the override back to inherited.
func (s *tenantService) UpdateCategoryAlerts(ctx context.Context, restaurantID, categoryID uuid.UUID, req dto.UpdateCategoryAlertRequest) error {
	warning := sanitizeOverride(req.WarningDays)
	alert := sanitizeOverride(req.AlertDays)

	err := s.categories.UpdateAlerts(ctx, restaurantID, categoryID, warning, alert)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrCategoryNotFound
	}
	if err != nil {
		return fmt.Errorf("updating category alerts: %w", err)
	}
	return nil
}

func (s *tenantService) DeleteCategory(ctx context.Context, restaurantID, categoryID uuid.UUID) error {
	err := s.categories.Delete(ctx, restaurantID, categoryID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrCategoryNotFound
	}
	if err != nil {
		return fmt.Errorf("deleting category: %w", err)
	}
	return nil
}

func (s *tenantService) CreateLocation(ctx context.Context, restaurantID uuid.UUID, req dto.CreateLocationRequest) (*dto.LocationResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, errors.New("O nome da localização não pode estar vazio.")
	}

	_, err := s.locations.FindByName(ctx, restaurantID, name)
	if err == nil {
		return nil, fmt.Errorf("A localização %q já existe.", name)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("checking location: %w", err)
	}

	location := &model.Location{
		RestaurantID: restaurantID,
		Name:         name,
	}
	if err := s.locations.Create(ctx, location); err != nil {
		return nil, fmt.Errorf("creating location: %w", err)
	}
	return &dto.LocationResponse{ID: location.ID, Name: location.Name}, nil
}

func (s *tenantService) DeleteLocation(ctx context.Context, restaurantID, locationID uuid.UUID) error {
	err := s.locations.Delete(ctx, restaurantID, locationID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrLocationNotFound
	}
	if err != nil {
		return fmt.Errorf("deleting location: %w", err)
	}
	return nil
}

// normalizeTipo coerces free-form product type strings to the two known
// values, defaulting to raw material.
func normalizeTipo(tipo string) string {
	if strings.EqualFold(strings.TrimSpace(tipo), model.TipoTransformado) {
		return model.TipoTransformado
	}
	return model.TipoMateriaPrima
}

func sanitizeOverride(v *int) *int {
	if v == nil || *v < 0 {
		return nil
	}
	return v
}

func toCategoryResponse(c *model.Category) dto.CategoryResponse {
	return dto.CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Tipo:        c.Tipo,
		AlertDays:   c.AlertDaysBeforeExpiry,
		WarningDays: c.WarningDaysBeforeExpiry,
	}
}
