package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/ClearStock/clearstock/internal/dto"
	"github.com/ClearStock/clearstock/internal/model"
)

func newTenantFixture() (TenantService, *stubRestaurantRepo, *stubCategoryRepo, *stubLocationRepo, *model.Restaurant) {
	restaurants := newStubRestaurantRepo()
	categories := newStubCategoryRepo()
	locations := newStubLocationRepo()
	svc := NewTenantService(restaurants, categories, locations)
	restaurant := seedRestaurant(restaurants, "001111", nil)
	return svc, restaurants, categories, locations, restaurant
}

func intPtr(v int) *int { return &v }

func TestUpdateAlertDays_FallsBackToDefault(t *testing.T) {
	svc, restaurants, _, _, restaurant := newTenantFixture()

	assert.NoError(t, svc.UpdateAlertDays(context.Background(), restaurant.ID, intPtr(7)))
	assert.Equal(t, 7, restaurants.restaurants[restaurant.ID].AlertDaysBeforeExpiry)

	assert.NoError(t, svc.UpdateAlertDays(context.Background(), restaurant.ID, nil))
	assert.Equal(t, 3, restaurants.restaurants[restaurant.ID].AlertDaysBeforeExpiry)

	assert.NoError(t, svc.UpdateAlertDays(context.Background(), restaurant.ID, intPtr(-5)))
	assert.Equal(t, 3, restaurants.restaurants[restaurant.ID].AlertDaysBeforeExpiry)
}

func TestUpdateName(t *testing.T) {
	svc, restaurants, _, _, restaurant := newTenantFixture()

	assert.NoError(t, svc.UpdateName(context.Background(), restaurant.ID, "  Tasca do Zé  "))
	if assert.NotNil(t, restaurants.restaurants[restaurant.ID].Name) {
		assert.Equal(t, "Tasca do Zé", *restaurants.restaurants[restaurant.ID].Name)
	}

	assert.Error(t, svc.UpdateName(context.Background(), restaurant.ID, "   "))
}

func TestCreateCategory_CoercesTipoAndRejectsDuplicates(t *testing.T) {
	svc, _, categories, _, restaurant := newTenantFixture()

	created, err := svc.CreateCategory(context.Background(), restaurant.ID, dto.CreateCategoryRequest{Name: "Laticínios", Tipo: "whatever"})
	assert.NoError(t, err)
	assert.Equal(t, model.TipoMateriaPrima, created.Tipo)

	// Same name, same coerced tipo — duplicate.
	_, err = svc.CreateCategory(context.Background(), restaurant.ID, dto.CreateCategoryRequest{Name: "Laticínios", Tipo: ""})
	assert.Error(t, err)

	// Same name, different tipo — allowed.
	transformado, err := svc.CreateCategory(context.Background(), restaurant.ID, dto.CreateCategoryRequest{Name: "Laticínios", Tipo: "transformado"})
	assert.NoError(t, err)
	assert.Equal(t, model.TipoTransformado, transformado.Tipo)
	assert.Len(t, categories.categories, 2)
}

func TestUpdateCategoryAlerts_NegativeClearsOverride(t *testing.T) {
	svc, _, categories, _, restaurant := newTenantFixture()
	created, err := svc.CreateCategory(context.Background(), restaurant.ID, dto.CreateCategoryRequest{Name: "Frescos"})
	assert.NoError(t, err)

	err = svc.UpdateCategoryAlerts(context.Background(), restaurant.ID, created.ID, dto.UpdateCategoryAlertRequest{
		WarningDays: intPtr(5),
		AlertDays:   intPtr(2),
	})
	assert.NoError(t, err)
	stored := categories.categories[created.ID]
	assert.Equal(t, 5, *stored.WarningDaysBeforeExpiry)
	assert.Equal(t, 2, *stored.AlertDaysBeforeExpiry)

	err = svc.UpdateCategoryAlerts(context.Background(), restaurant.ID, created.ID, dto.UpdateCategoryAlertRequest{
		WarningDays: intPtr(-1),
		AlertDays:   nil,
	})
	assert.NoError(t, err)
	assert.Nil(t, stored.WarningDaysBeforeExpiry)
	assert.Nil(t, stored.AlertDaysBeforeExpiry)
}

func TestUpdateCategoryAlerts_UnknownCategory(t *testing.T) {
	svc, _, _, _, restaurant := newTenantFixture()
	err := svc.UpdateCategoryAlerts(context.Background(), restaurant.ID, uuid.New(), dto.UpdateCategoryAlertRequest{})
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestDeleteCategory_TenantScoped(t *testing.T) {
	svc, _, categories, _, restaurant := newTenantFixture()
	created, err := svc.CreateCategory(context.Background(), restaurant.ID, dto.CreateCategoryRequest{Name: "Frescos"})
	assert.NoError(t, err)

	// Another tenant cannot delete it.
	err = svc.DeleteCategory(context.Background(), uuid.New(), created.ID)
	assert.ErrorIs(t, err, ErrCategoryNotFound)
	assert.Len(t, categories.categories, 1)

	assert.NoError(t, svc.DeleteCategory(context.Background(), restaurant.ID, created.ID))
	assert.Empty(t, categories.categories)
}

func TestCreateAndDeleteLocation(t *testing.T) {
	svc, _, _, locations, restaurant := newTenantFixture()

	created, err := svc.CreateLocation(context.Background(), restaurant.ID, dto.CreateLocationRequest{Name: "Arca 2"})
	assert.NoError(t, err)

	_, err = svc.CreateLocation(context.Background(), restaurant.ID, dto.CreateLocationRequest{Name: "Arca 2"})
	assert.Error(t, err)

	assert.ErrorIs(t, svc.DeleteLocation(context.Background(), restaurant.ID, uuid.New()), ErrLocationNotFound)
	assert.NoError(t, svc.DeleteLocation(context.Background(), restaurant.ID, created.ID))
	assert.Empty(t, locations.locations)
}

func TestGetSettings(t *testing.T) {
	svc, _, _, _, restaurant := newTenantFixture()
	_, err := svc.CreateCategory(context.Background(), restaurant.ID, dto.CreateCategoryRequest{Name: "Frescos"})
	assert.NoError(t, err)

	resp, err := svc.GetSettings(context.Background(), restaurant.ID)
	assert.NoError(t, err)
	assert.Equal(t, restaurant.ID.String(), resp.Restaurant.ID)
	assert.Equal(t, 3, resp.AlertDays)
}
