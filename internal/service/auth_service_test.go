package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ClearStock/clearstock/internal/model"
)

func newAuthFixture() (AuthService, *stubRestaurantRepo, *stubSessionRepo, *stubCategoryRepo, *stubLocationRepo) {
	restaurants := newStubRestaurantRepo()
	sessions := newStubSessionRepo()
	categories := newStubCategoryRepo()
	locations := newStubLocationRepo()
	tenants := NewTenantService(restaurants, categories, locations)
	auth := NewAuthService(restaurants, sessions, tenants, 168*time.Hour)
	return auth, restaurants, sessions, categories, locations
}

func seedRestaurant(restaurants *stubRestaurantRepo, pin string, name *string) *model.Restaurant {
	r := &model.Restaurant{PIN: pin, Name: name, AlertDaysBeforeExpiry: 3}
	_ = restaurants.Create(context.Background(), r)
	return r
}

func TestNormalizePIN(t *testing.T) {
	cases := []struct {
		in   string
		out  string
		ok   bool
	}{
		{"1111", "001111", true},
		{"001111", "001111", true},
		{"123456", "123456", true},
		{" 1357 ", "001357", true},
		{"12345", "", false},
		{"abcd", "", false},
		{"", "", false},
		{"12 34", "", false},
	}
	for _, tc := range cases {
		got, ok := NormalizePIN(tc.in)
		assert.Equal(t, tc.ok, ok, tc.in)
		assert.Equal(t, tc.out, got, tc.in)
	}
}

func TestLogin_FourAndSixDigitPINsReachSameTenant(t *testing.T) {
	auth, restaurants, _, _, _ := newAuthFixture()
	name := "Tasca do Zé"
	seeded := seedRestaurant(restaurants, "001111", &name)

	short, _, err := auth.Login(context.Background(), "1111")
	assert.NoError(t, err)
	long, _, err := auth.Login(context.Background(), "001111")
	assert.NoError(t, err)

	assert.Equal(t, seeded.ID.String(), short.Restaurant.ID)
	assert.Equal(t, seeded.ID.String(), long.Restaurant.ID)
	assert.False(t, short.NeedsOnboarding)
}

func TestLogin_InvalidPIN(t *testing.T) {
	auth, restaurants, sessions, _, _ := newAuthFixture()
	seedRestaurant(restaurants, "001111", nil)

	for _, pin := range []string{"9999", "12345", "abcdef", ""} {
		_, token, err := auth.Login(context.Background(), pin)
		assert.ErrorIs(t, err, ErrInvalidPIN, pin)
		assert.Empty(t, token, pin)
	}
	assert.Empty(t, sessions.sessions)
}

func TestLogin_UnnamedTenantNeedsOnboarding(t *testing.T) {
	auth, restaurants, _, _, _ := newAuthFixture()
	seedRestaurant(restaurants, "002222", nil)

	resp, _, err := auth.Login(context.Background(), "2222")
	assert.NoError(t, err)
	assert.True(t, resp.NeedsOnboarding)
}

func TestLogin_ProvisionsStarterSetsOnce(t *testing.T) {
	auth, restaurants, _, categories, locations := newAuthFixture()
	seeded := seedRestaurant(restaurants, "001111", nil)

	_, _, err := auth.Login(context.Background(), "1111")
	assert.NoError(t, err)
	assert.Len(t, categories.categories, 3)
	assert.Len(t, locations.locations, 3)

	// Second login must not duplicate the starter sets.
	seeded.Categories, _ = categories.ListByRestaurant(context.Background(), seeded.ID)
	seeded.Locations, _ = locations.ListByRestaurant(context.Background(), seeded.ID)
	_, _, err = auth.Login(context.Background(), "1111")
	assert.NoError(t, err)
	assert.Len(t, categories.categories, 3)
	assert.Len(t, locations.locations, 3)
}

func TestLogin_IndependentSessionsPerLogin(t *testing.T) {
	auth, restaurants, sessions, _, _ := newAuthFixture()
	seedRestaurant(restaurants, "001111", nil)

	_, tokenA, err := auth.Login(context.Background(), "1111")
	assert.NoError(t, err)
	_, tokenB, err := auth.Login(context.Background(), "1111")
	assert.NoError(t, err)

	assert.NotEqual(t, tokenA, tokenB)
	assert.Len(t, sessions.sessions, 2)

	// Destroying one session leaves the other valid.
	assert.NoError(t, auth.Logout(context.Background(), tokenA))
	_, err = auth.ValidateSession(context.Background(), tokenA)
	assert.ErrorIs(t, err, ErrUnauthenticated)
	_, err = auth.ValidateSession(context.Background(), tokenB)
	assert.NoError(t, err)
}

func TestValidateSession_ExpiredRowIsDeleted(t *testing.T) {
	auth, restaurants, sessions, _, _ := newAuthFixture()
	seeded := seedRestaurant(restaurants, "001111", nil)

	expired := &model.Session{
		Token:        "deadbeef",
		RestaurantID: seeded.ID,
		ExpiresAt:    time.Now().Add(-time.Minute),
	}
	_ = sessions.Create(context.Background(), expired)

	_, err := auth.ValidateSession(context.Background(), "deadbeef")
	assert.ErrorIs(t, err, ErrUnauthenticated)
	assert.NotContains(t, sessions.sessions, "deadbeef")
}

func TestValidateSession_TouchesLastUsed(t *testing.T) {
	auth, restaurants, sessions, _, _ := newAuthFixture()
	seeded := seedRestaurant(restaurants, "001111", nil)

	stale := time.Now().Add(-time.Hour)
	s := &model.Session{
		Token:        "cafebabe",
		RestaurantID: seeded.ID,
		ExpiresAt:    time.Now().Add(time.Hour),
		LastUsedAt:   stale,
	}
	_ = sessions.Create(context.Background(), s)

	restaurantID, err := auth.ValidateSession(context.Background(), "cafebabe")
	assert.NoError(t, err)
	assert.Equal(t, seeded.ID, restaurantID)
	assert.True(t, sessions.sessions["cafebabe"].LastUsedAt.After(stale))
}

func TestMigrateLegacyCookie(t *testing.T) {
	auth, restaurants, sessions, _, _ := newAuthFixture()
	code := "A"
	r := &model.Restaurant{PIN: "001111", TenantCode: &code}
	_ = restaurants.Create(context.Background(), r)

	token, restaurantID, err := auth.MigrateLegacyCookie(context.Background(), "A")
	assert.NoError(t, err)
	assert.Equal(t, r.ID, restaurantID)
	assert.Contains(t, sessions.sessions, token)

	_, _, err = auth.MigrateLegacyCookie(context.Background(), "Z")
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestSweepSessions(t *testing.T) {
	auth, restaurants, sessions, _, _ := newAuthFixture()
	seeded := seedRestaurant(restaurants, "001111", nil)

	_ = sessions.Create(context.Background(), &model.Session{
		Token: "old", RestaurantID: seeded.ID, ExpiresAt: time.Now().Add(-time.Hour),
	})
	_ = sessions.Create(context.Background(), &model.Session{
		Token: "fresh", RestaurantID: seeded.ID, ExpiresAt: time.Now().Add(time.Hour),
	})

	deleted, err := auth.SweepSessions(context.Background())
	assert.NoError(t, err)
	assert.EqualValues(t, 1, deleted)
	assert.Contains(t, sessions.sessions, "fresh")
	assert.NotContains(t, sessions.sessions, "old")
}
