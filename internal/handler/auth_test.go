package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/ClearStock/clearstock/internal/config"
	"github.com/ClearStock/clearstock/internal/middleware"
	"github.com/ClearStock/clearstock/internal/model"
	"github.com/ClearStock/clearstock/internal/service"
)

// ── In-memory repository stubs ────────────────────────────────────────────────

type memRestaurantRepo struct{ byID map[uuid.UUID]*model.Restaurant }

func (r *memRestaurantRepo) Create(_ context.Context, m *model.Restaurant) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	r.byID[m.ID] = m
	return nil
}

func (r *memRestaurantRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Restaurant, error) {
	if m, ok := r.byID[id]; ok {
		return m, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memRestaurantRepo) FindByPIN(_ context.Context, pin string) (*model.Restaurant, error) {
	for _, m := range r.byID {
		if m.PIN == pin {
			return m, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memRestaurantRepo) FindByTenantCode(_ context.Context, code string) (*model.Restaurant, error) {
	for _, m := range r.byID {
		if m.TenantCode != nil && *m.TenantCode == code {
			return m, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memRestaurantRepo) Update(_ context.Context, m *model.Restaurant) error {
	r.byID[m.ID] = m
	return nil
}

type memSessionRepo struct{ byToken map[string]*model.Session }

func (r *memSessionRepo) Create(_ context.Context, s *model.Session) error {
	s.ID = uuid.New()
	r.byToken[s.Token] = s
	return nil
}

func (r *memSessionRepo) FindByToken(_ context.Context, token string) (*model.Session, error) {
	if s, ok := r.byToken[token]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memSessionRepo) Touch(_ context.Context, token string, at time.Time) error {
	if s, ok := r.byToken[token]; ok {
		s.LastUsedAt = at
	}
	return nil
}

func (r *memSessionRepo) DeleteByToken(_ context.Context, token string) error {
	delete(r.byToken, token)
	return nil
}

func (r *memSessionRepo) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	var n int64
	for token, s := range r.byToken {
		if s.ExpiresAt.Before(now) {
			delete(r.byToken, token)
			n++
		}
	}
	return n, nil
}

type memCategoryRepo struct{}

func (memCategoryRepo) Create(_ context.Context, c *model.Category) error { c.ID = uuid.New(); return nil }
func (memCategoryRepo) ListByRestaurant(_ context.Context, _ uuid.UUID) ([]model.Category, error) {
	return nil, nil
}
func (memCategoryRepo) FindByID(_ context.Context, _, _ uuid.UUID) (*model.Category, error) {
	return nil, gorm.ErrRecordNotFound
}
func (memCategoryRepo) FindByNameAndTipo(_ context.Context, _ uuid.UUID, _, _ string) (*model.Category, error) {
	return nil, gorm.ErrRecordNotFound
}
func (memCategoryRepo) UpdateAlerts(_ context.Context, _, _ uuid.UUID, _, _ *int) error {
	return gorm.ErrRecordNotFound
}
func (memCategoryRepo) Delete(_ context.Context, _, _ uuid.UUID) error {
	return gorm.ErrRecordNotFound
}

type memLocationRepo struct{}

func (memLocationRepo) Create(_ context.Context, l *model.Location) error { l.ID = uuid.New(); return nil }
func (memLocationRepo) ListByRestaurant(_ context.Context, _ uuid.UUID) ([]model.Location, error) {
	return nil, nil
}
func (memLocationRepo) FindByName(_ context.Context, _ uuid.UUID, _ string) (*model.Location, error) {
	return nil, gorm.ErrRecordNotFound
}
func (memLocationRepo) Delete(_ context.Context, _, _ uuid.UUID) error {
	return gorm.ErrRecordNotFound
}

// ── Fixture ───────────────────────────────────────────────────────────────────

type authFixture struct {
	engine      *gin.Engine
	restaurants *memRestaurantRepo
	sessions    *memSessionRepo
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	restaurants := &memRestaurantRepo{byID: make(map[uuid.UUID]*model.Restaurant)}
	sessions := &memSessionRepo{byToken: make(map[string]*model.Session)}
	cfg := &config.Config{Env: "development", SessionTTLHours: 168}

	tenants := service.NewTenantService(restaurants, memCategoryRepo{}, memLocationRepo{})
	auth := service.NewAuthService(restaurants, sessions, tenants, 168*time.Hour)
	h := NewAuthHandler(auth, tenants, cfg)

	r := gin.New()
	r.POST("/v1/auth/login", h.Login)
	r.POST("/v1/auth/logout", h.Logout)
	r.GET("/v1/auth/session", middleware.SessionAuth(auth, cfg), h.Session)

	return &authFixture{engine: r, restaurants: restaurants, sessions: sessions}
}

func (f *authFixture) seed(pin string, tenantCode *string) *model.Restaurant {
	name := "Tasca"
	m := &model.Restaurant{PIN: pin, Name: &name, TenantCode: tenantCode, AlertDaysBeforeExpiry: 3}
	_ = f.restaurants.Create(context.Background(), m)
	return m
}

func (f *authFixture) do(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	f.engine.ServeHTTP(w, req)
	return w
}

func postJSON(path string, body interface{}) *http.Request {
	data, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func sessionCookie(w *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == middleware.SessionCookieName {
			return c
		}
	}
	return nil
}

// ── Tests ─────────────────────────────────────────────────────────────────────

func TestLoginSetsHTTPOnlyCookie(t *testing.T) {
	f := newAuthFixture(t)
	f.seed("001111", nil)

	w := f.do(postJSON("/v1/auth/login", gin.H{"pin": "1111"}))
	assert.Equal(t, http.StatusOK, w.Code)

	c := sessionCookie(w)
	if assert.NotNil(t, c) {
		assert.NotEmpty(t, c.Value)
		assert.True(t, c.HttpOnly)
		assert.Equal(t, http.SameSiteLaxMode, c.SameSite)
	}
}

func TestLoginWrongPIN(t *testing.T) {
	f := newAuthFixture(t)
	f.seed("001111", nil)

	w := f.do(postJSON("/v1/auth/login", gin.H{"pin": "9999"}))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Nil(t, sessionCookie(w))
}

func TestSessionEndpointRequiresCookie(t *testing.T) {
	f := newAuthFixture(t)
	f.seed("001111", nil)

	w := f.do(httptest.NewRequest(http.MethodGet, "/v1/auth/session", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSessionFlow(t *testing.T) {
	f := newAuthFixture(t)
	f.seed("001111", nil)

	login := f.do(postJSON("/v1/auth/login", gin.H{"pin": "1111"}))
	cookie := sessionCookie(login)
	assert.NotNil(t, cookie)

	req := httptest.NewRequest(http.MethodGet, "/v1/auth/session", nil)
	req.AddCookie(&http.Cookie{Name: cookie.Name, Value: cookie.Value})
	w := f.do(req)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Authenticated bool `json:"authenticated"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Authenticated)
}

func TestLogoutDestroysSession(t *testing.T) {
	f := newAuthFixture(t)
	f.seed("001111", nil)

	login := f.do(postJSON("/v1/auth/login", gin.H{"pin": "1111"}))
	cookie := sessionCookie(login)
	assert.NotNil(t, cookie)

	logout := httptest.NewRequest(http.MethodPost, "/v1/auth/logout", nil)
	logout.AddCookie(&http.Cookie{Name: cookie.Name, Value: cookie.Value})
	w := f.do(logout)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, f.sessions.byToken)

	req := httptest.NewRequest(http.MethodGet, "/v1/auth/session", nil)
	req.AddCookie(&http.Cookie{Name: cookie.Name, Value: cookie.Value})
	assert.Equal(t, http.StatusUnauthorized, f.do(req).Code)
}

func TestLegacyCookieMigration(t *testing.T) {
	f := newAuthFixture(t)
	code := "A"
	f.seed("001111", &code)

	req := httptest.NewRequest(http.MethodGet, "/v1/auth/session", nil)
	req.AddCookie(&http.Cookie{Name: middleware.LegacyCookieName, Value: "A"})
	w := f.do(req)

	assert.Equal(t, http.StatusOK, w.Code)
	// A real session replaces the legacy cookie.
	c := sessionCookie(w)
	if assert.NotNil(t, c) {
		assert.Contains(t, f.sessions.byToken, c.Value)
	}

	var legacyCleared bool
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == middleware.LegacyCookieName && cookie.MaxAge < 0 {
			legacyCleared = true
		}
	}
	assert.True(t, legacyCleared)
}

func TestLegacyCookieUnknownCode(t *testing.T) {
	f := newAuthFixture(t)
	f.seed("001111", nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/auth/session", nil)
	req.AddCookie(&http.Cookie{Name: middleware.LegacyCookieName, Value: "Z"})
	assert.Equal(t, http.StatusUnauthorized, f.do(req).Code)
}
