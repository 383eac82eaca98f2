package service

// In-memory repository stubs shared by the service tests.

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ClearStock/clearstock/internal/model"
)

// ── Restaurants ───────────────────────────────────────────────────────────────

type stubRestaurantRepo struct {
	restaurants map[uuid.UUID]*model.Restaurant
}

func newStubRestaurantRepo() *stubRestaurantRepo {
	return &stubRestaurantRepo{restaurants: make(map[uuid.UUID]*model.Restaurant)}
}

func (r *stubRestaurantRepo) Create(_ context.Context, m *model.Restaurant) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	r.restaurants[m.ID] = m
	return nil
}

func (r *stubRestaurantRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Restaurant, error) {
	m, ok := r.restaurants[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return m, nil
}

func (r *stubRestaurantRepo) FindByPIN(_ context.Context, pin string) (*model.Restaurant, error) {
	for _, m := range r.restaurants {
		if m.PIN == pin {
			return m, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubRestaurantRepo) FindByTenantCode(_ context.Context, code string) (*model.Restaurant, error) {
	for _, m := range r.restaurants {
		if m.TenantCode != nil && *m.TenantCode == code {
			return m, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubRestaurantRepo) Update(_ context.Context, m *model.Restaurant) error {
	r.restaurants[m.ID] = m
	return nil
}

// ── Sessions ──────────────────────────────────────────────────────────────────

type stubSessionRepo struct {
	sessions map[string]*model.Session
}

func newStubSessionRepo() *stubSessionRepo {
	return &stubSessionRepo{sessions: make(map[string]*model.Session)}
}

func (r *stubSessionRepo) Create(_ context.Context, s *model.Session) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	r.sessions[s.Token] = s
	return nil
}

func (r *stubSessionRepo) FindByToken(_ context.Context, token string) (*model.Session, error) {
	s, ok := r.sessions[token]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return s, nil
}

func (r *stubSessionRepo) Touch(_ context.Context, token string, at time.Time) error {
	if s, ok := r.sessions[token]; ok {
		s.LastUsedAt = at
	}
	return nil
}

func (r *stubSessionRepo) DeleteByToken(_ context.Context, token string) error {
	delete(r.sessions, token)
	return nil
}

func (r *stubSessionRepo) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	var deleted int64
	for token, s := range r.sessions {
		if s.ExpiresAt.Before(now) {
			delete(r.sessions, token)
			deleted++
		}
	}
	return deleted, nil
}

// ── Categories ────────────────────────────────────────────────────────────────

type stubCategoryRepo struct {
	categories map[uuid.UUID]*model.Category
}

func newStubCategoryRepo() *stubCategoryRepo {
	return &stubCategoryRepo{categories: make(map[uuid.UUID]*model.Category)}
}

func (r *stubCategoryRepo) Create(_ context.Context, c *model.Category) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.categories[c.ID] = c
	return nil
}

func (r *stubCategoryRepo) ListByRestaurant(_ context.Context, restaurantID uuid.UUID) ([]model.Category, error) {
	var out []model.Category
	for _, c := range r.categories {
		if c.RestaurantID == restaurantID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *stubCategoryRepo) FindByID(_ context.Context, restaurantID, id uuid.UUID) (*model.Category, error) {
	c, ok := r.categories[id]
	if !ok || c.RestaurantID != restaurantID {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (r *stubCategoryRepo) FindByNameAndTipo(_ context.Context, restaurantID uuid.UUID, name, tipo string) (*model.Category, error) {
	for _, c := range r.categories {
		if c.RestaurantID == restaurantID && c.Name == name && c.Tipo == tipo {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubCategoryRepo) UpdateAlerts(_ context.Context, restaurantID, id uuid.UUID, warningDays, alertDays *int) error {
	c, ok := r.categories[id]
	if !ok || c.RestaurantID != restaurantID {
		return gorm.ErrRecordNotFound
	}
	c.WarningDaysBeforeExpiry = warningDays
	c.AlertDaysBeforeExpiry = alertDays
	return nil
}

func (r *stubCategoryRepo) Delete(_ context.Context, restaurantID, id uuid.UUID) error {
	c, ok := r.categories[id]
	if !ok || c.RestaurantID != restaurantID {
		return gorm.ErrRecordNotFound
	}
	delete(r.categories, id)
	return nil
}

// ── Locations ─────────────────────────────────────────────────────────────────

type stubLocationRepo struct {
	locations map[uuid.UUID]*model.Location
}

func newStubLocationRepo() *stubLocationRepo {
	return &stubLocationRepo{locations: make(map[uuid.UUID]*model.Location)}
}

func (r *stubLocationRepo) Create(_ context.Context, l *model.Location) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	r.locations[l.ID] = l
	return nil
}

func (r *stubLocationRepo) ListByRestaurant(_ context.Context, restaurantID uuid.UUID) ([]model.Location, error) {
	var out []model.Location
	for _, l := range r.locations {
		if l.RestaurantID == restaurantID {
			out = append(out, *l)
		}
	}
	return out, nil
}

func (r *stubLocationRepo) FindByName(_ context.Context, restaurantID uuid.UUID, name string) (*model.Location, error) {
	for _, l := range r.locations {
		if l.RestaurantID == restaurantID && l.Name == name {
			return l, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubLocationRepo) Delete(_ context.Context, restaurantID, id uuid.UUID) error {
	l, ok := r.locations[id]
	if !ok || l.RestaurantID != restaurantID {
		return gorm.ErrRecordNotFound
	}
	delete(r.locations, id)
	return nil
}

// ── Batches ───────────────────────────────────────────────────────────────────

type stubBatchRepo struct {
	batches map[uuid.UUID]*model.ProductBatch
}

func newStubBatchRepo() *stubBatchRepo {
	return &stubBatchRepo{batches: make(map[uuid.UUID]*model.ProductBatch)}
}

func (r *stubBatchRepo) Create(_ context.Context, b *model.ProductBatch) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	r.batches[b.ID] = b
	return nil
}

func (r *stubBatchRepo) FindByID(_ context.Context, restaurantID, id uuid.UUID) (*model.ProductBatch, error) {
	b, ok := r.batches[id]
	if !ok || b.RestaurantID != restaurantID {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *b
	return &copied, nil
}

func (r *stubBatchRepo) ListByRestaurant(_ context.Context, restaurantID uuid.UUID) ([]model.ProductBatch, error) {
	var out []model.ProductBatch
	for _, b := range r.batches {
		if b.RestaurantID == restaurantID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *stubBatchRepo) Update(_ context.Context, b *model.ProductBatch) error {
	if _, ok := r.batches[b.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	copied := *b
	r.batches[b.ID] = &copied
	return nil
}

func (r *stubBatchRepo) Delete(_ context.Context, restaurantID, id uuid.UUID) error {
	b, ok := r.batches[id]
	if !ok || b.RestaurantID != restaurantID {
		return gorm.ErrRecordNotFound
	}
	delete(r.batches, id)
	return nil
}

// ── Stock events ──────────────────────────────────────────────────────────────

type stubEventRepo struct {
	events []model.StockEvent
}

func newStubEventRepo() *stubEventRepo { return &stubEventRepo{} }

func (r *stubEventRepo) Create(_ context.Context, e *model.StockEvent) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}
	r.events = append(r.events, *e)
	return nil
}

func (r *stubEventRepo) ListByRange(_ context.Context, restaurantID uuid.UUID, from, to time.Time) ([]model.StockEvent, error) {
	var out []model.StockEvent
	for _, e := range r.events {
		if e.RestaurantID == restaurantID && !e.CreatedAt.Before(from) && !e.CreatedAt.After(to) {
			out = append(out, e)
		}
	}
	return out, nil
}

// ── Users ─────────────────────────────────────────────────────────────────────

type stubUserRepo struct {
	users map[uuid.UUID]*model.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[uuid.UUID]*model.User)}
}

func (r *stubUserRepo) FirstOrCreate(_ context.Context, restaurantID uuid.UUID) (*model.User, error) {
	if u, ok := r.users[restaurantID]; ok {
		return u, nil
	}
	u := &model.User{ID: uuid.New(), RestaurantID: restaurantID, Name: "Demo User"}
	r.users[restaurantID] = u
	return u, nil
}
