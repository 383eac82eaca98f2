package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/ClearStock/clearstock/internal/dto"
	"github.com/ClearStock/clearstock/internal/model"
	"github.com/ClearStock/clearstock/internal/repository"
)

var (
	// ErrInvalidPIN is returned for malformed PINs and for PINs that do not
	// match any restaurant. Both cases look identical to the caller.
	ErrInvalidPIN = errors.New("PIN inválido. Tente novamente.")

	// ErrUnauthenticated is returned when no valid session backs a request.
	ErrUnauthenticated = errors.New("Não autenticado")
)

const sessionTokenBytes = 32

var (
	pinFourDigits = regexp.MustCompile(`^\d{4}$`)
	pinSixDigits  = regexp.MustCompile(`^\d{6}$`)
)

// NormalizePIN maps user input into the canonical six-digit PIN space.
// Legacy four-digit PINs are left-padded with zeros, so "1111" and "001111"
// address the same tenant.
func NormalizePIN(pin string) (string, bool) {
	p := strings.TrimSpace(pin)
	switch {
	case pinSixDigits.MatchString(p):
		return p, true
	case pinFourDigits.MatchString(p):
		return "00" + p, true
	}
	return "", false
}

// AuthService handles PIN login and the opaque-token session lifecycle.
type AuthService interface {
	Login(ctx context.Context, pin string) (*dto.LoginResponse, string, error)
	Logout(ctx context.Context, token string) error
	ValidateSession(ctx context.Context, token string) (uuid.UUID, error)
	MigrateLegacyCookie(ctx context.Context, tenantCode string) (string, uuid.UUID, error)
	SweepSessions(ctx context.Context) (int64, error)
	SessionTTL() time.Duration
}

type authService struct {
	restaurants repository.RestaurantRepository
	sessions    repository.SessionRepository
	tenants     TenantService
	sessionTTL  time.Duration
}

func NewAuthService(restaurants repository.RestaurantRepository, sessions repository.SessionRepository, tenants TenantService, sessionTTL time.Duration) AuthService {
	return &authService{
		restaurants: restaurants,
		sessions:    sessions,
		tenants:     tenants,
		sessionTTL:  sessionTTL,
	}
}

func (s *authService) SessionTTL() time.Duration {
	return s.sessionTTL
}

func (s *authService) Login(ctx context.Context, pin string) (*dto.LoginResponse, string, error) {
	normalized, ok := NormalizePIN(pin)
	if !ok {
		return nil, "", ErrInvalidPIN
	}

	restaurant, err := s.restaurants.FindByPIN(ctx, normalized)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", ErrInvalidPIN
	}
	if err != nil {
		return nil, "", fmt.Errorf("looking up restaurant: %w", err)
	}

	if err := s.tenants.EnsureProvisioned(ctx, restaurant); err != nil {
		return nil, "", fmt.Errorf("provisioning tenant: %w", err)
	}

	token, err := s.createSession(ctx, restaurant.ID)
	if err != nil {
		return nil, "", err
	}

	return &dto.LoginResponse{
		Success: true,
		Restaurant: dto.RestaurantInfo{
			ID:   restaurant.ID.String(),
			Name: restaurant.Name,
			PIN:  restaurant.PIN,
		},
		NeedsOnboarding: restaurant.Name == nil || *restaurant.Name == "",
	}, token, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.sessions.DeleteByToken(ctx, token); err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}
	return nil
}

// ValidateSession resolves a token to its restaurant. Expired rows are
// deleted on sight so the table does not depend on the sweep alone.
func (s *authService) ValidateSession(ctx context.Context, token string) (uuid.UUID, error) {
	session, err := s.sessions.FindByToken(ctx, token)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return uuid.Nil, ErrUnauthenticated
	}
	if err != nil {
		return uuid.Nil, fmt.Errorf("looking up session: %w", err)
	}

	now := time.Now()
	if !now.Before(session.ExpiresAt) {
		if delErr := s.sessions.DeleteByToken(ctx, token); delErr != nil {
			log.Warn().Err(delErr).Msg("failed to delete expired session")
		}
		return uuid.Nil, ErrUnauthenticated
	}

	if err := s.sessions.Touch(ctx, token, now); err != nil {
		log.Warn().Err(err).Msg("failed to touch session")
	}

	return session.RestaurantID, nil
}

// MigrateLegacyCookie exchanges a pre-session tenant-code cookie for a real
// session. Unknown codes are rejected, not provisioned.
func (s *authService) MigrateLegacyCookie(ctx context.Context, tenantCode string) (string, uuid.UUID, error) {
	restaurant, err := s.restaurants.FindByTenantCode(ctx, strings.TrimSpace(tenantCode))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", uuid.Nil, ErrUnauthenticated
	}
	if err != nil {
		return "", uuid.Nil, fmt.Errorf("looking up restaurant: %w", err)
	}

	token, err := s.createSession(ctx, restaurant.ID)
	if err != nil {
		return "", uuid.Nil, err
	}
	return token, restaurant.ID, nil
}

func (s *authService) SweepSessions(ctx context.Context) (int64, error) {
	return s.sessions.DeleteExpired(ctx, time.Now())
}

func (s *authService) createSession(ctx context.Context, restaurantID uuid.UUID) (string, error) {
	token, err := newSessionToken()
	if err != nil {
		return "", err
	}

	now := time.Now()
	session := &model.Session{
		Token:        token,
		RestaurantID: restaurantID,
		ExpiresAt:    now.Add(s.sessionTTL),
		LastUsedAt:   now,
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return "", fmt.Errorf("creating session: %w", err)
	}
	return token, nil
}

func newSessionToken() (string, error) {
	buf := make([]byte, sessionTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generating session token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
