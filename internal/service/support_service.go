package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/ClearStock/clearstock/internal/dto"
	"github.com/ClearStock/clearstock/internal/model"
	"github.com/ClearStock/clearstock/internal/repository"
	"github.com/ClearStock/clearstock/internal/worker"
)

var ticketTypeLabels = map[string]string{
	"bug":        "Bug",
	"suggestion": "Sugestão",
	"question":   "Dúvida",
	"other":      "Outro",
}

// SupportService persists support tickets and notifies the ops inbox.
type SupportService interface {
	Submit(ctx context.Context, restaurantID uuid.UUID, req dto.SupportRequest) (*dto.SupportResponse, error)
}

type supportService struct {
	tickets     repository.SupportRepository
	restaurants repository.RestaurantRepository
	dispatcher  *worker.Dispatcher
	adminEmail  string
}

func NewSupportService(tickets repository.SupportRepository, restaurants repository.RestaurantRepository, dispatcher *worker.Dispatcher, adminEmail string) SupportService {
	return &supportService{
		tickets:     tickets,
		restaurants: restaurants,
		dispatcher:  dispatcher,
		adminEmail:  adminEmail,
	}
}

// Submit stores the ticket and enqueues the notification email. The ticket
// is the source of truth: an email failure is logged, never surfaced.
func (s *supportService) Submit(ctx context.Context, restaurantID uuid.UUID, req dto.SupportRequest) (*dto.SupportResponse, error) {
	ticket := &model.SupportMessage{
		RestaurantID: restaurantID,
		Type:         req.Type,
		Message:      req.Message,
		Contact:      req.Contact,
	}
	if restaurant, err := s.restaurants.FindByID(ctx, restaurantID); err == nil {
		ticket.RestaurantName = restaurant.Name
	} else {
		log.Warn().Err(err).Msg("support: could not snapshot restaurant name")
	}

	if err := s.tickets.Create(ctx, ticket); err != nil {
		return nil, fmt.Errorf("creating support ticket: %w", err)
	}

	s.enqueueNotification(ctx, ticket)

	return &dto.SupportResponse{OK: true, ID: ticket.ID}, nil
}

func (s *supportService) enqueueNotification(ctx context.Context, ticket *model.SupportMessage) {
	restaurantName := "(sem nome)"
	if ticket.RestaurantName != nil && *ticket.RestaurantName != "" {
		restaurantName = *ticket.RestaurantName
	}
	label := ticketTypeLabels[ticket.Type]
	if label == "" {
		label = ticket.Type
	}

	payload := worker.EmailJobPayload{
		ToEmail: s.adminEmail,
		Subject: fmt.Sprintf("[ClearStock] %s — %s", label, restaurantName),
		Body: fmt.Sprintf(
			"Novo pedido de suporte\n\nRestaurante: %s (%s)\nTipo: %s\nContacto: %s\n\nMensagem:\n%s\n",
			restaurantName, ticket.RestaurantID, label, ticket.Contact, ticket.Message,
		),
	}
	if err := s.dispatcher.EnqueueEmail(ctx, payload); err != nil {
		log.Error().Err(err).Str("ticket_id", ticket.ID.String()).Msg("support: failed to enqueue notification email")
	}
}
