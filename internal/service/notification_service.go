package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/laredo-ist/workorder-service/internal/events"
)

// NotificationService fans ticket lifecycle events out to the assigned
// teams. Delivery is a structured log line today; the handler shape
// leaves room for email or webhook senders later.
type NotificationService struct {
	logger *zap.Logger
}

// NewNotificationService constructs the service.
func NewNotificationService(logger *zap.Logger) *NotificationService {
	return &NotificationService{logger: logger}
}

// Register subscribes the service to the ticket lifecycle events.
func (s *NotificationService) Register(dispatcher events.Dispatcher) {
	dispatcher.Subscribe(events.EventTicketSubmitted, s.handleSubmitted)
	dispatcher.Subscribe(events.EventTicketEscalated, s.handleEscalated)
	dispatcher.Subscribe(events.EventTicketResolved, s.handleResolved)
}

func (s *NotificationService) handleSubmitted(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.TicketSubmittedPayload)
	if !ok {
		return nil
	}
	s.logger.Info("ticket routed, notifying team",
		zap.String("ticket_key", event.TicketKey),
		zap.String("team", payload.Team),
		zap.String("department", payload.Department),
		zap.Int("effective_priority", int(payload.EffectivePriority)),
		zap.String("sla", payload.SLA),
		zap.Bool("was_modified", payload.WasModified),
	)
	return nil
}

func (s *NotificationService) handleEscalated(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.TicketEscalatedPayload)
	if !ok {
		return nil
	}
	s.logger.Warn("ticket escalated, notifying team",
		zap.String("ticket_key", event.TicketKey),
		zap.String("team", payload.Team),
		zap.Int("old_priority", int(payload.OldPriority)),
		zap.Int("new_priority", int(payload.NewPriority)),
		zap.String("sla", payload.SLA),
	)
	return nil
}

func (s *NotificationService) handleResolved(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.TicketResolvedPayload)
	if !ok {
		return nil
	}
	s.logger.Info("ticket resolved",
		zap.String("ticket_key", event.TicketKey),
		zap.String("team", payload.Team),
		zap.Int("final_priority", int(payload.FinalPriority)),
	)
	return nil
}
