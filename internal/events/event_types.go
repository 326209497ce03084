package events

import (
	"time"

	"github.com/laredo-ist/workorder-service/internal/routing"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventTicketSubmitted EventType = "ticket_submitted"
	EventTicketEscalated EventType = "ticket_escalated"
	EventTicketResolved  EventType = "ticket_resolved"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	TicketKey string      `json:"ticket_key"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// TicketSubmittedPayload carries the routed submission.
type TicketSubmittedPayload struct {
	Department        string           `json:"department"`
	Category          string           `json:"category"`
	Team              string           `json:"team"`
	Tier              routing.Tier     `json:"tier"`
	UserPriority      routing.Priority `json:"user_priority"`
	EffectivePriority routing.Priority `json:"effective_priority"`
	SLA               string           `json:"sla"`
	WasModified       bool             `json:"was_modified"`
}

// TicketEscalatedPayload carries the re-routed decision after a manual
// escalation.
type TicketEscalatedPayload struct {
	OldPriority routing.Priority `json:"old_priority"`
	NewPriority routing.Priority `json:"new_priority"`
	Team        string           `json:"team"`
	SLA         string           `json:"sla"`
}

// TicketResolvedPayload marks a ticket closed.
type TicketResolvedPayload struct {
	FinalPriority routing.Priority `json:"final_priority"`
	Team          string           `json:"team"`
}
