package domain

import (
	"time"

	"github.com/laredo-ist/workorder-service/internal/routing"
)

// TicketStatus enumerates lifecycle states for work orders.
type TicketStatus string

const (
	TicketStatusOpen       TicketStatus = "Open"
	TicketStatusInProgress TicketStatus = "In Progress"
	TicketStatusClosed     TicketStatus = "Closed"
)

// RoutingDecision is the engine output persisted alongside a ticket.
// It is written on submission and on escalation, never edited by hand;
// callers re-run the engine when a ticket's classification changes.
type RoutingDecision struct {
	Tier              routing.Tier
	TierLabel         string
	Team              string
	SLA               string
	EffectivePriority routing.Priority
	WasModified       bool
	Reasons           []string
	EscalationPath    []string
}

// Ticket is the aggregate for a single IT support work order. It stores
// the requester's submission plus the resolved routing decision.
type Ticket struct {
	ID          string
	TicketKey   string
	RequesterID *string

	// Requester information (Tier 1 inputs).
	Name       string
	EmployeeID string
	Department string
	Email      string

	// Issue details (Tier 2-4 inputs). IssueType is descriptive only.
	Category    string
	SubType     string
	IssueType   string
	Title       string
	Description string
	AssetTag    string
	Location    string
	PhoneExt    string

	UserPriority routing.Priority
	Routing      RoutingDecision

	Status      TicketStatus
	SubmittedAt time.Time
	UpdatedAt   time.Time
}

// DecisionFromResult converts an engine result into the persisted form.
func DecisionFromResult(result routing.Result) RoutingDecision {
	return RoutingDecision{
		Tier:              result.Tier,
		TierLabel:         result.TierLabel,
		Team:              result.Team,
		SLA:               result.SLA,
		EffectivePriority: result.EffectivePriority,
		WasModified:       result.WasModified,
		Reasons:           result.Reasons,
		EscalationPath:    result.EscalationPath,
	}
}
