package dto

import (
	"time"

	"github.com/laredo-ist/workorder-service/internal/domain"
	"github.com/laredo-ist/workorder-service/internal/routing"
)

// SubmitTicketRequest payload.
type SubmitTicketRequest struct {
	Name         string `json:"name"`
	EmployeeID   string `json:"employee_id"`
	Department   string `json:"department"`
	Email        string `json:"email"`
	Category     string `json:"category"`
	SubType      string `json:"subtype"`
	IssueType    string `json:"issue_type"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	AssetTag     string `json:"asset_tag"`
	Location     string `json:"location"`
	PhoneExt     string `json:"phone_ext"`
	UserPriority int    `json:"user_priority"`
}

// RoutingDecisionResponse is the stored decision as exposed over HTTP.
type RoutingDecisionResponse struct {
	Tier              routing.Tier     `json:"tier"`
	TierLabel         string           `json:"tier_label"`
	Team              string           `json:"team"`
	SLA               string           `json:"sla"`
	EffectivePriority routing.Priority `json:"effective_priority"`
	PriorityLabel     string           `json:"priority_label"`
	WasModified       bool             `json:"was_modified"`
	Reasons           []string         `json:"reasons"`
	EscalationPath    []string         `json:"escalation_path"`
}

// TicketSummary response for queue listings.
type TicketSummary struct {
	TicketKey         string              `json:"ticket_key"`
	Name              string              `json:"name"`
	Department        string              `json:"department"`
	Category          string              `json:"category"`
	SubType           string              `json:"subtype"`
	Title             string              `json:"title"`
	Status            domain.TicketStatus `json:"status"`
	Tier              routing.Tier        `json:"tier"`
	Team              string              `json:"team"`
	EffectivePriority routing.Priority    `json:"effective_priority"`
	PriorityLabel     string              `json:"priority_label"`
	SLA               string              `json:"sla"`
	WasModified       bool                `json:"was_modified"`
	SubmittedAt       time.Time           `json:"submitted_at"`
}

// TicketDetailResponse provides full ticket info including the decision
// audit trail.
type TicketDetailResponse struct {
	TicketKey    string                  `json:"ticket_key"`
	Name         string                  `json:"name"`
	EmployeeID   string                  `json:"employee_id"`
	Department   string                  `json:"department"`
	Email        string                  `json:"email"`
	Category     string                  `json:"category"`
	SubType      string                  `json:"subtype"`
	IssueType    string                  `json:"issue_type"`
	Title        string                  `json:"title"`
	Description  string                  `json:"description"`
	AssetTag     string                  `json:"asset_tag,omitempty"`
	Location     string                  `json:"location,omitempty"`
	PhoneExt     string                  `json:"phone_ext,omitempty"`
	UserPriority routing.Priority        `json:"user_priority"`
	Status       domain.TicketStatus     `json:"status"`
	Routing      RoutingDecisionResponse `json:"routing"`
	SubmittedAt  time.Time               `json:"submitted_at"`
	UpdatedAt    time.Time               `json:"updated_at"`
}

// QueueStatsResponse carries dashboard counters.
type QueueStatsResponse struct {
	Total         int64 `json:"total"`
	Open          int64 `json:"open"`
	InProgress    int64 `json:"in_progress"`
	Critical      int64 `json:"critical"`
	CriticalInfra int64 `json:"critical_infra"`
	// OpenCount counts every ticket not yet closed, regardless of
	// whether work has started.
	OpenCount int64 `json:"open_count"`
}

// QueueResponse is the admin queue page.
type QueueResponse struct {
	Tickets []TicketSummary    `json:"tickets"`
	Stats   QueueStatsResponse `json:"stats"`
}

// DecisionResponseFromDomain maps a stored decision.
func DecisionResponseFromDomain(d domain.RoutingDecision) RoutingDecisionResponse {
	return RoutingDecisionResponse{
		Tier:              d.Tier,
		TierLabel:         d.TierLabel,
		Team:              d.Team,
		SLA:               d.SLA,
		EffectivePriority: d.EffectivePriority,
		PriorityLabel:     d.EffectivePriority.Label(),
		WasModified:       d.WasModified,
		Reasons:           d.Reasons,
		EscalationPath:    d.EscalationPath,
	}
}

// SummaryFromTicket maps a ticket to its queue row.
func SummaryFromTicket(t domain.Ticket) TicketSummary {
	return TicketSummary{
		TicketKey:         t.TicketKey,
		Name:              t.Name,
		Department:        t.Department,
		Category:          t.Category,
		SubType:           t.SubType,
		Title:             t.Title,
		Status:            t.Status,
		Tier:              t.Routing.Tier,
		Team:              t.Routing.Team,
		EffectivePriority: t.Routing.EffectivePriority,
		PriorityLabel:     t.Routing.EffectivePriority.Label(),
		SLA:               t.Routing.SLA,
		WasModified:       t.Routing.WasModified,
		SubmittedAt:       t.SubmittedAt,
	}
}

// DetailFromTicket maps a ticket to its detail view.
func DetailFromTicket(t *domain.Ticket) TicketDetailResponse {
	return TicketDetailResponse{
		TicketKey:    t.TicketKey,
		Name:         t.Name,
		EmployeeID:   t.EmployeeID,
		Department:   t.Department,
		Email:        t.Email,
		Category:     t.Category,
		SubType:      t.SubType,
		IssueType:    t.IssueType,
		Title:        t.Title,
		Description:  t.Description,
		AssetTag:     t.AssetTag,
		Location:     t.Location,
		PhoneExt:     t.PhoneExt,
		UserPriority: t.UserPriority,
		Status:       t.Status,
		Routing:      DecisionResponseFromDomain(t.Routing),
		SubmittedAt:  t.SubmittedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}
