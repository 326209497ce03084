package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/laredo-ist/workorder-service/internal/domain"
	"github.com/laredo-ist/workorder-service/internal/events"
	"github.com/laredo-ist/workorder-service/internal/observability"
	"github.com/laredo-ist/workorder-service/internal/persistence"
	"github.com/laredo-ist/workorder-service/internal/repository"
	"github.com/laredo-ist/workorder-service/internal/routing"
	apperrors "github.com/laredo-ist/workorder-service/pkg/util"
)

const statsCacheKey = "workorder:queue:stats"

// TicketService coordinates work order workflows around the routing
// engine. The engine decides; this service persists what it decided.
type TicketService struct {
	engine     *routing.Engine
	tickets    repository.TicketRepository
	dispatcher events.Dispatcher
	cache      *persistence.Redis
	statsTTL   time.Duration
	metrics    *observability.Metrics
}

// TicketDependencies bundles collaborators for the ticket service.
type TicketDependencies struct {
	Engine     *routing.Engine
	TicketRepo repository.TicketRepository
	Dispatcher events.Dispatcher
	Cache      *persistence.Redis
	StatsTTL   time.Duration
	Metrics    *observability.Metrics
}

// TicketSubmitInput describes a work order submission.
type TicketSubmitInput struct {
	RequesterID  *string
	Name         string
	EmployeeID   string
	Department   string
	Email        string
	Category     string
	SubType      string
	IssueType    string
	Title        string
	Description  string
	AssetTag     string
	Location     string
	PhoneExt     string
	UserPriority int
}

// QueueFilter describes admin queue filters.
type QueueFilter struct {
	Status            *domain.TicketStatus
	EffectivePriority *routing.Priority
	Tier              *routing.Tier
	Department        *string
	Limit             int
	Offset            int
}

// NewTicketService constructs the service.
func NewTicketService(deps TicketDependencies) *TicketService {
	engine := deps.Engine
	if engine == nil {
		engine = routing.NewEngine()
	}
	statsTTL := deps.StatsTTL
	if statsTTL <= 0 {
		statsTTL = 15 * time.Second
	}
	return &TicketService{
		engine:     engine,
		tickets:    deps.TicketRepo,
		dispatcher: deps.Dispatcher,
		cache:      deps.Cache,
		statsTTL:   statsTTL,
		metrics:    deps.Metrics,
	}
}

// Submit validates a submission, routes it through the engine, and
// persists ticket plus decision.
func (s *TicketService) Submit(ctx context.Context, input TicketSubmitInput) (*domain.Ticket, error) {
	if err := validateSubmission(input); err != nil {
		return nil, err
	}

	result := s.engine.Compute(routing.Input{
		Department:   input.Department,
		Category:     input.Category,
		SubType:      input.SubType,
		UserPriority: input.UserPriority,
		Text:         input.Title + " " + input.Description,
	})

	ticket := &domain.Ticket{
		RequesterID:  input.RequesterID,
		Name:         strings.TrimSpace(input.Name),
		EmployeeID:   strings.TrimSpace(input.EmployeeID),
		Department:   input.Department,
		Email:        strings.TrimSpace(input.Email),
		Category:     input.Category,
		SubType:      input.SubType,
		IssueType:    input.IssueType,
		Title:        strings.TrimSpace(input.Title),
		Description:  strings.TrimSpace(input.Description),
		AssetTag:     strings.TrimSpace(input.AssetTag),
		Location:     strings.TrimSpace(input.Location),
		PhoneExt:     strings.TrimSpace(input.PhoneExt),
		UserPriority: result.UserPriority,
		Routing:      domain.DecisionFromResult(result),
		Status:       domain.TicketStatusOpen,
	}

	if err := s.tickets.Create(ctx, ticket); err != nil {
		return nil, apperrors.MapError(err)
	}

	if s.metrics != nil {
		s.metrics.RecordRouted(int(result.EffectivePriority))
	}
	s.invalidateStats(ctx)
	s.publishEvent(ctx, events.Event{
		Type:      events.EventTicketSubmitted,
		TicketKey: ticket.TicketKey,
		Payload: events.TicketSubmittedPayload{
			Department:        ticket.Department,
			Category:          ticket.Category,
			Team:              result.Team,
			Tier:              result.Tier,
			UserPriority:      result.UserPriority,
			EffectivePriority: result.EffectivePriority,
			SLA:               result.SLA,
			WasModified:       result.WasModified,
		},
	})
	return ticket, nil
}

// Preview routes hypothetical inputs without persisting anything, for
// the live as-you-type form preview.
func (s *TicketService) Preview(in routing.Input) routing.Result {
	return s.engine.Compute(in)
}

// Get fetches one ticket by its key.
func (s *TicketService) Get(ctx context.Context, ticketKey string) (*domain.Ticket, error) {
	ticket, err := s.tickets.GetByKey(ctx, ticketKey)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("ticket", map[string]any{"ticket_key": ticketKey})
		}
		return nil, apperrors.MapError(err)
	}
	return ticket, nil
}

// ListQueue returns filtered tickets for the admin queue.
func (s *TicketService) ListQueue(ctx context.Context, filter QueueFilter) ([]domain.Ticket, error) {
	tickets, err := s.tickets.ListWithFilter(ctx, repository.TicketFilter{
		Status:            filter.Status,
		EffectivePriority: filter.EffectivePriority,
		Tier:              filter.Tier,
		Department:        filter.Department,
		Limit:             filter.Limit,
		Offset:            filter.Offset,
	})
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return tickets, nil
}

// QueueStats returns dashboard counters, served from the Redis cache
// when fresh.
func (s *TicketService) QueueStats(ctx context.Context) (repository.QueueStats, error) {
	if cached, ok := s.cachedStats(ctx); ok {
		return cached, nil
	}
	stats, err := s.tickets.Stats(ctx)
	if err != nil {
		return repository.QueueStats{}, apperrors.MapError(err)
	}
	s.storeStats(ctx, stats)
	return stats, nil
}

// Escalate raises a ticket one priority level. Per the routing
// contract it never mutates the stored priority directly: it re-invokes
// the engine with the lowered value as the user priority so every tier
// re-applies consistently.
func (s *TicketService) Escalate(ctx context.Context, ticketKey string) (*domain.Ticket, error) {
	ticket, err := s.Get(ctx, ticketKey)
	if err != nil {
		return nil, err
	}
	if ticket.Status == domain.TicketStatusClosed {
		return nil, apperrors.NewConflict("ticket already closed", map[string]any{"ticket_key": ticketKey})
	}
	current := ticket.Routing.EffectivePriority
	if current <= routing.PriorityCritical {
		return nil, apperrors.NewConflict("ticket already at Critical", map[string]any{"ticket_key": ticketKey})
	}

	result := s.engine.Compute(routing.Input{
		Department:   ticket.Department,
		Category:     ticket.Category,
		SubType:      ticket.SubType,
		UserPriority: int(current) - 1,
		Text:         ticket.Title + " " + ticket.Description,
	})

	ticket.UserPriority = result.UserPriority
	ticket.Routing = domain.DecisionFromResult(result)
	ticket.Routing.WasModified = true
	ticket.Status = domain.TicketStatusInProgress

	if err := s.tickets.Update(ctx, ticket); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.invalidateStats(ctx)
	s.publishEvent(ctx, events.Event{
		Type:      events.EventTicketEscalated,
		TicketKey: ticket.TicketKey,
		Payload: events.TicketEscalatedPayload{
			OldPriority: current,
			NewPriority: result.EffectivePriority,
			Team:        result.Team,
			SLA:         result.SLA,
		},
	})
	return ticket, nil
}

// Resolve closes a ticket.
func (s *TicketService) Resolve(ctx context.Context, ticketKey string) (*domain.Ticket, error) {
	ticket, err := s.Get(ctx, ticketKey)
	if err != nil {
		return nil, err
	}
	if ticket.Status == domain.TicketStatusClosed {
		return nil, apperrors.NewConflict("ticket already closed", map[string]any{"ticket_key": ticketKey})
	}
	ticket.Status = domain.TicketStatusClosed
	if err := s.tickets.Update(ctx, ticket); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.invalidateStats(ctx)
	s.publishEvent(ctx, events.Event{
		Type:      events.EventTicketResolved,
		TicketKey: ticket.TicketKey,
		Payload: events.TicketResolvedPayload{
			FinalPriority: ticket.Routing.EffectivePriority,
			Team:          ticket.Routing.Team,
		},
	})
	return ticket, nil
}

func validateSubmission(input TicketSubmitInput) error {
	missing := map[string]any{}
	if strings.TrimSpace(input.Name) == "" {
		missing["name"] = "required"
	}
	if strings.TrimSpace(input.EmployeeID) == "" {
		missing["employee_id"] = "required"
	}
	if input.Department == "" {
		missing["department"] = "required"
	}
	if strings.TrimSpace(input.Email) == "" {
		missing["email"] = "required"
	}
	if input.Category == "" {
		missing["category"] = "required"
	}
	if strings.TrimSpace(input.Title) == "" {
		missing["title"] = "required"
	}
	if len(missing) > 0 {
		return apperrors.NewValidationError("missing required fields", missing)
	}
	if _, ok := routing.CascadeFor(input.Category); !ok {
		return apperrors.NewValidationError("unknown category", map[string]any{"category": input.Category})
	}
	if !routing.ValidSubType(input.Category, input.SubType) {
		return apperrors.NewValidationError("sub-type does not belong to category", map[string]any{
			"category": input.Category,
			"subtype":  input.SubType,
		})
	}
	if !routing.ValidIssueType(input.Category, input.SubType, input.IssueType) {
		return apperrors.NewValidationError("issue type does not belong to sub-type", map[string]any{
			"subtype":    input.SubType,
			"issue_type": input.IssueType,
		})
	}
	return nil
}

func (s *TicketService) cachedStats(ctx context.Context) (repository.QueueStats, bool) {
	if s.cache == nil || s.cache.Client == nil {
		return repository.QueueStats{}, false
	}
	raw, err := s.cache.Client.Get(ctx, statsCacheKey).Bytes()
	if err != nil {
		// redis.Nil and transport errors alike fall through to Postgres.
		return repository.QueueStats{}, false
	}
	var stats repository.QueueStats
	if err := json.Unmarshal(raw, &stats); err != nil {
		return repository.QueueStats{}, false
	}
	return stats, true
}

func (s *TicketService) storeStats(ctx context.Context, stats repository.QueueStats) {
	if s.cache == nil || s.cache.Client == nil {
		return
	}
	raw, err := json.Marshal(stats)
	if err != nil {
		return
	}
	_ = s.cache.Client.Set(ctx, statsCacheKey, raw, s.statsTTL).Err()
}

func (s *TicketService) invalidateStats(ctx context.Context) {
	if s.cache == nil || s.cache.Client == nil {
		return
	}
	_ = s.cache.Client.Del(ctx, statsCacheKey).Err()
}

func (s *TicketService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}
