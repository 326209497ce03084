package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/laredo-ist/workorder-service/internal/domain"
	"github.com/laredo-ist/workorder-service/internal/events"
	"github.com/laredo-ist/workorder-service/internal/repository"
	"github.com/laredo-ist/workorder-service/internal/routing"
	apperrors "github.com/laredo-ist/workorder-service/pkg/util"
)

type fakeTicketRepo struct {
	byKey map[string]*domain.Ticket
	seq   int
}

func newFakeTicketRepo() *fakeTicketRepo {
	return &fakeTicketRepo{byKey: map[string]*domain.Ticket{}}
}

func (f *fakeTicketRepo) Create(ctx context.Context, ticket *domain.Ticket) error {
	f.seq++
	ticket.TicketKey = fmt.Sprintf("TKT-%04d", f.seq)
	stored := *ticket
	f.byKey[ticket.TicketKey] = &stored
	return nil
}

func (f *fakeTicketRepo) Update(ctx context.Context, ticket *domain.Ticket) error {
	if _, ok := f.byKey[ticket.TicketKey]; !ok {
		return pgx.ErrNoRows
	}
	stored := *ticket
	f.byKey[ticket.TicketKey] = &stored
	return nil
}

func (f *fakeTicketRepo) GetByKey(ctx context.Context, ticketKey string) (*domain.Ticket, error) {
	ticket, ok := f.byKey[ticketKey]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *ticket
	return &copied, nil
}

func (f *fakeTicketRepo) ListWithFilter(ctx context.Context, filter repository.TicketFilter) ([]domain.Ticket, error) {
	var result []domain.Ticket
	for _, ticket := range f.byKey {
		if filter.Status != nil && ticket.Status != *filter.Status {
			continue
		}
		result = append(result, *ticket)
	}
	return result, nil
}

func (f *fakeTicketRepo) Stats(ctx context.Context) (repository.QueueStats, error) {
	stats := repository.QueueStats{}
	for _, ticket := range f.byKey {
		stats.Total++
		switch ticket.Status {
		case domain.TicketStatusOpen:
			stats.Open++
		case domain.TicketStatusInProgress:
			stats.InProgress++
		}
		if ticket.Routing.EffectivePriority == routing.PriorityCritical {
			stats.Critical++
		}
		if ticket.Status != domain.TicketStatusClosed {
			stats.OpenCount++
		}
	}
	return stats, nil
}

type recordingDispatcher struct {
	published []events.Event
}

func (d *recordingDispatcher) Publish(ctx context.Context, event events.Event) error {
	d.published = append(d.published, event)
	return nil
}

func (d *recordingDispatcher) Subscribe(eventType events.EventType, handler events.EventHandler) {}

func newTestService(t *testing.T) (*TicketService, *fakeTicketRepo, *recordingDispatcher) {
	t.Helper()
	repo := newFakeTicketRepo()
	dispatcher := &recordingDispatcher{}
	svc := NewTicketService(TicketDependencies{
		TicketRepo: repo,
		Dispatcher: dispatcher,
	})
	return svc, repo, dispatcher
}

func validSubmission() TicketSubmitInput {
	return TicketSubmitInput{
		Name:         "Carlos Ramirez",
		EmployeeID:   "LRD-1002",
		Department:   "Police Department",
		Email:        "c.ramirez@laredotx.gov",
		Category:     "network",
		SubType:      "complete_outage",
		IssueType:    "dept_outage",
		Title:        "No internet on third floor",
		Description:  "Detective division lost all connectivity.",
		UserPriority: 3,
	}
}

func TestSubmitRoutesAndPersists(t *testing.T) {
	svc, repo, dispatcher := newTestService(t)

	ticket, err := svc.Submit(context.Background(), validSubmission())
	require.NoError(t, err)

	assert.Equal(t, "TKT-0001", ticket.TicketKey)
	assert.Equal(t, domain.TicketStatusOpen, ticket.Status)
	assert.Equal(t, routing.TierCriticalInfra, ticket.Routing.Tier)
	assert.Equal(t, routing.PriorityCritical, ticket.Routing.EffectivePriority)
	assert.Equal(t, "NOC On-Call", ticket.Routing.Team)
	assert.True(t, ticket.Routing.WasModified)

	stored, err := repo.GetByKey(context.Background(), ticket.TicketKey)
	require.NoError(t, err)
	assert.Equal(t, ticket.Routing, stored.Routing)

	require.Len(t, dispatcher.published, 1)
	assert.Equal(t, events.EventTicketSubmitted, dispatcher.published[0].Type)
	payload, ok := dispatcher.published[0].Payload.(events.TicketSubmittedPayload)
	require.True(t, ok)
	assert.Equal(t, routing.PriorityCritical, payload.EffectivePriority)
}

func TestSubmitRejectsMissingFields(t *testing.T) {
	svc, _, _ := newTestService(t)

	input := validSubmission()
	input.Title = "  "
	input.Email = ""

	_, err := svc.Submit(context.Background(), input)
	require.Error(t, err)

	domainErr := apperrors.ToDomainError(err)
	assert.Equal(t, "VALIDATION_FAILED", domainErr.Code)
	assert.Contains(t, domainErr.Details, "title")
	assert.Contains(t, domainErr.Details, "email")
}

func TestSubmitRejectsSubTypeOutsideCategory(t *testing.T) {
	svc, _, _ := newTestService(t)

	input := validSubmission()
	input.Category = "hardware"
	input.SubType = "no_internet" // belongs to network
	input.IssueType = ""

	_, err := svc.Submit(context.Background(), input)
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_FAILED", apperrors.ToDomainError(err).Code)
}

func TestSubmitClampsOutOfRangePriority(t *testing.T) {
	svc, _, _ := newTestService(t)

	input := validSubmission()
	input.Department = "Finance"
	input.Category = "software"
	input.SubType = "slow"
	input.IssueType = "app_loading_slow"
	input.Title = "Spreadsheet is sluggish"
	input.Description = "Takes a minute to open."
	input.UserPriority = 99

	ticket, err := svc.Submit(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, routing.PriorityLow, ticket.UserPriority)
}

func TestEscalateRecomputesWithLoweredPriority(t *testing.T) {
	svc, _, dispatcher := newTestService(t)

	input := validSubmission()
	input.Department = "Finance"
	input.Category = "software"
	input.SubType = "slow"
	input.IssueType = "app_loading_slow"
	input.Title = "Spreadsheet is sluggish"
	input.Description = "Takes a minute to open."
	input.UserPriority = 4

	ticket, err := svc.Submit(context.Background(), input)
	require.NoError(t, err)
	require.Equal(t, routing.PriorityLow, ticket.Routing.EffectivePriority)

	escalated, err := svc.Escalate(context.Background(), ticket.TicketKey)
	require.NoError(t, err)

	assert.Equal(t, routing.PriorityHigh, escalated.Routing.EffectivePriority)
	assert.Equal(t, domain.TicketStatusInProgress, escalated.Status)
	assert.True(t, escalated.Routing.WasModified)

	require.Len(t, dispatcher.published, 2)
	payload, ok := dispatcher.published[1].Payload.(events.TicketEscalatedPayload)
	require.True(t, ok)
	assert.Equal(t, routing.PriorityLow, payload.OldPriority)
	assert.Equal(t, routing.PriorityHigh, payload.NewPriority)
}

func TestEscalateRefusesAtCritical(t *testing.T) {
	svc, _, _ := newTestService(t)

	ticket, err := svc.Submit(context.Background(), validSubmission())
	require.NoError(t, err)
	require.Equal(t, routing.PriorityCritical, ticket.Routing.EffectivePriority)

	_, err = svc.Escalate(context.Background(), ticket.TicketKey)
	require.Error(t, err)
	assert.Equal(t, "CONFLICT", apperrors.ToDomainError(err).Code)
}

func TestResolveClosesTicket(t *testing.T) {
	svc, repo, dispatcher := newTestService(t)

	ticket, err := svc.Submit(context.Background(), validSubmission())
	require.NoError(t, err)

	resolved, err := svc.Resolve(context.Background(), ticket.TicketKey)
	require.NoError(t, err)
	assert.Equal(t, domain.TicketStatusClosed, resolved.Status)

	stored, err := repo.GetByKey(context.Background(), ticket.TicketKey)
	require.NoError(t, err)
	assert.Equal(t, domain.TicketStatusClosed, stored.Status)

	require.Len(t, dispatcher.published, 2)
	assert.Equal(t, events.EventTicketResolved, dispatcher.published[1].Type)

	_, err = svc.Resolve(context.Background(), ticket.TicketKey)
	require.Error(t, err)
	assert.Equal(t, "CONFLICT", apperrors.ToDomainError(err).Code)
}

func TestEscalateOnClosedTicketFails(t *testing.T) {
	svc, _, _ := newTestService(t)

	input := validSubmission()
	input.Department = "Finance"
	input.Category = "software"
	input.SubType = "slow"
	input.IssueType = "app_loading_slow"
	input.Title = "Spreadsheet is sluggish"
	input.Description = "Takes a minute to open."
	input.UserPriority = 4

	ticket, err := svc.Submit(context.Background(), input)
	require.NoError(t, err)

	_, err = svc.Resolve(context.Background(), ticket.TicketKey)
	require.NoError(t, err)

	_, err = svc.Escalate(context.Background(), ticket.TicketKey)
	require.Error(t, err)
	assert.Equal(t, "CONFLICT", apperrors.ToDomainError(err).Code)
}

func TestGetUnknownTicketIsNotFound(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Get(context.Background(), "TKT-9999")
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperrors.ToDomainError(err).Code)
}

func TestQueueStatsWithoutCache(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Submit(context.Background(), validSubmission())
	require.NoError(t, err)

	stats, err := svc.QueueStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.Total)
	assert.Equal(t, int64(1), stats.Open)
	assert.Equal(t, int64(1), stats.Critical)
}
