package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/laredo-ist/workorder-service/internal/domain"
	"github.com/laredo-ist/workorder-service/internal/routing"
)

// TicketFilter captures queue search parameters.
type TicketFilter struct {
	Status            *domain.TicketStatus
	EffectivePriority *routing.Priority
	Tier              *routing.Tier
	Department        *string
	RequesterID       *string
	SubmittedFrom     *time.Time
	SubmittedTo       *time.Time
	Limit             int
	Offset            int
}

// QueueStats aggregates dashboard counters over the whole queue.
type QueueStats struct {
	Total         int64 `json:"total"`
	Open          int64 `json:"open"`
	InProgress    int64 `json:"in_progress"`
	Critical      int64 `json:"critical"`
	CriticalInfra int64 `json:"critical_infra"`
	OpenCount     int64 `json:"open_count"`
}

// TicketRepository encapsulates work order persistence.
type TicketRepository interface {
	Create(ctx context.Context, ticket *domain.Ticket) error
	Update(ctx context.Context, ticket *domain.Ticket) error
	GetByKey(ctx context.Context, ticketKey string) (*domain.Ticket, error)
	ListWithFilter(ctx context.Context, filter TicketFilter) ([]domain.Ticket, error)
	Stats(ctx context.Context) (QueueStats, error)
}

type ticketRepository struct {
	pool *pgxpool.Pool
}

// NewTicketRepository instantiates repository.
func NewTicketRepository(pool *pgxpool.Pool) TicketRepository {
	return &ticketRepository{pool: pool}
}

const ticketColumns = `id, ticket_key, requester_id, name, employee_id, department, email,
        category, subtype, issue_type, title, description, asset_tag, location, phone_ext,
        user_priority, routing_tier, routing_tier_label, routing_team, routing_sla,
        routing_effective_priority, routing_was_modified, routing_reasons, routing_escalation_path,
        status, submitted_at, updated_at`

func (r *ticketRepository) Create(ctx context.Context, ticket *domain.Ticket) error {
	reasons, err := json.Marshal(ticket.Routing.Reasons)
	if err != nil {
		return err
	}
	path, err := json.Marshal(ticket.Routing.EscalationPath)
	if err != nil {
		return err
	}
	const query = `
        INSERT INTO tickets (ticket_key, requester_id, name, employee_id, department, email,
            category, subtype, issue_type, title, description, asset_tag, location, phone_ext,
            user_priority, routing_tier, routing_tier_label, routing_team, routing_sla,
            routing_effective_priority, routing_was_modified, routing_reasons, routing_escalation_path, status)
        VALUES ('TKT-' || LPAD(nextval('ticket_key_seq')::text, 4, '0'),
            $1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22,$23)
        RETURNING id, ticket_key, submitted_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		ticket.RequesterID,
		ticket.Name,
		ticket.EmployeeID,
		ticket.Department,
		ticket.Email,
		ticket.Category,
		ticket.SubType,
		ticket.IssueType,
		ticket.Title,
		ticket.Description,
		ticket.AssetTag,
		ticket.Location,
		ticket.PhoneExt,
		int(ticket.UserPriority),
		string(ticket.Routing.Tier),
		ticket.Routing.TierLabel,
		ticket.Routing.Team,
		ticket.Routing.SLA,
		int(ticket.Routing.EffectivePriority),
		ticket.Routing.WasModified,
		reasons,
		path,
		string(ticket.Status),
	).Scan(&ticket.ID, &ticket.TicketKey, &ticket.SubmittedAt, &ticket.UpdatedAt)
}

func (r *ticketRepository) Update(ctx context.Context, ticket *domain.Ticket) error {
	reasons, err := json.Marshal(ticket.Routing.Reasons)
	if err != nil {
		return err
	}
	path, err := json.Marshal(ticket.Routing.EscalationPath)
	if err != nil {
		return err
	}
	const query = `
        UPDATE tickets SET user_priority=$1, routing_tier=$2, routing_tier_label=$3,
            routing_team=$4, routing_sla=$5, routing_effective_priority=$6,
            routing_was_modified=$7, routing_reasons=$8, routing_escalation_path=$9,
            status=$10, updated_at=NOW()
        WHERE id=$11`
	cmd, err := r.pool.Exec(ctx, query,
		int(ticket.UserPriority),
		string(ticket.Routing.Tier),
		ticket.Routing.TierLabel,
		ticket.Routing.Team,
		ticket.Routing.SLA,
		int(ticket.Routing.EffectivePriority),
		ticket.Routing.WasModified,
		reasons,
		path,
		string(ticket.Status),
		ticket.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *ticketRepository) GetByKey(ctx context.Context, ticketKey string) (*domain.Ticket, error) {
	query := fmt.Sprintf(`SELECT %s FROM tickets WHERE ticket_key=$1`, ticketColumns)
	row := r.pool.QueryRow(ctx, query, ticketKey)
	return scanTicket(row)
}

func (r *ticketRepository) ListWithFilter(ctx context.Context, filter TicketFilter) ([]domain.Ticket, error) {
	clauses := []string{"1=1"}
	args := []any{}

	if filter.Status != nil {
		args = append(args, string(*filter.Status))
		clauses = append(clauses, fmt.Sprintf("status=$%d", len(args)))
	}
	if filter.EffectivePriority != nil {
		args = append(args, int(*filter.EffectivePriority))
		clauses = append(clauses, fmt.Sprintf("routing_effective_priority=$%d", len(args)))
	}
	if filter.Tier != nil {
		args = append(args, string(*filter.Tier))
		clauses = append(clauses, fmt.Sprintf("routing_tier=$%d", len(args)))
	}
	if filter.Department != nil {
		args = append(args, *filter.Department)
		clauses = append(clauses, fmt.Sprintf("department=$%d", len(args)))
	}
	if filter.RequesterID != nil {
		args = append(args, *filter.RequesterID)
		clauses = append(clauses, fmt.Sprintf("requester_id=$%d", len(args)))
	}
	if filter.SubmittedFrom != nil {
		args = append(args, *filter.SubmittedFrom)
		clauses = append(clauses, fmt.Sprintf("submitted_at >= $%d", len(args)))
	}
	if filter.SubmittedTo != nil {
		args = append(args, *filter.SubmittedTo)
		clauses = append(clauses, fmt.Sprintf("submitted_at <= $%d", len(args)))
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	query := fmt.Sprintf(`SELECT %s FROM tickets WHERE %s ORDER BY submitted_at DESC LIMIT %d OFFSET %d`,
		ticketColumns, strings.Join(clauses, " AND "), limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Ticket
	for rows.Next() {
		ticket, err := scanTicket(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *ticket)
	}
	return result, rows.Err()
}

func (r *ticketRepository) Stats(ctx context.Context) (QueueStats, error) {
	const query = `
        SELECT COUNT(*),
               COUNT(*) FILTER (WHERE status = 'Open'),
               COUNT(*) FILTER (WHERE status = 'In Progress'),
               COUNT(*) FILTER (WHERE routing_effective_priority = 1),
               COUNT(*) FILTER (WHERE routing_tier = 'CRITICAL_INFRA'),
               COUNT(*) FILTER (WHERE status <> 'Closed')
        FROM tickets`
	var stats QueueStats
	err := r.pool.QueryRow(ctx, query).Scan(
		&stats.Total,
		&stats.Open,
		&stats.InProgress,
		&stats.Critical,
		&stats.CriticalInfra,
		&stats.OpenCount,
	)
	return stats, err
}

func scanTicket(row pgx.Row) (*domain.Ticket, error) {
	var (
		ticket       domain.Ticket
		userPriority int
		effective    int
		tier         string
		status       string
		reasonsRaw   []byte
		pathRaw      []byte
	)
	if err := row.Scan(
		&ticket.ID,
		&ticket.TicketKey,
		&ticket.RequesterID,
		&ticket.Name,
		&ticket.EmployeeID,
		&ticket.Department,
		&ticket.Email,
		&ticket.Category,
		&ticket.SubType,
		&ticket.IssueType,
		&ticket.Title,
		&ticket.Description,
		&ticket.AssetTag,
		&ticket.Location,
		&ticket.PhoneExt,
		&userPriority,
		&tier,
		&ticket.Routing.TierLabel,
		&ticket.Routing.Team,
		&ticket.Routing.SLA,
		&effective,
		&ticket.Routing.WasModified,
		&reasonsRaw,
		&pathRaw,
		&status,
		&ticket.SubmittedAt,
		&ticket.UpdatedAt,
	); err != nil {
		return nil, err
	}
	ticket.UserPriority = routing.Priority(userPriority)
	ticket.Routing.EffectivePriority = routing.Priority(effective)
	ticket.Routing.Tier = routing.Tier(tier)
	ticket.Status = domain.TicketStatus(status)
	if err := json.Unmarshal(reasonsRaw, &ticket.Routing.Reasons); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(pathRaw, &ticket.Routing.EscalationPath); err != nil {
		return nil, err
	}
	return &ticket, nil
}
