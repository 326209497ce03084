package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/laredo-ist/workorder-service/internal/api/dto"
	"github.com/laredo-ist/workorder-service/internal/domain"
	"github.com/laredo-ist/workorder-service/internal/routing"
	"github.com/laredo-ist/workorder-service/internal/service"
	apperrors "github.com/laredo-ist/workorder-service/pkg/util"
)

// TicketsHandler manages work order endpoints.
type TicketsHandler struct {
	service *service.TicketService
}

// NewTicketsHandler constructs handler.
func NewTicketsHandler(ticketService *service.TicketService) *TicketsHandler {
	return &TicketsHandler{service: ticketService}
}

// Submit POST /tickets. Submission is open to any city employee; no
// login is required to file a work order.
func (h *TicketsHandler) Submit(c *fiber.Ctx) error {
	var req dto.SubmitTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	ticket, err := h.service.Submit(c.UserContext(), service.TicketSubmitInput{
		Name:         req.Name,
		EmployeeID:   req.EmployeeID,
		Department:   req.Department,
		Email:        req.Email,
		Category:     req.Category,
		SubType:      req.SubType,
		IssueType:    req.IssueType,
		Title:        req.Title,
		Description:  req.Description,
		AssetTag:     req.AssetTag,
		Location:     req.Location,
		PhoneExt:     req.PhoneExt,
		UserPriority: req.UserPriority,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.DetailFromTicket(ticket)})
}

// Queue GET /tickets. Staff-only admin queue with filters and stats.
func (h *TicketsHandler) Queue(c *fiber.Ctx) error {
	filter := parseQueueFilter(c)
	tickets, err := h.service.ListQueue(c.UserContext(), filter)
	if err != nil {
		return err
	}
	stats, err := h.service.QueueStats(c.UserContext())
	if err != nil {
		return err
	}

	items := make([]dto.TicketSummary, 0, len(tickets))
	for i := range tickets {
		items = append(items, dto.SummaryFromTicket(tickets[i]))
	}
	return c.JSON(fiber.Map{"data": dto.QueueResponse{
		Tickets: items,
		Stats: dto.QueueStatsResponse{
			Total:         stats.Total,
			Open:          stats.Open,
			InProgress:    stats.InProgress,
			Critical:      stats.Critical,
			CriticalInfra: stats.CriticalInfra,
			OpenCount:     stats.OpenCount,
		},
	}})
}

// Get GET /tickets/:key.
func (h *TicketsHandler) Get(c *fiber.Ctx) error {
	ticket, err := h.service.Get(c.UserContext(), c.Params("key"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.DetailFromTicket(ticket)})
}

// Escalate POST /tickets/:key/escalate.
func (h *TicketsHandler) Escalate(c *fiber.Ctx) error {
	ticket, err := h.service.Escalate(c.UserContext(), c.Params("key"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.DetailFromTicket(ticket)})
}

// Resolve POST /tickets/:key/resolve.
func (h *TicketsHandler) Resolve(c *fiber.Ctx) error {
	ticket, err := h.service.Resolve(c.UserContext(), c.Params("key"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.DetailFromTicket(ticket)})
}

func parseQueueFilter(c *fiber.Ctx) service.QueueFilter {
	filter := service.QueueFilter{Limit: 50}

	if raw := c.Query("status"); raw != "" {
		status := domain.TicketStatus(raw)
		filter.Status = &status
	}
	if raw := c.Query("priority"); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil {
			p := routing.ClampPriority(value)
			filter.EffectivePriority = &p
		}
	}
	if raw := c.Query("tier"); raw != "" {
		tier := routing.Tier(raw)
		filter.Tier = &tier
	}
	if raw := c.Query("department"); raw != "" {
		department := raw
		filter.Department = &department
	}
	if raw := c.Query("limit"); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil && value > 0 && value <= 200 {
			filter.Limit = value
		}
	}
	if raw := c.Query("offset"); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil && value >= 0 {
			filter.Offset = value
		}
	}
	return filter
}
