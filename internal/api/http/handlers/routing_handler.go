package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/laredo-ist/workorder-service/internal/api/dto"
	"github.com/laredo-ist/workorder-service/internal/routing"
	"github.com/laredo-ist/workorder-service/internal/service"
)

// RoutingHandler exposes the decision engine directly: the live form
// preview and the published routing reference tables.
type RoutingHandler struct {
	service *service.TicketService
}

// NewRoutingHandler constructs handler.
func NewRoutingHandler(ticketService *service.TicketService) *RoutingHandler {
	return &RoutingHandler{service: ticketService}
}

// Preview GET /routing/preview. Routes the query parameters through the
// engine without persisting anything, so the form can show the decision
// as the requester types.
func (h *RoutingHandler) Preview(c *fiber.Ctx) error {
	department := c.Query("department")
	category := c.Query("category")
	if department == "" || category == "" {
		return c.JSON(fiber.Map{"ready": false})
	}

	userPriority := 3
	if raw := c.Query("priority"); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil {
			userPriority = value
		}
	}

	result := h.service.Preview(routing.Input{
		Department:   department,
		Category:     category,
		SubType:      c.Query("subtype"),
		UserPriority: userPriority,
		Text:         c.Query("text"),
	})
	return c.JSON(dto.PreviewFromResult(result))
}

// Reference GET /routing/reference. Publishes the full rule tables the
// engine routes with, for the staff-facing reference page.
func (h *RoutingHandler) Reference(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": routing.Tables()})
}

// Cascade GET /routing/cascade. Serves the form taxonomy.
func (h *RoutingHandler) Cascade(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": dto.BuildCascadeResponse()})
}
