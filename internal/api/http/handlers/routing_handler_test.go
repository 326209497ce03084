package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/laredo-ist/workorder-service/internal/api/dto"
	"github.com/laredo-ist/workorder-service/internal/service"
)

func previewApp() *fiber.App {
	svc := service.NewTicketService(service.TicketDependencies{})
	handler := NewRoutingHandler(svc)

	app := fiber.New()
	app.Get("/routing/preview", handler.Preview)
	app.Get("/routing/cascade", handler.Cascade)
	return app
}

func TestPreviewNotReadyWithoutDepartment(t *testing.T) {
	app := previewApp()

	req := httptest.NewRequest("GET", "/routing/preview?category=network", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var body dto.PreviewResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.False(t, body.Ready)
	assert.Empty(t, body.Team)
}

func TestPreviewRoutesQueryParams(t *testing.T) {
	app := previewApp()

	req := httptest.NewRequest("GET", "/routing/preview?department=Police+Department&category=network&subtype=complete_outage&priority=3&text=no+internet", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var body dto.PreviewResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Ready)
	assert.Equal(t, 1, int(body.EffectivePriority))
	assert.Equal(t, "NOC On-Call", body.Team)
	assert.True(t, body.WasModified)
	assert.NotEmpty(t, body.Reasons)
}

func TestPreviewDefaultsPriorityToHigh(t *testing.T) {
	app := previewApp()

	req := httptest.NewRequest("GET", "/routing/preview?department=Finance&category=software", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var body dto.PreviewResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Ready)
	assert.Equal(t, 3, int(body.EffectivePriority))
}

func TestCascadeListsTaxonomy(t *testing.T) {
	app := previewApp()

	req := httptest.NewRequest("GET", "/routing/cascade", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var body struct {
		Data dto.CascadeResponse `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Data.Departments, 10)
	assert.Len(t, body.Data.Categories, 8)
	assert.Len(t, body.Data.Priorities, 4)
	assert.Contains(t, body.Data.SubTypes, "network")
	assert.Contains(t, body.Data.IssueTypes["network"], "complete_outage")
}
