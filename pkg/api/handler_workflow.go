package api

import (
	"net/http"
	"strconv"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/codeready-toolchain/maestro/pkg/models"
)

// listWorkflowsHandler handles GET /api/v1/workflows.
func (s *Server) listWorkflowsHandler(c *echo.Context) error {
	var filters models.WorkflowFilters

	if v := c.QueryParam("status"); v != "" {
		status := models.WorkflowStatus(v)
		if !status.IsValid() {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid status: "+v)
		}
		filters.Status = status
	}
	if v := c.QueryParam("request_type"); v != "" {
		rt := models.RequestType(v)
		if !rt.IsValid() {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid request_type: "+v)
		}
		filters.RequestType = rt
	}
	filters.SessionID = c.QueryParam("session_id")

	if v := c.QueryParam("created_after"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid created_after: must be RFC3339")
		}
		filters.CreatedAfter = &t
	}
	if v := c.QueryParam("created_before"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid created_before: must be RFC3339")
		}
		filters.CreatedBefore = &t
	}

	if v := c.QueryParam("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
			filters.Limit = n
		}
	}
	if v := c.QueryParam("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			filters.Offset = n
		}
	}
	filters.IncludeDeleted = c.QueryParam("include_deleted") == "true"

	result, err := s.workflows.ListWorkflows(c.Request().Context(), filters)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, result)
}

// getWorkflowHandler handles GET /api/v1/workflows/:id.
// ?include=plans loads the plan and step edges.
func (s *Server) getWorkflowHandler(c *echo.Context) error {
	workflowID := c.Param("id")
	if workflowID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "workflow id is required")
	}

	withEdges := c.QueryParam("include") == "plans"
	wf, err := s.workflows.GetWorkflow(c.Request().Context(), workflowID, withEdges)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, wf)
}

// workflowEventsHandler handles GET /api/v1/workflows/:id/events.
// Supports stage, event_type, after_sequence, and limit query parameters.
func (s *Server) workflowEventsHandler(c *echo.Context) error {
	workflowID := c.Param("id")
	if workflowID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "workflow id is required")
	}

	var filters models.EventFilters
	if v := c.QueryParam("stage"); v != "" {
		stage := models.Stage(v)
		if !stage.IsValid() {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid stage: "+v)
		}
		filters.Stage = stage
	}
	if v := c.QueryParam("event_type"); v != "" {
		filters.EventType = models.EventType(v)
	}
	if v := c.QueryParam("after_sequence"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid after_sequence")
		}
		filters.AfterSequence = n
	}
	if v := c.QueryParam("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 1000 {
			filters.Limit = n
		}
	}

	records, err := s.workflows.Events(c.Request().Context(), workflowID, filters)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"workflow_id": workflowID,
		"events":      records,
		"count":       len(records),
	})
}

// cancelWorkflowHandler handles POST /api/v1/workflows/:id/cancel.
func (s *Server) cancelWorkflowHandler(c *echo.Context) error {
	workflowID := c.Param("id")
	if workflowID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "workflow id is required")
	}

	wf, err := s.workflows.CancelWorkflow(c.Request().Context(), workflowID)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, &CancelResponse{
		WorkflowID: wf.ID,
		Status:     string(wf.Status),
		Message:    "Workflow cancellation requested",
	})
}
