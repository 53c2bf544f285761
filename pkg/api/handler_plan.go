package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/codeready-toolchain/maestro/pkg/services"
)

// createPlanHandler handles POST /api/v1/plans. Plan creation runs the
// planning pipeline without execution; the plan waits for explicit approval
// and a separate execute call.
func (s *Server) createPlanHandler(c *echo.Context) error {
	var req services.CreatePlanOnlyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	wf, err := s.plans.CreatePlanningWorkflow(c.Request().Context(), req)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusAccepted, map[string]string{
		"workflow_id": wf.ID,
		"session_id":  wf.SessionID,
		"status":      string(wf.Status),
		"message":     "planning started, watch workflow events for the plan id",
	})
}

// getPlanHandler handles GET /api/v1/plans/:id.
func (s *Server) getPlanHandler(c *echo.Context) error {
	planID := c.Param("id")
	if planID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "plan id is required")
	}

	plan, err := s.plans.GetPlan(c.Request().Context(), planID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, plan)
}

// planStepsHandler handles GET /api/v1/plans/:id/steps.
func (s *Server) planStepsHandler(c *echo.Context) error {
	planID := c.Param("id")
	if planID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "plan id is required")
	}

	steps, err := s.plans.Steps(c.Request().Context(), planID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"plan_id": planID,
		"steps":   steps,
		"count":   len(steps),
	})
}

// planTreeHandler handles GET /api/v1/plans/:id/tree.
func (s *Server) planTreeHandler(c *echo.Context) error {
	planID := c.Param("id")
	if planID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "plan id is required")
	}

	tree, err := s.plans.Tree(c.Request().Context(), planID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, tree)
}

// planAlternativesHandler handles GET /api/v1/plans/:id/alternatives.
func (s *Server) planAlternativesHandler(c *echo.Context) error {
	planID := c.Param("id")
	if planID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "plan id is required")
	}

	alternatives, err := s.plans.Alternatives(c.Request().Context(), planID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"plan_id":      planID,
		"alternatives": alternatives,
		"count":        len(alternatives),
	})
}

// planExecutionStateHandler handles GET /api/v1/plans/:id/execution-state.
func (s *Server) planExecutionStateHandler(c *echo.Context) error {
	planID := c.Param("id")
	if planID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "plan id is required")
	}

	state, err := s.plans.ExecutionState(c.Request().Context(), planID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, state)
}

// planFeedbackBody carries optional human feedback on plan decisions.
type planFeedbackBody struct {
	Feedback string `json:"feedback"`
}

// approvePlanHandler handles POST /api/v1/plans/:id/approve. It decides the
// plan's newest pending approval request.
func (s *Server) approvePlanHandler(c *echo.Context) error {
	planID := c.Param("id")
	if planID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "plan id is required")
	}

	var body planFeedbackBody
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	req, err := s.plans.Approve(c.Request().Context(), planID, extractAuthor(c), body.Feedback)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, req)
}

// executePlanHandler handles POST /api/v1/plans/:id/execute.
func (s *Server) executePlanHandler(c *echo.Context) error {
	planID := c.Param("id")
	if planID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "plan id is required")
	}

	wf, err := s.plans.Execute(c.Request().Context(), planID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusAccepted, map[string]string{
		"workflow_id": wf.ID,
		"session_id":  wf.SessionID,
		"status":      string(wf.Status),
	})
}

// replanHandler handles POST /api/v1/plans/:id/replan. Feedback is required;
// a replan without direction is just a retry.
func (s *Server) replanHandler(c *echo.Context) error {
	planID := c.Param("id")
	if planID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "plan id is required")
	}

	var body planFeedbackBody
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if body.Feedback == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "feedback is required for replan")
	}

	wf, err := s.plans.Replan(c.Request().Context(), planID, body.Feedback)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusAccepted, map[string]string{
		"workflow_id": wf.ID,
		"session_id":  wf.SessionID,
		"status":      string(wf.Status),
	})
}

// pausePlanHandler handles POST /api/v1/plans/:id/pause.
func (s *Server) pausePlanHandler(c *echo.Context) error {
	planID := c.Param("id")
	if planID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "plan id is required")
	}

	plan, err := s.plans.Pause(c.Request().Context(), planID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{
		"plan_id": plan.ID,
		"status":  string(plan.Status),
		"message": "paused; steps already running finish before the pause takes effect",
	})
}

// resumePlanHandler handles POST /api/v1/plans/:id/resume.
func (s *Server) resumePlanHandler(c *echo.Context) error {
	planID := c.Param("id")
	if planID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "plan id is required")
	}

	wf, err := s.plans.Resume(c.Request().Context(), planID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{
		"plan_id":     planID,
		"workflow_id": wf.ID,
		"status":      string(wf.Status),
	})
}
