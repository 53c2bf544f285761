package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"
)

// listApprovalsHandler handles GET /api/v1/approvals. Only pending requests
// are listed; decided ones are reachable by id.
func (s *Server) listApprovalsHandler(c *echo.Context) error {
	pending, err := s.gate.Pending(c.Request().Context())
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"approvals": pending,
		"count":     len(pending),
	})
}

// getApprovalHandler handles GET /api/v1/approvals/:id.
func (s *Server) getApprovalHandler(c *echo.Context) error {
	requestID := c.Param("id")
	if requestID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "approval request id is required")
	}

	req, err := s.gate.Get(c.Request().Context(), requestID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, req)
}

// approvalDecisionBody carries optional feedback on an approval decision.
// Feedback is mandatory for modify, where it states what to change.
type approvalDecisionBody struct {
	Feedback string `json:"feedback"`
}

// approveHandler handles POST /api/v1/approvals/:id/approve.
func (s *Server) approveHandler(c *echo.Context) error {
	requestID := c.Param("id")
	if requestID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "approval request id is required")
	}

	var body approvalDecisionBody
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	req, err := s.gate.Approve(c.Request().Context(), requestID, extractAuthor(c), body.Feedback)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, req)
}

// rejectHandler handles POST /api/v1/approvals/:id/reject.
func (s *Server) rejectHandler(c *echo.Context) error {
	requestID := c.Param("id")
	if requestID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "approval request id is required")
	}

	var body approvalDecisionBody
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	req, err := s.gate.Reject(c.Request().Context(), requestID, extractAuthor(c), body.Feedback)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, req)
}

// modifyHandler handles POST /api/v1/approvals/:id/modify.
func (s *Server) modifyHandler(c *echo.Context) error {
	requestID := c.Param("id")
	if requestID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "approval request id is required")
	}

	var body approvalDecisionBody
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if body.Feedback == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "feedback is required for modify")
	}

	req, err := s.gate.Modify(c.Request().Context(), requestID, extractAuthor(c), body.Feedback)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, req)
}
