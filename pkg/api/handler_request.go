package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/codeready-toolchain/maestro/ent"
	"github.com/codeready-toolchain/maestro/pkg/models"
)

// terminalPollInterval is how often the streaming handler checks whether the
// workflow reached a terminal state, alongside draining live payloads.
const terminalPollInterval = time.Second

// CreateRequestBody is the body of POST /api/v1/requests. It wraps the
// workflow creation request with delivery options.
type CreateRequestBody struct {
	models.CreateWorkflowRequest
	Stream bool `json:"stream,omitempty"`
}

// createRequestHandler handles POST /api/v1/requests.
//
// Default mode waits for the workflow to finish, bounded by the configured
// sync timeout; past the budget it returns 202 with the workflow id for
// polling. With "stream": true the response is newline-delimited JSON
// relaying execution events and token deltas until the workflow terminates.
func (s *Server) createRequestHandler(c *echo.Context) error {
	var body CreateRequestBody
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	wf, err := s.workflows.CreateWorkflow(c.Request().Context(), body.CreateWorkflowRequest)
	if err != nil {
		return mapServiceError(err)
	}

	if body.Stream {
		return s.streamWorkflow(c, wf)
	}

	waitCtx, cancel := context.WithTimeout(c.Request().Context(), s.cfg.Server.SyncRequestTimeout)
	defer cancel()

	result, err := s.workflows.Await(waitCtx, wf.ID)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return c.JSON(http.StatusAccepted, &AcceptedResponse{
				WorkflowID: wf.ID,
				SessionID:  wf.SessionID,
				Status:     string(wf.Status),
				Message:    "still running, poll GET /api/v1/workflows/" + wf.ID,
			})
		}
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, result)
}

// streamWorkflow relays the workflow's NOTIFY payloads (persisted events and
// transient token chunks) to the client as NDJSON, closing with a final
// result line once the workflow terminates.
func (s *Server) streamWorkflow(c *echo.Context, wf *ent.Workflow) error {
	ch, cancelTap := s.connManager.Tap(wf.ID)
	defer cancelTap()

	resp := c.Response()
	resp.Header().Set("Content-Type", "application/x-ndjson")
	resp.Header().Set("Cache-Control", "no-cache")
	resp.WriteHeader(http.StatusOK)

	// echo's response wrapper implements http.Flusher; a recorder in tests
	// may not, so flushing stays best-effort.
	flusher, _ := resp.(http.Flusher)
	flush := func() {
		if flusher != nil {
			flusher.Flush()
		}
	}

	writeLine := func(v any) error {
		data, err := json.Marshal(v)
		if err != nil {
			return err
		}
		if _, err := resp.Write(append(data, '\n')); err != nil {
			return err
		}
		flush()
		return nil
	}

	if err := writeLine(map[string]string{
		"type":        "request.accepted",
		"workflow_id": wf.ID,
		"session_id":  wf.SessionID,
	}); err != nil {
		return err
	}

	ctx := c.Request().Context()
	ticker := time.NewTicker(terminalPollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case payload := <-ch:
			if _, err := resp.Write(append(payload, '\n')); err != nil {
				return nil
			}
			flush()

		case <-ticker.C:
			current, err := s.workflows.GetWorkflow(ctx, wf.ID, false)
			if err != nil {
				return nil
			}
			if !models.WorkflowStatus(current.Status).IsTerminal() {
				continue
			}
			// Drain anything already queued before the final line.
			for {
				select {
				case payload := <-ch:
					if _, err := resp.Write(append(payload, '\n')); err != nil {
						return nil
					}
				default:
					result, err := s.workflows.Await(ctx, wf.ID)
					if err != nil {
						return nil
					}
					_ = writeLine(map[string]any{
						"type":   "request.completed",
						"result": result,
					})
					return nil
				}
			}
		}
	}
}
