package api

import (
	"net/http"
	"strconv"

	echo "github.com/labstack/echo/v5"

	"github.com/codeready-toolchain/maestro/pkg/models"
	"github.com/codeready-toolchain/maestro/pkg/registry"
)

// --- Prompts ---

// PublishPromptBody is the body of POST /api/v1/prompts. Publishing always
// creates a new immutable version of the named prompt.
type PublishPromptBody struct {
	PromptID    string `json:"prompt_id"`
	Body        string `json:"body"`
	Description string `json:"description"`
}

func (s *Server) publishPromptHandler(c *echo.Context) error {
	var body PublishPromptBody
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if body.PromptID == "" || body.Body == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "prompt_id and body are required")
	}

	prompt, err := s.registry.PublishPrompt(c.Request().Context(), body.PromptID, body.Body, body.Description)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, prompt)
}

func (s *Server) getPromptHandler(c *echo.Context) error {
	promptID := c.Param("id")
	version, err := strconv.Atoi(c.Param("version"))
	if promptID == "" || err != nil || version < 1 {
		return echo.NewHTTPError(http.StatusBadRequest, "prompt id and a positive version are required")
	}

	prompt, err := s.registry.GetPrompt(c.Request().Context(), promptID, version)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, prompt)
}

// AssignPromptBody is the body of POST /api/v1/prompt-assignments.
type AssignPromptBody struct {
	Stage         string `json:"stage"`
	ComponentRole string `json:"component_role"`
	ScopeType     string `json:"scope_type"`
	ScopeValue    string `json:"scope_value"`
	PromptID      string `json:"prompt_id"`
	PromptVersion int    `json:"prompt_version"`
	LegacyExempt  bool   `json:"legacy_exempt"`
}

func (s *Server) assignPromptHandler(c *echo.Context) error {
	var body AssignPromptBody
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	stage := models.Stage(body.Stage)
	if !stage.IsValid() {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid stage: "+body.Stage)
	}

	assignment, err := s.registry.AssignPrompt(c.Request().Context(), registry.AssignPromptRequest{
		Stage:         stage,
		ComponentRole: body.ComponentRole,
		ScopeType:     body.ScopeType,
		ScopeValue:    body.ScopeValue,
		PromptID:      body.PromptID,
		PromptVersion: body.PromptVersion,
		LegacyExempt:  body.LegacyExempt,
	})
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, assignment)
}

// --- Agents ---

// AgentSpecBody is the body of agent create and update calls.
type AgentSpecBody struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Capabilities []string `json:"capabilities"`
	ModelClass   string   `json:"model_class"`
}

// TransitionBody is the body of lifecycle transition calls. ExpectedVersion
// is the optimistic-concurrency check against the stored spec.
type TransitionBody struct {
	Status          string `json:"status"`
	ExpectedVersion int    `json:"expected_version"`
}

func (s *Server) listAgentsHandler(c *echo.Context) error {
	status := models.RegistryStatus(c.QueryParam("status"))
	agents, err := s.registry.ListAgents(c.Request().Context(), status)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"agents": agents,
		"count":  len(agents),
	})
}

func (s *Server) createAgentHandler(c *echo.Context) error {
	var body AgentSpecBody
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	agent, err := s.registry.CreateAgent(c.Request().Context(), registry.CreateAgentRequest{
		Name:         body.Name,
		Description:  body.Description,
		Capabilities: body.Capabilities,
		ModelClass:   models.TaskClass(body.ModelClass),
	})
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, agent)
}

func (s *Server) getAgentHandler(c *echo.Context) error {
	name := c.Param("name")
	if name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "agent name is required")
	}

	agent, err := s.registry.GetAgent(c.Request().Context(), name)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, agent)
}

func (s *Server) updateAgentHandler(c *echo.Context) error {
	name := c.Param("name")
	if name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "agent name is required")
	}

	var body struct {
		AgentSpecBody
		ExpectedVersion int `json:"expected_version"`
	}
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	agent, err := s.registry.UpdateAgentSpec(c.Request().Context(), name, registry.CreateAgentRequest{
		Name:         name,
		Description:  body.Description,
		Capabilities: body.Capabilities,
		ModelClass:   models.TaskClass(body.ModelClass),
	}, body.ExpectedVersion)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, agent)
}

func (s *Server) transitionAgentHandler(c *echo.Context) error {
	name := c.Param("name")
	if name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "agent name is required")
	}

	var body TransitionBody
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	agent, err := s.registry.TransitionAgent(c.Request().Context(), name,
		models.RegistryStatus(body.Status), body.ExpectedVersion)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, agent)
}

// --- Tools ---

// ToolSpecBody is the body of POST /api/v1/tools. Exactly one of command and
// handler must be set.
type ToolSpecBody struct {
	Name             string         `json:"name"`
	Capabilities     []string       `json:"capabilities"`
	InputSchema      map[string]any `json:"input_schema"`
	OutputSchema     map[string]any `json:"output_schema"`
	Command          []string       `json:"command"`
	Handler          string         `json:"handler"`
	DefaultTimeoutMS int64          `json:"default_timeout_ms"`
}

func (s *Server) listToolsHandler(c *echo.Context) error {
	status := models.RegistryStatus(c.QueryParam("status"))
	tools, err := s.registry.ListTools(c.Request().Context(), status)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"tools": tools,
		"count": len(tools),
	})
}

func (s *Server) createToolHandler(c *echo.Context) error {
	var body ToolSpecBody
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	tool, err := s.registry.CreateTool(c.Request().Context(), registry.CreateToolRequest{
		Name:             body.Name,
		Capabilities:     body.Capabilities,
		InputSchema:      body.InputSchema,
		OutputSchema:     body.OutputSchema,
		Command:          body.Command,
		Handler:          body.Handler,
		DefaultTimeoutMS: body.DefaultTimeoutMS,
	})
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, tool)
}

func (s *Server) getToolHandler(c *echo.Context) error {
	name := c.Param("name")
	if name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "tool name is required")
	}

	tool, err := s.registry.GetTool(c.Request().Context(), name)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, tool)
}

func (s *Server) transitionToolHandler(c *echo.Context) error {
	name := c.Param("name")
	if name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "tool name is required")
	}

	var body TransitionBody
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	tool, err := s.registry.TransitionTool(c.Request().Context(), name,
		models.RegistryStatus(body.Status), body.ExpectedVersion)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, tool)
}

// --- Model endpoints ---

func (s *Server) listModelsHandler(c *echo.Context) error {
	endpoints, err := s.registry.ListEndpoints(c.Request().Context())
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"models": endpoints,
		"count":  len(endpoints),
	})
}

func (s *Server) getModelHandler(c *echo.Context) error {
	name := c.Param("name")
	if name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "model name is required")
	}

	endpoint, err := s.registry.GetEndpoint(c.Request().Context(), name)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, endpoint)
}
