package registry

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/codeready-toolchain/maestro/ent/prompt"
	"github.com/codeready-toolchain/maestro/pkg/config"
	"github.com/codeready-toolchain/maestro/pkg/models"
)

// Seed prepares a deployment for first use: config-declared model endpoints
// are upserted by name, and every builtin prompt body is published as a
// version-1 prompt with a legacy-exempt default assignment. Idempotent;
// runs at every startup.
func (r *Registry) Seed(ctx context.Context, llm config.LLMConfig) error {
	if err := r.SeedEndpoints(ctx, llm.Endpoints); err != nil {
		return fmt.Errorf("failed to seed model endpoints: %w", err)
	}
	if err := r.seedBuiltinPrompts(ctx); err != nil {
		return fmt.Errorf("failed to seed builtin prompts: %w", err)
	}
	return nil
}

// seedBuiltinPrompts publishes each compiled-in body once and binds it at
// default scope. Existing prompt rows and assignments are never touched, so
// operator-published versions always win.
func (r *Registry) seedBuiltinPrompts(ctx context.Context) error {
	seeded := 0
	for key, body := range builtinPrompts {
		stageName, role, ok := strings.Cut(key, "/")
		if !ok {
			continue
		}
		stage := models.Stage(stageName)
		promptID := BuiltinPromptID(stage, role)

		exists, err := r.client.Prompt.Query().
			Where(prompt.PromptID(promptID)).
			Exist(ctx)
		if err != nil {
			return fmt.Errorf("failed to check prompt %s: %w", promptID, err)
		}
		if exists {
			continue
		}

		if _, err := r.PublishPrompt(ctx, promptID, body, "builtin default"); err != nil {
			return fmt.Errorf("failed to publish %s: %w", promptID, err)
		}
		if _, err := r.AssignPrompt(ctx, AssignPromptRequest{
			Stage:         stage,
			ComponentRole: role,
			ScopeType:     "default",
			ScopeValue:    "",
			PromptID:      promptID,
			PromptVersion: 1,
			LegacyExempt:  true,
		}); err != nil {
			return fmt.Errorf("failed to assign %s: %w", promptID, err)
		}
		seeded++
	}
	if seeded > 0 {
		slog.Info("Seeded builtin prompts", "count", seeded)
	}
	return nil
}
