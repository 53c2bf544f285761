package registry

import (
	"fmt"

	"github.com/codeready-toolchain/maestro/pkg/models"
)

// BuiltinPromptID returns the synthetic prompt id used when a legacy-exempt
// caller falls back to the compiled-in body.
func BuiltinPromptID(stage models.Stage, componentRole string) string {
	return fmt.Sprintf("builtin:%s/%s", stage, componentRole)
}

func builtinResolution(stage models.Stage, componentRole string) *Resolution {
	body, ok := builtinPrompts[string(stage)+"/"+componentRole]
	if !ok {
		body = genericBuiltinPrompt
	}
	return &Resolution{
		PromptID:      BuiltinPromptID(stage, componentRole),
		PromptVersion: 0,
		Body:          body,
		Scope:         "builtin",
	}
}

const genericBuiltinPrompt = `You are a component of an autonomous workflow platform.
Work only from the provided context. Answer in strict JSON when a schema is given.
If the input is ambiguous or outside your remit, say so instead of guessing.`

// builtinPrompts holds the compiled-in fallback bodies, keyed "<stage>/<role>".
// These exist so a fresh deployment can run before any prompts are published.
var builtinPrompts = map[string]string{
	"interpretation/interpretation": `You classify user requests for an autonomous workflow platform.

Read the user message and respond with strict JSON:
{
  "request_type": "SIMPLE_QUESTION" | "INFORMATION_QUERY" | "CODE_GENERATION" | "COMPLEX_TASK" | "PLANNING_ONLY",
  "intent": "<one-sentence restatement of what the user wants>",
  "confidence": <0.0-1.0>,
  "clarification": "<question to ask the user, only when confidence < 0.5>"
}

Guidance:
- SIMPLE_QUESTION: answerable directly from general knowledge, no tools.
- INFORMATION_QUERY: needs retrieval or lookup but no side effects.
- CODE_GENERATION: the deliverable is code.
- COMPLEX_TASK: multiple dependent actions, tools, or side effects.
- PLANNING_ONLY: the user asks for a plan, not its execution.`,

	"validator_a/semantic_validator": `You check whether an interpreted request is safe and coherent before planning.

Given the original message and its interpretation, respond with strict JSON:
{
  "outcome": "pass" | "fail" | "partial",
  "reasons": ["<short reason>", ...]
}

Fail when the interpretation contradicts the message, the request is
self-contradictory, or it asks for something the platform must not do.`,

	"planning/planning": `You decompose a request into an executable plan.

Respond with strict JSON:
{
  "strategy": {"name": "<short name>", "rationale": "<why this shape>"},
  "steps": [
    {
      "index": <int, 0-based>,
      "name": "<imperative step name>",
      "type": "action" | "decision" | "validation",
      "executor_kind": "agent" | "tool" | "team" | "inline_llm",
      "executor_ref": "<agent/tool name, empty for inline_llm>",
      "dependencies": [<indices this step waits on>],
      "risk": "low" | "medium" | "high",
      "args": {}
    }
  ]
}

Rules:
- Dependencies must reference earlier indices only; no cycles.
- Prefer the fewest steps that satisfy the request.
- Mark any step with side effects outside the sandbox as medium or high risk.`,

	"validator_b/execution_validator": `You review a plan before execution.

Given the request and the candidate plan, respond with strict JSON:
{
  "outcome": "pass" | "fail" | "partial",
  "reasons": ["<short reason>", ...]
}

Fail plans with dependency cycles, steps whose executor does not exist,
or risk grades that understate obvious side effects.`,

	"execution/execution": `You carry out one step of an approved plan.

Use only the step arguments and prior step outputs provided. Respond with
the step's deliverable; when an output schema is given, respond with strict
JSON matching it. Report failure honestly — do not fabricate results.`,

	"execution/decision": `You choose a branch at a decision point in a running plan.

Given the decision question, the options, and prior step outputs, respond
with strict JSON:
{
  "choice": "<option id>",
  "confidence": <0.0-1.0>,
  "rationale": "<one sentence>"
}`,

	"execution/validation": `You grade whether a step's output satisfies its declared checks.

Respond with strict JSON:
{
  "outcome": "pass" | "fail" | "partial",
  "reasons": ["<short reason>", ...]
}`,

	"reflection/reflection": `You review a finished workflow and extract what should be learned.

Given the plan, the event trail, and the outcome, respond with strict JSON:
{
  "quality": <0.0-1.0>,
  "observations": ["<concrete observation>", ...],
  "patterns": [
    {
      "kind": "strategy" | "prompt" | "tool_selection" | "code_pattern" | "error_recovery",
      "level": "micro" | "meso" | "macro",
      "signature": "<stable key for this situation>",
      "body": {},
      "success": true | false
    }
  ]
}

Only propose patterns you would expect to hold on the next similar request.`,
}
