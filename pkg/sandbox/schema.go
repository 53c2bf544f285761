package sandbox

import (
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/codeready-toolchain/maestro/ent"
	"github.com/codeready-toolchain/maestro/pkg/models"
)

// schemaCache holds compiled input schemas keyed by tool id and spec
// version, so a republished tool recompiles and a stable one does not.
type schemaCache struct {
	mu       sync.Mutex
	compiled map[string]*jsonschema.Schema
}

func newSchemaCache() *schemaCache {
	return &schemaCache{compiled: make(map[string]*jsonschema.Schema)}
}

func (c *schemaCache) get(spec *ent.ToolSpec) (*jsonschema.Schema, error) {
	key := fmt.Sprintf("%s@%d", spec.ID, spec.Version)

	c.mu.Lock()
	defer c.mu.Unlock()
	if sch, ok := c.compiled[key]; ok {
		return sch, nil
	}

	compiler := jsonschema.NewCompiler()
	url := "maestro://tools/" + spec.Name + ".json"
	if err := compiler.AddResource(url, toJSONValue(spec.InputSchema)); err != nil {
		return nil, fmt.Errorf("invalid input schema for tool %s: %w", spec.Name, err)
	}
	sch, err := compiler.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("failed to compile input schema for tool %s: %w", spec.Name, err)
	}
	c.compiled[key] = sch
	return sch, nil
}

// validateArguments checks the call against the tool's compiled schema.
// Any mismatch is a forbidden violation: unvalidated arguments never run.
func (s *Sandbox) validateArguments(call models.FunctionCall, spec *ent.ToolSpec) error {
	sch, err := s.schemas.get(spec)
	if err != nil {
		return err
	}
	if err := sch.Validate(toJSONValue(call.Arguments)); err != nil {
		return &Violation{
			Kind:   ViolationForbidden,
			Detail: fmt.Sprintf("arguments rejected by schema: %v", err),
		}
	}
	return nil
}

// toJSONValue normalizes Go values into the decoded-JSON shapes the schema
// library validates (map[string]any, []any, float64, ...).
func toJSONValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = toJSONValue(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = toJSONValue(val)
		}
		return out
	case []string:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = val
		}
		return out
	case int:
		return float64(t)
	case int32:
		return float64(t)
	case int64:
		return float64(t)
	case float32:
		return float64(t)
	default:
		return v
	}
}
