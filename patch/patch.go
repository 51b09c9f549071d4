// Package patch applies RFC 6902 operations to the collected form values.
// Paths are restricted to the known field ids so a generated patch can
// never write outside the form.
package patch

import (
	"fmt"

	"github.com/bytedance/sonic"
	jsonpatch "github.com/evanphx/json-patch/v5"

	"github.com/permitly/permitagent/schedule"
)

// Operation is a single RFC 6902 patch operation.
type Operation struct {
	Op    string `json:"op"`
	Path  string `json:"path"`
	Value any    `json:"value,omitempty"`
}

// AllowedPaths returns the JSON pointer for every form field.
func AllowedPaths() map[string]bool {
	allowed := make(map[string]bool, schedule.Len())
	for _, f := range schedule.Fields() {
		allowed["/"+f.ID] = true
	}
	return allowed
}

// Validate checks that every operation targets an allowed path.
func Validate(ops []Operation, allowed map[string]bool) error {
	for i, op := range ops {
		if len(allowed) > 0 && !allowed[op.Path] {
			return fmt.Errorf("operation %d: path %q is not in the allowed paths set", i, op.Path)
		}
		switch op.Op {
		case "add", "replace", "remove":
		default:
			return fmt.Errorf("operation %d: unsupported op %q", i, op.Op)
		}
	}
	return nil
}

// Apply runs the operations against a copy of the values and returns the
// result. The input map is never mutated.
func Apply(values map[string]string, ops []Operation, allowed map[string]bool) (map[string]string, error) {
	if err := Validate(ops, allowed); err != nil {
		return nil, fmt.Errorf("patch validation failed: %w", err)
	}
	if len(ops) == 0 {
		return values, nil
	}

	currentJSON, err := sonic.Marshal(values)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal current values: %w", err)
	}
	patchJSON, err := sonic.Marshal(ops)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal patch operations: %w", err)
	}
	p, err := jsonpatch.DecodePatch(patchJSON)
	if err != nil {
		return nil, fmt.Errorf("failed to decode patch: %w", err)
	}
	modifiedJSON, err := p.Apply(currentJSON)
	if err != nil {
		return nil, fmt.Errorf("failed to apply patch: %w", err)
	}

	var result map[string]string
	if err := sonic.Unmarshal(modifiedJSON, &result); err != nil {
		return nil, fmt.Errorf("patch produced non string values: %w", err)
	}
	return result, nil
}

// PrefillOps builds add operations for every seed value whose field is
// still empty, so a prefill never overwrites what the applicant entered.
func PrefillOps(current, seed map[string]string) []Operation {
	ops := make([]Operation, 0, len(seed))
	for _, f := range schedule.Fields() {
		v, ok := seed[f.ID]
		if !ok || v == "" {
			continue
		}
		if current[f.ID] != "" {
			continue
		}
		ops = append(ops, Operation{Op: "add", Path: "/" + f.ID, Value: v})
	}
	return ops
}
