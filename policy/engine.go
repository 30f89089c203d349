// Package policy decides whether a follow-up may be delivered.
package policy

import (
	"context"
	"fmt"

	"github.com/open-policy-agent/opa/rego"
)

// Decisions returned by the follow-up policy.
const (
	DecisionDeliver  = "deliver"
	DecisionSuppress = "suppress"
)

// Engine is the OPA policy engine.
type Engine struct {
	query rego.PreparedEvalQuery
}

// NewEngine creates a new policy engine with the given policy content.
func NewEngine(ctx context.Context, policyContent string) (*Engine, error) {
	r := rego.New(
		rego.Query("data.followup_policy.decision"),
		rego.Module("followup_policy.rego", policyContent),
	)

	query, err := r.PrepareForEval(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare rego: %w", err)
	}

	return &Engine{query: query}, nil
}

// Input is the evaluation input for one delivery decision. Times are
// zero-padded "HH:MM" wall-clock strings, which compare correctly as
// strings. Empty quiet_start/quiet_end means no quiet window.
type Input struct {
	UserID     string `json:"user_id"`
	Now        string `json:"now"`
	QuietStart string `json:"quiet_start"`
	QuietEnd   string `json:"quiet_end"`
}

// Evaluate returns the delivery decision for the input.
func (e *Engine) Evaluate(ctx context.Context, input Input) (string, error) {
	results, err := e.query.Eval(ctx, rego.EvalInput(input))
	if err != nil {
		return "", fmt.Errorf("failed to evaluate policy: %w", err)
	}

	if len(results) == 0 || len(results[0].Expressions) == 0 {
		return DecisionDeliver, nil
	}

	if s, ok := results[0].Expressions[0].Value.(string); ok {
		return s, nil
	}
	return DecisionDeliver, nil
}

// DefaultPolicy suppresses deliveries inside the user's quiet hours,
// including windows that cross midnight.
const DefaultPolicy = `
package followup_policy

import rego.v1

default decision := "deliver"

decision := "suppress" if {
	input.quiet_start != ""
	input.quiet_end != ""
	in_quiet_hours
}

# Window within one day: start <= now < end.
in_quiet_hours if {
	input.quiet_start < input.quiet_end
	input.now >= input.quiet_start
	input.now < input.quiet_end
}

# Window crossing midnight: now after start, or before end.
in_quiet_hours if {
	input.quiet_start > input.quiet_end
	input.now >= input.quiet_start
}

in_quiet_hours if {
	input.quiet_start > input.quiet_end
	input.now < input.quiet_end
}
`
