// Package llm provides an abstraction for the text-generation collaborator.
package llm

import "context"

// Request is a single completion request: one prompt, one temperature,
// and an optional structured-output schema.
type Request struct {
	Prompt      string
	Temperature float64

	// SchemaName and Schema, when set, ask the model for a JSON object
	// matching the schema. Callers must still tolerate malformed output.
	SchemaName string
	Schema     map[string]interface{}
}

// Client defines the interface for text-generation operations.
type Client interface {
	// Complete submits a prompt and returns the completion text.
	Complete(ctx context.Context, req *Request) (string, error)
}

// Ensure implementations satisfy the Client interface.
var (
	_ Client = (*OpenAIClient)(nil)
	_ Client = (*MockClient)(nil)
)
