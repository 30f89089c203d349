package llm

import (
	"context"
	"fmt"
)

// MockClient is a canned-response implementation of Client for local
// development without an API key.
type MockClient struct{}

// NewMockClient creates a new mock client.
func NewMockClient() *MockClient {
	return &MockClient{}
}

// Complete returns a deterministic canned response. Structured requests
// get a valid check-in JSON object; plain requests get mock summary text.
func (m *MockClient) Complete(ctx context.Context, req *Request) (string, error) {
	if req.Schema != nil {
		return `{"reply": "[MOCK] Got it, logged your update.", "time": "15m", "nextCheckIn": "[MOCK] How did it go?"}`, nil
	}
	return fmt.Sprintf("[MOCK] A quiet, steady day. (prompt length %d)", len(req.Prompt)), nil
}
