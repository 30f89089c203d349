package llm

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func TestNewClientSelectsMock(t *testing.T) {
	t.Setenv(EnvEchodMode, ModeMock)
	if _, ok := NewClient("sk-real", "gpt-4o-mini").(*MockClient); !ok {
		t.Error("ECHOD_MODE=MOCK should select the mock client")
	}

	t.Setenv(EnvEchodMode, "")
	if _, ok := NewClient("", "gpt-4o-mini").(*MockClient); !ok {
		t.Error("missing API key should select the mock client")
	}
	if _, ok := NewClient("sk-real", "gpt-4o-mini").(*OpenAIClient); !ok {
		t.Error("API key without mock mode should select the real client")
	}
}

func TestMockClientStructuredOutput(t *testing.T) {
	client := NewMockClient()

	raw, err := client.Complete(context.Background(), &Request{
		Prompt:     "status update",
		SchemaName: "CheckInReply",
		Schema:     map[string]interface{}{"type": "object"},
	})
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}
	var parsed struct {
		Reply string `json:"reply"`
		Time  string `json:"time"`
	}
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		t.Fatalf("mock structured output is not JSON: %v", err)
	}
	if parsed.Reply == "" || parsed.Time == "" {
		t.Errorf("mock output missing fields: %q", raw)
	}

	plain, err := client.Complete(context.Background(), &Request{Prompt: "summarize"})
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}
	if !strings.HasPrefix(plain, "[MOCK]") {
		t.Errorf("unexpected plain output %q", plain)
	}
}
