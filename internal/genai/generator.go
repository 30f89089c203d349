package genai

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"time"

	"github.com/echo-journal/echod/internal/adapter/llm"
	"github.com/echo-journal/echod/internal/domain"
	"github.com/echo-journal/echod/internal/metrics"
)

// Decoding temperatures. The one-turn reply runs hotter than the summary
// for more varied conversational output.
const (
	summaryTemperature = 0.7
	checkInTemperature = 0.8
)

// Hardcoded check-in fallbacks. These are the user-visible floor: no
// collaborator outcome may produce anything worse than this.
const (
	fallbackReply       = "Thanks for the update!"
	fallbackNextCheckIn = "What's next on your agenda?"
)

// checkInReply is the JSON shape requested from the model for one-turn
// replies.
type checkInReply struct {
	Reply       string `json:"reply"`
	Time        string `json:"time"`
	NextCheckIn string `json:"nextCheckIn"`
}

var checkInSchema = generateSchema[checkInReply]()

// Generator runs prompts through the text-generation collaborator and
// normalizes its output.
type Generator struct {
	client       llm.Client
	timeout      time.Duration
	defaultDelay time.Duration
	recorder     metrics.Recorder
}

// NewGenerator creates a Generator. timeout bounds every collaborator
// call; defaultDelay is the follow-up delay used when the model supplies
// none.
func NewGenerator(client llm.Client, timeout, defaultDelay time.Duration, recorder metrics.Recorder) *Generator {
	if recorder == nil {
		recorder = metrics.Nop{}
	}
	return &Generator{
		client:       client,
		timeout:      timeout,
		defaultDelay: defaultDelay,
		recorder:     recorder,
	}
}

// DefaultDelay returns the configured fallback follow-up delay.
func (g *Generator) DefaultDelay() time.Duration {
	return g.defaultDelay
}

// GenerateCheckIn produces the one-turn reply for a user message. It
// never fails: collaborator errors and malformed output degrade to
// fallback values, field by field, so the caller always gets a
// structurally valid CheckIn.
func (g *Generator) GenerateCheckIn(ctx context.Context, message string, persona Persona) domain.CheckIn {
	// A duration found in the message itself beats the configured default
	// as the fallback delay, and is offered to the model as such.
	delay := g.defaultDelay
	if d, ok := ExtractDelay(message); ok {
		delay = d
	}
	fallback := domain.CheckIn{
		Reply:       fallbackReply,
		Delay:       delay,
		DelayLabel:  FormatDelay(delay),
		NextCheckIn: fallbackNextCheckIn,
	}

	prompt := ComposeCheckInPrompt(message, persona, delay)
	raw, err := g.complete(ctx, "checkin", &llm.Request{
		Prompt:      prompt,
		Temperature: checkInTemperature,
		SchemaName:  "CheckInReply",
		Schema:      checkInSchema,
	})
	if err != nil {
		log.Printf("WARN: check-in generation failed, using fallback: %v", err)
		g.recorder.RecordFallbackReply()
		return fallback
	}

	raw = strings.TrimSpace(raw)
	if raw == "" {
		g.recorder.RecordFallbackReply()
		return fallback
	}

	var parsed checkInReply
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		// Not JSON at all: the whole completion becomes the reply, the
		// remaining fields degrade like any other fallback.
		g.recorder.RecordFallbackReply()
		fallback.Reply = raw
		return fallback
	}

	out := fallback
	if parsed.Reply != "" {
		out.Reply = parsed.Reply
	}
	if parsed.Time != "" {
		if d, err := ParseDelay(parsed.Time); err == nil {
			out.Delay = d
			out.DelayLabel = parsed.Time
		}
	}
	if parsed.NextCheckIn != "" {
		out.NextCheckIn = parsed.NextCheckIn
	}
	return out
}

// GenerateSummary produces the daily summary text for the given entries.
// Unlike check-ins, collaborator failures propagate to the caller.
func (g *Generator) GenerateSummary(ctx context.Context, entries []domain.Entry, length SummaryLength, persona Persona) (string, error) {
	prompt := ComposeSummaryPrompt(entries, persona, length)
	raw, err := g.complete(ctx, "summary", &llm.Request{
		Prompt:      prompt,
		Temperature: summaryTemperature,
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(raw), nil
}

func (g *Generator) complete(ctx context.Context, kind string, req *llm.Request) (string, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}
	start := time.Now()
	raw, err := g.client.Complete(ctx, req)
	g.recorder.RecordLLMCall(kind, err == nil, time.Since(start))
	return raw, err
}
