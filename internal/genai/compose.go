package genai

import (
	"strings"
	"time"

	"github.com/echo-journal/echod/internal/domain"
)

// ComposeSummaryPrompt renders the daily-summary prompt for the given
// entries, persona and length profile. Entries are consumed in caller
// order; callers are responsible for chronological ordering.
func ComposeSummaryPrompt(entries []domain.Entry, persona Persona, length SummaryLength) string {
	var b strings.Builder
	for _, e := range entries {
		source := e.Source
		if source == "" {
			source = "unknown"
		}
		b.WriteString("[")
		b.WriteString(e.Timestamp.UTC().Format(time.RFC3339))
		b.WriteString("] (")
		b.WriteString(source)
		b.WriteString(", ")
		b.WriteString(string(e.Role))
		b.WriteString("): ")
		b.WriteString(e.Content)
		b.WriteString("\n")
	}

	goals := strings.ReplaceAll(length.Goals, "{{TONE}}", persona.Tone)

	r := strings.NewReplacer(
		"{{PERSONA_NAME}}", persona.Name,
		"{{PERSONA_DESCRIPTION}}", persona.Description,
		"{{PERSONA_TONE}}", persona.Tone,
		"{{PERSONA_EXAMPLES}}", persona.Examples,
		"{{SUMMARY_LENGTH}}", length.Length,
		"{{SUMMARY_GOALS}}", goals,
		"{{SUMMARY_INSTRUCTION}}", length.Instruction,
		"{{ENTRIES}}", b.String(),
	)
	return r.Replace(summaryTemplate)
}

// ComposeCheckInPrompt renders the one-turn prompt for a user message.
// defaultDelay is offered to the model as the fallback check-in time.
func ComposeCheckInPrompt(message string, persona Persona, defaultDelay time.Duration) string {
	r := strings.NewReplacer(
		"{{PERSONA_NAME}}", persona.Name,
		"{{PERSONA_DESCRIPTION}}", persona.Description,
		"{{PERSONA_TONE}}", persona.Tone,
		"{{PERSONA_EXAMPLES}}", persona.Examples,
		"{{USER_MESSAGE}}", message,
		"{{DEFAULT_TIME}}", FormatDelay(defaultDelay),
	)
	return r.Replace(checkInTemplate)
}
