package api

import (
	"context"
	"testing"
	"time"

	"github.com/echo-journal/echod/internal/adapter/llm"
	"github.com/echo-journal/echod/internal/config"
	"github.com/echo-journal/echod/internal/followup"
	"github.com/echo-journal/echod/internal/genai"
	"github.com/echo-journal/echod/internal/service"
	"github.com/echo-journal/echod/tests/helpers"
)

type stubLLM struct {
	response string
}

func (s *stubLLM) Complete(_ context.Context, _ *llm.Request) (string, error) {
	return s.response, nil
}

type nullSender struct{}

func (nullSender) Send(_ context.Context, _, _ string) error { return nil }

type stubTTS struct{}

func (stubTTS) Synthesize(_ context.Context, _, _ string) ([]byte, error) {
	return []byte("mp3-bytes"), nil
}

func newTestHandler(t *testing.T) *Handler {
	t.Helper()

	st := helpers.NewTestSQLiteStore(t)
	generator := genai.NewGenerator(
		&stubLLM{response: `{"reply":"Got it!","time":"30m","nextCheckIn":"How is it going?"}`},
		time.Second, 15*time.Minute, nil)

	scheduler := followup.NewScheduler(nullSender{}, nil, nil)
	t.Cleanup(scheduler.Stop)

	cfg := &config.Config{
		AudioDir:           t.TempDir(),
		DefaultDelay:       15 * time.Minute,
		DefaultPersona:     "coach",
		DefaultLength:      "short",
		CancelOnNewMessage: true,
		RecentEntryLimit:   10,
		LLMTimeout:         time.Second,
		Location:           time.UTC,
	}

	svc := service.New(st, generator, scheduler, stubTTS{}, cfg, nil)
	return NewHandler(svc)
}
