package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/echo-journal/echod/internal/adapter/llm"
	"github.com/echo-journal/echod/internal/config"
	"github.com/echo-journal/echod/internal/domain"
	"github.com/echo-journal/echod/internal/followup"
	"github.com/echo-journal/echod/internal/genai"
	"github.com/echo-journal/echod/tests/helpers"
)

// fakeLLM returns canned completions and counts calls. respond, when
// set, produces a distinct completion per call.
type fakeLLM struct {
	mu       sync.Mutex
	response string
	respond  func(call int) string
	err      error
	calls    int
}

func (f *fakeLLM) Complete(_ context.Context, _ *llm.Request) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.respond != nil {
		return f.respond(f.calls), f.err
	}
	return f.response, f.err
}

func (f *fakeLLM) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type fakeSender struct {
	mu   sync.Mutex
	sent []string
}

func (f *fakeSender) Send(_ context.Context, channelID, content string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, channelID+": "+content)
	return nil
}

func (f *fakeSender) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sent)
}

type fakeTTS struct {
	mu    sync.Mutex
	calls int
}

func (f *fakeTTS) Synthesize(_ context.Context, _, _ string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return []byte("mp3-bytes"), nil
}

type fixture struct {
	svc       *Service
	llm       *fakeLLM
	sender    *fakeSender
	tts       *fakeTTS
	scheduler *followup.Scheduler
}

func newTestService(t *testing.T) *fixture {
	t.Helper()

	st := helpers.NewTestSQLiteStore(t)
	llmClient := &fakeLLM{response: `{"reply":"Nice!","time":"1h","nextCheckIn":"How did it go?"}`}
	generator := genai.NewGenerator(llmClient, time.Second, 15*time.Minute, nil)

	sender := &fakeSender{}
	scheduler := followup.NewScheduler(sender, nil, nil)
	t.Cleanup(scheduler.Stop)

	synth := &fakeTTS{}
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

	return &fixture{
		svc:       New(st, generator, scheduler, synth, cfg, nil),
		llm:       llmClient,
		sender:    sender,
		tts:       synth,
		scheduler: scheduler,
	}
}

func createUser(t *testing.T, f *fixture) *domain.User {
	t.Helper()
	user, err := f.svc.CreateUser(context.Background(), &domain.User{
		Name:      "Ada",
		DiscordID: "ada#1",
	})
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	return user
}
