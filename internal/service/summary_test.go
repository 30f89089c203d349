package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/echo-journal/echod/internal/domain"
	"github.com/echo-journal/echod/internal/genai"
)

func seedDayEntries(t *testing.T, f *fixture, userID, date string, n int) {
	t.Helper()
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		t.Fatalf("bad date %q: %v", date, err)
	}
	for i := 0; i < n; i++ {
		_, err := f.svc.CreateEntry(context.Background(), &domain.Entry{
			UserID:    userID,
			Content:   "worked on the project",
			Timestamp: day.Add(time.Duration(9+i) * time.Hour),
		})
		if err != nil {
			t.Fatalf("CreateEntry failed: %v", err)
		}
	}
}

func TestGetOrCreateDailySummaryDerivesOnce(t *testing.T) {
	f := newTestService(t)
	f.llm.response = "A productive day of project work."
	user := createUser(t, f)
	ctx := context.Background()

	seedDayEntries(t, f, user.UserID, "2025-06-01", 3)

	first, err := f.svc.GetOrCreateDailySummary(ctx, user.UserID, "2025-06-01")
	if err != nil {
		t.Fatalf("GetOrCreateDailySummary failed: %v", err)
	}
	if first.Content != "A productive day of project work." {
		t.Errorf("summary = %q", first.Content)
	}
	if f.llm.callCount() != 1 {
		t.Fatalf("expected 1 model call, got %d", f.llm.callCount())
	}

	// Second request is a cache hit: same content, no new model call.
	second, err := f.svc.GetOrCreateDailySummary(ctx, user.UserID, "2025-06-01")
	if err != nil {
		t.Fatalf("second GetOrCreateDailySummary failed: %v", err)
	}
	if second.Content != first.Content {
		t.Errorf("cached content diverged: %q vs %q", second.Content, first.Content)
	}
	if f.llm.callCount() != 1 {
		t.Errorf("cache hit must not call the model, got %d calls", f.llm.callCount())
	}
}

func TestGetOrCreateDailySummaryEmptyDay(t *testing.T) {
	f := newTestService(t)
	user := createUser(t, f)
	ctx := context.Background()

	got, err := f.svc.GetOrCreateDailySummary(ctx, user.UserID, "2025-06-01")
	if err != nil {
		t.Fatalf("GetOrCreateDailySummary failed: %v", err)
	}
	if got.Content != genai.NoEntriesSummary {
		t.Errorf("empty day summary = %q", got.Content)
	}
	if f.llm.callCount() != 0 {
		t.Errorf("empty day must not call the model, got %d calls", f.llm.callCount())
	}

	// The placeholder is cached like any other summary.
	again, err := f.svc.GetOrCreateDailySummary(ctx, user.UserID, "2025-06-01")
	if err != nil {
		t.Fatalf("second GetOrCreateDailySummary failed: %v", err)
	}
	if again.Content != genai.NoEntriesSummary {
		t.Errorf("cached empty-day summary = %q", again.Content)
	}
}

func TestGetOrCreateDailySummaryErrors(t *testing.T) {
	f := newTestService(t)
	user := createUser(t, f)
	ctx := context.Background()

	if _, err := f.svc.GetOrCreateDailySummary(ctx, "usr_missing", "2025-06-01"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if _, err := f.svc.GetOrCreateDailySummary(ctx, user.UserID, "not-a-date"); !domain.IsValidation(err) {
		t.Errorf("expected validation error, got %v", err)
	}

	// A model failure on a non-empty day propagates instead of caching
	// garbage.
	seedDayEntries(t, f, user.UserID, "2025-06-02", 1)
	f.llm.err = errors.New("rate limited")
	if _, err := f.svc.GetOrCreateDailySummary(ctx, user.UserID, "2025-06-02"); err == nil {
		t.Error("expected model error to propagate")
	}
	if got, _ := f.svc.GetSummary(ctx, user.UserID, "2025-06-02"); got != nil {
		t.Errorf("failed derivation must not be cached, got %+v", got)
	}
}

func TestGetOrCreateDailySummaryConcurrent(t *testing.T) {
	f := newTestService(t)
	// Distinct completions per call so a loser returning its own text
	// instead of the winner's row would be visible.
	f.llm.respond = func(call int) string {
		return fmt.Sprintf("derivation %d", call)
	}
	user := createUser(t, f)
	ctx := context.Background()

	seedDayEntries(t, f, user.UserID, "2025-06-01", 2)

	const workers = 4
	results := make([]*domain.Summary, workers)
	errs := make([]error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = f.svc.GetOrCreateDailySummary(ctx, user.UserID, "2025-06-01")
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			t.Fatalf("worker %d failed: %v", i, err)
		}
	}

	stored, err := f.svc.GetSummary(ctx, user.UserID, "2025-06-01")
	if err != nil {
		t.Fatalf("GetSummary failed: %v", err)
	}
	for i, r := range results {
		if r.Content != stored.Content {
			t.Errorf("worker %d saw %q, stored row has %q", i, r.Content, stored.Content)
		}
	}
}

func TestCreateSummaryManual(t *testing.T) {
	f := newTestService(t)
	user := createUser(t, f)
	ctx := context.Background()

	created, err := f.svc.CreateSummary(ctx, &domain.Summary{
		UserID:  user.UserID,
		Date:    "2025-06-01",
		Content: "Hand-written recap.",
	})
	if err != nil {
		t.Fatalf("CreateSummary failed: %v", err)
	}
	if created.CreatedAt.IsZero() {
		t.Error("created_at not set")
	}

	// The stored summary wins over derivation.
	got, err := f.svc.GetOrCreateDailySummary(ctx, user.UserID, "2025-06-01")
	if err != nil {
		t.Fatalf("GetOrCreateDailySummary failed: %v", err)
	}
	if got.Content != "Hand-written recap." {
		t.Errorf("summary = %q", got.Content)
	}

	_, err = f.svc.CreateSummary(ctx, &domain.Summary{
		UserID:  user.UserID,
		Date:    "2025-06-01",
		Content: "Overwrite attempt.",
	})
	if !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}

	if _, err := f.svc.CreateSummary(ctx, &domain.Summary{UserID: user.UserID, Date: "2025-06-01"}); !domain.IsValidation(err) {
		t.Errorf("expected validation error for empty content, got %v", err)
	}
}

func TestGetSummaryMissing(t *testing.T) {
	f := newTestService(t)
	user := createUser(t, f)

	if _, err := f.svc.GetSummary(context.Background(), user.UserID, "2025-06-01"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
