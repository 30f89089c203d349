package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/echo-journal/echod/internal/domain"
	"github.com/echo-journal/echod/internal/genai"
)

// GetOrCreateDailySummary returns the stored summary for (userID, date),
// deriving and caching one from that day's entries when absent. Repeated
// calls for the same day return the first derived text; concurrent
// derivations race on the insert and the loser adopts the winner's row.
func (s *Service) GetOrCreateDailySummary(ctx context.Context, userID, date string) (*domain.Summary, error) {
	user, from, to, err := s.summaryScope(ctx, userID, date)
	if err != nil {
		return nil, err
	}

	cached, err := s.store.GetSummary(ctx, userID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to get summary: %w", err)
	}
	if cached != nil {
		s.recorder.RecordSummaryCacheHit()
		return cached, nil
	}

	entries, err := s.store.ListEntriesInRange(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}

	content := genai.NoEntriesSummary
	if len(entries) > 0 {
		content, err = s.generator.GenerateSummary(ctx, entries,
			genai.ResolveLength(user.SummaryLength), genai.ResolvePersona(user.Persona))
		if err != nil {
			return nil, fmt.Errorf("failed to generate summary: %w", err)
		}
	}
	s.recorder.RecordSummaryDerived()

	summary := &domain.Summary{
		UserID:    userID,
		Date:      date,
		Content:   content,
		CreatedAt: time.Now(),
	}
	if err := s.store.CreateSummary(ctx, summary); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			winner, rerr := s.store.GetSummary(ctx, userID, date)
			if rerr == nil && winner != nil {
				return winner, nil
			}
		}
		// The derived text is still good even if caching it failed.
		log.Printf("WARN: failed to cache summary for %s/%s: %v", userID, date, err)
	}
	return summary, nil
}

// CreateSummary stores a caller-supplied summary. An existing summary for
// the same day is a conflict, never overwritten.
func (s *Service) CreateSummary(ctx context.Context, summary *domain.Summary) (*domain.Summary, error) {
	if summary.Content == "" {
		return nil, domain.Invalid("content", "required")
	}
	if _, _, _, err := s.summaryScope(ctx, summary.UserID, summary.Date); err != nil {
		return nil, err
	}
	if summary.CreatedAt.IsZero() {
		summary.CreatedAt = time.Now()
	}
	if err := s.store.CreateSummary(ctx, summary); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, domain.ErrConflict
		}
		return nil, fmt.Errorf("failed to create summary: %w", err)
	}
	return summary, nil
}

// GetSummary retrieves a stored summary without deriving one.
func (s *Service) GetSummary(ctx context.Context, userID, date string) (*domain.Summary, error) {
	if _, _, _, err := s.summaryScope(ctx, userID, date); err != nil {
		return nil, err
	}
	summary, err := s.store.GetSummary(ctx, userID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to get summary: %w", err)
	}
	if summary == nil {
		return nil, domain.ErrNotFound
	}
	return summary, nil
}

// summaryScope validates a (userID, date) pair and resolves the user and
// the day's bounds.
func (s *Service) summaryScope(ctx context.Context, userID, date string) (*domain.User, time.Time, time.Time, error) {
	var zero time.Time
	if userID == "" {
		return nil, zero, zero, domain.Invalid("user_id", "required")
	}
	from, to, err := s.dayBounds(date)
	if err != nil {
		return nil, zero, zero, err
	}
	user, err := s.store.GetUser(ctx, userID)
	if err != nil {
		return nil, zero, zero, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, zero, zero, domain.ErrNotFound
	}
	return user, from, to, nil
}
