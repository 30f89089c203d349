package service

import (
	"context"
	"fmt"
	"time"

	"github.com/echo-journal/echod/internal/domain"
)

// CreateEntry persists a journal entry. Timestamp defaults to now, role
// to user.
func (s *Service) CreateEntry(ctx context.Context, entry *domain.Entry) (*domain.Entry, error) {
	if entry.UserID == "" {
		return nil, domain.Invalid("user_id", "required")
	}
	if entry.Content == "" {
		return nil, domain.Invalid("content", "required")
	}
	switch entry.Role {
	case "":
		entry.Role = domain.RoleUser
	case domain.RoleUser, domain.RoleBot:
	default:
		return nil, domain.Invalid("role", fmt.Sprintf("unknown role %q", entry.Role))
	}

	user, err := s.store.GetUser(ctx, entry.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}

	if entry.EntryID == "" {
		entry.EntryID = newID("ent")
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}

	if err := s.store.CreateEntry(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to create entry: %w", err)
	}
	return entry, nil
}

// GetEntry retrieves an entry by ID.
func (s *Service) GetEntry(ctx context.Context, entryID string) (*domain.Entry, error) {
	if entryID == "" {
		return nil, domain.Invalid("entry_id", "required")
	}
	entry, err := s.store.GetEntry(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to get entry: %w", err)
	}
	if entry == nil {
		return nil, domain.ErrNotFound
	}
	return entry, nil
}

// ListUserEntries lists a user's entries. A date ("YYYY-MM-DD") restricts
// the result to that calendar day, oldest first; without a date the most
// recent entries are returned, newest first, capped at limit (or the
// configured default).
func (s *Service) ListUserEntries(ctx context.Context, userID, date string, limit int) ([]domain.Entry, error) {
	if userID == "" {
		return nil, domain.Invalid("user_id", "required")
	}
	if limit <= 0 {
		limit = s.config.RecentEntryLimit
	}

	if date != "" {
		from, to, err := s.dayBounds(date)
		if err != nil {
			return nil, err
		}
		return s.store.ListEntriesInRange(ctx, userID, from, to)
	}
	return s.store.ListRecentEntries(ctx, userID, limit)
}

// dayBounds returns the [start, end) instants of a calendar day in the
// configured time zone.
func (s *Service) dayBounds(date string) (time.Time, time.Time, error) {
	day, err := time.ParseInLocation("2006-01-02", date, s.config.Location)
	if err != nil {
		return time.Time{}, time.Time{}, domain.Invalid("date", "must be YYYY-MM-DD")
	}
	return day, day.AddDate(0, 0, 1), nil
}
