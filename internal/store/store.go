// Package store provides persistence for users, entries and summaries.
package store

import (
	"context"
	"time"

	"github.com/echo-journal/echod/internal/domain"
)

// Store defines the persistence operations used by the service layer.
// Get* methods return (nil, nil) when no row matches; CreateSummary
// returns domain.ErrConflict when a summary already exists for the
// (user, date) key.
type Store interface {
	CreateUser(ctx context.Context, user *domain.User) error
	GetUser(ctx context.Context, userID string) (*domain.User, error)
	GetUserByDiscordID(ctx context.Context, discordID string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)

	CreateEntry(ctx context.Context, entry *domain.Entry) error
	GetEntry(ctx context.Context, entryID string) (*domain.Entry, error)
	ListEntriesInRange(ctx context.Context, userID string, from, to time.Time) ([]domain.Entry, error)
	ListRecentEntries(ctx context.Context, userID string, limit int) ([]domain.Entry, error)

	CreateSummary(ctx context.Context, summary *domain.Summary) error
	GetSummary(ctx context.Context, userID, date string) (*domain.Summary, error)

	Close() error
}
