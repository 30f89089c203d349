package service

import (
	"context"
	"fmt"
	"time"

	"github.com/echo-journal/echod/internal/adapter/tts"
	"github.com/echo-journal/echod/internal/domain"
	"github.com/echo-journal/echod/internal/genai"
)

// CreateUser registers a new journaling subject. Missing persona, length
// and voice preferences take the configured defaults.
func (s *Service) CreateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	if user.Name == "" {
		return nil, domain.Invalid("name", "required")
	}
	if user.DiscordID == "" {
		return nil, domain.Invalid("discord_id", "required")
	}
	if user.Persona == "" {
		user.Persona = s.config.DefaultPersona
	} else if !genai.KnownPersona(user.Persona) {
		return nil, domain.Invalid("persona", fmt.Sprintf("unknown persona %q", user.Persona))
	}
	if user.SummaryLength == "" {
		user.SummaryLength = s.config.DefaultLength
	} else if !genai.KnownLength(user.SummaryLength) {
		return nil, domain.Invalid("summary_length", fmt.Sprintf("unknown length %q", user.SummaryLength))
	}
	if user.Voice == "" {
		user.Voice = tts.DefaultVoice
	} else if !tts.ValidVoice(user.Voice) {
		return nil, domain.Invalid("voice", fmt.Sprintf("unknown voice %q", user.Voice))
	}
	if err := validateQuietHours(user.QuietHours); err != nil {
		return nil, err
	}

	if user.UserID == "" {
		user.UserID = newID("usr")
	}
	now := time.Now()
	if user.StartDate.IsZero() {
		user.StartDate = now
	}
	user.CreatedAt = now

	if err := s.store.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

func validateQuietHours(qh domain.QuietHours) error {
	if (qh.Start == "") != (qh.End == "") {
		return domain.Invalid("quiet_hours", "start and end must be set together")
	}
	for _, v := range []string{qh.Start, qh.End} {
		if v == "" {
			continue
		}
		if _, err := time.Parse("15:04", v); err != nil {
			return domain.Invalid("quiet_hours", fmt.Sprintf("not a HH:MM time: %q", v))
		}
	}
	return nil
}

// GetUser retrieves a user by ID.
func (s *Service) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	if userID == "" {
		return nil, domain.Invalid("user_id", "required")
	}
	user, err := s.store.GetUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

// ListUsers lists all users.
func (s *Service) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.store.ListUsers(ctx)
}
