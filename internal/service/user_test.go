package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/echo-journal/echod/internal/domain"
)

func TestCreateUserDefaults(t *testing.T) {
	f := newTestService(t)
	user := createUser(t, f)

	if !strings.HasPrefix(user.UserID, "usr_") {
		t.Errorf("unexpected user ID %q", user.UserID)
	}
	if user.Persona != "coach" || user.SummaryLength != "short" || user.Voice != "alloy" {
		t.Errorf("defaults not applied: %+v", user)
	}
	if user.StartDate.IsZero() || user.CreatedAt.IsZero() {
		t.Error("timestamps not set")
	}
}

func TestCreateUserValidation(t *testing.T) {
	f := newTestService(t)
	ctx := context.Background()

	tests := []struct {
		name string
		user domain.User
	}{
		{"missing name", domain.User{DiscordID: "d#1"}},
		{"missing discord id", domain.User{Name: "Ada"}},
		{"unknown persona", domain.User{Name: "Ada", DiscordID: "d#1", Persona: "pirate"}},
		{"unknown length", domain.User{Name: "Ada", DiscordID: "d#1", SummaryLength: "epic"}},
		{"unknown voice", domain.User{Name: "Ada", DiscordID: "d#1", Voice: "robot"}},
		{"half quiet window", domain.User{Name: "Ada", DiscordID: "d#1", QuietHours: domain.QuietHours{Start: "22:00"}}},
		{"malformed quiet time", domain.User{Name: "Ada", DiscordID: "d#1", QuietHours: domain.QuietHours{Start: "10pm", End: "07:00"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := tt.user
			if _, err := f.svc.CreateUser(ctx, &u); !domain.IsValidation(err) {
				t.Errorf("expected validation error, got %v", err)
			}
		})
	}
}

func TestCreateUserDuplicate(t *testing.T) {
	f := newTestService(t)
	createUser(t, f)

	_, err := f.svc.CreateUser(context.Background(), &domain.User{Name: "Copy", DiscordID: "ada#1"})
	if !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestGetUser(t *testing.T) {
	f := newTestService(t)
	user := createUser(t, f)
	ctx := context.Background()

	got, err := f.svc.GetUser(ctx, user.UserID)
	if err != nil {
		t.Fatalf("GetUser failed: %v", err)
	}
	if got.Name != "Ada" {
		t.Errorf("unexpected user %+v", got)
	}

	if _, err := f.svc.GetUser(ctx, "usr_missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if _, err := f.svc.GetUser(ctx, ""); !domain.IsValidation(err) {
		t.Errorf("expected validation error, got %v", err)
	}
}
