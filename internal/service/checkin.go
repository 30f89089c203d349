package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/echo-journal/echod/internal/domain"
	"github.com/echo-journal/echod/internal/genai"
)

// HandleInbound processes a message from the chat gateway: the message is
// persisted as a journal entry, a check-in reply is generated and sent
// back, and a follow-up nudge is scheduled. Messages starting with "!"
// are command chatter and are ignored entirely.
func (s *Service) HandleInbound(ctx context.Context, msg *domain.InboundMessage) (*domain.CheckIn, error) {
	if msg.UserID == "" && msg.DiscordID == "" {
		return nil, domain.Invalid("user_id", "user_id or discord_id required")
	}
	if msg.Content == "" {
		return nil, domain.Invalid("content", "required")
	}
	if strings.HasPrefix(msg.Content, "!") {
		return nil, nil
	}

	user, err := s.resolveSender(ctx, msg)
	if err != nil {
		return nil, err
	}

	source := msg.Source
	if source == "" {
		source = "gateway"
	}

	now := time.Now()
	userEntry := &domain.Entry{
		EntryID:   newID("ent"),
		UserID:    user.UserID,
		Timestamp: now,
		Role:      domain.RoleUser,
		Content:   msg.Content,
		Source:    source,
	}
	if err := s.store.CreateEntry(ctx, userEntry); err != nil {
		return nil, fmt.Errorf("failed to record entry: %w", err)
	}

	checkIn := s.generator.GenerateCheckIn(ctx, msg.Content, genai.ResolvePersona(user.Persona))

	botEntry := &domain.Entry{
		EntryID:   newID("ent"),
		UserID:    user.UserID,
		Timestamp: time.Now(),
		Role:      domain.RoleBot,
		Content:   checkIn.Reply,
		Source:    source,
	}
	if err := s.store.CreateEntry(ctx, botEntry); err != nil {
		// The user's entry and the reply already exist; losing the bot
		// side of the transcript is not worth failing the exchange.
		log.Printf("WARN: failed to record bot entry for user %s: %v", user.UserID, err)
	}

	if msg.ChannelID != "" {
		if err := s.scheduler.DeliverNow(ctx, msg.ChannelID, checkIn.Reply); err != nil {
			log.Printf("WARN: failed to deliver reply to channel %s: %v", msg.ChannelID, err)
		}

		if s.config.CancelOnNewMessage {
			if s.scheduler.Cancel(user.UserID, msg.ChannelID) {
				log.Printf("cancelled pending follow-up for user %s", user.UserID)
			}
		}
		s.scheduler.Schedule(user.UserID, msg.ChannelID, checkIn.Delay, checkIn.NextCheckIn)
	}

	return &checkIn, nil
}

// resolveSender finds the user behind an inbound message, preferring the
// explicit user ID over the messaging front-end identity.
func (s *Service) resolveSender(ctx context.Context, msg *domain.InboundMessage) (*domain.User, error) {
	var user *domain.User
	var err error
	if msg.UserID != "" {
		user, err = s.store.GetUser(ctx, msg.UserID)
	} else {
		user, err = s.store.GetUserByDiscordID(ctx, msg.DiscordID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	return user, nil
}
