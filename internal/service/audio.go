package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/echo-journal/echod/internal/adapter/tts"
)

// RenderSummaryAudio speaks the daily summary for (userID, date) and
// returns the path of the resulting MP3. The file name is deterministic,
// so an already rendered day is served from disk without another
// synthesis call.
func (s *Service) RenderSummaryAudio(ctx context.Context, userID, date string) (string, error) {
	user, _, _, err := s.summaryScope(ctx, userID, date)
	if err != nil {
		return "", err
	}
	if s.tts == nil {
		return "", fmt.Errorf("speech synthesis is not configured")
	}

	path := filepath.Join(s.config.AudioDir, tts.Filename(userID, date))
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}

	summary, err := s.GetOrCreateDailySummary(ctx, userID, date)
	if err != nil {
		return "", err
	}

	voice := user.Voice
	if !tts.ValidVoice(voice) {
		voice = tts.DefaultVoice
	}
	audio, err := s.tts.Synthesize(ctx, summary.Content, voice)
	if err != nil {
		return "", fmt.Errorf("failed to synthesize summary: %w", err)
	}

	if err := os.MkdirAll(s.config.AudioDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create audio dir: %w", err)
	}
	if err := os.WriteFile(path, audio, 0o644); err != nil {
		return "", fmt.Errorf("failed to write audio file: %w", err)
	}
	return path, nil
}
