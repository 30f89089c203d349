// Package tts synthesizes speech for daily summaries.
package tts

import (
	"context"
	"fmt"
	"io"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// Synthesizer converts text to audio.
type Synthesizer interface {
	Synthesize(ctx context.Context, text, voice string) ([]byte, error)
}

// OpenAIClient calls the OpenAI speech API.
type OpenAIClient struct {
	client *openai.Client
	model  string
}

var _ Synthesizer = (*OpenAIClient)(nil)

// NewOpenAIClient creates a speech client for the given model.
func NewOpenAIClient(apiKey, model string) *OpenAIClient {
	client := openai.NewClient(option.WithAPIKey(apiKey))
	return &OpenAIClient{client: &client, model: model}
}

// Synthesize renders text as MP3 audio in the given voice.
func (c *OpenAIClient) Synthesize(ctx context.Context, text, voice string) ([]byte, error) {
	if !ValidVoice(voice) {
		return nil, fmt.Errorf("unknown voice %q", voice)
	}

	resp, err := c.client.Audio.Speech.New(ctx, openai.AudioSpeechNewParams{
		Model: c.model,
		Voice: openai.AudioSpeechNewParamsVoice(voice),
		Input: text,
	})
	if err != nil {
		return nil, fmt.Errorf("speech request failed: %w", err)
	}
	defer resp.Body.Close()

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio response: %w", err)
	}
	return audio, nil
}
