// Package service implements the journaling pipeline on top of the store,
// the text-generation collaborator and the follow-up scheduler.
package service

import (
	"github.com/google/uuid"

	"github.com/echo-journal/echod/internal/adapter/tts"
	"github.com/echo-journal/echod/internal/config"
	"github.com/echo-journal/echod/internal/followup"
	"github.com/echo-journal/echod/internal/genai"
	"github.com/echo-journal/echod/internal/metrics"
	"github.com/echo-journal/echod/internal/store"
)

// Service coordinates the journaling pipeline.
type Service struct {
	store     store.Store
	generator *genai.Generator
	scheduler *followup.Scheduler
	tts       tts.Synthesizer
	config    *config.Config
	recorder  metrics.Recorder
}

// New creates a Service. recorder may be nil.
func New(st store.Store, generator *genai.Generator, scheduler *followup.Scheduler, synthesizer tts.Synthesizer, cfg *config.Config, recorder metrics.Recorder) *Service {
	if recorder == nil {
		recorder = metrics.Nop{}
	}
	return &Service{
		store:     st,
		generator: generator,
		scheduler: scheduler,
		tts:       synthesizer,
		config:    cfg,
		recorder:  recorder,
	}
}

func newID(prefix string) string {
	return prefix + "_" + uuid.New().String()[:8]
}
