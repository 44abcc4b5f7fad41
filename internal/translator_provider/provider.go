package translator_provider

import (
	"context"

	"translator-backend/pkg/types"
)

// TranslatorProvider defines the interface that all AI providers must implement
type TranslatorProvider interface {
	// Name identifies the provider in logs and metrics.
	Name() string
	// Complete sends a system instruction and a user prompt and returns the
	// single textual reply, sampled deterministically.
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
	// Transcribe converts the audio file at audioPath to text.
	Transcribe(ctx context.Context, audioPath string) (string, error)
}

// GenerativeProviderType represents the type of AI provider
type GenerativeProviderType string

const (
	ProviderOpenAI GenerativeProviderType = types.ProviderOpenAI
	ProviderGemini GenerativeProviderType = types.ProviderGemini
)
