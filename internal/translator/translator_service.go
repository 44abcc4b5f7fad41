package translator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"translator-backend/internal/metrics"
	"translator-backend/internal/sanitizer"
	"translator-backend/pkg/types"
)

// ErrUpstream marks failures of the AI provider itself, as opposed to local
// failures such as staging the audio file.
var ErrUpstream = errors.New("upstream provider failure")

// TranslatorProviderInterface defines the methods required for translation providers
type TranslatorProviderInterface interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
	Transcribe(ctx context.Context, audioPath string) (string, error)
}

// TranslatorService provides text and audio translation
type TranslatorService struct {
	logger   *zap.Logger
	provider TranslatorProviderInterface
	metrics  *metrics.Metrics
	tempDir  string
}

// NewTranslatorService creates a new instance of TranslatorService. Uploaded
// audio is staged under tempDir; an empty tempDir means the OS default.
func NewTranslatorService(logger *zap.Logger, provider TranslatorProviderInterface, m *metrics.Metrics, tempDir string) *TranslatorService {
	return &TranslatorService{
		logger:   logger,
		provider: provider,
		metrics:  m,
		tempDir:  tempDir,
	}
}

// TranslateText translates text into targetLang, letting the provider detect
// the source language. Empty text is sent as is.
func (s *TranslatorService) TranslateText(ctx context.Context, text, targetLang string) (*types.TranslationResult, error) {
	s.logger.Info("translating text",
		zap.String("target_language", targetLang),
		zap.Int("text_length", len(text)),
	)

	translation, err := s.translate(ctx, text, targetLang)
	if err != nil {
		return nil, err
	}
	return &types.TranslationResult{Translation: translation}, nil
}

// TranslateAudio transcribes audio and translates the transcript into
// targetLang. filename only contributes its extension.
func (s *TranslatorService) TranslateAudio(ctx context.Context, audio io.Reader, filename, targetLang string) (*types.AudioTranslationResult, error) {
	s.logger.Info("translating audio",
		zap.String("target_language", targetLang),
		zap.String("filename", filename),
	)

	var transcript string
	err := s.withTempAudio(audio, audioExtension(filename), func(path string) error {
		raw, err := s.provider.Transcribe(ctx, path)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrUpstream, err)
		}
		transcript = strings.TrimSpace(raw)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Debug("audio transcribed", zap.Int("transcript_length", len(transcript)))

	translation, err := s.translate(ctx, transcript, targetLang)
	if err != nil {
		return nil, err
	}
	return &types.AudioTranslationResult{
		Transcript:  transcript,
		Translation: translation,
	}, nil
}

func (s *TranslatorService) translate(ctx context.Context, text, targetLang string) (string, error) {
	reply, err := s.provider.Complete(ctx, systemPrompt, buildPrompt(text, targetLang))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUpstream, err)
	}
	return sanitizer.Sanitize(reply), nil
}
