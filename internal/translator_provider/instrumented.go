package translator_provider

import (
	"context"
	"time"

	"translator-backend/internal/metrics"
)

const (
	operationComplete   = "complete"
	operationTranscribe = "transcribe"
)

type instrumentedProvider struct {
	next    TranslatorProvider
	metrics *metrics.Metrics
}

// Instrument wraps provider so that every call is counted and timed.
func Instrument(provider TranslatorProvider, m *metrics.Metrics) TranslatorProvider {
	return &instrumentedProvider{next: provider, metrics: m}
}

func (p *instrumentedProvider) Name() string {
	return p.next.Name()
}

func (p *instrumentedProvider) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	start := time.Now()
	text, err := p.next.Complete(ctx, systemPrompt, userPrompt)
	p.metrics.RecordProviderCall(p.next.Name(), operationComplete, err, time.Since(start).Seconds())
	return text, err
}

func (p *instrumentedProvider) Transcribe(ctx context.Context, audioPath string) (string, error) {
	start := time.Now()
	text, err := p.next.Transcribe(ctx, audioPath)
	p.metrics.RecordProviderCall(p.next.Name(), operationTranscribe, err, time.Since(start).Seconds())
	return text, err
}
