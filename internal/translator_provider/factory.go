package translator_provider

import (
	"context"
	"fmt"

	"translator-backend/internal/third_party/gemini"
	translator_openai "translator-backend/internal/third_party/openai"
	"translator-backend/pkg/types"
)

// Factory creates translator providers based on the specified type
type Factory struct {
	config *types.Config
}

// NewFactory creates a new provider factory
func NewFactory(config *types.Config) *Factory {
	return &Factory{
		config: config,
	}
}

// CreateProvider creates a translator provider based on the specified type
func (f *Factory) CreateProvider(ctx context.Context, providerType GenerativeProviderType) (TranslatorProvider, error) {
	switch providerType {
	case ProviderOpenAI:
		return translator_openai.NewOpenAIClient(f.config.OpenAI), nil
	case ProviderGemini:
		client, err := gemini.NewGeminiClient(ctx, f.config.Gemini)
		if err != nil {
			return nil, err
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unsupported provider type: %s", providerType)
	}
}

// CreateConfiguredProvider creates the provider selected by TRANSLATION_PROVIDER
func (f *Factory) CreateConfiguredProvider(ctx context.Context) (TranslatorProvider, error) {
	return f.CreateProvider(ctx, GenerativeProviderType(f.config.Provider))
}
