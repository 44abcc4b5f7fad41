package translator_provider

import (
	"context"
	"strings"
	"testing"

	"translator-backend/pkg/types"
)

func testConfig(provider string) *types.Config {
	return &types.Config{
		Provider: provider,
		OpenAI: types.OpenAIConfig{
			APIKey:             "sk-test",
			ChatModel:          "gpt-4o-mini",
			TranscriptionModel: "gpt-4o-transcribe",
		},
		Gemini: types.GeminiConfig{
			APIKey: "g-test",
			Model:  "gemini-2.5-flash",
		},
	}
}

func TestCreateProvider(t *testing.T) {
	tests := []struct {
		name         string
		providerType GenerativeProviderType
		expectedName string
		expectError  bool
	}{
		{name: "openai", providerType: ProviderOpenAI, expectedName: "openai"},
		{name: "gemini", providerType: ProviderGemini, expectedName: "gemini"},
		{name: "unsupported", providerType: "deepl", expectError: true},
	}

	factory := NewFactory(testConfig(types.ProviderOpenAI))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider, err := factory.CreateProvider(context.Background(), tt.providerType)
			if tt.expectError {
				if err == nil {
					t.Fatal("expected error")
				}
				if !strings.Contains(err.Error(), "unsupported provider type") {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if provider.Name() != tt.expectedName {
				t.Errorf("expected provider %q, got %q", tt.expectedName, provider.Name())
			}
		})
	}
}

func TestCreateConfiguredProvider(t *testing.T) {
	factory := NewFactory(testConfig(types.ProviderGemini))

	provider, err := factory.CreateConfiguredProvider(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if provider.Name() != "gemini" {
		t.Errorf("expected configured gemini provider, got %q", provider.Name())
	}
}
