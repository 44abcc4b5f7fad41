package translator_openai

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"translator-backend/pkg/types"
)

var errNoChoices = errors.New("openai returned no choices")

type Client struct {
	client             *openai.Client
	chatModel          string
	transcriptionModel string
}

func NewOpenAIClient(openAIConfig types.OpenAIConfig) *Client {
	opts := []option.RequestOption{
		option.WithAPIKey(openAIConfig.APIKey),
		// A failed call is final; the SDK would otherwise retry twice.
		option.WithMaxRetries(0),
	}
	if openAIConfig.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(openAIConfig.BaseURL))
	}

	c := openai.NewClient(opts...)
	return &Client{
		client:             &c,
		chatModel:          openAIConfig.ChatModel,
		transcriptionModel: openAIConfig.TranscriptionModel,
	}
}

func (c *Client) Name() string {
	return "openai"
}

// Complete runs a two-message chat completion at temperature 0 and returns the
// content of the first choice.
func (c *Client) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.chatModel,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userPrompt),
		},
		Temperature: openai.Float(0),
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errNoChoices
	}
	return resp.Choices[0].Message.Content, nil
}

// Transcribe uploads the audio file; the SDK derives the multipart filename,
// and with it the audio format, from the file's name.
func (c *Client) Transcribe(ctx context.Context, audioPath string) (string, error) {
	f, err := os.Open(audioPath)
	if err != nil {
		return "", fmt.Errorf("open audio: %w", err)
	}
	defer f.Close()

	resp, err := c.client.Audio.Transcriptions.New(ctx, openai.AudioTranscriptionNewParams{
		File:  f,
		Model: c.transcriptionModel,
	})
	if err != nil {
		return "", fmt.Errorf("transcription: %w", err)
	}
	return resp.Text, nil
}
