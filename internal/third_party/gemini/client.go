package gemini

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"google.golang.org/genai"

	"translator-backend/pkg/types"
)

const (
	transcribeInstruction = "Transcribe this audio verbatim. Output only the transcript, with no labels, timestamps or commentary."
	fallbackAudioMIME     = "audio/mp4"
)

type Client struct {
	client *genai.Client
	model  string
}

func NewGeminiClient(ctx context.Context, geminiConfig types.GeminiConfig) (*Client, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  geminiConfig.APIKey,
		Backend: genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{
			BaseURL: geminiConfig.BaseURL,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &Client{
		client: client,
		model:  geminiConfig.Model,
	}, nil
}

func (c *Client) Name() string {
	return "gemini"
}

// Complete generates a single reply with the system prompt passed as the
// model's system instruction and temperature 0.
func (c *Client) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	resp, err := c.client.Models.GenerateContent(ctx,
		c.model,
		[]*genai.Content{
			genai.NewContentFromText(userPrompt, genai.RoleUser),
		},
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
			Temperature:       genai.Ptr[float32](0),
		},
	)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}
	return resp.Text(), nil
}

// Transcribe sends the audio inline alongside a transcription instruction.
func (c *Client) Transcribe(ctx context.Context, audioPath string) (string, error) {
	data, err := os.ReadFile(audioPath)
	if err != nil {
		return "", fmt.Errorf("read audio: %w", err)
	}

	resp, err := c.client.Models.GenerateContent(ctx,
		c.model,
		[]*genai.Content{
			genai.NewContentFromParts([]*genai.Part{
				genai.NewPartFromText(transcribeInstruction),
				genai.NewPartFromBytes(data, audioMIMEType(data)),
			}, genai.RoleUser),
		},
		&genai.GenerateContentConfig{
			Temperature: genai.Ptr[float32](0),
		},
	)
	if err != nil {
		return "", fmt.Errorf("transcription: %w", err)
	}
	return resp.Text(), nil
}

// audioMIMEType sniffs the audio container. Gemini expects audio/mp4 for
// AAC-in-MP4, which mimetype reports as audio/x-m4a.
func audioMIMEType(data []byte) string {
	mtype := mimetype.Detect(data)
	switch {
	case mtype.Is("audio/x-m4a"):
		return fallbackAudioMIME
	case strings.HasPrefix(mtype.String(), "audio/"):
		return mtype.String()
	default:
		return fallbackAudioMIME
	}
}
